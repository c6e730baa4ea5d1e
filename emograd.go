// Package emograd turns a stream of scalar training losses into qualitative,
// human-readable commentary. Losses are buffered into fixed-size blocks,
// block averages are compared to classify a trend, and the trend is handed to
// a pluggable personality that decides what, if anything, to say.
package emograd

import (
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
)

// DefaultMessageEvery is the default block size for averaging: one message
// opportunity per step.
const DefaultMessageEvery = 1

// Engine is the core structure of the package. It owns a block-averaging
// buffer and a resolved personality, and produces at most one message per
// completed block.
//
// An Engine is single-owner mutable state: do not call Observe concurrently
// from multiple goroutines without external synchronization.
type Engine struct {
	buffer      *trendBuffer
	personality Personality

	emogradConfig
}

type emogradConfig struct {
	messageEvery int
	epsilon      float64
	persona      any
	registry     *Registry
	logger       *slog.Logger

	printFn func(msg string)
	enabled bool
}

func newEmogradConfig() emogradConfig {
	return emogradConfig{
		messageEvery: DefaultMessageEvery,
		epsilon:      0,
		persona:      "wholesome",
		registry:     defaultRegistry,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		printFn:      defaultPrintFn,
		enabled:      true,
	}
}

// Option is the type for the options of the Engine and of WrapOptimizer.
type Option func(*emogradConfig)

// WithMessageEvery sets the block size for loss averaging: one feedback
// opportunity per messageEvery steps. Must be at least 1. Default is 1, which
// degenerates to per-step reporting.
func WithMessageEvery(messageEvery int) Option {
	return func(c *emogradConfig) {
		c.messageEvery = messageEvery
	}
}

// WithEpsilon sets the relative tolerance for classifying two block averages
// as unchanged. Default is 0 (any strictly lower value counts as an
// improvement). A small value such as 1e-9 damps float jitter flapping.
func WithEpsilon(epsilon float64) Option {
	return func(c *emogradConfig) {
		c.epsilon = epsilon
	}
}

// WithPersonality selects a personality by registered name. Default is
// "wholesome".
func WithPersonality(name string) Option {
	return func(c *emogradConfig) {
		c.persona = name
	}
}

// WithPersonalityFunc sets the personality callable directly, bypassing the
// registry. Useful for anonymous one-off personalities.
func WithPersonalityFunc(personality Personality) Option {
	return func(c *emogradConfig) {
		c.persona = personality
	}
}

// WithRegistry resolves personality names against the given registry instead
// of the process-wide default. Mainly for tests.
func WithRegistry(registry *Registry) Option {
	return func(c *emogradConfig) {
		c.registry = registry
	}
}

// WithLogger sets the logger. Default is a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *emogradConfig) {
		c.logger = logger
	}
}

// New creates a feedback engine. The personality is resolved once, here;
// an unknown name fails with ErrUnknownPersonality before any observation is
// buffered.
func New(options ...Option) (*Engine, error) {
	cfg := newEmogradConfig()
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.messageEvery < 1 {
		return nil, goerr.Wrap(ErrInvalidConfig, "message_every must be at least 1",
			goerr.V("message_every", cfg.messageEvery),
		)
	}

	personality, err := cfg.registry.Resolve(cfg.persona)
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		buffer:        newTrendBuffer(cfg.messageEvery),
		personality:   personality,
		emogradConfig: cfg,
	}

	engine.logger.Info("emograd engine created",
		"message_every", cfg.messageEvery,
		"epsilon", cfg.epsilon,
	)

	return engine, nil
}

// Observe feeds one loss observation into the engine. When the observation
// completes a block, the resolved personality is invoked with the block
// average, the previous block average and the step index, and its output is
// returned unchanged. Otherwise ok is false.
//
// step is an opaque caller-supplied label passed through to the personality;
// it never participates in trend computation. A personality that panics
// propagates to the caller, but the buffer has already been finalized at that
// point, so subsequent trend computation stays consistent.
func (x *Engine) Observe(loss float64, step int) (msg string, ok bool) {
	avg, prev, done := x.buffer.Add(loss)
	if !done {
		return "", false
	}

	x.logger.Debug("block completed",
		"avg", avg,
		"prev", prev,
		"step", step,
		"trend", ClassifyTrend(avg, prev, x.epsilon).String(),
	)

	return x.personality(avg, prev, step)
}

// Trend classifies the relationship between a block average and the previous
// one using the engine's configured epsilon.
func (x *Engine) Trend(loss float64, prevLoss *float64) Trend {
	return ClassifyTrend(loss, prevLoss, x.epsilon)
}
