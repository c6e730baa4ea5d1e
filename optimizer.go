package emograd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Optimizer is the minimal surface emograd needs from an optimization loop.
// Implementations own gradient computation and parameter updates; emograd
// never touches them.
type Optimizer interface {
	// Step applies one parameter update.
	Step() error

	// ZeroGrad clears accumulated gradients.
	ZeroGrad()
}

// EmotionalOptimizer wraps an Optimizer and adds trend-aware feedback to its
// step calls. The wrapped optimizer's behavior is forwarded unchanged; the
// caller supplies the scalar loss of each step, already extracted from
// whatever tensor type the surrounding framework uses.
type EmotionalOptimizer struct {
	optimizer Optimizer
	engine    *Engine

	printFn   func(msg string)
	enabled   bool
	stepCount int
}

func defaultPrintFn(msg string) {
	fmt.Fprintln(os.Stdout, msg)
}

// WithPrintFunc sets the message sink of the facade. Default prints to
// stdout. A ColoredPrinter's Print method fits here.
func WithPrintFunc(printFn func(msg string)) Option {
	return func(c *emogradConfig) {
		c.printFn = printFn
	}
}

// WithEnabled toggles feedback entirely. A disabled facade still forwards
// steps and counts them, but never consults the engine. Default is enabled.
func WithEnabled(enabled bool) Option {
	return func(c *emogradConfig) {
		c.enabled = enabled
	}
}

// WrapOptimizer wraps an optimizer with an emotional feedback engine. It
// accepts the same options as New plus WithPrintFunc and WithEnabled.
func WrapOptimizer(optimizer Optimizer, options ...Option) (*EmotionalOptimizer, error) {
	cfg := newEmogradConfig()
	for _, opt := range options {
		opt(&cfg)
	}

	cfg.logger = cfg.logger.With("emograd.run_id", uuid.New().String())

	engine, err := New(append(options, WithLogger(cfg.logger))...)
	if err != nil {
		return nil, err
	}

	return &EmotionalOptimizer{
		optimizer: optimizer,
		engine:    engine,
		printFn:   cfg.printFn,
		enabled:   cfg.enabled,
	}, nil
}

// Step forwards one optimization step to the wrapped optimizer, then feeds
// the loss into the feedback engine. Any message the personality emits is
// delivered to the print function. Steps are counted from 1.
func (x *EmotionalOptimizer) Step(loss float64) error {
	if err := x.optimizer.Step(); err != nil {
		return err
	}

	x.stepCount++
	if !x.enabled {
		return nil
	}

	if msg, ok := x.engine.Observe(loss, x.stepCount); ok {
		x.printFn(msg)
	}
	return nil
}

// ZeroGrad forwards to the wrapped optimizer.
func (x *EmotionalOptimizer) ZeroGrad() {
	x.optimizer.ZeroGrad()
}

// StepCount returns the number of steps taken through the facade.
func (x *EmotionalOptimizer) StepCount() int {
	return x.stepCount
}

// Unwrap returns the wrapped optimizer.
func (x *EmotionalOptimizer) Unwrap() Optimizer {
	return x.optimizer
}
