package emograd

import (
	"sort"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
)

// Registry maps personality names to their callables. The zero value is not
// usable; create instances with NewRegistry. A process-wide default registry
// pre-seeded with the built-in personalities backs the package-level
// RegisterPersonality and LookupPersonality functions. Scoped instances are
// mainly useful for test isolation.
type Registry struct {
	mu            sync.RWMutex
	personalities map[string]Personality
}

// NewRegistry creates an empty personality registry.
func NewRegistry() *Registry {
	return &Registry{
		personalities: map[string]Personality{},
	}
}

// Register stores a personality under the given name. Names are
// case-insensitive. Registering an existing name replaces the previous entry,
// which deliberately allows overriding the built-ins.
func (x *Registry) Register(name string, personality Personality) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.personalities[strings.ToLower(name)] = personality
}

// Lookup returns the personality registered under the given name. It fails
// with ErrUnknownPersonality if the name is absent; there is no fallback.
func (x *Registry) Lookup(name string) (Personality, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	personality, ok := x.personalities[strings.ToLower(name)]
	if !ok {
		return nil, goerr.Wrap(ErrUnknownPersonality, "no such personality",
			goerr.V("name", name),
			goerr.V("available", x.names()),
		)
	}
	return personality, nil
}

// Resolve turns a personality identifier into a concrete Personality. It
// accepts a registered name, a Personality, or a bare function with the
// Personality signature; anything else fails with ErrInvalidConfig. Passing a
// callable directly supports anonymous personalities without registration.
func (x *Registry) Resolve(identifier any) (Personality, error) {
	switch v := identifier.(type) {
	case string:
		return x.Lookup(v)
	case Personality:
		return v, nil
	case func(loss float64, prevLoss *float64, step int) (string, bool):
		return v, nil
	default:
		return nil, goerr.Wrap(ErrInvalidConfig, "personality must be a name or a callable",
			goerr.V("identifier", identifier),
		)
	}
}

// Names returns the sorted list of registered personality names.
func (x *Registry) Names() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.names()
}

func (x *Registry) names() []string {
	names := make([]string, 0, len(x.personalities))
	for name := range x.personalities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = builtinRegistry()

// DefaultRegistry returns the process-wide registry seeded with the built-in
// personalities.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// RegisterPersonality registers a personality in the default registry.
func RegisterPersonality(name string, personality Personality) {
	defaultRegistry.Register(name, personality)
}

// LookupPersonality looks up a personality in the default registry.
func LookupPersonality(name string) (Personality, error) {
	return defaultRegistry.Lookup(name)
}

// Personalities returns the sorted names of the default registry.
func Personalities() []string {
	return defaultRegistry.Names()
}
