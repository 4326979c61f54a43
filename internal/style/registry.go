package style

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/chriserin/tloc/internal/locate"
)

var ErrNoFactory = errors.New("no resolver registered")

// Factory constructs the resolver for one style. It must not call Register.
type Factory func() (locate.Resolver, error)

// Registry maps styles to resolver factories and caches one resolver per
// style. Safe for concurrent use; racing first lookups may build a resolver
// twice but only one instance is kept.
type Registry struct {
	mu        sync.RWMutex
	factories map[Style]Factory
	cache     sync.Map // Style -> locate.Resolver
	log       *slog.Logger
}

func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	r := &Registry{factories: map[Style]Factory{}, log: log}
	r.Register(Function, func() (locate.Resolver, error) { return locate.FunctionResolver{}, nil })
	r.Register(Feature, func() (locate.Resolver, error) { return locate.FeatureResolver{}, nil })
	r.Register(Free, func() (locate.Resolver, error) { return locate.FreeResolver{}, nil })
	r.Register(Method, func() (locate.Resolver, error) { return locate.MethodResolver{}, nil })
	return r
}

// Register sets the factory for s, replacing any cached resolver.
func (r *Registry) Register(s Style, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[s] = f
	r.cache.Delete(s)
}

// ResolverFor returns the resolver for the style declared in t's hierarchy.
func (r *Registry) ResolverFor(t *Type) (locate.Resolver, error) {
	name := "<nil>"
	if t != nil {
		name = t.Name
	}

	s, ok := Lookup(t)
	if !ok {
		return nil, &ConfigurationError{Type: name}
	}
	r.log.Debug("style found", "type", name, "style", s)

	if cached, ok := r.cache.Load(s); ok {
		return cached.(locate.Resolver), nil
	}

	// Register waits for in-flight construction, so a replaced factory's
	// resolver is never cached after its eviction.
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[s]
	if !ok {
		return nil, &InstantiationError{Type: name, Style: s, Err: ErrNoFactory}
	}

	res, err := f()
	if err != nil {
		return nil, &InstantiationError{Type: name, Style: s, Err: err}
	}
	if res == nil {
		return nil, &InstantiationError{Type: name, Style: s, Err: errors.New("factory returned nil")}
	}

	actual, _ := r.cache.LoadOrStore(s, res)
	return actual.(locate.Resolver), nil
}
