package jens

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/reoring/jens/internal/model"
)

// Registry maps each schema type to its single synthesized instance.
//
// Synthesis runs at most once per schema: concurrent first requests for the
// same schema wait on a per-schema lock while unrelated schemas synthesize
// in parallel. Failed synthesis installs nothing, so a later request
// re-validates and reports the same error.
type Registry struct {
	catalog *Catalog
	log     *slog.Logger
	entries sync.Map // reflect.Type -> *entry
}

type entry struct {
	mu   sync.Mutex
	v    atomic.Pointer[instance]
	dead bool // removed from the map; guarded by mu
}

type instance struct {
	e Enumerable
}

// Option configures a Registry.
type Option func(*Registry)

// WithCatalog sets the declarations the Registry synthesizes from.
// Defaults to DefaultCatalog.
func WithCatalog(c *Catalog) Option {
	return func(r *Registry) {
		if c != nil {
			r.catalog = c
		}
	}
}

// WithLogger sets the logger used for synthesis and eviction events.
// Defaults to a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		catalog: DefaultCatalog,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide Registry backed by DefaultCatalog.
func Default() *Registry { return defaultRegistry }

// Get returns the instance of the schema t, synthesizing it on first use.
// Every successful call for the same t returns the same value until t is
// forgotten.
func (r *Registry) Get(t reflect.Type) (Enumerable, error) {
	if t == nil {
		return nil, &NotASchemaError{Schema: "<nil>", Reason: "nil type"}
	}
	for {
		v, ok := r.entries.Load(t)
		if !ok {
			v, _ = r.entries.LoadOrStore(t, &entry{})
		}
		en := v.(*entry)
		if in := en.v.Load(); in != nil {
			return in.e, nil
		}
		if e, retry, err := r.fill(t, en); !retry {
			return e, err
		}
	}
}

// fill synthesizes into en under its lock. A failed synthesis removes en so
// rejected types leave nothing behind; callers that waited on a removed
// entry retry against the map.
func (r *Registry) fill(t reflect.Type, en *entry) (e Enumerable, retry bool, err error) {
	en.mu.Lock()
	defer en.mu.Unlock()
	if en.dead {
		return nil, true, nil
	}
	if in := en.v.Load(); in != nil {
		return in.e, false, nil
	}
	e, err = r.build(t)
	if err != nil {
		en.dead = true
		r.entries.CompareAndDelete(t, en)
		r.log.Debug("enumerable rejected", "schema", qualifiedName(t), "code", CodeOf(err), "error", err)
		return nil, false, err
	}
	en.v.Store(&instance{e: e})
	r.log.Debug("enumerable synthesized", "schema", qualifiedName(t), "size", e.Size())
	return e, false, nil
}

// build runs descriptor extraction, validation and synthesis for t and binds
// the items to the final owning value.
func (r *Registry) build(t reflect.Type) (Enumerable, error) {
	s, decl, err := describeType(r.catalog, t)
	if err != nil {
		return nil, err
	}
	slots, err := model.Validate(s)
	if err != nil {
		return nil, err
	}
	base, o := synthesize(s, slots)

	var v Enumerable = base
	if decl.factory != nil {
		typed, ok := decl.factory(base)
		if !ok || typed == nil {
			return nil, fmt.Errorf("%w: %s: factory returned %T", ErrUnimplemented, s.Name, typed)
		}
		v = typed
	}
	if !reflect.TypeOf(v).Implements(t) {
		return nil, fmt.Errorf("%w: %s: %T does not implement it", ErrUnimplemented, s.Name, v)
	}
	o.v = v
	return v, nil
}

// Forget evicts the instance of t. A later Get synthesizes a new instance;
// items of the evicted instance keep pointing at it.
func (r *Registry) Forget(t reflect.Type) {
	v, ok := r.entries.LoadAndDelete(t)
	if !ok {
		return
	}
	en := v.(*entry)
	en.mu.Lock()
	en.dead = true
	en.mu.Unlock()
	r.log.Debug("enumerable forgotten", "schema", qualifiedName(t))
}

// Len returns the number of installed instances.
func (r *Registry) Len() int {
	n := 0
	r.entries.Range(func(_, v any) bool {
		if v.(*entry).v.Load() != nil {
			n++
		}
		return true
	})
	return n
}

// Describe validates the schema t and returns its description without
// installing an instance.
func (r *Registry) Describe(t reflect.Type) (SchemaDescription, error) {
	s, _, err := describeType(r.catalog, t)
	if err != nil {
		return SchemaDescription{}, err
	}
	slots, err := model.Validate(s)
	if err != nil {
		return SchemaDescription{}, err
	}
	return model.Describe(s, slots), nil
}

// Get returns the instance of S from the default Registry.
func Get[S Enumerable]() (S, error) { return GetFrom[S](defaultRegistry) }

// MustGet is like Get but panics on error.
func MustGet[S Enumerable]() S {
	s, err := Get[S]()
	if err != nil {
		panic(err)
	}
	return s
}

// GetFrom returns the instance of S from r.
func GetFrom[S Enumerable](r *Registry) (S, error) {
	var zero S
	t := reflect.TypeFor[S]()
	v, err := r.Get(t)
	if err != nil {
		return zero, err
	}
	s, ok := v.(S)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrUnimplemented, qualifiedName(t))
	}
	return s, nil
}
