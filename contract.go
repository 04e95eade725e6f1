package jens

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// declaration is what Go reflection cannot recover from an interface type:
// its item-slot markers, the order of its embeds and the generated
// implementation factory.
type declaration struct {
	typ     reflect.Type
	markers []marker
	embeds  []reflect.Type
	factory func(Enumerable) (Enumerable, bool)
}

type marker struct {
	name        string
	description string
}

// Catalog stores contract declarations. It is safe for concurrent use;
// declarations are immutable once registered.
type Catalog struct {
	mu    sync.RWMutex
	decls map[reflect.Type]*declaration
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{decls: map[reflect.Type]*declaration{}}
}

// DefaultCatalog is used by Register/MustRegister and the default Registry.
var DefaultCatalog = NewCatalog()

func (c *Catalog) add(d *declaration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.decls[d.typ]; ok {
		return fmt.Errorf("%w: %s", ErrRedeclared, qualifiedName(d.typ))
	}
	c.decls[d.typ] = d
	return nil
}

func (c *Catalog) lookup(t reflect.Type) (*declaration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.decls[t]
	return d, ok
}

// Declared reports whether t has a declaration.
func (c *Catalog) Declared(t reflect.Type) bool {
	_, ok := c.lookup(t)
	return ok
}

// Len returns the number of declared contracts.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.decls)
}

// ContractBuilder declares one contract. Obtain it with Contract.
type ContractBuilder[T any] struct {
	d *declaration
}

// Contract starts the declaration of the interface type T.
//
//	jens.Contract[ItemOne]().Item().Describe("Item #1").MustRegister()
//	jens.Contract[AllItems]().
//		Embeds(reflect.TypeFor[jens.Enumerable](), reflect.TypeFor[ItemOne]()).
//		Implement(newAllItems).
//		MustRegister()
func Contract[T any]() *ContractBuilder[T] {
	return &ContractBuilder[T]{d: &declaration{typ: reflect.TypeFor[T]()}}
}

// Item attaches an item-slot marker. A contract carrying more than one marker
// is not an item slot.
func (b *ContractBuilder[T]) Item() *ContractBuilder[T] {
	b.d.markers = append(b.d.markers, marker{})
	return b
}

// Describe sets the description of the last marker, adding one when the
// contract has none yet.
func (b *ContractBuilder[T]) Describe(description string) *ContractBuilder[T] {
	b.last().description = description
	return b
}

// Named overrides the item name derived from the accessor method.
func (b *ContractBuilder[T]) Named(name string) *ContractBuilder[T] {
	b.last().name = name
	return b
}

func (b *ContractBuilder[T]) last() *marker {
	if len(b.d.markers) == 0 {
		b.d.markers = append(b.d.markers, marker{})
	}
	return &b.d.markers[len(b.d.markers)-1]
}

// Embeds records the embedded interfaces of T in declaration order.
func (b *ContractBuilder[T]) Embeds(types ...reflect.Type) *ContractBuilder[T] {
	b.d.embeds = append(b.d.embeds, types...)
	return b
}

// Implement registers the factory that wraps the synthesized base instance
// into a value implementing T. The code generator emits it.
func (b *ContractBuilder[T]) Implement(fn func(Enumerable) T) *ContractBuilder[T] {
	if fn == nil {
		b.d.factory = nil
		return b
	}
	b.d.factory = func(base Enumerable) (Enumerable, bool) {
		v, ok := any(fn(base)).(Enumerable)
		return v, ok
	}
	return b
}

// RegisterIn stores the declaration in c.
func (b *ContractBuilder[T]) RegisterIn(c *Catalog) error {
	d := *b.d
	d.markers = slices.Clone(b.d.markers)
	d.embeds = slices.Clone(b.d.embeds)
	return c.add(&d)
}

// Register stores the declaration in DefaultCatalog.
func (b *ContractBuilder[T]) Register() error { return b.RegisterIn(DefaultCatalog) }

// MustRegister is like Register but panics on error.
func (b *ContractBuilder[T]) MustRegister() {
	if err := b.Register(); err != nil {
		panic(err)
	}
}
