package jens

import (
	"fmt"
	"slices"
)

// Item is the identity-bearing value of one enumerated item.
//
// Items compare equal only when they are the same value, so == on two Item
// values is reference equality. Items of different schemas never compare
// equal even when their names and ordinals coincide. Item is sealed: only
// the synthesizer creates items.
type Item interface {
	// Ordinal is the position of the item in its enumerable, starting at 0.
	Ordinal() int
	// Name is the declared item name.
	Name() string
	// Description is the declared description, "" when none was declared.
	Description() string
	// Enumerable returns the owning instance.
	Enumerable() Enumerable
	// String returns "<SchemaSimpleName>:<name>".
	String() string

	sealed()
}

// Enumerable is the base capability every schema embeds. A synthesized
// instance exposes its items in ordinal order.
type Enumerable interface {
	// Items returns the items in ordinal order. The slice is a copy.
	Items() []Item
	// Size returns the number of items.
	Size() int
	// Lookup returns the item with the given name.
	Lookup(name string) (Item, bool)
	// String returns "<FullSchemaName>:<name0,name1,...>".
	String() string
}

// MustItem returns the named item of e and panics when it does not exist.
// Generated accessors use it to bind their items once at construction.
func MustItem(e Enumerable, name string) Item {
	it, ok := e.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("jens: %s has no item %q", e, name))
	}
	return it
}

// owner is the forward handle from items to the instance that owns them.
// It is bound once the owning instance is finalised, before publication.
type owner struct {
	v Enumerable
}

type item struct {
	ordinal     int
	name        string
	description string
	str         string
	owner       *owner
}

func (i *item) Ordinal() int           { return i.ordinal }
func (i *item) Name() string           { return i.name }
func (i *item) Description() string    { return i.description }
func (i *item) Enumerable() Enumerable { return i.owner.v }
func (i *item) String() string         { return i.str }
func (i *item) sealed()                {}

type enumerable struct {
	items  []Item
	byName map[string]Item
	str    string
}

func (e *enumerable) Items() []Item  { return slices.Clone(e.items) }
func (e *enumerable) Size() int      { return len(e.items) }
func (e *enumerable) String() string { return e.str }

func (e *enumerable) Lookup(name string) (Item, bool) {
	it, ok := e.byName[name]
	return it, ok
}
