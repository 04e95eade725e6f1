package ir

// Package ir defines the minimal intermediate representation used by the
// code generator. This package is internal and not part of the public API.

// NodeKind identifies an IR node type.
type NodeKind int

const (
	NodeItem NodeKind = iota
	NodeGroup
	NodeSchema
)

// File is one generated file: the registrations of a package.
type File struct {
	Package   string
	Contracts []Contract // registration order
}

// Contract is the registration of one interface.
type Contract struct {
	Name      string     // Go identifier in the package
	Markers   []Marker   // //jens:item directives
	Embeds    []Embed    // declared embeds in order
	Accessors []Accessor // schemas only, in ordinal order
	Schema    bool
}

// Kind reports how the contract participates in composition.
func (c Contract) Kind() NodeKind {
	switch {
	case c.Schema:
		return NodeSchema
	case len(c.Markers) > 0:
		return NodeItem
	default:
		return NodeGroup
	}
}

// Marker mirrors one //jens:item directive.
type Marker struct {
	Name        string
	Description string
}

// Embed is an embedded contract. Base selects jens.Enumerable.
type Embed struct {
	Base bool
	Name string
}

// Accessor binds a typed accessor method to the item at Index.
type Accessor struct {
	Method string
	Item   string
	Index  int
}

// NeedsReflect reports whether the rendered registrations reference
// package reflect.
func (f File) NeedsReflect() bool {
	for _, c := range f.Contracts {
		if len(c.Embeds) > 0 {
			return true
		}
	}
	return false
}
