// Package model holds the neutral contract model shared by the runtime
// descriptor (reflect) and the build-time scanner (go/ast). Validation and
// canonical naming rules live here so both paths agree.
package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ModulePath is the import path of the public jens package.
const ModulePath = "github.com/reoring/jens"

// BaseName is the qualified name of the base enumerable capability.
const BaseName = ModulePath + ".Enumerable"

// baseMethods are provided by every synthesized enumerable.
var baseMethods = map[string]struct{}{
	"Items":  {},
	"Size":   {},
	"String": {},
	"Lookup": {},
}

// ProvidedByBase reports whether a method name is implemented by the base
// enumerable capability.
func ProvidedByBase(name string) bool {
	_, ok := baseMethods[name]
	return ok
}

// Marker is one item-slot marker attached to a contract.
type Marker struct {
	Name        string // optional override of the derived item name
	Description string
}

// Method describes one method declared directly by a contract.
type Method struct {
	Name        string
	NumIn       int
	NumOut      int
	ReturnsItem bool   // single result assignable from the item abstraction
	Signature   string // human readable, for diagnostics
}

// Contract is one named interface participating in a schema.
type Contract struct {
	Name    string   // qualified: <import path>.<Name>
	Markers []Marker // item-slot markers, normally zero or one
	Embeds  []string // qualified names of declared embeds, in declaration order
	Own     []Method // methods declared by the contract itself
}

// Simple returns the unqualified contract name.
func (c Contract) Simple() string { return SimpleName(c.Name) }

// IsItemSlot reports whether the contract has the exact shape of an item
// slot: one marker, no embeds, one zero-argument accessor returning an item.
func (c Contract) IsItemSlot() bool {
	if len(c.Markers) != 1 || len(c.Embeds) != 0 || len(c.Own) != 1 {
		return false
	}
	m := c.Own[0]
	return m.NumIn == 0 && m.NumOut == 1 && m.ReturnsItem
}

// ItemName returns the item name of a slot contract. Callers must check
// IsItemSlot first.
func (c Contract) ItemName() string {
	if n := c.Markers[0].Name; n != "" {
		return n
	}
	return LowerFirst(c.Own[0].Name)
}

// Schema is the flattened description of one enumerable definition.
type Schema struct {
	Name       string // qualified
	Interface  bool
	Enumerable bool       // composes the base capability
	Members    []Contract // flattened composition, the schema itself last
}

// Simple returns the unqualified schema name.
func (s Schema) Simple() string { return SimpleName(s.Name) }

// Slot is a validated item slot in ordinal order.
type Slot struct {
	Ordinal     int
	Name        string
	Description string
	Accessor    string // accessor method name on the declaring contract
	DeclaredBy  string // qualified contract name
}

// SimpleName strips the import path from a qualified name.
func SimpleName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

// Qualify joins an import path and a type name.
func Qualify(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}
	return pkgPath + "." + name
}

// LowerFirst lower-cases the first rune: Item0 -> item0.
func LowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// EnumerableString renders "<full name>:<a,b,c>".
func EnumerableString(fullName string, names []string) string {
	b := &strings.Builder{}
	b.WriteString(fullName)
	b.WriteString(":<")
	b.WriteString(strings.Join(names, ","))
	b.WriteByte('>')
	return b.String()
}

// ItemString renders "<simple schema name>:<item name>".
func ItemString(simpleName, item string) string {
	return simpleName + ":" + item
}
