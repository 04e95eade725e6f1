package jens

import (
	"errors"

	"github.com/reoring/jens/internal/model"
)

// Diagnostic codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNotASchema               = model.CodeNotASchema
	CodeUnresolvedAbstractMember = model.CodeUnresolvedAbstractMember
	CodeDuplicateItemName        = model.CodeDuplicateItemName
	CodeDuplicateAccessor        = model.CodeDuplicateAccessor
	CodeRedeclared               = model.CodeRedeclared
	CodeUnimplemented            = model.CodeUnimplemented
)

// NotASchemaError reports a schema identifier that is not an interface
// embedding Enumerable, is not declared, or declares embeds it does not have.
type NotASchemaError = model.NotASchemaError

// UnresolvedAbstractMemberError names a non-item member with a method the
// synthesized instance cannot implement.
type UnresolvedAbstractMemberError = model.UnresolvedAbstractMemberError

// DuplicateItemNameError lists every item name declared more than once.
type DuplicateItemNameError = model.DuplicateItemNameError

// DuplicateAccessorError lists accessor methods shared by several item slots.
type DuplicateAccessorError = model.DuplicateAccessorError

// ErrRedeclared is returned when a contract is declared twice in a Catalog.
var ErrRedeclared = errors.New("jens: contract already declared")

// ErrUnimplemented is returned by the typed getters when the synthesized
// instance does not implement the requested schema, typically because no
// generated implementation was registered.
var ErrUnimplemented = errors.New("jens: no generated implementation registered")

// Coder is implemented by every structural validation error.
type Coder interface {
	error
	Code() string
}

// CodeOf returns the diagnostic code carried by err, or "" when none.
func CodeOf(err error) string {
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	switch {
	case errors.Is(err, ErrRedeclared):
		return CodeRedeclared
	case errors.Is(err, ErrUnimplemented):
		return CodeUnimplemented
	}
	return ""
}
