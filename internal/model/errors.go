package model

import (
	"fmt"
	"strings"

	"github.com/reoring/jens/i18n"
)

// Diagnostic codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNotASchema               = "not_a_schema"
	CodeUnresolvedAbstractMember = "unresolved_abstract_member"
	CodeDuplicateItemName        = "duplicate_item_name"
	CodeDuplicateAccessor        = "duplicate_accessor"
	CodeRedeclared               = "redeclared"
	CodeUnimplemented            = "unimplemented"
)

// NotASchemaError reports a schema identifier that does not denote an
// interface composing the base enumerable capability.
type NotASchemaError struct {
	Schema string
	Reason string
}

func (e *NotASchemaError) Error() string {
	return fmt.Sprintf("jens: %s: %s: %s", e.Schema, i18n.T(CodeNotASchema, nil), e.Reason)
}

// Code returns the stable diagnostic code.
func (e *NotASchemaError) Code() string { return CodeNotASchema }

// UnresolvedAbstractMemberError reports a non-item member whose method
// would have no implementation in the synthesized instance.
type UnresolvedAbstractMemberError struct {
	Schema string
	Member string // qualified contract name
	Method string // method signature
}

func (e *UnresolvedAbstractMemberError) Error() string {
	return fmt.Sprintf("jens: %s: %s:\n    %s::%s",
		e.Schema, i18n.T(CodeUnresolvedAbstractMember, nil), e.Member, e.Method)
}

// Code returns the stable diagnostic code.
func (e *UnresolvedAbstractMemberError) Code() string { return CodeUnresolvedAbstractMember }

// DuplicateItemNameError lists every item name declared more than once.
// Only the names are reported, not the declaring contracts.
type DuplicateItemNameError struct {
	Schema string
	Names  []string
}

func (e *DuplicateItemNameError) Error() string {
	return fmt.Sprintf("jens: %s: %s: %s",
		e.Schema, i18n.T(CodeDuplicateItemName, nil), strings.Join(e.Names, ", "))
}

// Code returns the stable diagnostic code.
func (e *DuplicateItemNameError) Code() string { return CodeDuplicateItemName }

// DuplicateAccessorError lists accessor methods selected by more than one
// item slot. Go accepts identical methods from several embeds, but one
// accessor cannot return two items.
type DuplicateAccessorError struct {
	Schema    string
	Accessors []string
}

func (e *DuplicateAccessorError) Error() string {
	return fmt.Sprintf("jens: %s: %s: %s",
		e.Schema, i18n.T(CodeDuplicateAccessor, nil), strings.Join(e.Accessors, ", "))
}

// Code returns the stable diagnostic code.
func (e *DuplicateAccessorError) Code() string { return CodeDuplicateAccessor }
