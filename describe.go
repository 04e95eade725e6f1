package jens

import (
	"reflect"

	"github.com/reoring/jens/internal/model"
)

// SchemaDescription is a tooling view of a validated schema with JSON, YAML
// and JSON Schema renderings. It describes the schema, not instance state.
type SchemaDescription = model.Description

// ItemDescription describes one item slot of a SchemaDescription.
type ItemDescription = model.ItemDescription

// Describe validates the schema t against DefaultCatalog and describes it
// without installing an instance.
func Describe(t reflect.Type) (SchemaDescription, error) {
	return defaultRegistry.Describe(t)
}
