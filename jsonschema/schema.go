package jsonschema

// Draft is the JSON Schema dialect emitted by jens.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
// It only carries what an enumerable projects to: a string enum of item names.
type Schema struct {
	// Core
	SchemaURI   string `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`

	// Enum
	Enum []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Union; one branch per item when items carry descriptions.
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`

	// Const is used by OneOf branches.
	Const string `json:"const,omitempty" yaml:"const,omitempty"`
}
