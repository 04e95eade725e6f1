package model

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	js "github.com/reoring/jens/jsonschema"
)

// Description is a tooling view of a validated schema. It describes the
// schema, never the state of an instance.
type Description struct {
	Schema string            `json:"schema" yaml:"schema"`
	Simple string            `json:"simple" yaml:"simple"`
	Size   int               `json:"size" yaml:"size"`
	String string            `json:"string" yaml:"string"`
	Items  []ItemDescription `json:"items" yaml:"items"`
}

// ItemDescription describes one item slot.
type ItemDescription struct {
	Ordinal     int    `json:"ordinal" yaml:"ordinal"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Accessor    string `json:"accessor" yaml:"accessor"`
	DeclaredBy  string `json:"declaredBy" yaml:"declaredBy"`
	String      string `json:"string" yaml:"string"`
}

// Describe builds the Description of a schema from its validated slots.
func Describe(s Schema, slots []Slot) Description {
	d := Description{
		Schema: s.Name,
		Simple: s.Simple(),
		Size:   len(slots),
		Items:  make([]ItemDescription, 0, len(slots)),
	}
	names := make([]string, 0, len(slots))
	for _, sl := range slots {
		names = append(names, sl.Name)
		d.Items = append(d.Items, ItemDescription{
			Ordinal:     sl.Ordinal,
			Name:        sl.Name,
			Description: sl.Description,
			Accessor:    sl.Accessor,
			DeclaredBy:  sl.DeclaredBy,
			String:      ItemString(d.Simple, sl.Name),
		})
	}
	d.String = EnumerableString(s.Name, names)
	return d
}

// JSON encodes the description as indented JSON.
func (d Description) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML encodes the description as YAML.
func (d Description) YAML() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// JSONSchema projects the schema into a string enum of its item names.
// When any item carries a description, one const branch per item is emitted
// under oneOf so the descriptions survive the projection.
func (d Description) JSONSchema() *js.Schema {
	s := &js.Schema{
		SchemaURI: js.Draft,
		Title:     d.Schema,
		Type:      "string",
		Enum:      make([]string, 0, len(d.Items)),
	}
	described := false
	for _, it := range d.Items {
		s.Enum = append(s.Enum, it.Name)
		if it.Description != "" {
			described = true
		}
	}
	if described {
		for _, it := range d.Items {
			s.OneOf = append(s.OneOf, &js.Schema{Const: it.Name, Description: it.Description})
		}
	}
	return s
}
