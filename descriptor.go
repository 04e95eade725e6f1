package jens

import (
	"fmt"
	"reflect"

	"github.com/reoring/jens/internal/model"
)

// describeType extracts the schema descriptor of t from the declarations in
// c. It is deterministic and never caches; caching is the Registry's job.
// The returned declaration is nil when t is not an enumerable interface, in
// which case model.Validate reports why.
func describeType(c *Catalog, t reflect.Type) (model.Schema, *declaration, error) {
	if t == nil {
		return model.Schema{}, nil, &NotASchemaError{Schema: "<nil>", Reason: "nil type"}
	}
	name := qualifiedName(t)
	s := model.Schema{Name: name, Interface: t.Kind() == reflect.Interface}
	if !s.Interface {
		return s, nil, nil
	}
	s.Enumerable = t.Implements(enumerableType)
	if !s.Enumerable {
		return s, nil, nil
	}
	root, ok := c.lookup(t)
	if !ok {
		return s, nil, &NotASchemaError{Schema: name, Reason: "no declaration registered (run jens generate)"}
	}

	contracts := map[string]model.Contract{}
	var walk func(t reflect.Type) error
	walk = func(t reflect.Type) error {
		if t == enumerableType {
			return nil
		}
		n := qualifiedName(t)
		if _, ok := contracts[n]; ok {
			return nil
		}
		d, _ := c.lookup(t)
		ct, err := contractOf(name, t, d)
		if err != nil {
			return err
		}
		contracts[n] = ct
		if d == nil {
			return nil
		}
		for _, e := range d.embeds {
			if err := walk(e); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t); err != nil {
		return s, nil, err
	}

	members, err := model.Flatten(name, contracts)
	if err != nil {
		return s, nil, err
	}
	s.Members = members
	return s, root, nil
}

// contractOf converts one interface type and its optional declaration into
// the neutral model. Undeclared contracts have no markers and no embeds, so
// all of their methods count as their own.
func contractOf(schema string, t reflect.Type, d *declaration) (model.Contract, error) {
	n := qualifiedName(t)
	if t.Kind() != reflect.Interface {
		return model.Contract{}, &NotASchemaError{Schema: schema, Reason: fmt.Sprintf("embedded %s is not an interface", n)}
	}
	ct := model.Contract{Name: n}
	var embeds []reflect.Type
	if d != nil {
		for _, e := range d.embeds {
			if e == nil || e.Kind() != reflect.Interface || !t.Implements(e) {
				return model.Contract{}, &NotASchemaError{
					Schema: schema,
					Reason: fmt.Sprintf("%s declares embed %s which it does not embed", n, qualifiedName(e)),
				}
			}
			ct.Embeds = append(ct.Embeds, qualifiedName(e))
		}
		embeds = d.embeds
		for _, m := range d.markers {
			ct.Markers = append(ct.Markers, model.Marker{Name: m.name, Description: m.description})
		}
	}
	ct.Own = ownMethods(t, embeds)
	return ct, nil
}
