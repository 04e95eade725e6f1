package scan

import (
	"fmt"

	"github.com/reoring/jens/internal/model"
)

// Lookup returns the interface declared under the unqualified name.
func (p *Package) Lookup(name string) (*Interface, bool) {
	it, ok := p.byName[name]
	return it, ok
}

// Contracts returns the neutral model of every scanned interface keyed by
// qualified name.
func (p *Package) Contracts() map[string]model.Contract {
	out := make(map[string]model.Contract, len(p.Interfaces))
	for _, it := range p.Interfaces {
		c := p.contract(it)
		out[c.Name] = c
	}
	return out
}

func (p *Package) contract(it *Interface) model.Contract {
	return model.Contract{
		Name:    model.Qualify(p.ImportPath, it.Name),
		Markers: it.Markers,
		Embeds:  it.Embeds,
		Own:     it.Methods,
	}
}

// Schemas returns the interfaces that compose jens.Enumerable, directly or
// through another contract of the package, in source order.
func (p *Package) Schemas() []*Interface {
	memo := map[string]bool{}
	var out []*Interface
	for _, it := range p.Interfaces {
		if p.enumerable(model.Qualify(p.ImportPath, it.Name), memo, map[string]bool{}) {
			out = append(out, it)
		}
	}
	return out
}

func (p *Package) enumerable(name string, memo, visiting map[string]bool) bool {
	if name == model.BaseName {
		return true
	}
	if v, ok := memo[name]; ok {
		return v
	}
	if visiting[name] {
		return false
	}
	visiting[name] = true
	it, ok := p.byName[model.SimpleName(name)]
	res := false
	if ok {
		for _, e := range it.Embeds {
			if p.enumerable(e, memo, visiting) {
				res = true
				break
			}
		}
	}
	memo[name] = res
	return res
}

// Check flattens and validates the schema declared under name, applying the
// same rules the runtime applies on first use.
func (p *Package) Check(name string) (model.Schema, []model.Slot, error) {
	it, ok := p.byName[name]
	if !ok {
		return model.Schema{}, nil, fmt.Errorf("%s: no interface %s", p.Dir, name)
	}
	qualified := model.Qualify(p.ImportPath, it.Name)
	contracts := p.Contracts()

	s := model.Schema{
		Name:       qualified,
		Interface:  true,
		Enumerable: p.enumerable(qualified, map[string]bool{}, map[string]bool{}),
	}
	if !s.Enumerable {
		_, err := model.Validate(s)
		return s, nil, err
	}
	members, err := model.Flatten(qualified, contracts)
	if err != nil {
		return s, nil, err
	}
	s.Members = members
	slots, err := model.Validate(s)
	return s, slots, err
}
