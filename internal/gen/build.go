package gen

import (
	"errors"
	"fmt"

	"github.com/reoring/jens/internal/ir"
	"github.com/reoring/jens/internal/model"
	"github.com/reoring/jens/internal/scan"
)

// ErrNoSchemas is returned by Build for a package without enumerable
// schemas.
var ErrNoSchemas = errors.New("jens: no enumerable schemas found")

// Build validates every schema of p and lowers the package to IR. Only
// contracts reachable from a schema are registered; they keep source order.
// All schema errors are reported together.
func Build(p *scan.Package) (ir.File, error) {
	f := ir.File{Package: p.Name}
	schemas := p.Schemas()
	if len(schemas) == 0 {
		return f, fmt.Errorf("%w in %s", ErrNoSchemas, p.Dir)
	}

	slotsOf := map[string][]model.Slot{}
	used := map[string]bool{}
	var errs []error
	for _, s := range schemas {
		desc, slots, err := p.Check(s.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		slotsOf[s.Name] = slots
		for _, m := range desc.Members {
			used[model.SimpleName(m.Name)] = true
		}
	}
	if len(errs) > 0 {
		return f, errors.Join(errs...)
	}

	for _, it := range p.Interfaces {
		if !used[it.Name] {
			continue
		}
		c := ir.Contract{Name: it.Name}
		for _, m := range it.Markers {
			c.Markers = append(c.Markers, ir.Marker{Name: m.Name, Description: m.Description})
		}
		for _, e := range it.Embeds {
			if e == model.BaseName {
				c.Embeds = append(c.Embeds, ir.Embed{Base: true})
				continue
			}
			c.Embeds = append(c.Embeds, ir.Embed{Name: model.SimpleName(e)})
		}
		if slots, ok := slotsOf[it.Name]; ok {
			c.Schema = true
			for _, sl := range slots {
				c.Accessors = append(c.Accessors, ir.Accessor{Method: sl.Accessor, Item: sl.Name, Index: sl.Ordinal})
			}
		}
		f.Contracts = append(f.Contracts, c)
	}
	return f, nil
}
