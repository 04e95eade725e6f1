package model

import "fmt"

// Flatten walks the declared composition of root depth-first, visiting each
// contract's embeds before the contract itself, and returns every member
// once in that order with root last. The base capability is skipped.
// contracts must hold root and every contract reachable from it.
func Flatten(root string, contracts map[string]Contract) ([]Contract, error) {
	seen := map[string]struct{}{}
	var out []Contract
	var visit func(name string) error
	visit = func(name string) error {
		if name == BaseName {
			return nil
		}
		if _, ok := seen[name]; ok {
			return nil
		}
		seen[name] = struct{}{}
		c, ok := contracts[name]
		if !ok {
			return &NotASchemaError{Schema: root, Reason: fmt.Sprintf("unknown contract %s", name)}
		}
		for _, e := range c.Embeds {
			if err := visit(e); err != nil {
				return err
			}
		}
		out = append(out, c)
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate applies the structural rules to a flattened schema and returns
// its item slots in ordinal order. The first failing rule aborts.
func Validate(s Schema) ([]Slot, error) {
	if !s.Interface {
		return nil, &NotASchemaError{Schema: s.Name, Reason: "not an interface type"}
	}
	if !s.Enumerable {
		return nil, &NotASchemaError{Schema: s.Name, Reason: "does not embed " + BaseName}
	}

	var slots []Slot
	var others []Contract
	provided := map[string]struct{}{}
	for _, c := range s.Members {
		if !c.IsItemSlot() {
			others = append(others, c)
			continue
		}
		acc := c.Own[0]
		slots = append(slots, Slot{
			Ordinal:     len(slots),
			Name:        c.ItemName(),
			Description: c.Markers[0].Description,
			Accessor:    acc.Name,
			DeclaredBy:  c.Name,
		})
		provided[acc.Name] = struct{}{}
	}

	for _, c := range others {
		for _, m := range c.Own {
			if ProvidedByBase(m.Name) {
				continue
			}
			if _, ok := provided[m.Name]; ok {
				continue
			}
			return nil, &UnresolvedAbstractMemberError{Schema: s.Name, Member: c.Name, Method: m.Signature}
		}
	}

	if dups := duplicates(slots, func(sl Slot) string { return sl.Name }); len(dups) > 0 {
		return nil, &DuplicateItemNameError{Schema: s.Name, Names: dups}
	}
	if dups := duplicates(slots, func(sl Slot) string { return sl.Accessor }); len(dups) > 0 {
		return nil, &DuplicateAccessorError{Schema: s.Name, Accessors: dups}
	}
	return slots, nil
}

// duplicates returns each key occurring more than once, in order of first
// occurrence.
func duplicates(slots []Slot, key func(Slot) string) []string {
	count := make(map[string]int, len(slots))
	for _, sl := range slots {
		count[key(sl)]++
	}
	var dups []string
	for _, sl := range slots {
		k := key(sl)
		if count[k] > 1 {
			dups = append(dups, k)
			count[k] = 0
		}
	}
	return dups
}
