package jens

import "github.com/reoring/jens/internal/model"

// synthesize builds the base instance of a validated schema. Items share a
// forward handle to their owner which the caller binds once the owning
// value is final; nothing here touches global state.
func synthesize(s model.Schema, slots []model.Slot) (*enumerable, *owner) {
	o := &owner{}
	simple := s.Simple()
	e := &enumerable{
		items:  make([]Item, len(slots)),
		byName: make(map[string]Item, len(slots)),
	}
	names := make([]string, len(slots))
	for i, sl := range slots {
		it := &item{
			ordinal:     i,
			name:        sl.Name,
			description: sl.Description,
			str:         model.ItemString(simple, sl.Name),
			owner:       o,
		}
		e.items[i] = it
		e.byName[sl.Name] = it
		names[i] = sl.Name
	}
	e.str = model.EnumerableString(s.Name, names)
	return e, o
}
