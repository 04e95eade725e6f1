// Package jens provides closed, composable enumerations declared as Go
// interfaces, and a registry that synthesizes exactly one instance per
// enumeration on first use.
//
// - An item slot is an interface with a single accessor returning Item and one item marker.
// - A schema is an interface embedding Enumerable and any number of item slots.
// - Item ordinals follow the embedding order, embedded contracts before the embedding one.
// - Items compare by identity: items of different schemas never compare equal.
//
// Design policy:
// - Keep only public APIs in the root package; put the neutral model, scanner and generator under internal/.
// - Go reflection loses embedding order and has no annotations, so contracts are declared through
//   Contract[T]() builders. The jens CLI (cmd/jens) emits those declarations plus a typed
//   implementation per schema from directive comments, and rejects invalid schemas at build time.
// - Validation errors are typed (NotASchemaError, UnresolvedAbstractMemberError,
//   DuplicateItemNameError) and carry stable codes.
//
// Typical usage:
//
//	//jens:item
//	type ItemZero interface{ Item0() jens.Item }
//
//	//jens:item description="Item #1"
//	type ItemOne interface{ Item1() jens.Item }
//
//	type Demo interface {
//		jens.Enumerable
//		ItemZero
//		ItemOne
//	}
//
//	//go:generate jens generate .
//
//	demo := jens.MustGet[Demo]()
//	demo.String()            // "example.com/pkg.Demo:<item0,item1>"
//	demo.Item1().String()    // "Demo:item1"
//	demo.Item1().Ordinal()   // 1
package jens
