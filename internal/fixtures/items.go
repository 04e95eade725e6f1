// Package fixtures holds illustrative schemas used by the tests: five item
// slots and schemas composing all of them, the even ones, and a mix going
// through a grouping contract.
package fixtures

import "github.com/reoring/jens"

//go:generate go run github.com/reoring/jens/cmd/jens generate .

//jens:item
type ItemZero interface {
	Item0() jens.Item
}

//jens:item description="Item #1"
type ItemOne interface {
	Item1() jens.Item
}

//jens:item
type ItemTwo interface {
	Item2() jens.Item
}

//jens:item
type ItemThree interface {
	Item3() jens.Item
}

//jens:item
type ItemFour interface {
	Item4() jens.Item
}

// Odds groups the odd items; it is not an item slot itself.
type Odds interface {
	ItemOne
	ItemThree
}

type AllItems interface {
	jens.Enumerable
	ItemZero
	ItemOne
	ItemTwo
	ItemThree
	ItemFour
}

type EvenItems interface {
	jens.Enumerable
	ItemZero
	ItemTwo
	ItemFour
}

// Mixed orders the grouped odd items after item4.
type Mixed interface {
	jens.Enumerable
	ItemFour
	Odds
}
