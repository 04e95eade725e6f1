package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const pkg = "example.com/items"

func slot(name, accessor, desc string) Contract {
	return Contract{
		Name:    Qualify(pkg, name),
		Markers: []Marker{{Description: desc}},
		Own:     []Method{{Name: accessor, NumOut: 1, ReturnsItem: true, Signature: "func() jens.Item"}},
	}
}

func schemaOf(name string, members ...Contract) Schema {
	root := Contract{Name: Qualify(pkg, name)}
	for _, m := range members {
		root.Embeds = append(root.Embeds, m.Name)
	}
	return Schema{
		Name:       root.Name,
		Interface:  true,
		Enumerable: true,
		Members:    append(append([]Contract{}, members...), root),
	}
}

func TestContract_IsItemSlot(t *testing.T) {
	ok := slot("ItemZero", "Item0", "")
	require.True(t, ok.IsItemSlot())
	require.Equal(t, "item0", ok.ItemName())

	named := ok
	named.Markers = []Marker{{Name: "zero"}}
	require.Equal(t, "zero", named.ItemName())

	cases := map[string]func(c *Contract){
		"no marker":       func(c *Contract) { c.Markers = nil },
		"two markers":     func(c *Contract) { c.Markers = append(c.Markers, Marker{}) },
		"embeds":          func(c *Contract) { c.Embeds = []string{Qualify(pkg, "Other")} },
		"two methods":     func(c *Contract) { c.Own = append(c.Own, Method{Name: "X", NumOut: 1, ReturnsItem: true}) },
		"takes argument":  func(c *Contract) { c.Own[0].NumIn = 1 },
		"no result":       func(c *Contract) { c.Own[0].NumOut = 0 },
		"not item result": func(c *Contract) { c.Own[0].ReturnsItem = false },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := slot("ItemZero", "Item0", "")
			c.Own = append([]Method{}, c.Own...)
			mutate(&c)
			assert.False(t, c.IsItemSlot())
		})
	}
}

func TestFlatten_EmbedsBeforeContractAndOnce(t *testing.T) {
	a, b, c := slot("A", "A", ""), slot("B", "B", ""), slot("C", "C", "")
	mid := Contract{Name: Qualify(pkg, "Mid"), Embeds: []string{b.Name, a.Name, c.Name}}
	root := Contract{Name: Qualify(pkg, "Root"), Embeds: []string{BaseName, a.Name, mid.Name}}
	contracts := map[string]Contract{a.Name: a, b.Name: b, c.Name: c, mid.Name: mid, root.Name: root}

	got, err := Flatten(root.Name, contracts)
	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, m := range got {
		names = append(names, m.Simple())
	}
	require.Equal(t, []string{"A", "B", "C", "Mid", "Root"}, names)
}

func TestFlatten_UnknownContract(t *testing.T) {
	root := Contract{Name: Qualify(pkg, "Root"), Embeds: []string{Qualify(pkg, "Missing")}}
	_, err := Flatten(root.Name, map[string]Contract{root.Name: root})
	var nas *NotASchemaError
	require.ErrorAs(t, err, &nas)
	require.Contains(t, nas.Reason, "Missing")
}

func TestValidate_OrdinalsFollowComposition(t *testing.T) {
	s := schemaOf("AllItems",
		slot("ItemZero", "Item0", ""),
		slot("ItemOne", "Item1", "Item #1"),
		slot("ItemTwo", "Item2", ""),
	)
	slots, err := Validate(s)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	for i, sl := range slots {
		require.Equal(t, i, sl.Ordinal)
		require.Equal(t, fmt.Sprintf("item%d", i), sl.Name)
	}
	require.Equal(t, "Item #1", slots[1].Description)
	require.Equal(t, "", slots[0].Description)
	require.Equal(t, Qualify(pkg, "ItemOne"), slots[1].DeclaredBy)
}

func TestValidate_NotASchema(t *testing.T) {
	s := schemaOf("Concrete")
	s.Interface = false
	_, err := Validate(s)
	var nas *NotASchemaError
	require.ErrorAs(t, err, &nas)
	require.Equal(t, CodeNotASchema, nas.Code())

	s = schemaOf("Plain")
	s.Enumerable = false
	_, err = Validate(s)
	require.ErrorAs(t, err, &nas)
	require.Contains(t, err.Error(), BaseName)
}

func TestValidate_UnresolvedAbstractMember(t *testing.T) {
	extra := Contract{
		Name: Qualify(pkg, "Extra"),
		Own:  []Method{{Name: "Extra", NumOut: 1, Signature: "func() string"}},
	}
	_, err := Validate(schemaOf("Broken", slot("ItemZero", "Item0", ""), extra))
	var ue *UnresolvedAbstractMemberError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, extra.Name, ue.Member)
	require.Equal(t, "func() string", ue.Method)
	require.Contains(t, err.Error(), "Extra::func() string")
}

func TestValidate_MalformedCandidateOnlyFailsWithMethods(t *testing.T) {
	// Two markers exclude the candidate; its accessor then has no implementation.
	twice := slot("Twice", "Twice", "")
	twice.Markers = append(twice.Markers, Marker{})
	_, err := Validate(schemaOf("Broken", twice))
	var ue *UnresolvedAbstractMemberError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, twice.Name, ue.Member)

	// A methodless grouping contract is excluded silently.
	group := Contract{Name: Qualify(pkg, "Group"), Markers: []Marker{{}}}
	slots, err := Validate(schemaOf("Fine", slot("ItemZero", "Item0", ""), group))
	require.NoError(t, err)
	require.Len(t, slots, 1)
}

func TestValidate_BaseAndSlotMethodsAreProvided(t *testing.T) {
	redecl := Contract{
		Name: Qualify(pkg, "Redecl"),
		Own: []Method{
			{Name: "Size", NumOut: 1, Signature: "func() int"},
			{Name: "Item0", NumOut: 1, ReturnsItem: true, Signature: "func() jens.Item"},
		},
	}
	_, err := Validate(schemaOf("Ok", slot("ItemZero", "Item0", ""), redecl))
	require.NoError(t, err)
}

func TestValidate_DuplicateItemNames(t *testing.T) {
	s := schemaOf("Dup",
		slot("ItemZero", "Item0", ""),
		slot("ItemOne", "Item1", ""),
		slot("ItemZeroAgain", "Item0", ""),
		slot("ItemOneAgain", "Item1", ""),
		slot("ItemZeroThird", "Item0", ""),
	)
	_, err := Validate(s)
	var de *DuplicateItemNameError
	require.ErrorAs(t, err, &de)
	require.Equal(t, []string{"item0", "item1"}, de.Names)
	require.Equal(t, CodeDuplicateItemName, de.Code())
	require.Contains(t, err.Error(), "item0, item1")
}

func TestValidate_SharedAccessor(t *testing.T) {
	renamed := slot("ItemZeroAgain", "Item0", "")
	renamed.Markers[0].Name = "other"
	s := schemaOf("Shared", slot("ItemZero", "Item0", ""), slot("ItemOne", "Item1", ""), renamed)

	_, err := Validate(s)
	var ae *DuplicateAccessorError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, []string{"Item0"}, ae.Accessors)
	require.Equal(t, CodeDuplicateAccessor, ae.Code())
	require.Contains(t, err.Error(), "Item0")

	// same name and accessor: the name clash is reported
	_, err = Validate(schemaOf("Both", slot("ItemZero", "Item0", ""), slot("ItemZeroAgain", "Item0", "")))
	var de *DuplicateItemNameError
	require.ErrorAs(t, err, &de)
}

func TestValidate_UnresolvedReportedBeforeDuplicates(t *testing.T) {
	extra := Contract{Name: Qualify(pkg, "Extra"), Own: []Method{{Name: "Extra", Signature: "func()"}}}
	s := schemaOf("Both", slot("A", "Item0", ""), slot("B", "Item0", ""), extra)
	_, err := Validate(s)
	var de *DuplicateItemNameError
	require.False(t, errors.As(err, &de))
	var ue *UnresolvedAbstractMemberError
	require.ErrorAs(t, err, &ue)
}

func TestValidate_Property_SubsetsRenumberContiguously(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		var members []Contract
		var want []string
		for i := 0; i < n; i++ {
			if !rapid.Bool().Draw(t, fmt.Sprintf("keep%d", i)) {
				continue
			}
			members = append(members, slot(fmt.Sprintf("Item%dSlot", i), fmt.Sprintf("Item%d", i), ""))
			want = append(want, fmt.Sprintf("item%d", i))
		}
		slots, err := Validate(schemaOf("Subset", members...))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != len(want) {
			t.Fatalf("got %d slots, want %d", len(slots), len(want))
		}
		for i, sl := range slots {
			if sl.Ordinal != i || sl.Name != want[i] {
				t.Fatalf("slot %d = (%d,%q), want (%d,%q)", i, sl.Ordinal, sl.Name, i, want[i])
			}
		}
	})
}

func TestValidate_Property_AnyRepeatIsRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(t, "n")
		var members []Contract
		for i := 0; i < n; i++ {
			members = append(members, slot(fmt.Sprintf("S%d", i), fmt.Sprintf("Item%d", i), ""))
		}
		dup := rapid.IntRange(0, n-1).Draw(t, "dup")
		members = append(members, slot("Again", fmt.Sprintf("Item%d", dup), ""))

		_, err := Validate(schemaOf("Dup", members...))
		var de *DuplicateItemNameError
		if !errors.As(err, &de) {
			t.Fatalf("expected DuplicateItemNameError, got %v", err)
		}
		if len(de.Names) != 1 || de.Names[0] != fmt.Sprintf("item%d", dup) {
			t.Fatalf("unexpected duplicates %v", de.Names)
		}
	})
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "item0", LowerFirst("Item0"))
	assert.Equal(t, "already", LowerFirst("already"))
	assert.Equal(t, "", LowerFirst(""))
	assert.Equal(t, "éclair", LowerFirst("Éclair"))
}
