package gen

import (
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jens/internal/ir"
	"github.com/reoring/jens/internal/model"
	"github.com/reoring/jens/internal/scan"
)

const fixturesDir = "../fixtures"

func buildFixtures(t *testing.T) ir.File {
	t.Helper()
	p, err := scan.Dir(fixturesDir)
	require.NoError(t, err)
	f, err := Build(p)
	require.NoError(t, err)
	return f
}

func TestBuild_Fixtures(t *testing.T) {
	f := buildFixtures(t)
	require.Equal(t, "fixtures", f.Package)

	var names []string
	kinds := map[string]ir.NodeKind{}
	for _, c := range f.Contracts {
		names = append(names, c.Name)
		kinds[c.Name] = c.Kind()
	}
	require.Equal(t, []string{"ItemZero", "ItemOne", "ItemTwo", "ItemThree", "ItemFour", "Odds", "AllItems", "EvenItems", "Mixed"}, names)
	assert.Equal(t, ir.NodeItem, kinds["ItemOne"])
	assert.Equal(t, ir.NodeGroup, kinds["Odds"])
	assert.Equal(t, ir.NodeSchema, kinds["Mixed"])

	mixed := f.Contracts[len(f.Contracts)-1]
	require.Equal(t, []ir.Accessor{
		{Method: "Item4", Item: "item4", Index: 0},
		{Method: "Item1", Item: "item1", Index: 1},
		{Method: "Item3", Item: "item3", Index: 2},
	}, mixed.Accessors)
	require.Equal(t, []ir.Embed{{Base: true}, {Name: "ItemFour"}, {Name: "Odds"}}, mixed.Embeds)
	require.Equal(t, []ir.Marker{{Description: "Item #1"}}, f.Contracts[1].Markers)
}

// The checked-in registrations must be exactly what the generator writes,
// up to whitespace.
func TestRender_MatchesCheckedInFixtures(t *testing.T) {
	out, err := Render(buildFixtures(t))
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join(fixturesDir, "zz_jens_gen.go"))
	require.NoError(t, err)
	require.Equal(t, strings.Fields(string(want)), strings.Fields(string(out)))
}

func TestRender_OutputParses(t *testing.T) {
	f := ir.File{
		Package: "demo",
		Contracts: []ir.Contract{
			{Name: "First", Markers: []ir.Marker{{Name: "one", Description: `say "hi"`}}},
			{Name: "Empty", Schema: true},
		},
	}
	require.False(t, f.NeedsReflect())
	out, err := Render(f)
	require.NoError(t, err)

	src := string(out)
	require.True(t, strings.HasPrefix(src, Header+"\n"))
	require.NotContains(t, src, `"reflect"`)
	require.Contains(t, src, `jens.Contract[First]().Item().Describe("say \"hi\"").Named("one").MustRegister()`)
	require.Contains(t, src, "Implement(newJensEmpty)")
	require.NotContains(t, src, "slots")

	_, err = parser.ParseFile(token.NewFileSet(), "zz_jens_gen.go", out, parser.AllErrors)
	require.NoError(t, err)
}

func TestRender_EmptyPackage(t *testing.T) {
	_, err := Render(ir.File{})
	require.Error(t, err)
}

func writePackage(t *testing.T, src string) *scan.Package {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/demo\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "demo.go"), []byte(src), 0o644))
	p, err := scan.Dir(root)
	require.NoError(t, err)
	return p
}

func TestBuild_JoinsSchemaErrors(t *testing.T) {
	p := writePackage(t, `package demo

import "github.com/reoring/jens"

//jens:item
type A interface{ A() jens.Item }

//jens:item name="a"
type B interface{ B() jens.Item }

type Clash interface {
	jens.Enumerable
	A
	B
}

type Extra interface {
	jens.Enumerable
	Label() string
}
`)
	_, err := Build(p)
	require.Error(t, err)
	var dup *model.DuplicateItemNameError
	var un *model.UnresolvedAbstractMemberError
	require.ErrorAs(t, err, &dup)
	require.ErrorAs(t, err, &un)
}

func TestBuild_RejectsSharedAccessor(t *testing.T) {
	p := writePackage(t, `package demo

import "github.com/reoring/jens"

//jens:item
type Zero interface{ Item0() jens.Item }

//jens:item name="other"
type ZeroAgain interface{ Item0() jens.Item }

type Shared interface {
	jens.Enumerable
	Zero
	ZeroAgain
}
`)
	f, err := Build(p)
	var ae *model.DuplicateAccessorError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, []string{"Item0"}, ae.Accessors)
	require.Empty(t, f.Contracts)
}

func TestBuild_NoSchemas(t *testing.T) {
	p := writePackage(t, "package demo\n\ntype Plain interface{ Do() }\n")
	_, err := Build(p)
	require.True(t, errors.Is(err, ErrNoSchemas))
}
