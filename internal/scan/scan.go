// Package scan reads a Go package directory with go/ast and extracts the
// contracts declared in it: named interfaces, their //jens:item markers,
// embeds in declaration order and own methods. It is the build-time
// counterpart of the reflect-based descriptor in package jens.
package scan

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/reoring/jens/internal/model"
)

// Directive marks an interface as an item slot.
const Directive = "//jens:item"

// Interface is one named interface declared in the scanned package.
type Interface struct {
	Name    string
	Markers []model.Marker
	Embeds  []string // qualified names
	Methods []model.Method
	Pos     token.Position
}

// Package is the result of scanning one directory.
type Package struct {
	Dir        string
	Name       string
	ImportPath string
	Interfaces []*Interface // source order
	byName     map[string]*Interface
}

// Dir parses the non-test Go files of dir, skipping generated files.
func Dir(dir string) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	fset := token.NewFileSet()
	var files []*ast.File
	p := &Package{Dir: dir, byName: map[string]*Interface{}}
	// os.ReadDir sorts by name, which fixes the source order across files.
	for _, de := range entries {
		n := de.Name()
		if de.IsDir() || !strings.HasSuffix(n, ".go") || strings.HasSuffix(n, "_test.go") || strings.HasPrefix(n, "zz_jens") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, n), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", dir, err)
		}
		if p.Name == "" {
			p.Name = f.Name.Name
		} else if p.Name != f.Name.Name {
			return nil, fmt.Errorf("multiple packages in %s: %s, %s", dir, p.Name, f.Name.Name)
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Go package in %s", dir)
	}
	p.ImportPath = importPathFor(dir, p.Name)

	var errs []error
	for _, f := range files {
		alias := jensAlias(f)
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name == nil || ts.TypeParams != nil {
					continue
				}
				it, ok := ts.Type.(*ast.InterfaceType)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				iface, err := p.readInterface(fset, ts, it, doc, alias)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				p.Interfaces = append(p.Interfaces, iface)
				p.byName[iface.Name] = iface
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return p, nil
}

func (p *Package) readInterface(fset *token.FileSet, ts *ast.TypeSpec, it *ast.InterfaceType, doc *ast.CommentGroup, alias string) (*Interface, error) {
	iface := &Interface{Name: ts.Name.Name, Pos: fset.Position(ts.Pos())}
	markers, err := readMarkers(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", iface.Pos, iface.Name, err)
	}
	iface.Markers = markers
	if it.Methods == nil {
		return iface, nil
	}
	for _, field := range it.Methods.List {
		if len(field.Names) == 0 {
			embed, err := p.embedName(field.Type, alias)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", iface.Pos, iface.Name, err)
			}
			iface.Embeds = append(iface.Embeds, embed)
			continue
		}
		ft, ok := field.Type.(*ast.FuncType)
		if !ok {
			continue
		}
		for _, n := range field.Names {
			iface.Methods = append(iface.Methods, methodOf(n.Name, ft, alias))
		}
	}
	return iface, nil
}

// embedName resolves an embedded interface expression to a qualified name.
// Only same-package interfaces and jens.Enumerable are supported.
func (p *Package) embedName(expr ast.Expr, alias string) (string, error) {
	switch x := expr.(type) {
	case *ast.Ident:
		return model.Qualify(p.ImportPath, x.Name), nil
	case *ast.SelectorExpr:
		if id, ok := x.X.(*ast.Ident); ok && alias != "" && id.Name == alias && x.Sel.Name == "Enumerable" {
			return model.BaseName, nil
		}
	}
	return "", fmt.Errorf("unsupported embed %s: only same-package interfaces and jens.Enumerable", types.ExprString(expr))
}

func methodOf(name string, ft *ast.FuncType, alias string) model.Method {
	m := model.Method{
		Name:      name,
		Signature: name + strings.TrimPrefix(types.ExprString(ft), "func"),
	}
	if ft.Params != nil {
		m.NumIn = fieldCount(ft.Params)
	}
	if ft.Results != nil {
		m.NumOut = fieldCount(ft.Results)
		if m.NumOut == 1 {
			m.ReturnsItem = isItemExpr(ft.Results.List[0].Type, alias)
		}
	}
	return m
}

func fieldCount(fl *ast.FieldList) int {
	n := 0
	for _, f := range fl.List {
		if len(f.Names) == 0 {
			n++
			continue
		}
		n += len(f.Names)
	}
	return n
}

// isItemExpr reports whether expr is jens.Item under the file's import alias.
// The generator emits accessors returning jens.Item, so only that exact
// result type is accepted statically.
func isItemExpr(expr ast.Expr, alias string) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok || alias == "" {
		return false
	}
	id, ok := sel.X.(*ast.Ident)
	return ok && id.Name == alias && sel.Sel.Name == "Item"
}

// jensAlias returns the local name of the jens import in f, or "" when the
// file does not import it.
func jensAlias(f *ast.File) string {
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != model.ModulePath {
			continue
		}
		if imp.Name == nil {
			return "jens"
		}
		if imp.Name.Name == "_" || imp.Name.Name == "." {
			return ""
		}
		return imp.Name.Name
	}
	return ""
}

// readMarkers parses every //jens:item line of a doc comment.
//
//	//jens:item
//	//jens:item description="Item #1" name="first"
func readMarkers(doc *ast.CommentGroup) ([]model.Marker, error) {
	if doc == nil {
		return nil, nil
	}
	var out []model.Marker
	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, Directive)
		if !ok {
			continue
		}
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue // e.g. //jens:items
		}
		m, err := parseMarker(rest)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func parseMarker(s string) (model.Marker, error) {
	var m model.Marker
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return m, nil
		}
		key, rest, ok := strings.Cut(s, "=")
		if !ok {
			return m, fmt.Errorf("malformed %s argument %q", Directive, s)
		}
		quoted, err := strconv.QuotedPrefix(rest)
		if err != nil {
			return m, fmt.Errorf("%s %s: value must be a quoted string", Directive, key)
		}
		val, _ := strconv.Unquote(quoted)
		switch key {
		case "description":
			m.Description = val
		case "name":
			m.Name = val
		default:
			return m, fmt.Errorf("unknown %s argument %q", Directive, key)
		}
		s = rest[len(quoted):]
	}
}

// importPathFor derives the import path of dir from the nearest go.mod.
// It falls back to the package name when no module is found.
func importPathFor(dir, pkgName string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return pkgName
	}
	for d := abs; ; d = filepath.Dir(d) {
		if mod := modulePath(filepath.Join(d, "go.mod")); mod != "" {
			rel, err := filepath.Rel(d, abs)
			if err != nil {
				return pkgName
			}
			if rel == "." {
				return mod
			}
			return mod + "/" + filepath.ToSlash(rel)
		}
		if parent := filepath.Dir(d); parent == d {
			return pkgName
		}
	}
}

func modulePath(gomod string) string {
	data, err := os.ReadFile(gomod)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "module"); ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
			rest = strings.TrimSpace(rest)
			if uq, err := strconv.Unquote(rest); err == nil {
				return uq
			}
			return rest
		}
	}
	return ""
}
