// Package gen lowers scanned packages to IR and renders the registration
// file that jens generate writes next to the schemas.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"

	"github.com/reoring/jens/internal/ir"
)

// Header is the first line of every generated file.
const Header = "// Code generated by jens generate; DO NOT EDIT."

var funcs = template.FuncMap{
	"quote": strconv.Quote,
	"impl":  func(name string) string { return "jens" + name },
	"ctor":  func(name string) string { return "newJens" + name },
	"schema": func(c ir.Contract) bool { return c.Kind() == ir.NodeSchema },
	"embed": func(e ir.Embed) string {
		if e.Base {
			return "jens.Enumerable"
		}
		return e.Name
	},
}

var fileTmpl = template.Must(template.New("file").Funcs(funcs).Parse(Header + `

package {{.Package}}

import (
{{- if .NeedsReflect}}
	"reflect"
{{end}}
	"github.com/reoring/jens"
)

func init() {
{{- range .Contracts}}
	jens.Contract[{{.Name}}](){{range .Markers}}.Item(){{with .Description}}.Describe({{quote .}}){{end}}{{with .Name}}.Named({{quote .}}){{end}}{{end}}
{{- if or .Embeds (schema .)}}.
{{- if .Embeds}}
		Embeds(
{{- range .Embeds}}
			reflect.TypeFor[{{embed .}}](),
{{- end}}
		).
{{- end}}
{{- if schema .}}
		Implement({{ctor .Name}}).
{{- end}}
		MustRegister()
{{- else}}.MustRegister()
{{- end}}
{{- end}}
}
{{range .Contracts}}{{if schema .}}{{template "impl" .}}{{end}}{{end}}

{{- define "impl"}}
type {{impl .Name}} struct {
	jens.Enumerable
{{- if .Accessors}}
	slots [{{len .Accessors}}]jens.Item
{{- end}}
}

func {{ctor .Name}}(base jens.Enumerable) {{.Name}} {
	return &{{impl .Name}}{
		Enumerable: base,
{{- if .Accessors}}
		slots: [{{len .Accessors}}]jens.Item{
{{- range .Accessors}}
			jens.MustItem(base, {{quote .Item}}),
{{- end}}
		},
{{- end}}
	}
}
{{$impl := impl .Name}}{{range .Accessors}}
func (e *{{$impl}}) {{.Method}}() jens.Item { return e.slots[{{.Index}}] }
{{end}}
{{- end}}`))

// Render produces the gofmt-formatted source of f.
func Render(f ir.File) ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("render: empty package name")
	}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("render: format: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}
