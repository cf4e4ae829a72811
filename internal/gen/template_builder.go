package gen

import (
	"strconv"
	"strings"
	"text/template"
)

// templateData holds all data needed for the path table template.
type templateData struct {
	PackageName     string
	FieldpathImport string
	Types           []typeData
}

// typeData describes the methods generated for one struct.
type typeData struct {
	Name     string
	NamesVar string
	Names    []string
	Fields   []fieldData
}

// fieldData is one case of a PathField switch.
type fieldData struct {
	Path     string // segment name
	GoName   string
	Expr     string // fieldpath constructor call
	Optional bool   // pointer group, absent while nil
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}

	return strings.Join(quoted, ", ")
}

var pathsTemplate = template.Must(template.New("paths").Funcs(template.FuncMap{
	"quoteJoin": quoteJoin,
}).Parse(`// Code generated by pathgen. DO NOT EDIT.

package {{.PackageName}}

import (
	"{{.FieldpathImport}}"
)
{{range .Types}}
var {{.NamesVar}} = []string{ {{- quoteJoin .Names -}} }
{{end}}
{{- range .Types}}
// PathField implements fieldpath.Grouper.
func (x *{{.Name}}) PathField(name string) (fieldpath.Field, bool) {
	switch name {
{{- range .Fields}}
	case {{printf "%q" .Path}}:
{{- if .Optional}}
		if x.{{.GoName}} == nil {
			return fieldpath.Absent(), true
		}
{{end}}
		return {{.Expr}}, true
{{- end}}
	}

	return fieldpath.Field{}, false
}

// PathFieldNames implements fieldpath.Grouper.
func (x *{{.Name}}) PathFieldNames() []string {
	return {{.NamesVar}}
}
{{end}}`))
