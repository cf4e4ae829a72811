package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"

	"charedit/internal/analyze"
	"charedit/internal/common"
	"charedit/internal/diagnostic"
)

// Diagnostic codes.
const (
	CodeUnsupported = "unsupported"
	CodeForeign     = "foreign-type"
	CodeEmbedded    = "embedded"
	CodeSkipped     = "skipped"
	CodeDuplicate   = "duplicate-name"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package. Empty means the name
	// of the analyzed package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the name of the generated file.
	Filename string
	// FieldpathImport is the import path of the fieldpath package.
	FieldpathImport string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:       ".",
		Filename:        "paths_gen.go",
		FieldpathImport: "charedit/fieldpath",
	}
}

// Generator generates path tables from a type graph.
type Generator struct {
	config GeneratorConfig
	graph  *analyze.TypeGraph
	diags  diagnostic.Diagnostics
	types  *analyze.TypeStringer
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "paths_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		types:  analyze.NewTypeStringer(),
	}
}

// Diagnostics returns what the last Generate call found.
func (g *Generator) Diagnostics() diagnostic.Diagnostics {
	return g.diags
}

// Generate emits the path table for every exported struct of pkgPath. Fields
// that cannot be bound are reported as error diagnostics and make Generate
// fail.
func (g *Generator) Generate(graph *analyze.TypeGraph, pkgPath string) (*GeneratedFile, error) {
	g.graph = graph
	g.diags = diagnostic.Diagnostics{}

	// The template refers to the package by its default name
	if alias := common.PkgAlias(g.config.FieldpathImport); alias != "fieldpath" {
		return nil, fmt.Errorf("fieldpath import %q has package name %q, want fieldpath", g.config.FieldpathImport, alias)
	}

	pkg := graph.Packages[pkgPath]
	if pkg == nil {
		return nil, fmt.Errorf("package %s was not loaded", pkgPath)
	}

	data := &templateData{
		PackageName:     g.config.PackageName,
		FieldpathImport: g.config.FieldpathImport,
	}

	if data.PackageName == "" {
		data.PackageName = pkg.Name
	}

	structs := graph.Structs(pkgPath)
	if len(structs) == 0 {
		return nil, fmt.Errorf("package %s has no exported structs", pkgPath)
	}

	for _, s := range structs {
		data.Types = append(data.Types, g.buildType(s, pkgPath))
	}

	if err := g.diags.Err(); err != nil {
		return nil, fmt.Errorf("unsupported fields in %s: %w", pkgPath, err)
	}

	var buf bytes.Buffer
	if err := pathsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: g.config.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: g.config.Filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) buildType(s *analyze.TypeInfo, pkgPath string) typeData {
	td := typeData{
		Name:     s.ID.Name,
		NamesVar: common.LowerFirst(s.ID.Name) + "FieldNames",
	}

	seen := make(map[string]string)

	for i := range s.Fields {
		f := &s.Fields[i]

		if f.Skipped() {
			g.diags.Infof(CodeSkipped, s.ID.Name, f.Name, "excluded by json tag")
			continue
		}

		if f.Embedded {
			g.diags.Warnf(CodeEmbedded, s.ID.Name, f.Name, "embedded fields are not addressable by path")
			continue
		}

		name := f.JSONName()
		if prev, ok := seen[name]; ok {
			g.diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     CodeDuplicate,
				Message:  fmt.Sprintf("path name %q is also used by %s", name, prev),
				Struct:   s.ID.Name,
				Field:    f.Name,
				Hint:     "give one of them a distinct json tag",
			})

			continue
		}

		fd, ok := g.bindField(s.ID.Name, f, pkgPath)
		if !ok {
			continue
		}

		seen[name] = f.Name
		td.Names = append(td.Names, name)
		td.Fields = append(td.Fields, fd)
	}

	return td
}

// bindField chooses the fieldpath constructor for one struct field.
func (g *Generator) bindField(owner string, f *analyze.FieldInfo, pkgPath string) (fieldData, bool) {
	fd := fieldData{
		Path:   f.JSONName(),
		GoName: f.Name,
	}

	t := f.Type
	ref := "&x." + f.Name

	switch t.Kind {
	case analyze.TypeKindBasic:
		ctor, ok := basicConstructor(t.BasicKind())
		if !ok {
			g.unsupported(owner, f, "basic type "+g.types.TypeString(t))
			return fd, false
		}

		fd.Expr = fmt.Sprintf("fieldpath.%s(%s)", ctor, ref)

	case analyze.TypeKindEnum:
		if !g.local(owner, f, t, pkgPath) {
			return fd, false
		}

		fd.Expr = fmt.Sprintf("fieldpath.Enum(%s, %s)", ref, t.EnumTotal)

	case analyze.TypeKindStruct:
		if !g.local(owner, f, t, pkgPath) {
			return fd, false
		}

		fd.Expr = fmt.Sprintf("fieldpath.Group(%s)", ref)

	case analyze.TypeKindPointer:
		if t.ElemType == nil || t.ElemType.Kind != analyze.TypeKindStruct {
			g.unsupported(owner, f, "pointer to "+g.types.TypeString(t.ElemType))
			return fd, false
		}

		if !g.local(owner, f, t.ElemType, pkgPath) {
			return fd, false
		}

		fd.Optional = true
		fd.Expr = fmt.Sprintf("fieldpath.Group(x.%s)", f.Name)

	case analyze.TypeKindSlice:
		if t.ElemType == nil || t.ElemType.Kind != analyze.TypeKindStruct {
			g.unsupported(owner, f, "slice of "+g.types.TypeString(t.ElemType))
			return fd, false
		}

		if !g.local(owner, f, t.ElemType, pkgPath) {
			return fd, false
		}

		fd.Expr = fmt.Sprintf("fieldpath.ListOf(%s)", ref)

	case analyze.TypeKindAlias:
		g.unsupported(owner, f,
			g.types.TypeString(t)+" has no String method or "+t.ID.Name+"Total constant")

		return fd, false

	default:
		g.unsupported(owner, f, g.types.TypeString(t))
		return fd, false
	}

	return fd, true
}

// local reports whether t is declared in the generated package; the table
// binds other packages' types only through their own generated tables.
func (g *Generator) local(owner string, f *analyze.FieldInfo, t *analyze.TypeInfo, pkgPath string) bool {
	if t.ID.PkgPath == pkgPath || !t.IsNamed() {
		return true
	}

	g.diags.Errorf(CodeForeign, owner, f.Name, "%s is declared in another package", t.ID)

	return false
}

func (g *Generator) unsupported(owner string, f *analyze.FieldInfo, what string) {
	g.diags.Errorf(CodeUnsupported, owner, f.Name, "cannot address %s", what)
}

func basicConstructor(kind types.BasicKind) (string, bool) {
	switch kind {
	case types.Int:
		return "Int", true
	case types.Float64:
		return "Float", true
	case types.Bool:
		return "Bool", true
	case types.String:
		return "String", true
	}

	return "", false
}
