package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charedit/internal/analyze"
	"charedit/internal/diagnostic"
)

const recordPkg = "charedit/record"

func load(t *testing.T, pattern string) (*analyze.TypeGraph, string) {
	t.Helper()

	graph, err := analyze.NewAnalyzer().LoadPackages(pattern)
	require.NoError(t, err)

	for path := range graph.Packages {
		return graph, path
	}

	t.Fatalf("no package loaded for %s", pattern)

	return nil, ""
}

// The checked-in table must be exactly what the generator produces.
func TestGenerate_RecordIsUpToDate(t *testing.T) {
	graph, pkgPath := load(t, recordPkg)

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(graph, pkgPath)
	require.NoError(t, err)
	assert.Equal(t, "paths_gen.go", file.Filename)

	expected, err := os.ReadFile(filepath.Join("..", "..", "record", "paths_gen.go"))
	require.NoError(t, err)

	assert.Equal(t, string(expected), string(file.Content),
		"record/paths_gen.go is stale; run go generate ./record")
}

func TestGenerate_Bindings(t *testing.T) {
	graph, pkgPath := load(t, recordPkg)

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(graph, pkgPath)
	require.NoError(t, err)

	src := string(file.Content)

	assert.Contains(t, src, "// Code generated by pathgen. DO NOT EDIT.")
	assert.Contains(t, src, "package record\n")
	assert.Contains(t, src, `var identityFieldNames = []string{"name", "age", "sex", "handedness"}`)
	assert.Contains(t, src, "return fieldpath.Enum(&x.Sex, SexTotal), true")
	assert.Contains(t, src, "return fieldpath.ListOf(&x.People), true")
	assert.Contains(t, src, "return fieldpath.Float(&x.MassKg), true")
	assert.Contains(t, src, "if x.Eyes == nil {\n\t\t\treturn fieldpath.Absent(), true\n\t\t}\n\n\t\treturn fieldpath.Group(x.Eyes), true")
}

func TestGenerate_PackageNameOverride(t *testing.T) {
	graph, pkgPath := load(t, recordPkg)

	cfg := DefaultGeneratorConfig()
	cfg.PackageName = "records"
	cfg.Filename = "table.go"

	file, err := NewGenerator(cfg).Generate(graph, pkgPath)
	require.NoError(t, err)
	assert.Equal(t, "table.go", file.Filename)
	assert.Contains(t, string(file.Content), "package records\n")
}

func TestGenerate_Unsupported(t *testing.T) {
	graph, pkgPath := load(t, "./testdata/unsupported")

	g := NewGenerator(DefaultGeneratorConfig())
	_, err := g.Generate(graph, pkgPath)
	require.Error(t, err)

	diags := g.Diagnostics()

	byField := make(map[string]diagnostic.Diagnostic)
	for _, d := range diags.All() {
		if d.Struct == "Sheet" {
			byField[d.Field] = d
		}
	}

	for field, code := range map[string]string{
		"Notes":  CodeUnsupported,
		"Any":    CodeUnsupported,
		"Ratio":  CodeUnsupported,
		"Level":  CodeUnsupported,
		"Born":   CodeUnsupported,
		"Tags":   CodeUnsupported,
		"Nick":   CodeDuplicate,
		"Base":   CodeEmbedded,
		"Secret": CodeSkipped,
	} {
		d, ok := byField[field]
		if assert.True(t, ok, "no diagnostic for %s", field) {
			assert.Equal(t, code, d.Code, field)
		}
	}

	assert.Equal(t, diagnostic.SeverityWarning, byField["Base"].Severity)
	assert.Equal(t, diagnostic.SeverityInfo, byField["Secret"].Severity)
	assert.NotContains(t, byField, "Name")
	assert.NotContains(t, byField, "private")
}

func TestGenerate_UnknownPackage(t *testing.T) {
	graph, _ := load(t, recordPkg)

	_, err := NewGenerator(DefaultGeneratorConfig()).Generate(graph, "charedit/nope")
	assert.ErrorContains(t, err, "was not loaded")
}

func TestGenerate_FieldpathImport(t *testing.T) {
	graph, pkgPath := load(t, recordPkg)

	cfg := DefaultGeneratorConfig()
	cfg.FieldpathImport = "example.com/paths"

	_, err := NewGenerator(cfg).Generate(graph, pkgPath)
	assert.ErrorContains(t, err, "want fieldpath")
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	file := &GeneratedFile{Filename: "paths_gen.go", Content: []byte("package x\n")}

	assert.False(t, Unchanged(file, dir))

	path, err := WriteFile(file, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "paths_gen.go"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package x\n", string(content))
	assert.True(t, Unchanged(file, dir))

	file.Content = []byte("package y\n")
	assert.False(t, Unchanged(file, dir))

	_, err = WriteFile(file, dir)
	require.NoError(t, err)
	assert.True(t, Unchanged(file, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "paths_gen.go", []byte("func {")))

	content, err := os.ReadFile(filepath.Join(dir, "paths_gen.unformatted.txt"))
	require.NoError(t, err)
	assert.Equal(t, "func {", string(content))

	assert.NoError(t, writeDebugUnformatted("", "paths_gen.go", nil))
}
