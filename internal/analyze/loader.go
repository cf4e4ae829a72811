package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	dir       string
	tags      []string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDir sets the directory patterns are resolved from.
func WithDir(dir string) Option {
	return func(a *Analyzer) {
		a.dir = dir
	}
}

// WithBuildTags sets build tags used while loading.
func WithBuildTags(tags ...string) Option {
	return func(a *Analyzer) {
		a.tags = tags
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./record", "charedit/record").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	if len(a.tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.tags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages match %v", patterns)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	// Register every package first so that isExternalPackage sees all of them
	for _, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
		}

		if len(pkg.GoFiles) > 0 {
			a.graph.Packages[pkg.PkgPath].Dir = filepath.Dir(pkg.GoFiles[0])
		}
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil {
		return fmt.Errorf("package %s has no type information", pkg.PkgPath)
	}

	pkgInfo := a.graph.Packages[pkg.PkgPath]
	scope := pkg.Types.Scope()

	var infos []*TypeInfo

	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		// Only process exported types
		if !typeName.Exported() {
			continue
		}

		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = TypeID{PkgPath: pkg.PkgPath, Name: name}
		typeInfo.Pos = typeName.Pos()

		a.graph.Types[typeInfo.ID] = typeInfo
		infos = append(infos, typeInfo)
	}

	// Scope names are sorted alphabetically; generated code follows the source
	slices.SortFunc(infos, func(x, y *TypeInfo) int {
		return int(x.Pos) - int(y.Pos)
	})

	for _, t := range infos {
		pkgInfo.Types = append(pkgInfo.Types, t.ID)
	}

	return nil
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	default:
		// Maps, interfaces, channels, etc. are marked as unknown (unsupported)
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() == nil {
		// Predeclared named types such as error
		info.Kind = TypeKindUnknown
		return
	}

	info.ID = TypeID{
		PkgPath: obj.Pkg().Path(),
		Name:    obj.Name(),
	}

	if a.isExternalPackage(obj.Pkg().Path()) {
		info.Kind = TypeKindExternal
		return
	}

	underlying := named.Underlying()

	switch ut := underlying.(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)

	case *types.Basic:
		info.Underlying = a.analyzeType(ut)
		info.Kind = TypeKindAlias

		if total, ok := enumTotal(named); ok {
			info.Kind = TypeKindEnum
			info.EnumTotal = total
		}

	default:
		// Named type wrapping something else in our packages
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)
	}
}

// enumTotal reports whether named is an enum the path table can bind: an int
// type with a String method whose package declares an untyped or int
// constant <Name>Total.
func enumTotal(named *types.Named) (string, bool) {
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Kind() != types.Int {
		return "", false
	}

	if !hasStringMethod(named) {
		return "", false
	}

	obj := named.Obj()
	name := obj.Name() + "Total"

	c, ok := obj.Pkg().Scope().Lookup(name).(*types.Const)
	if !ok {
		return "", false
	}

	if b, ok := c.Type().Underlying().(*types.Basic); !ok || b.Info()&types.IsInteger == 0 {
		return "", false
	}

	return name, true
}

func hasStringMethod(named *types.Named) bool {
	mset := types.NewMethodSet(named)

	sel := mset.Lookup(named.Obj().Pkg(), "String")
	if sel == nil {
		return false
	}

	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	b, ok := sig.Results().At(0).Type().(*types.Basic)

	return ok && b.Kind() == types.String
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := range st.NumFields() {
		field := st.Field(i)

		// Unexported fields are not addressable from outside the package
		if !field.Exported() {
			continue
		}

		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		}

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// GetStruct returns the TypeInfo for a named struct.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}
	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}
	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}
	return info, nil
}
