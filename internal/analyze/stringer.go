package analyze

import (
	"strings"
)

// TypePath builds a readable path string for a field.
// Examples:
//   - "identity.age" for a nested field
//   - "relationships.people[]" for a slice field
//   - "relationships.people[].closeness" for a field within slice elements
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath. An empty root starts an empty path.
func NewTypePath(root string) *TypePath {
	if root == "" {
		return &TypePath{}
	}

	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Slice appends a slice indicator "[]" to the path.
func (p *TypePath) Slice() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"[]"}}
	}
	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = newParts[len(newParts)-1] + "[]"
	return &TypePath{parts: newParts}
}

// Pointer appends a pointer indicator "*" to the path.
func (p *TypePath) Pointer() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"*"}}
	}
	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = "*" + newParts[len(newParts)-1]
	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeStringer provides methods for creating readable type path strings.
type TypeStringer struct{}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString returns a human-readable string representation of a TypeInfo.
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		return t.GoType.String()

	case TypeKindStruct:
		if t.IsNamed() {
			return t.ID.Name
		}
		return "struct{...}"

	case TypeKindPointer:
		if t.ElemType != nil {
			return "*" + s.TypeString(t.ElemType)
		}
		return "*<unknown>"

	case TypeKindSlice:
		if t.ElemType != nil {
			return "[]" + s.TypeString(t.ElemType)
		}
		return "[]<unknown>"

	case TypeKindAlias, TypeKindEnum:
		if t.IsNamed() {
			return t.ID.Name
		}
		return s.TypeString(t.Underlying)

	case TypeKindExternal:
		if t.IsNamed() {
			return t.ID.String()
		}
		return t.GoType.String()

	default:
		return t.GoType.String()
	}
}

// PathTemplates lists the path of every leaf reachable from root, using json
// names and "[]" for list elements, in declaration order. Recursion stops at
// maxDepth.
func (s *TypeStringer) PathTemplates(root *TypeInfo, maxDepth int) []string {
	var out []string
	if root == nil || root.Kind != TypeKindStruct {
		return out
	}

	s.collectTemplates(root, NewTypePath(""), &out, 0, maxDepth)
	return out
}

func (s *TypeStringer) collectTemplates(t *TypeInfo, path *TypePath, out *[]string, depth, maxDepth int) {
	if depth > maxDepth || t == nil {
		return
	}

	for i := range t.Fields {
		field := &t.Fields[i]
		if field.Skipped() {
			continue
		}

		s.collectNested(field.Type, path.Field(field.JSONName()), out, depth+1, maxDepth)
	}
}

func (s *TypeStringer) collectNested(t *TypeInfo, path *TypePath, out *[]string, depth, maxDepth int) {
	if t == nil || depth > maxDepth {
		return
	}

	switch t.Kind {
	case TypeKindStruct:
		s.collectTemplates(t, path, out, depth, maxDepth)

	case TypeKindPointer:
		s.collectNested(t.ElemType, path, out, depth, maxDepth)

	case TypeKindSlice:
		if t.ElemType != nil && t.ElemType.Kind == TypeKindStruct {
			s.collectTemplates(t.ElemType, path.Slice(), out, depth, maxDepth)
		}

	case TypeKindBasic, TypeKindAlias, TypeKindEnum:
		*out = append(*out, path.String())

	case TypeKindArray, TypeKindExternal, TypeKindUnknown:
		// Not addressable by a path
	}
}
