package fieldpath

import (
	"fmt"

	"charedit/primitive"
)

// Grouper is implemented by every record struct reachable through a path.
// PathField returns the member addressed by name, bound to the receiver, and
// false when no such member exists.
type Grouper interface {
	PathField(name string) (Field, bool)
	PathFieldNames() []string
}

// List gives indexed access to a list of groups.
type List interface {
	Len() int
	Index(i int) Grouper
}

// Field is a handle on one member of a live record. Leaf fields read and
// write through a pointer, so a Field stays valid only as long as the
// structure that produced it is not reallocated.
type Field struct {
	kind  primitive.KindEnum
	names []string // enum names, indexed by value

	get  func() any
	conv func(v any) any // canonical coerced value to the stored type
	set  func(v any)

	group  Grouper
	list   List
	absent bool
}

// Kind returns the kind of the field, or zero for an invalid Field.
func (f Field) Kind() primitive.KindEnum {
	return f.kind
}

// IsLeaf reports whether the field holds a value rather than sub-fields.
func (f Field) IsLeaf() bool {
	return f.kind.IsLeaf()
}

// IsAbsent reports whether the field is a group that has not been built yet.
func (f Field) IsAbsent() bool {
	return f.absent
}

// Names returns the accepted names of an enum field.
func (f Field) Names() []string {
	return f.names
}

// Value returns the current value of a leaf, or nil for groups and lists.
// Enum leaves return the typed enum value.
func (f Field) Value() any {
	if f.get == nil {
		return nil
	}

	return f.get()
}

// Group returns the sub-record of a group field, or nil.
func (f Field) Group() Grouper {
	return f.group
}

// Len returns the number of elements of a list field, or zero.
func (f Field) Len() int {
	if f.list == nil {
		return 0
	}

	return f.list.Len()
}

// Elem returns the i-th element of a list field.
func (f Field) Elem(i int) Grouper {
	return f.list.Index(i)
}

// Convert coerces v to the field's kind under the allowed categories and
// returns it as the field would hold it: int, float64, bool, string or the
// typed enum value. Nothing is written.
func (f Field) Convert(v any, allowed primitive.CategoryEnum) (any, error) {
	if !f.IsLeaf() || f.conv == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotLeaf, f.kind)
	}

	if f.kind == primitive.KindPrimitiveEnum {
		idx, err := primitive.CoerceEnum(v, f.names, allowed)
		if err != nil {
			return nil, err
		}

		return f.conv(idx), nil
	}

	c, err := primitive.Coerce(v, f.kind, allowed)
	if err != nil {
		return nil, err
	}

	return f.conv(c), nil
}

// Assign coerces v like Convert and stores it.
func (f Field) Assign(v any, allowed primitive.CategoryEnum) error {
	native, err := f.Convert(v, allowed)
	if err != nil {
		return err
	}

	f.set(native)

	return nil
}

// Int binds an int leaf.
func Int(p *int) Field {
	return Field{
		kind: primitive.KindInt,
		get:  func() any { return *p },
		conv: func(v any) any { return int(v.(int64)) },
		set:  func(v any) { *p = v.(int) },
	}
}

// Float binds a float64 leaf.
func Float(p *float64) Field {
	return Field{
		kind: primitive.KindFloat64,
		get:  func() any { return *p },
		conv: identity,
		set:  func(v any) { *p = v.(float64) },
	}
}

// Bool binds a bool leaf.
func Bool(p *bool) Field {
	return Field{
		kind: primitive.KindBool,
		get:  func() any { return *p },
		conv: identity,
		set:  func(v any) { *p = v.(bool) },
	}
}

// String binds a string leaf.
func String(p *string) Field {
	return Field{
		kind: primitive.KindString,
		get:  func() any { return *p },
		conv: identity,
		set:  func(v any) { *p = v.(string) },
	}
}

// Enum binds a leaf of an enumerated type whose values run from 0 to total-1
// and whose String method yields the accepted name of each value.
func Enum[T interface {
	~int
	fmt.Stringer
}](p *T, total int) Field {
	return Field{
		kind:  primitive.KindPrimitiveEnum,
		names: EnumNames[T](total),
		get:   func() any { return *p },
		conv:  func(v any) any { return T(v.(int)) },
		set:   func(v any) { *p = v.(T) },
	}
}

func identity(v any) any { return v }

// EnumNames lists the names of the values 0..total-1 of an enumerated type.
func EnumNames[T interface {
	~int
	fmt.Stringer
}](total int) []string {
	names := make([]string, total)
	for i := range names {
		names[i] = T(i).String()
	}

	return names
}

// Group binds a nested record.
func Group(g Grouper) Field {
	return Field{kind: primitive.KindGroup, group: g}
}

// Absent marks an optional nested record that has not been built yet.
func Absent() Field {
	return Field{kind: primitive.KindGroup, absent: true}
}

// ListOf binds a slice of records. Elements are addressed in place.
func ListOf[T any, PT interface {
	*T
	Grouper
}](s *[]T) Field {
	return Field{kind: primitive.KindList, list: sliceList[T, PT]{s: s}}
}

type sliceList[T any, PT interface {
	*T
	Grouper
}] struct {
	s *[]T
}

func (l sliceList[T, PT]) Len() int {
	return len(*l.s)
}

func (l sliceList[T, PT]) Index(i int) Grouper {
	return PT(&(*l.s)[i])
}
