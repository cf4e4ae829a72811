package fieldpath

import (
	"charedit/internal/match"
	"charedit/primitive"
)

// Resolver walks paths over Grouper records and coerces written values under
// a fixed set of conversion categories.
type Resolver struct {
	categories primitive.CategoryEnum
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCategories replaces the conversion categories accepted by Set.
func WithCategories(c primitive.CategoryEnum) Option {
	return func(r *Resolver) {
		r.categories = c
	}
}

// NewResolver creates a resolver that accepts primitive.CategoryDefault
// conversions unless configured otherwise.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{categories: primitive.CategoryDefault}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Categories returns the conversion categories accepted by Set.
func (r *Resolver) Categories() primitive.CategoryEnum {
	return r.categories
}

// Lookup walks path from root and returns the addressed field, which may be a
// leaf, a group or a list.
func (r *Resolver) Lookup(root Grouper, path string) (Field, error) {
	p, err := Parse(path)
	if err != nil {
		return Field{}, err
	}

	return r.LookupPath(root, p)
}

// LookupPath is Lookup for an already parsed path.
func (r *Resolver) LookupPath(root Grouper, p Path) (Field, error) {
	path := p.String()
	cur := root

	for i, seg := range p.Segments {
		f, ok := cur.PathField(seg.Name)
		if !ok {
			perr := &PathError{Path: path, Segment: seg.String(), Reason: ErrUnknownField}
			if s, found := match.Suggest(seg.Name, cur.PathFieldNames()); found {
				perr.Suggestion = s
			}

			return Field{}, perr
		}

		if seg.Indexed {
			if f.kind != primitive.KindList {
				return Field{}, &PathError{Path: path, Segment: seg.String(), Reason: ErrNotList, Detail: f.kind.String()}
			}

			if n := f.Len(); seg.Index >= n {
				return Field{}, &PathError{
					Path:    path,
					Segment: seg.String(),
					Reason:  ErrIndexOutOfRange,
					Detail:  indexDetail(seg.Index, n),
				}
			}

			f = Group(f.Elem(seg.Index))
		}

		if i == len(p.Segments)-1 {
			return f, nil
		}

		switch {
		case f.absent:
			return Field{}, &PathError{Path: path, Segment: seg.String(), Reason: ErrAbsent}
		case f.kind == primitive.KindGroup:
			cur = f.group
		case f.kind == primitive.KindList:
			return Field{}, &PathError{Path: path, Segment: seg.String(), Reason: ErrNotGroup, Detail: "list requires an index"}
		default:
			return Field{}, &PathError{Path: path, Segment: seg.String(), Reason: ErrNotGroup, Detail: f.kind.String()}
		}
	}

	return Field{}, syntaxError(path, "", "empty path")
}

// Get returns the value of the leaf addressed by path.
func (r *Resolver) Get(root Grouper, path string) (any, error) {
	f, err := r.Lookup(root, path)
	if err != nil {
		return nil, err
	}

	if !f.IsLeaf() {
		return nil, notLeafError(path, f)
	}

	return f.Value(), nil
}

// Set coerces v to the static type of the leaf addressed by path and stores
// it. Nothing is written when an error is returned.
func (r *Resolver) Set(root Grouper, path string, v any) error {
	f, err := r.Lookup(root, path)
	if err != nil {
		return err
	}

	if !f.IsLeaf() {
		return notLeafError(path, f)
	}

	if err := f.Assign(v, r.categories); err != nil {
		return &CoercionError{Path: path, Kind: f.kind, Value: v, Err: err}
	}

	return nil
}

// Convert returns v as the leaf addressed by path would store it, without
// writing it.
func (r *Resolver) Convert(root Grouper, path string, v any) (any, error) {
	f, err := r.Lookup(root, path)
	if err != nil {
		return nil, err
	}

	if !f.IsLeaf() {
		return nil, notLeafError(path, f)
	}

	native, err := f.Convert(v, r.categories)
	if err != nil {
		return nil, &CoercionError{Path: path, Kind: f.kind, Value: v, Err: err}
	}

	return native, nil
}

func notLeafError(path string, f Field) *PathError {
	if f.absent {
		return &PathError{Path: path, Reason: ErrAbsent}
	}

	return &PathError{Path: path, Reason: ErrNotLeaf, Detail: f.kind.String()}
}

var defaultResolver = NewResolver()

// Lookup walks path from root using the default resolver.
func Lookup(root Grouper, path string) (Field, error) {
	return defaultResolver.Lookup(root, path)
}

// Get reads a leaf using the default resolver.
func Get(root Grouper, path string) (any, error) {
	return defaultResolver.Get(root, path)
}

// Set writes a leaf using the default resolver.
func Set(root Grouper, path string, v any) error {
	return defaultResolver.Set(root, path, v)
}
