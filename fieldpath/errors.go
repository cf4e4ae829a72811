package fieldpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charedit/primitive"
)

// Reasons a path fails to resolve. A *PathError unwraps to one of these.
var (
	ErrSyntax          = errors.New("malformed path")
	ErrUnknownField    = errors.New("unknown field")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotList         = errors.New("field is not a list")
	ErrNotGroup        = errors.New("field has no sub-fields")
	ErrNotLeaf         = errors.New("field is not a leaf")
	ErrAbsent          = errors.New("group is absent")
)

// PathError reports a path that does not address a field of the record.
type PathError struct {
	Path    string // full path as requested
	Segment string // offending segment as written
	Reason  error  // one of the Err* reasons above
	Detail  string

	// Suggestion is the closest known field name when Reason is ErrUnknownField.
	Suggestion string
}

func (e *PathError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "path %q", e.Path)

	if e.Segment != "" {
		fmt.Fprintf(&b, " at %q", e.Segment)
	}

	b.WriteString(": ")
	b.WriteString(e.Reason.Error())

	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, ", did you mean %q?", e.Suggestion)
	}

	return b.String()
}

func (e *PathError) Unwrap() error {
	return e.Reason
}

// CoercionError reports a value that cannot be stored in the addressed leaf.
type CoercionError struct {
	Path  string
	Kind  primitive.KindEnum
	Value any
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("path %q: cannot store %v (%T) as %s: %v", e.Path, e.Value, e.Value, e.Kind, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

func syntaxError(path, segment, detail string) *PathError {
	return &PathError{Path: path, Segment: segment, Reason: ErrSyntax, Detail: detail}
}

func indexDetail(idx, n int) string {
	return "index " + strconv.Itoa(idx) + " with length " + strconv.Itoa(n)
}
