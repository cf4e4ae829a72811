package diagnostic

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"charedit/internal/common"
)

// Severity orders diagnostics; only SeverityError stops generation.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is one finding about a struct field that the path table
// generator could not, or chose not to, bind.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	// Struct and Field name the Go declaration, either may be empty.
	Struct string
	Field  string
	// Hint is an optional fix, such as a json tag to add.
	Hint string
}

func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Struct != "" {
		b.WriteString(d.Struct)

		if d.Field != "" {
			b.WriteString(".")
			b.WriteString(d.Field)
		}

		b.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	if d.Hint != "" {
		fmt.Fprintf(&b, " (%s)", d.Hint)
	}

	return b.String()
}

// ZapFields renders d as structured log fields.
func (d Diagnostic) ZapFields() []zap.Field {
	fields := []zap.Field{
		zap.String("code", d.Code),
		zap.String("struct", d.Struct),
		zap.String("field", d.Field),
	}

	if d.Hint != "" {
		fields = append(fields, zap.String("hint", d.Hint))
	}

	return fields
}

// Diagnostics collects findings in the order they were reported.
type Diagnostics struct {
	list []Diagnostic
}

// Add records d.
func (d *Diagnostics) Add(diag Diagnostic) {
	d.list = append(d.list, diag)
}

// Errorf records an error about field of structName.
func (d *Diagnostics) Errorf(code, structName, field, format string, args ...any) {
	d.addf(SeverityError, code, structName, field, format, args)
}

// Warnf records a warning about field of structName.
func (d *Diagnostics) Warnf(code, structName, field, format string, args ...any) {
	d.addf(SeverityWarning, code, structName, field, format, args)
}

// Infof records an informational note about field of structName.
func (d *Diagnostics) Infof(code, structName, field, format string, args ...any) {
	d.addf(SeverityInfo, code, structName, field, format, args)
}

func (d *Diagnostics) addf(sev Severity, code, structName, field, format string, args []any) {
	d.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Struct:   structName,
		Field:    field,
	})
}

// Len returns the number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.list)
}

// All returns every diagnostic, most severe first; equal severities keep
// their reporting order.
func (d *Diagnostics) All() []Diagnostic {
	out := slices.Clone(d.list)
	slices.SortStableFunc(out, func(a, b Diagnostic) int {
		return int(b.Severity) - int(a.Severity)
	})

	return out
}

// HasErrors reports whether any diagnostic is an error.
func (d *Diagnostics) HasErrors() bool {
	return slices.ContainsFunc(d.list, func(diag Diagnostic) bool {
		return diag.Severity == SeverityError
	})
}

// Err joins every error diagnostic, or returns nil when there are none.
func (d *Diagnostics) Err() error {
	var errs []error

	for _, diag := range d.list {
		if diag.Severity == SeverityError {
			errs = append(errs, errors.New(diag.String()))
		}
	}

	return errors.Join(errs...)
}
