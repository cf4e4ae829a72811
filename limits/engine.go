package limits

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"charedit/fieldpath"
	"charedit/record"
)

// Adjustment is one field the engine changed to keep it in range.
type Adjustment struct {
	Key    string // logical key of the governed quantity
	Path   string
	Before any
	After  any
	Range  FieldRange
}

// Report describes one Recompute.
type Report struct {
	Adjustments []Adjustment
	Skipped     []string // passes or rules that did not apply to the record
	Errors      []error
}

// Changed reports whether any field was adjusted.
func (r Report) Changed() bool {
	return len(r.Adjustments) > 0
}

// Err joins the pass errors, if any.
func (r Report) Err() error {
	return errors.Join(r.Errors...)
}

// errSkip marks a pass that does not apply to a partially built record.
var errSkip = errors.New("pass does not apply")

type pass struct {
	name string
	run  func(*run) error
}

// Engine runs the pass pipeline and owns the range memory.
type Engine struct {
	cfg      Config
	memory   *Memory
	log      *zap.Logger
	resolver *fieldpath.Resolver
	passes   []pass
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for adjustments and skipped passes.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New creates an engine for the given curve table.
func New(cfg Config, opts ...Option) (*Engine, error) {
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid curve table: %w", err)
	}

	if err := checkRulePaths(cfg); err != nil {
		return nil, fmt.Errorf("invalid curve table: %w", err)
	}

	e := &Engine{
		cfg:      cfg,
		memory:   NewMemory(),
		log:      zap.NewNop(),
		resolver: fieldpath.NewResolver(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.log = e.log.Named("limits")

	// The order is fixed: later passes read fields settled by earlier ones.
	e.passes = []pass{
		{"identity", (*run).identity},
		{"height", (*run).height},
		{"scalars", (*run).scalars},
		{"stiffness", (*run).stiffness},
		{"composition", (*run).composition},
		{"shoe", (*run).shoe},
		{"eyes", (*run).eyes},
		{"caps", (*run).caps},
	}

	return e, nil
}

// checkRulePaths makes sure every rule path names numeric leaves of the
// record. Paths below absent groups or past the end of a list are accepted.
func checkRulePaths(cfg Config) error {
	var errs []error

	probe := &record.Character{}

	for _, rule := range append(append([]Rule(nil), cfg.Scalars...), cfg.Caps...) {
		for _, p := range rule.Paths {
			f, err := fieldpath.Lookup(probe, p)

			switch {
			case missing(err):
			case err != nil:
				errs = append(errs, fmt.Errorf("rule %q: %w", rule.Key, err))
			case !f.Kind().IsNumber():
				errs = append(errs, fmt.Errorf("rule %q: path %q is %s, not a number", rule.Key, p, f.Kind()))
			}
		}
	}

	return errors.Join(errs...)
}

// Config returns the curve table with defaults applied.
func (e *Engine) Config() Config {
	return e.cfg
}

// Memory returns the range memory owned by the engine.
func (e *Engine) Memory() *Memory {
	return e.memory
}

// Reset forgets every remembered range. Call it when a record is treated as
// newly generated.
func (e *Engine) Reset() {
	e.memory.Reset()
	e.log.Debug("range memory reset")
}

// PassNames returns the pass names in execution order.
func (e *Engine) PassNames() []string {
	names := make([]string, len(e.passes))
	for i, p := range e.passes {
		names[i] = p.name
	}

	return names
}

// Recompute runs every pass over c in order. Passes that need a sub-structure
// the record does not have yet are skipped, not failed.
func (e *Engine) Recompute(c *record.Character) Report {
	if c == nil {
		return Report{Skipped: e.PassNames()}
	}

	r := &run{e: e, c: c}

	for _, p := range e.passes {
		err := p.run(r)

		switch {
		case err == nil:
		case errors.Is(err, errSkip), errors.Is(err, fieldpath.ErrAbsent):
			r.report.Skipped = append(r.report.Skipped, p.name)
			e.log.Debug("pass skipped", zap.String("pass", p.name))
		default:
			r.report.Errors = append(r.report.Errors, fmt.Errorf("%s: %w", p.name, err))
			e.log.Warn("pass failed", zap.String("pass", p.name), zap.Error(err))
		}
	}

	return r.report
}

func missing(err error) bool {
	return errors.Is(err, fieldpath.ErrAbsent) || errors.Is(err, fieldpath.ErrIndexOutOfRange)
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case float64:
		return x, true
	}

	return 0, false
}
