package history

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"charedit/notify"
)

var (
	ErrNoTransaction  = errors.New("no open transaction")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrNothingToRedo  = errors.New("nothing to redo")
	ErrReapplyFailure = errors.New("re-applying a change failed")
)

// Store is the state a History edits.
type Store interface {
	// Apply writes v to the field at path.
	Apply(path string, v any) error
	// Recompute re-derives dependent fields and returns what it changed.
	Recompute() []Change
	Checkpoint() Checkpoint
	Restore(Checkpoint)
}

// Notifier receives one event per commit, undo and redo.
type Notifier interface {
	Raise(notify.Event) uint64
}

// Config bounds the undo history.
type Config struct {
	// MaxDepth is the number of units kept for undo; the oldest are dropped.
	MaxDepth int `yaml:"maxDepth"`
}

// DefaultConfig keeps the last 100 transactions.
func DefaultConfig() Config {
	return Config{MaxDepth: 100}
}

// History is a transaction buffer with bounded undo and redo stacks. It is
// not safe for concurrent use.
type History struct {
	cfg      Config
	store    Store
	notifier Notifier
	log      *zap.Logger

	open  *Unit
	depth int // nesting of Begin calls

	undo []*Unit
	redo []*Unit
}

// Option configures a History.
type Option func(*History)

// WithLogger sets the logger for commits, undo and redo.
func WithLogger(l *zap.Logger) Option {
	return func(h *History) {
		h.log = l
	}
}

// WithNotifier sets where events are raised. Without one no events are sent.
func WithNotifier(n Notifier) Option {
	return func(h *History) {
		h.notifier = n
	}
}

// New creates a History over store. A non-positive MaxDepth falls back to
// the default.
func New(store Store, cfg Config, opts ...Option) *History {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultConfig().MaxDepth
	}

	h := &History{
		cfg:   cfg,
		store: store,
		log:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(h)
	}

	h.log = h.log.Named("history")

	return h
}

// Begin opens a transaction. Begin inside an open transaction nests: the
// inner label is ignored and only the outermost End commits.
func (h *History) Begin(label string) {
	h.depth++

	if h.open != nil {
		return
	}

	h.open = &Unit{Label: label}
}

// Open reports whether a transaction is accepting changes.
func (h *History) Open() bool {
	return h.open != nil
}

// Record appends a change to the open transaction. A change whose before
// and after are equal is dropped.
func (h *History) Record(path string, before, after any) error {
	if h.open == nil {
		return fmt.Errorf("record %s: %w", path, ErrNoTransaction)
	}

	if same(before, after) {
		return nil
	}

	h.open.Changes = append(h.open.Changes, Change{Path: path, Before: before, After: after})

	return nil
}

// Pending returns the changes recorded so far in the open transaction.
func (h *History) Pending() []Change {
	if h.open == nil {
		return nil
	}

	return h.open.Changes
}

// End closes the innermost Begin. Closing the outermost one applies every
// after value, recomputes, pushes the unit for undo, clears redo and raises a
// commit event. A transaction without changes still recomputes and notifies;
// it is only kept for undo when the recompute adjusted something.
//
// If a change cannot be applied, the ones already applied are reverted, the
// transaction is dropped and nothing is recomputed.
func (h *History) End() (*Unit, error) {
	if h.open == nil {
		return nil, ErrNoTransaction
	}

	h.depth--
	if h.depth > 0 {
		return nil, nil
	}

	u := h.open
	h.open = nil
	u.ID = uuid.New()
	u.before = h.store.Checkpoint()

	for i, c := range u.Changes {
		if err := h.store.Apply(c.Path, c.After); err != nil {
			h.revert(u.Changes[:i])
			return nil, fmt.Errorf("commit %q: %w", u.Label, err)
		}
	}

	u.Adjustments = h.store.Recompute()
	u.after = h.store.Checkpoint()

	if !u.Empty() {
		h.push(u)
		h.redo = nil
	}

	h.log.Info("committed",
		zap.String("label", u.Label),
		zap.Stringer("tx", u.ID),
		zap.Int("changes", len(u.Changes)),
		zap.Int("adjustments", len(u.Adjustments)))

	h.raise(notify.KindCommit, u)

	return u, nil
}

// Discard drops the open transaction, however deeply nested, without
// applying it.
func (h *History) Discard() error {
	if h.open == nil {
		return ErrNoTransaction
	}

	h.log.Debug("discarded", zap.String("label", h.open.Label), zap.Int("changes", len(h.open.Changes)))

	h.open = nil
	h.depth = 0

	return nil
}

// Undo reverts the last committed unit: adjustments first, then changes,
// both in reverse order, then restores the derived state and recomputes.
func (h *History) Undo() (*Unit, error) {
	if h.open != nil {
		return nil, fmt.Errorf("undo: transaction %q is open", h.open.Label)
	}

	if len(h.undo) == 0 {
		return nil, ErrNothingToUndo
	}

	u := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	errs := h.revert(u.Adjustments)
	errs = append(errs, h.revert(u.Changes)...)

	h.store.Restore(u.before)
	h.settle(u)

	h.redo = append(h.redo, u)

	h.log.Info("undone", zap.String("label", u.Label), zap.Stringer("tx", u.ID))
	h.raise(notify.KindUndo, u)

	return u, errors.Join(errs...)
}

// Redo re-applies the last undone unit: changes first, then adjustments,
// both in order, then restores the derived state and recomputes.
func (h *History) Redo() (*Unit, error) {
	if h.open != nil {
		return nil, fmt.Errorf("redo: transaction %q is open", h.open.Label)
	}

	if len(h.redo) == 0 {
		return nil, ErrNothingToRedo
	}

	u := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	errs := h.reapply(u.Changes)
	errs = append(errs, h.reapply(u.Adjustments)...)

	h.store.Restore(u.after)
	h.settle(u)

	h.push(u)

	h.log.Info("redone", zap.String("label", u.Label), zap.Stringer("tx", u.ID))
	h.raise(notify.KindRedo, u)

	return u, errors.Join(errs...)
}

// CanUndo reports whether Undo has a unit to revert.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether Redo has a unit to re-apply.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Depth returns the number of units available to undo.
func (h *History) Depth() int {
	return len(h.undo)
}

// Clear forgets both stacks and any open transaction.
func (h *History) Clear() {
	h.undo, h.redo = nil, nil
	h.open, h.depth = nil, 0
}

func (h *History) push(u *Unit) {
	h.undo = append(h.undo, u)

	if over := len(h.undo) - h.cfg.MaxDepth; over > 0 {
		clear(h.undo[:over])
		h.undo = h.undo[over:]
	}
}

// settle recomputes after a replay. The replay restored a state the
// recompute already accepted once, so any adjustment here is unexpected.
func (h *History) settle(u *Unit) {
	if adj := h.store.Recompute(); len(adj) > 0 {
		h.log.Warn("recompute adjusted a replayed state",
			zap.String("label", u.Label),
			zap.Stringer("tx", u.ID),
			zap.Int("adjustments", len(adj)))
	}
}

func (h *History) revert(changes []Change) []error {
	var errs []error

	for i := len(changes) - 1; i >= 0; i-- {
		if err := h.apply(changes[i].Path, changes[i].Before); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func (h *History) reapply(changes []Change) []error {
	var errs []error

	for _, c := range changes {
		if err := h.apply(c.Path, c.After); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func (h *History) apply(path string, v any) error {
	if err := h.store.Apply(path, v); err != nil {
		h.log.Warn("re-applying change failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %s: %w", ErrReapplyFailure, path, err)
	}

	return nil
}

func (h *History) raise(kind notify.Kind, u *Unit) {
	if h.notifier == nil {
		return
	}

	h.notifier.Raise(notify.Event{Kind: kind, Label: u.Label, TxID: u.ID})
}
