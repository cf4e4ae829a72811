package editor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"charedit/fieldpath"
	"charedit/history"
	"charedit/limits"
	"charedit/notify"
	"charedit/record"
)

var ErrNoRecord = errors.New("session has no record")

// Session is the editing surface for one character. It is not safe for
// concurrent use; serialize edits from several sources before they reach it.
type Session struct {
	rec      *record.Character
	resolver *fieldpath.Resolver
	engine   *limits.Engine
	history  *history.History
	notifier *notify.Notifier
	log      *zap.Logger

	limitsCfg  limits.Config
	limitsFile string
	historyCfg history.Config
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger shared by the session and its components.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithLimits replaces the default curve table.
func WithLimits(cfg limits.Config) Option {
	return func(s *Session) {
		s.limitsCfg = cfg
	}
}

// WithLimitsFile loads the curve table from a YAML file instead of the
// embedded default. It takes precedence over WithLimits.
func WithLimitsFile(path string) Option {
	return func(s *Session) {
		s.limitsFile = path
	}
}

// WithHistory replaces the default undo history settings.
func WithHistory(cfg history.Config) Option {
	return func(s *Session) {
		s.historyCfg = cfg
	}
}

// WithNotifier makes the session raise its events on n instead of a private
// notifier, so several sessions can share subscribers.
func WithNotifier(n *notify.Notifier) Option {
	return func(s *Session) {
		s.notifier = n
	}
}

// WithResolver sets the resolver used for Get and Set, for example one with
// narrower coercion categories.
func WithResolver(r *fieldpath.Resolver) Option {
	return func(s *Session) {
		s.resolver = r
	}
}

// New creates a session for rec. The record is treated as newly generated:
// its fields are brought into range once and that state becomes the base of
// the undo history.
func New(rec *record.Character, opts ...Option) (*Session, error) {
	if rec == nil {
		return nil, ErrNoRecord
	}

	s := &Session{
		rec:        rec,
		resolver:   fieldpath.NewResolver(),
		log:        zap.NewNop(),
		limitsCfg:  limits.DefaultConfig(),
		historyCfg: history.DefaultConfig(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.notifier == nil {
		s.notifier = notify.New(notify.WithLogger(s.log))
	}

	if s.limitsFile != "" {
		cfg, err := limits.LoadConfig(s.limitsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load curve table: %w", err)
		}

		s.limitsCfg = cfg
	}

	engine, err := limits.New(s.limitsCfg, limits.WithLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("failed to create constraint engine: %w", err)
	}

	s.engine = engine
	s.history = history.New(store{s}, s.historyCfg,
		history.WithLogger(s.log),
		history.WithNotifier(s.notifier))

	s.log = s.log.Named("editor")
	s.settle()

	return s, nil
}

// Character returns the live record. Writes made through it bypass the
// history and stay unclamped until CommitAndRecompute.
func (s *Session) Character() *record.Character {
	return s.rec
}

// Get reads the leaf at path.
func (s *Session) Get(path string) (any, error) {
	return s.resolver.Get(s.rec, path)
}

// Set writes the leaf at path directly, without history or recompute.
func (s *Session) Set(path string, v any) error {
	return s.resolver.Set(s.rec, path, v)
}

// BeginEdit opens a transaction, or joins the one already open.
func (s *Session) BeginEdit(label string) {
	s.history.Begin(label)
}

// Record adds a change to the open transaction. Both values are first
// converted to the type the leaf stores, so writing 34.0 over an int 34 is
// not a change. Values that do not convert are recorded as given and fail
// when the transaction commits.
func (s *Session) Record(path string, before, after any) error {
	return s.history.Record(path, s.native(path, before), s.native(path, after))
}

func (s *Session) native(path string, v any) any {
	if native, err := s.resolver.Convert(s.rec, path, v); err == nil {
		return native
	}

	return v
}

// EndEdit commits the transaction opened by the outermost BeginEdit.
func (s *Session) EndEdit() (*history.Unit, error) {
	return s.history.End()
}

// Discard drops the open transaction without applying it.
func (s *Session) Discard() error {
	return s.history.Discard()
}

// Undo reverts the last committed transaction.
func (s *Session) Undo() (*history.Unit, error) {
	return s.history.Undo()
}

// Redo reapplies the last undone transaction.
func (s *Session) Redo() (*history.Unit, error) {
	return s.history.Redo()
}

// CanUndo reports whether Undo has a transaction to revert.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo has a transaction to reapply.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// Subscribe registers o for every event raised by the session.
func (s *Session) Subscribe(o notify.Observer) *notify.Subscription {
	return s.notifier.Subscribe(o)
}

// Unsubscribe removes a subscription made with Subscribe.
func (s *Session) Unsubscribe(sub *notify.Subscription) bool {
	return s.notifier.Unsubscribe(sub)
}

// Notifier returns the notifier events are raised on.
func (s *Session) Notifier() *notify.Notifier {
	return s.notifier
}

// CommitAndRecompute brings every governed field back into range after
// direct writes and raises a recompute event. The adjustments it makes are
// not undoable.
func (s *Session) CommitAndRecompute() limits.Report {
	report := s.recompute()

	s.log.Info("recomputed", zap.Int("adjustments", len(report.Adjustments)))
	s.notifier.Raise(notify.Event{Kind: notify.KindRecompute})

	return report
}

// BuildEyes attaches the eyes group to a record that has none yet and brings
// it into range like CommitAndRecompute. It does nothing when the group
// already exists.
func (s *Session) BuildEyes() limits.Report {
	if s.rec.Eyes != nil {
		return limits.Report{}
	}

	s.rec.BuildEyes()
	s.log.Info("eyes built")

	return s.CommitAndRecompute()
}

// Paths lists the concrete path of every leaf of the record, list elements
// included.
func (s *Session) Paths() []string {
	return fieldpath.Leaves(s.rec)
}

// Regenerate replaces the record with rec, which is treated as newly
// generated: remembered ranges and history are dropped before it is brought
// into range.
func (s *Session) Regenerate(rec *record.Character) error {
	if rec == nil {
		return ErrNoRecord
	}

	s.rec = rec
	s.history.Clear()
	s.settle()

	s.log.Info("regenerated", zap.String("name", rec.Identity.Name))
	s.notifier.Raise(notify.Event{Kind: notify.KindReset})

	return nil
}

// Ranges returns a copy of the remembered range of every logical key.
func (s *Session) Ranges() limits.Snapshot {
	return s.engine.Memory().Snapshot()
}

// Engine returns the constraint engine of the session.
func (s *Session) Engine() *limits.Engine {
	return s.engine
}

func (s *Session) settle() {
	s.engine.Reset()
	s.recompute()
}

func (s *Session) recompute() limits.Report {
	report := s.engine.Recompute(s.rec)

	for _, err := range report.Errors {
		s.log.Warn("recompute error", zap.Error(err))
	}

	return report
}
