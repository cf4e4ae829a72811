package editor

import (
	"charedit/history"
	"charedit/limits"
)

// store lets the history edit the session's record and range memory.
type store struct {
	s *Session
}

func (st store) Apply(path string, v any) error {
	return st.s.Set(path, v)
}

func (st store) Recompute() []history.Change {
	report := st.s.recompute()

	changes := make([]history.Change, len(report.Adjustments))
	for i, a := range report.Adjustments {
		changes[i] = history.Change{Path: a.Path, Before: a.Before, After: a.After}
	}

	return changes
}

func (st store) Checkpoint() history.Checkpoint {
	return st.s.engine.Memory().Snapshot()
}

func (st store) Restore(c history.Checkpoint) {
	if snap, ok := c.(limits.Snapshot); ok {
		st.s.engine.Memory().Restore(snap)
	}
}
