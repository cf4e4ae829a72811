package editor

import (
	"fmt"

	"charedit/history"
)

// Tx records changes for Edit. Each Set reads the value the field will have
// at that point of the transaction and records it as the before value.
type Tx struct {
	s *Session
}

// Set records a change of path to v. The value is converted to the type the
// leaf stores right away, so a value the leaf cannot hold fails here rather
// than at commit, and setting a field to what it already holds records
// nothing.
func (tx *Tx) Set(path string, v any) error {
	before, err := tx.Get(path)
	if err != nil {
		return err
	}

	after, err := tx.s.resolver.Convert(tx.s.rec, path, v)
	if err != nil {
		return err
	}

	return tx.s.history.Record(path, before, after)
}

// Get returns the value path will have once the transaction commits: the
// last value recorded for it, or the current one.
func (tx *Tx) Get(path string) (any, error) {
	pending := tx.s.history.Pending()
	for i := len(pending) - 1; i >= 0; i-- {
		if pending[i].Path == path {
			return pending[i].After, nil
		}
	}

	return tx.s.Get(path)
}

// Edit runs fn inside a transaction labelled label and commits it. If fn
// fails, the open transaction is discarded, including any enclosing one.
func (s *Session) Edit(label string, fn func(tx *Tx) error) (*history.Unit, error) {
	s.BeginEdit(label)

	if err := fn(&Tx{s: s}); err != nil {
		_ = s.Discard()
		return nil, fmt.Errorf("edit %q: %w", label, err)
	}

	return s.EndEdit()
}
