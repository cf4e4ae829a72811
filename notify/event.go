package notify

import (
	"github.com/google/uuid"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind tells what produced an event.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindCommit    // commit
	KindUndo      // undo
	KindRedo      // redo
	KindRecompute // recompute
	KindReset     // reset

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Event is delivered to every subscriber once per commit, undo, redo,
// recompute or reset.
type Event struct {
	Kind  Kind
	Label string    // transaction label, empty for recompute and reset
	TxID  uuid.UUID // transaction ID, uuid.Nil when no transaction is involved
	Seq   uint64    // assigned by the Notifier, starts at 1
}
