package history

import (
	"reflect"

	"github.com/google/uuid"
)

// Change is one field write.
type Change struct {
	Path   string
	Before any
	After  any
}

// Checkpoint is an opaque copy of the derived state a Store keeps besides
// the record fields, such as remembered ranges.
type Checkpoint any

// Unit is one committed transaction.
type Unit struct {
	ID          uuid.UUID
	Label       string
	Changes     []Change // as recorded, in order
	Adjustments []Change // made by the recompute that followed the commit

	before Checkpoint
	after  Checkpoint
}

// Empty reports whether undoing the unit would change nothing.
func (u *Unit) Empty() bool {
	return len(u.Changes) == 0 && len(u.Adjustments) == 0
}

func same(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
