package limits

import (
	"maps"
	"slices"
)

// Memory holds the last range computed for every logical key. Keys name a
// quantity, not a field: left and right arm flexibility share one entry.
type Memory struct {
	ranges map[string]FieldRange
}

// Snapshot is a detached copy of a Memory.
type Snapshot map[string]FieldRange

// NewMemory returns an empty range memory.
func NewMemory() *Memory {
	return &Memory{ranges: make(map[string]FieldRange)}
}

// Get returns the range remembered under key.
func (m *Memory) Get(key string) (FieldRange, bool) {
	r, ok := m.ranges[key]
	return r, ok
}

// Put remembers r under key, replacing any earlier range.
func (m *Memory) Put(key string, r FieldRange) {
	m.ranges[key] = r
}

// Reset forgets every range.
func (m *Memory) Reset() {
	clear(m.ranges)
}

// Len returns the number of remembered keys.
func (m *Memory) Len() int {
	return len(m.ranges)
}

// Keys returns the remembered keys in sorted order.
func (m *Memory) Keys() []string {
	return slices.Sorted(maps.Keys(m.ranges))
}

// Snapshot copies the current contents.
func (m *Memory) Snapshot() Snapshot {
	return maps.Clone(m.ranges)
}

// Restore replaces the contents with a snapshot. The snapshot is copied, so
// it can be restored again later.
func (m *Memory) Restore(s Snapshot) {
	clear(m.ranges)
	maps.Copy(m.ranges, s)
}
