package limits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("flexibility")
	assert.False(t, ok)

	m.Put("flexibility", FieldRange{53, 93})
	m.Put("armStrength", FieldRange{40, 90})

	r, ok := m.Get("flexibility")
	assert.True(t, ok)
	assert.Equal(t, FieldRange{53, 93}, r)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"armStrength", "flexibility"}, m.Keys())

	snap := m.Snapshot()
	m.Put("flexibility", FieldRange{0, 1})
	m.Put("height", FieldRange{60, 69})

	assert.Equal(t, FieldRange{53, 93}, snap["flexibility"], "snapshot is detached")

	m.Restore(snap)
	assert.Equal(t, 2, m.Len())

	r, _ = m.Get("flexibility")
	assert.Equal(t, FieldRange{53, 93}, r)

	m.Put("x", FieldRange{1, 2})
	assert.NotContains(t, snap, "x", "restore copies the snapshot")

	m.Reset()
	assert.Zero(t, m.Len())
}
