package fieldpath_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charedit/fieldpath"
	"charedit/primitive"
	"charedit/record"
)

func TestGet(t *testing.T) {
	c := record.Sample()

	tests := []struct {
		path     string
		expected any
	}{
		{"identity.name", "Ada Marsh"},
		{"identity.age", 34},
		{"identity.sex", record.SexFemale},
		{"body.height.feet", 5},
		{"body.massKg", 63.5},
		{"arms.left.strength", 55},
		{"eyes.color", record.EyeColorHazel},
		{"eyes.right.acuity", 1.0},
		{"habits.smoker", false},
		{"relationships.people[1].name", "Ivy Chen"},
		{"relationships.people[2].kind", record.RelationRival},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := fieldpath.Get(c, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSet_RoundTrip(t *testing.T) {
	tests := []struct {
		path     string
		value    any
		expected any
	}{
		{"identity.age", 41, 41},
		{"identity.age", int8(12), 12},
		{"identity.age", 30.0, 30},
		{"identity.age", "52", 52},
		{"identity.name", "Bo", "Bo"},
		{"identity.sex", "male", record.SexMale},
		{"identity.sex", "MALE", record.SexMale},
		{"identity.sex", 2, record.SexFemale},
		{"identity.sex", record.SexUnspecified, record.SexUnspecified},
		{"identity.handedness", "ambidextrous", record.HandednessAmbidextrous},
		{"body.massKg", 70, 70.0},
		{"body.massKg", float32(71.5), 71.5},
		{"body.massKg", "72.25", 72.25},
		{"habits.smoker", true, true},
		{"habits.smoker", 1, true},
		{"habits.smoker", "no", false},
		{"habits.smoker", "on", true},
		{"hair.style", "crop", "crop"},
		{"relationships.people[0].closeness", 12, 12},
		{"relationships.people[0].kind", "partner", record.RelationPartner},
		{"relationships.people[2].alive", false, false},
		{"eyes.left.acuity", 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c := record.Sample()

			require.NoError(t, fieldpath.Set(c, tt.path, tt.value))

			got, err := fieldpath.Get(c, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got, spew.Sdump(c))
		})
	}
}

func TestSet_WritesInPlace(t *testing.T) {
	c := record.Sample()

	require.NoError(t, fieldpath.Set(c, "legs.right.flexibility", 33))
	require.NoError(t, fieldpath.Set(c, "body.height.inches", 11))
	require.NoError(t, fieldpath.Set(c, "relationships.people[1].closeness", 99))

	assert.Equal(t, 33, c.Legs.Right.Flexibility)
	assert.Equal(t, 11, c.Body.Height.Inches)
	assert.Equal(t, 99, c.Relationships.People[1].Closeness)
}

func TestSet_CoercionErrors(t *testing.T) {
	tests := []struct {
		path   string
		value  any
		reason error
	}{
		{"identity.age", 30.5, primitive.ErrLossy},
		{"identity.age", "thirty", primitive.ErrSyntax},
		{"identity.age", struct{}{}, primitive.ErrNotAllowed},
		{"identity.sex", "other", primitive.ErrUnknownName},
		{"identity.sex", 7, primitive.ErrOutOfRange},
		{"habits.smoker", 2, primitive.ErrOutOfRange},
		{"habits.smoker", "maybe", primitive.ErrSyntax},
		{"hair.style", []int{1}, primitive.ErrNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c := record.Sample()
			before := c.Clone()

			err := fieldpath.Set(c, tt.path, tt.value)
			require.Error(t, err)

			var cerr *fieldpath.CoercionError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.path, cerr.Path)
			assert.ErrorIs(t, err, tt.reason)

			assert.Equal(t, before, c, "failed set must not write")
		})
	}
}

func TestResolver_WithCategories(t *testing.T) {
	c := record.Sample()
	r := fieldpath.NewResolver(fieldpath.WithCategories(primitive.CategorySafeNumber))

	assert.Equal(t, primitive.CategorySafeNumber, r.Categories())
	require.NoError(t, r.Set(c, "identity.age", 40))

	err := r.Set(c, "identity.age", "41")
	assert.ErrorIs(t, err, primitive.ErrNotAllowed)

	err = r.Set(c, "identity.sex", "male")
	assert.ErrorIs(t, err, primitive.ErrNotAllowed)
	assert.Equal(t, 40, c.Identity.Age)
}

// Scenario: indexing a list past its end is a path error, not a crash.
func TestGet_ListIndexBounds(t *testing.T) {
	c := record.Sample()
	require.Len(t, c.Relationships.People, 3)

	got, err := fieldpath.Get(c, "relationships.people[2].closeness")
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	c.Relationships.People = c.Relationships.People[:2]

	_, err = fieldpath.Get(c, "relationships.people[2].closeness")
	require.Error(t, err)

	var perr *fieldpath.PathError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, fieldpath.ErrIndexOutOfRange)
	assert.Equal(t, "people[2]", perr.Segment)
	assert.Contains(t, err.Error(), "index 2 with length 2")

	c.Relationships.People = nil
	_, err = fieldpath.Get(c, "relationships.people[0].closeness")
	assert.ErrorIs(t, err, fieldpath.ErrIndexOutOfRange)
}

func TestLookup_PathErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		reason error
	}{
		{"unknown root", "identiy.age", fieldpath.ErrUnknownField},
		{"unknown leaf", "arms.left.strenght", fieldpath.ErrUnknownField},
		{"index on group", "arms[0].left", fieldpath.ErrNotList},
		{"index on leaf", "identity.age[1]", fieldpath.ErrNotList},
		{"list without index", "relationships.people.closeness", fieldpath.ErrNotGroup},
		{"through leaf", "identity.age.years", fieldpath.ErrNotGroup},
		{"syntax", "identity..age", fieldpath.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fieldpath.Lookup(record.Sample(), tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.reason)

			var perr *fieldpath.PathError
			require.ErrorAs(t, err, &perr)
		})
	}
}

func TestLookup_Suggestion(t *testing.T) {
	_, err := fieldpath.Lookup(record.Sample(), "arms.left.strenght")

	var perr *fieldpath.PathError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "strength", perr.Suggestion)
	assert.Equal(t, "strenght", perr.Segment)
	assert.Contains(t, perr.Error(), `did you mean "strength"?`)

	_, err = fieldpath.Lookup(record.Sample(), "zzz")
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, perr.Suggestion)
}

func TestAbsentGroup(t *testing.T) {
	c := record.Sample()
	c.Eyes = nil

	_, err := fieldpath.Get(c, "eyes.left.acuity")
	assert.ErrorIs(t, err, fieldpath.ErrAbsent)

	err = fieldpath.Set(c, "eyes.color", "blue")
	assert.ErrorIs(t, err, fieldpath.ErrAbsent)

	f, err := fieldpath.Lookup(c, "eyes")
	require.NoError(t, err)
	assert.True(t, f.IsAbsent())

	_, err = fieldpath.Get(c, "eyes")
	assert.ErrorIs(t, err, fieldpath.ErrAbsent)

	c.BuildEyes()
	require.NoError(t, fieldpath.Set(c, "eyes.color", "blue"))
	assert.Equal(t, record.EyeColorBlue, c.Eyes.Color)
}

func TestGet_NonLeaf(t *testing.T) {
	c := record.Sample()

	_, err := fieldpath.Get(c, "arms.left")
	assert.ErrorIs(t, err, fieldpath.ErrNotLeaf)

	err = fieldpath.Set(c, "relationships.people", 1)
	assert.ErrorIs(t, err, fieldpath.ErrNotLeaf)

	f, err := fieldpath.Lookup(c, "relationships.people")
	require.NoError(t, err)
	assert.Equal(t, primitive.KindList, f.Kind())
	assert.Equal(t, 3, f.Len())
}

func TestField_Enum(t *testing.T) {
	c := record.Sample()

	f, err := fieldpath.Lookup(c, "identity.sex")
	require.NoError(t, err)

	assert.Equal(t, primitive.KindPrimitiveEnum, f.Kind())
	assert.Equal(t, []string{"unspecified", "male", "female"}, f.Names())
	assert.Equal(t, []string{"friend", "family", "partner", "rival", "colleague"},
		fieldpath.EnumNames[record.RelationKind](record.RelationKindTotal))
}

func TestResolver_Convert(t *testing.T) {
	c := record.Sample()
	r := fieldpath.NewResolver()

	tests := []struct {
		path     string
		value    any
		expected any
	}{
		{"identity.age", 34.0, 34},
		{"identity.age", "41", 41},
		{"identity.sex", "Male", record.SexMale},
		{"identity.sex", 2, record.SexFemale},
		{"habits.smoker", "yes", true},
		{"body.massKg", 70, 70.0},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := r.Convert(c, tt.path, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	assert.Equal(t, record.Sample(), c, "Convert does not write")

	_, err := r.Convert(c, "body.massKg", "NaN")
	var coercionErr *fieldpath.CoercionError
	require.ErrorAs(t, err, &coercionErr)
	assert.ErrorIs(t, err, primitive.ErrNotFinite)

	_, err = r.Convert(c, "body", 1)
	assert.ErrorIs(t, err, fieldpath.ErrNotLeaf)
}
