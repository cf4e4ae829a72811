package limits

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"charedit/fieldpath"
	"charedit/record"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	e, err := New(DefaultConfig(), opts...)
	require.NoError(t, err)

	return e
}

func findAdjustment(r Report, path string) (Adjustment, bool) {
	for _, a := range r.Adjustments {
		if a.Path == path {
			return a, true
		}
	}

	return Adjustment{}, false
}

// oddCharacter has nearly every governed value out of range.
func oddCharacter() *record.Character {
	c := record.Sample()
	c.Identity.Age = 80
	c.Identity.Sex = record.SexMale
	c.Body.Height = record.Height{Feet: 9, Inches: 4}
	c.Body.MassKg = 10
	c.Body.ShoeSize = 99
	c.Arms.Left.Strength = 500
	c.Arms.Right.Flexibility = -20
	c.Legs.Left.Stiffness = 100
	c.Eyes.Left.Acuity = 5
	c.Eyes.Right.Acuity = 0
	c.Skin.Wrinkles = -3
	c.Skin.Scars = 50
	c.Hair.Greyness = 100
	c.Fitness.Stamina = 0.04
	c.Fitness.Reflexes = 99.99

	return c
}

func TestEngine_PassNames(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, []string{"identity", "height", "scalars", "stiffness", "composition", "shoe", "eyes", "caps"},
		e.PassNames())
}

func TestEngine_SampleIsStable(t *testing.T) {
	e := newEngine(t)
	c := record.Sample()

	report := e.Recompute(c)

	assert.False(t, report.Changed(), spew.Sdump(report.Adjustments))
	assert.Empty(t, report.Skipped)
	require.NoError(t, report.Err())
	assert.Equal(t, 14, e.Memory().Len(), e.Memory().Keys())
}

// Scenario: a value at the middle of its range stays at the middle when an
// edit to age moves the range, instead of being clamped to the new minimum.
func TestEngine_PreservesRelativePosition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scalars = []Rule{{
		Key:   "armStrength",
		Paths: []string{"arms.left.strength"},
		Curve: SexCurves{Curve: rampCurve()},
	}}

	e, err := New(cfg)
	require.NoError(t, err)

	c := record.Sample()
	c.Identity.Age = 10
	c.Arms.Left.Strength = 30

	e.Recompute(c)
	require.Equal(t, 30, c.Arms.Left.Strength)

	remembered, ok := e.Memory().Get("armStrength")
	require.True(t, ok)
	require.Equal(t, FieldRange{10, 50}, remembered)

	c.Identity.Age = 30
	report := e.Recompute(c)

	assert.Equal(t, 65, c.Arms.Left.Strength, "0.5 of [40,90]")
	assert.NotEqual(t, 40, c.Arms.Left.Strength, "naive clamp")

	adj, ok := findAdjustment(report, "arms.left.strength")
	require.True(t, ok)
	assert.Equal(t, Adjustment{
		Key:    "armStrength",
		Path:   "arms.left.strength",
		Before: 30,
		After:  65,
		Range:  FieldRange{40, 90},
	}, adj)
}

// Scenario: an absurd direct write is pulled into the current range.
func TestEngine_ClampsDirectWrite(t *testing.T) {
	for _, warm := range []bool{true, false} {
		e := newEngine(t)
		c := record.Sample()

		if warm {
			e.Recompute(c)
		}

		require.NoError(t, fieldpath.Set(c, "arms.left.strength", 9999))
		e.Recompute(c)

		rng := e.Config().Scalars[0].Curve.For(c.Identity.Sex).Range(float64(c.Identity.Age))
		assert.True(t, rng.Contains(float64(c.Arms.Left.Strength)), "%d not in %v", c.Arms.Left.Strength, rng)
		assert.Equal(t, 90, c.Arms.Left.Strength)
	}
}

func TestEngine_Idempotent(t *testing.T) {
	young := record.Sample()
	young.Identity.Age = 5

	unbuilt := record.Sample()
	unbuilt.Eyes = nil

	tests := map[string]*record.Character{
		"sample":  record.Sample(),
		"young":   young,
		"odd":     oddCharacter(),
		"unbuilt": unbuilt,
		"empty":   {},
	}

	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEngine(t)

			first := e.Recompute(c)
			require.NoError(t, first.Err())

			before := c.Clone()
			memory := e.Memory().Snapshot()

			second := e.Recompute(c)

			assert.False(t, second.Changed(), spew.Sdump(second.Adjustments))
			assert.Empty(t, cmp.Diff(before, c))
			assert.Empty(t, cmp.Diff(memory, e.Memory().Snapshot()))
		})
	}
}

func TestEngine_RangeContainment(t *testing.T) {
	e := newEngine(t)
	c := oddCharacter()

	report := e.Recompute(c)
	require.NoError(t, report.Err())
	assert.True(t, report.Changed())

	age := float64(c.Identity.Age)

	for _, rule := range e.Config().Scalars {
		curve := rule.Curve.For(c.Identity.Sex)
		rng := curve.Range(age).Snap(curve.Precision)

		for _, p := range rule.Paths {
			v, err := fieldpath.Get(c, p)
			require.NoError(t, err)

			n, _ := number(v)
			assert.True(t, rng.Contains(n), "%s=%v not in %v", p, v, rng)
		}
	}

	governed := map[string]float64{
		"massKg":               c.Body.MassKg,
		"shoeSize":             float64(c.Body.ShoeSize),
		"height":               float64(c.Body.Height.TotalInches()),
		"eyeAcuity":            c.Eyes.Left.Acuity,
		"stiffness.arms.left":  float64(c.Arms.Left.Stiffness),
		"stiffness.arms.right": float64(c.Arms.Right.Stiffness),
		"stiffness.legs.left":  float64(c.Legs.Left.Stiffness),
		"stiffness.legs.right": float64(c.Legs.Right.Stiffness),
	}

	for key, v := range governed {
		rng, ok := e.Memory().Get(key)
		require.True(t, ok, key)
		assert.True(t, rng.Contains(v), "%s=%v not in %v", key, v, rng)
	}

	assert.True(t, c.Body.Height.Inches < 12)
	assert.Equal(t, c.Eyes.Left.Acuity, c.Eyes.Right.Acuity)

	for _, rule := range e.Config().Caps {
		curve := rule.Curve.For(c.Identity.Sex)
		limit := curve.Range(age).Snap(curve.Precision).Max

		for _, p := range rule.Paths {
			v, err := fieldpath.Get(c, p)
			require.NoError(t, err)

			n, _ := number(v)
			assert.LessOrEqual(t, n, limit, p)
			assert.GreaterOrEqual(t, n, curve.Domain.Min, p)
		}
	}
}

func TestEngine_SkipsMissingStructure(t *testing.T) {
	e := newEngine(t)

	c := record.Sample()
	c.Eyes = nil

	report := e.Recompute(c)
	assert.Equal(t, []string{"eyes"}, report.Skipped)
	require.NoError(t, report.Err())

	report = e.Recompute(&record.Character{})
	assert.Equal(t, []string{"height", "composition", "shoe", "eyes"}, report.Skipped)
	require.NoError(t, report.Err())

	report = e.Recompute(nil)
	assert.Equal(t, e.PassNames(), report.Skipped)
}

func TestEngine_RuleBelowAbsentGroupIsSkipped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scalars = append(cfg.Scalars, Rule{
		Key:   "acuityCopy",
		Paths: []string{"eyes.right.acuity"},
		Curve: SexCurves{Curve: Curve{Max: 1, Width: 1, Precision: 2}},
	})

	e, err := New(cfg)
	require.NoError(t, err)

	c := record.Sample()
	c.Eyes = nil

	report := e.Recompute(c)
	assert.Contains(t, report.Skipped, "scalars.acuityCopy")

	_, ok := e.Memory().Get("acuityCopy")
	assert.False(t, ok, "no range remembered for a quantity that was not governed")
}

func TestEngine_Identity(t *testing.T) {
	e := newEngine(t)

	c := record.Sample()
	c.Identity.Age = 300
	c.Identity.Sex = record.Sex(9)
	c.Identity.Handedness = record.Handedness(-1)

	report := e.Recompute(c)

	assert.Equal(t, 120, c.Identity.Age)
	assert.Equal(t, record.SexUnspecified, c.Identity.Sex)
	assert.Equal(t, record.HandednessRight, c.Identity.Handedness)

	adj, ok := findAdjustment(report, "identity.age")
	require.True(t, ok)
	assert.Equal(t, 300, adj.Before)
	assert.Equal(t, 120, adj.After)

	c.Identity.Age = -4
	e.Recompute(c)
	assert.Zero(t, c.Identity.Age)
}

func TestEngine_HeightIsNormalized(t *testing.T) {
	e := newEngine(t)

	c := record.Sample()
	c.Body.Height = record.Height{Feet: 4, Inches: 14}

	report := e.Recompute(c)

	assert.Equal(t, record.Height{Feet: 5, Inches: 2}, c.Body.Height)

	feet, ok := findAdjustment(report, "body.height.feet")
	require.True(t, ok)
	assert.Equal(t, 4, feet.Before)
	assert.Equal(t, 5, feet.After)

	inches, ok := findAdjustment(report, "body.height.inches")
	require.True(t, ok)
	assert.Equal(t, 14, inches.Before)
	assert.Equal(t, 2, inches.After)
}

func TestEngine_NegativeHeightIsClamped(t *testing.T) {
	tests := []struct {
		name   string
		height record.Height
	}{
		{"negative inches", record.Height{Feet: 5, Inches: -70}},
		{"negative feet", record.Height{Feet: -3, Inches: 7}},
		{"feet overflowing int", record.Height{Feet: math.MaxInt / 2, Inches: 11}},
		{"feet underflowing int", record.Height{Feet: math.MinInt / 2, Inches: -11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			c := record.Sample()
			e.Recompute(c)

			c.Body.Height = tt.height
			report := e.Recompute(c)

			require.NoError(t, report.Err())
			assert.Empty(t, report.Skipped)

			rng, ok := e.Memory().Get("height")
			require.True(t, ok)
			assert.True(t, rng.Contains(float64(c.Body.Height.TotalInches())), "%+v not in %+v", c.Body.Height, rng)
			assert.True(t, c.Body.Height.Inches >= 0 && c.Body.Height.Inches < 12)

			assert.True(t, report.Changed())
			assert.False(t, e.Recompute(c).Changed(), "clamped height is stable")
		})
	}
}

func TestEngine_UnsetHeightIsSkipped(t *testing.T) {
	e := newEngine(t)

	c := record.Sample()
	c.Body.Height = record.Height{}

	report := e.Recompute(c)
	assert.Equal(t, []string{"height", "composition", "shoe"}, report.Skipped)
	assert.Equal(t, record.Height{}, c.Body.Height)
}

func TestEngine_NonFiniteFloatsAreRestarted(t *testing.T) {
	e := newEngine(t)

	c := record.Sample()
	e.Recompute(c)

	c.Body.MassKg = math.NaN()
	c.Eyes.Left.Acuity = math.Inf(1)
	c.Fitness.Balance = math.NaN()
	report := e.Recompute(c)
	require.NoError(t, report.Err())

	mass, ok := e.Memory().Get("massKg")
	require.True(t, ok)
	assert.Equal(t, mass.Min, c.Body.MassKg)

	acuity, ok := e.Memory().Get("eyeAcuity")
	require.True(t, ok)
	assert.Equal(t, acuity.Min, c.Eyes.Left.Acuity)
	assert.True(t, acuity.Contains(c.Eyes.Right.Acuity))

	assert.False(t, math.IsNaN(c.Fitness.Balance))

	adj, ok := findAdjustment(report, "body.massKg")
	require.True(t, ok)
	assert.True(t, math.IsNaN(adj.Before.(float64)))
}

func TestEngine_StiffnessFollowsFlexibility(t *testing.T) {
	e := newEngine(t)

	c := record.Sample()
	e.Recompute(c)

	c.Arms.Left.Flexibility = 90
	e.Recompute(c)

	// band [25,55] moved to [0,25]; 40 sat at the middle
	assert.Equal(t, 90, c.Arms.Left.Flexibility)
	assert.Equal(t, 13, c.Arms.Left.Stiffness)
	assert.Equal(t, 40, c.Arms.Right.Stiffness, "other limbs untouched")
}

func TestEngine_PairedEyes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PairedOffset = 0.1

	e, err := New(cfg)
	require.NoError(t, err)

	c := record.Sample()
	c.Eyes.Right.Acuity = 0.3
	c.Eyes.Color = record.EyeColor(42)

	report := e.Recompute(c)

	assert.Equal(t, 1.0, c.Eyes.Left.Acuity)
	assert.Equal(t, 1.1, c.Eyes.Right.Acuity)
	assert.Equal(t, record.EyeColorBrown, c.Eyes.Color)

	adj, ok := findAdjustment(report, "eyes.right.acuity")
	require.True(t, ok)
	assert.Equal(t, 0.3, adj.Before)
}

func TestEngine_Caps(t *testing.T) {
	e := newEngine(t)

	c := record.Sample()
	c.Skin.Wrinkles = 90
	e.Recompute(c)
	assert.Equal(t, 26, c.Skin.Wrinkles)

	c.Identity.Age = 10
	c.Skin.Wrinkles = 12
	e.Recompute(c)
	assert.Equal(t, 7, c.Skin.Wrinkles)

	// a cap never raises a value
	c.Identity.Age = 80
	e.Recompute(c)
	assert.Equal(t, 7, c.Skin.Wrinkles)
}

func TestEngine_Reset(t *testing.T) {
	e := newEngine(t)

	e.Recompute(record.Sample())
	require.NotZero(t, e.Memory().Len())

	e.Reset()
	assert.Zero(t, e.Memory().Len())
}

func TestEngine_LogsAdjustments(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := newEngine(t, WithLogger(zap.New(core)))

	c := record.Sample()
	c.Arms.Left.Strength = 9999
	e.Recompute(c)

	adjusted := logs.FilterMessage("field adjusted").FilterField(zap.String("path", "arms.left.strength"))
	require.Equal(t, 1, adjusted.Len())
	assert.Equal(t, "limits", adjusted.All()[0].LoggerName)

	c.Eyes = nil
	e.Recompute(c)
	assert.Equal(t, 1, logs.FilterMessage("pass skipped").FilterField(zap.String("pass", "eyes")).Len())
}

func TestNew_RejectsBadPaths(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"unknown field", "arms.left.strenght", `did you mean "strength"?`},
		{"not a number", "hair.style", "not a number"},
		{"group", "arms.left", "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Scalars = append(cfg.Scalars, Rule{Key: "bogus", Paths: []string{tt.path}})

			_, err := New(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	cfg := DefaultConfig()
	cfg.Scalars = append(cfg.Scalars, Rule{
		Key:   "closeness",
		Paths: []string{"relationships.people[0].closeness", "eyes.left.acuity"},
	})

	_, err := New(cfg)
	assert.NoError(t, err, "paths past list ends or below absent groups are accepted")
}
