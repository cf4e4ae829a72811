package limits

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"charedit/fieldpath"
	"charedit/record"
	"charedit/utils"
)

// run is the state of one Recompute.
type run struct {
	e      *Engine
	c      *record.Character
	age    float64
	report Report
}

type limb struct {
	path string
	limb *record.Limb
}

func (r *run) limbs() []limb {
	return []limb{
		{"arms.left", &r.c.Arms.Left},
		{"arms.right", &r.c.Arms.Right},
		{"legs.left", &r.c.Legs.Left},
		{"legs.right", &r.c.Legs.Right},
	}
}

func (r *run) sex() record.Sex {
	return r.c.Identity.Sex
}

// fit moves values into rng. When the range remembered under key differs from
// rng, every value first keeps its relative position across the change. A
// value that is not a finite number restarts at the lower bound.
// Returns the fitted values and rng snapped to the precision grid.
func (r *run) fit(key string, rng FieldRange, precision int, values ...float64) ([]float64, FieldRange) {
	rng = rng.Snap(precision)
	prev, ok := r.e.memory.Get(key)

	out := make([]float64, len(values))

	for i, v := range values {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			v = rng.Min
		case ok && prev != rng:
			v = rng.Rescale(prev, v)
		}

		out[i] = utils.Round(rng.Clamp(v), precision)
	}

	r.e.memory.Put(key, rng)

	return out, rng
}

type leaf struct {
	path  string
	field fieldpath.Field
	value float64
}

// govern fits the numeric leaves at paths into rng under one key. Leaves
// below an absent group are left out; the number governed is returned.
func (r *run) govern(key string, rng FieldRange, precision int, paths ...string) (int, error) {
	leaves := make([]leaf, 0, len(paths))

	for _, p := range paths {
		f, err := r.e.resolver.Lookup(r.c, p)
		if missing(err) {
			continue
		}

		if err != nil {
			return 0, err
		}

		v, ok := number(f.Value())
		if !ok {
			return 0, fmt.Errorf("%s: %s is not a number", p, f.Kind())
		}

		leaves = append(leaves, leaf{path: p, field: f, value: v})
	}

	if len(leaves) == 0 {
		return 0, nil
	}

	values := make([]float64, len(leaves))
	for i, l := range leaves {
		values[i] = l.value
	}

	fitted, rng := r.fit(key, rng, precision, values...)

	for i, l := range leaves {
		if err := r.assign(key, l, fitted[i], rng); err != nil {
			return 0, err
		}
	}

	return len(leaves), nil
}

func (r *run) assign(key string, l leaf, v float64, rng FieldRange) error {
	if l.value == v {
		return nil
	}

	before := l.field.Value()

	if err := l.field.Assign(v, r.e.resolver.Categories()); err != nil {
		return fmt.Errorf("%s: %w", l.path, err)
	}

	r.adjusted(key, l.path, before, l.field.Value(), rng)

	return nil
}

func (r *run) setFloat(key, path string, p *float64, v float64, rng FieldRange) {
	if *p == v {
		return
	}

	r.adjusted(key, path, *p, v, rng)
	*p = v
}

func (r *run) adjusted(key, path string, before, after any, rng FieldRange) {
	r.report.Adjustments = append(r.report.Adjustments, Adjustment{
		Key:    key,
		Path:   path,
		Before: before,
		After:  after,
		Range:  rng,
	})

	r.e.log.Debug("field adjusted",
		zap.String("key", key),
		zap.String("path", path),
		zap.Any("before", before),
		zap.Any("after", after),
		zap.Float64("min", rng.Min),
		zap.Float64("max", rng.Max))
}

// identity keeps the drivers of every other pass valid: age and the enums.
func (r *run) identity() error {
	id := &r.c.Identity
	maxAge := r.e.cfg.MaxAge

	if age := utils.Clamp(0, id.Age, maxAge); age != id.Age {
		r.adjusted("age", "identity.age", id.Age, age, FieldRange{Max: float64(maxAge)})
		id.Age = age
	}

	if !utils.InRange(0, int(id.Sex), record.SexTotal-1) {
		r.adjusted("sex", "identity.sex", id.Sex, record.SexUnspecified, FieldRange{Max: float64(record.SexTotal - 1)})
		id.Sex = record.SexUnspecified
	}

	if !utils.InRange(0, int(id.Handedness), record.HandednessTotal-1) {
		r.adjusted("handedness", "identity.handedness", id.Handedness, record.HandednessRight,
			FieldRange{Max: float64(record.HandednessTotal - 1)})
		id.Handedness = record.HandednessRight
	}

	r.age = float64(id.Age)

	return nil
}

// height governs feet and inches as one quantity and normalizes inches.
func (r *run) height() error {
	h := &r.c.Body.Height
	if h.Unset() {
		return errSkip
	}

	// float math, so very large feet cannot wrap around
	total := float64(h.Feet)*12 + float64(h.Inches)

	fitted, rng := r.fit("height", r.e.cfg.Height.For(r.sex()).Range(r.age), 0, total)
	next := record.HeightFromInches(int(fitted[0]))

	if next.Feet != h.Feet {
		r.adjusted("height", "body.height.feet", h.Feet, next.Feet, rng)
	}

	if next.Inches != h.Inches {
		r.adjusted("height", "body.height.inches", h.Inches, next.Inches, rng)
	}

	*h = next

	return nil
}

func (r *run) scalars() error {
	for _, rule := range r.e.cfg.Scalars {
		curve := rule.Curve.For(r.sex())

		n, err := r.govern(rule.Key, curve.Range(r.age), curve.Precision, rule.Paths...)
		if err != nil {
			return fmt.Errorf("%s: %w", rule.Key, err)
		}

		if n == 0 {
			r.report.Skipped = append(r.report.Skipped, "scalars."+rule.Key)
		}
	}

	return nil
}

// stiffness keeps each limb within a band around 100-flexibility.
func (r *run) stiffness() error {
	tol := r.e.cfg.StiffnessTolerance

	for _, l := range r.limbs() {
		target := 100 - float64(l.limb.Flexibility)
		band := FieldRange{Min: target - tol, Max: target + tol}.Within(FieldRange{Max: 100})

		if _, err := r.govern("stiffness."+l.path, band, 0, l.path+".stiffness"); err != nil {
			return err
		}
	}

	return nil
}

// composition derives the mass range from height and mean limb strength.
func (r *run) composition() error {
	if r.c.Body.Height.Unset() {
		return errSkip
	}

	m := r.c.Body.Height.Meters()

	cfg := r.e.cfg
	limbs := r.limbs()

	var sum float64
	for _, l := range limbs {
		sum += float64(l.limb.Strength)
	}

	shift := (sum/float64(len(limbs)) - cfg.StrengthPivot) * cfg.StrengthMassShift
	rng := FieldRange{Min: cfg.BMI.Min * m * m, Max: cfg.BMI.Max * m * m}.Shift(shift).Within(cfg.MassDomain)

	_, err := r.govern("massKg", rng, 1, "body.massKg")

	return err
}

// shoe keeps the shoe size index within a window derived from height.
func (r *run) shoe() error {
	if r.c.Body.Height.Unset() {
		return errSkip
	}

	total := r.c.Body.Height.TotalInches()

	t := r.e.cfg.Shoe
	center := (float64(total) - t.OriginInches) * t.PerInch
	rng := FieldRange{Min: center - t.Window/2, Max: center + t.Window/2}.Within(FieldRange{Max: float64(t.Sizes - 1)})

	_, err := r.govern("shoeSize", rng, 0, "body.shoeSize")

	return err
}

// eyes governs the left eye and derives the right one from it.
func (r *run) eyes() error {
	eyes := r.c.Eyes
	if eyes == nil {
		return errSkip
	}

	curve := r.e.cfg.EyeAcuity.For(r.sex())

	fitted, rng := r.fit("eyeAcuity", curve.Range(r.age), curve.Precision, eyes.Left.Acuity)
	right := utils.Round(rng.Clamp(fitted[0]+r.e.cfg.PairedOffset), curve.Precision)

	r.setFloat("eyeAcuity", "eyes.left.acuity", &eyes.Left.Acuity, fitted[0], rng)
	r.setFloat("eyeAcuity", "eyes.right.acuity", &eyes.Right.Acuity, right, rng)

	if !utils.InRange(0, int(eyes.Color), record.EyeColorTotal-1) {
		r.adjusted("eyeColor", "eyes.color", eyes.Color, record.EyeColorBrown, FieldRange{Max: float64(record.EyeColorTotal - 1)})
		eyes.Color = record.EyeColorBrown
	}

	return nil
}

// caps lower values above the upper bound of their curve. Caps do not use
// the range memory.
func (r *run) caps() error {
	for _, rule := range r.e.cfg.Caps {
		curve := rule.Curve.For(r.sex())
		rng := FieldRange{Min: curve.Domain.Min, Max: curve.Range(r.age).Snap(curve.Precision).Max}

		for _, p := range rule.Paths {
			f, err := r.e.resolver.Lookup(r.c, p)
			if missing(err) {
				continue
			}

			if err != nil {
				return fmt.Errorf("%s: %w", rule.Key, err)
			}

			v, ok := number(f.Value())
			if !ok {
				return fmt.Errorf("%s: %s is not a number", p, f.Kind())
			}

			if err := r.assign(rule.Key, leaf{path: p, field: f, value: v}, rng.Clamp(v), rng); err != nil {
				return err
			}
		}
	}

	return nil
}
