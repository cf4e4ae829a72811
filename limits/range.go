package limits

import (
	"math"

	"charedit/utils"
)

// FieldRange is the currently valid [Min, Max] of one quantity.
type FieldRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max" validate:"gtefield=Min"`
}

// unbounded is used for curves without an explicit domain.
var unbounded = FieldRange{Min: -math.MaxFloat64, Max: math.MaxFloat64}

// Width returns Max-Min; it is negative for an inverted range.
func (r FieldRange) Width() float64 {
	return r.Max - r.Min
}

// Contains reports whether Min <= v <= Max.
func (r FieldRange) Contains(v float64) bool {
	return utils.InRange(r.Min, v, r.Max)
}

// Clamp limits v to the range. NaN becomes Min.
func (r FieldRange) Clamp(v float64) float64 {
	return utils.Clamp(r.Min, v, r.Max)
}

// Within clips r to domain. A range lying entirely outside the domain
// collapses onto the nearest domain bound.
func (r FieldRange) Within(domain FieldRange) FieldRange {
	switch {
	case r.Max < domain.Min:
		return FieldRange{Min: domain.Min, Max: domain.Min}
	case r.Min > domain.Max:
		return FieldRange{Min: domain.Max, Max: domain.Max}
	}

	return FieldRange{Min: max(r.Min, domain.Min), Max: min(r.Max, domain.Max)}
}

// Snap shrinks r onto the grid of the given number of decimal places so that
// any rounded value inside it stays inside it. A range narrower than one grid
// step collapses to its rounded midpoint.
func (r FieldRange) Snap(precision int) FieldRange {
	scale := math.Pow(10, float64(max(precision, 0)))

	const eps = 1e-9

	lo := math.Ceil(r.Min*scale-eps) / scale
	hi := math.Floor(r.Max*scale+eps) / scale

	if lo > hi {
		mid := utils.Round((r.Min+r.Max)/2, precision)
		return FieldRange{Min: mid, Max: mid}
	}

	return FieldRange{Min: lo, Max: hi}
}

// Shift moves both bounds by delta.
func (r FieldRange) Shift(delta float64) FieldRange {
	return FieldRange{Min: r.Min + delta, Max: r.Max + delta}
}

// Rescale carries v from its position in prev to the same position in r:
// f = (v-prev.Min)/(prev.Max-prev.Min) clamped to [0, 1], then
// r.Min + f*(r.Max-r.Min). A degenerate prev gives no position, and v is
// returned unchanged.
func (r FieldRange) Rescale(prev FieldRange, v float64) float64 {
	if prev.Width() <= 0 {
		return v
	}

	return utils.Lerp(r.Min, utils.Fraction(prev.Min, v, prev.Max), r.Max)
}
