package limits

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"charedit/record"
)

// Curve describes how the valid range of a quantity moves with age.
//
// The center ramps linearly from Base at birth to Max at PeakAge, holds
// until DeclineAge and then moves by -Rate per year (a negative Rate makes
// it grow again). The width ramps from BaseWidth to Width over the same
// [0, PeakAge) span. The resulting range is clipped to Domain.
type Curve struct {
	Base       float64    `yaml:"base"`
	Max        float64    `yaml:"max"`
	PeakAge    float64    `yaml:"peakAge" validate:"gte=0"`
	DeclineAge float64    `yaml:"declineAge" validate:"gtefield=PeakAge"`
	Rate       float64    `yaml:"rate"`
	Width      float64    `yaml:"width" validate:"gte=0"`
	BaseWidth  float64    `yaml:"baseWidth" validate:"gte=0"` // 0 means same as Width
	Domain     FieldRange `yaml:"domain"`
	Precision  int        `yaml:"precision" validate:"gte=0,lte=6"` // decimal places, 0 for integers
}

// Center returns the middle of the range at the given age.
func (c Curve) Center(age float64) float64 {
	switch {
	case age < c.PeakAge && c.PeakAge > 0:
		return c.Base + (c.Max-c.Base)*age/c.PeakAge
	case age <= c.DeclineAge:
		return c.Max
	}

	return c.Max - c.Rate*(age-c.DeclineAge)
}

// Span returns the width of the range at the given age.
func (c Curve) Span(age float64) float64 {
	if age < c.PeakAge && c.PeakAge > 0 && c.BaseWidth > 0 {
		return c.BaseWidth + (c.Width-c.BaseWidth)*age/c.PeakAge
	}

	return c.Width
}

// Range returns the valid range at the given age.
func (c Curve) Range(age float64) FieldRange {
	center, half := c.Center(age), c.Span(age)/2

	return FieldRange{Min: center - half, Max: center + half}.Within(c.Domain)
}

// SexCurves is a curve with optional per-sex overrides. An override only
// lists the keys that differ; the rest are taken from the base curve.
type SexCurves struct {
	Curve  `yaml:",inline"`
	Male   *Curve `yaml:"male,omitempty"`
	Female *Curve `yaml:"female,omitempty"`
}

// For returns the curve that applies to the given sex.
func (s SexCurves) For(sex record.Sex) Curve {
	switch {
	case sex == record.SexMale && s.Male != nil:
		return *s.Male
	case sex == record.SexFemale && s.Female != nil:
		return *s.Female
	}

	return s.Curve
}

// UnmarshalYAML decodes overrides on top of a copy of the base curve.
func (s *SexCurves) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Curve  `yaml:",inline"`
		Male   yaml.Node `yaml:"male"`
		Female yaml.Node `yaml:"female"`
	}

	if err := node.Decode(&raw); err != nil {
		return err
	}

	s.Curve = raw.Curve
	s.Male, s.Female = nil, nil

	override := func(n *yaml.Node, name string) (*Curve, error) {
		if n.Kind == 0 {
			return nil, nil
		}

		c := raw.Curve
		if err := n.Decode(&c); err != nil {
			return nil, fmt.Errorf("%s override: %w", name, err)
		}

		return &c, nil
	}

	var err error

	if s.Male, err = override(&raw.Male, "male"); err != nil {
		return err
	}

	if s.Female, err = override(&raw.Female, "female"); err != nil {
		return err
	}

	return nil
}

func (s *SexCurves) each(fn func(*Curve)) {
	fn(&s.Curve)

	if s.Male != nil {
		fn(s.Male)
	}

	if s.Female != nil {
		fn(s.Female)
	}
}
