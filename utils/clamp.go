package utils

import "math"

// Number is any type with an integer or floating point underlying type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// InRange reports whether min <= value <= max.
func InRange[T Number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Clamp limits value to [min, max], both inclusive. When min > max the
// result is min, and so is it for NaN.
func Clamp[T Number](min T, value T, max T) T {
	if value != value {
		return min
	}

	if value > max {
		value = max
	}

	if value < min {
		value = min
	}

	return value
}

// Fraction returns the position of value within [min, max] clamped to
// [0, 1]. A degenerate range yields 0.
func Fraction(min, value, max float64) float64 {
	if max <= min {
		return 0
	}

	return Clamp(0, (value-min)/(max-min), 1)
}

// Lerp maps a fraction in [0, 1] back into [min, max].
func Lerp(min, fraction, max float64) float64 {
	return min + fraction*(max-min)
}

// Round rounds value to the given number of decimal places, half away from zero.
func Round(value float64, places int) float64 {
	if places <= 0 {
		return math.Round(value)
	}

	scale := math.Pow(10, float64(places))

	return math.Round(value*scale) / scale
}
