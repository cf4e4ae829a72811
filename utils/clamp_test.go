package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInRange(t *testing.T) {
	assert.True(t, InRange(0, 0, 10))
	assert.True(t, InRange(0, 10, 10))
	assert.False(t, InRange(0, 11, 10))
	assert.False(t, InRange(1.5, 1.4, 2.0))
	assert.False(t, InRange(5, 5, 4), "inverted bounds hold nothing")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 10, Clamp(0, 9999, 10))
	assert.Equal(t, 0, Clamp(0, -5, 10))
	assert.Equal(t, 4.5, Clamp(0.0, 4.5, 10.0))
	assert.Equal(t, 7, Clamp(7, 3, 5), "inverted bounds resolve to min")
	assert.Equal(t, 1.5, Clamp(1.5, math.NaN(), 2.5))
	assert.Equal(t, 2.5, Clamp(1.5, math.Inf(1), 2.5))
	assert.InDelta(t, 0.0, Fraction(10, math.NaN(), 50), 1e-9)
}

func TestFractionAndLerp(t *testing.T) {
	assert.InDelta(t, 0.5, Fraction(10, 30, 50), 1e-9)
	assert.InDelta(t, 1.0, Fraction(10, 9999, 50), 1e-9)
	assert.InDelta(t, 0.0, Fraction(10, -1, 50), 1e-9)
	assert.Zero(t, Fraction(10, 10, 10))

	assert.InDelta(t, 65.0, Lerp(40, 0.5, 90), 1e-9)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.0, Round(2.5, 0))
	assert.Equal(t, 72.35, Round(72.3456, 2))
	assert.Equal(t, 72.3, Round(72.3456, 1))
	assert.Equal(t, -3.0, Round(-2.5, 0))
}
