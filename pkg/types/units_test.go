package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepth_Units(t *testing.T) {
	d := Depth(0.0125)
	assert.Equal(t, 0.0125, d.M())
	assert.Equal(t, 12.5, d.MM())
}

func TestDepth_String(t *testing.T) {
	assert.Equal(t, "12.50 mm", Depth(0.0125).String())
	assert.Equal(t, "2.500 m", Depth(2.5).String())
	assert.Equal(t, "-1.500 m", Depth(-1.5).String())
}

func TestRate_Units(t *testing.T) {
	r := Rate(0.004)
	assert.Equal(t, 0.004, r.MPerDay())
	assert.Equal(t, 4.0, r.MMPerDay())
}

func TestRate_Over(t *testing.T) {
	// 1 m/d over a 6 h step accumulates a quarter metre
	assert.InDelta(t, 0.25, float64(Rate(1).Over(21600)), 1e-12)
	// a full day recovers the rate itself
	assert.InDelta(t, 0.004, float64(Rate(0.004).Over(86400)), 1e-12)
}

func TestRate_String(t *testing.T) {
	assert.Equal(t, "4.00 mm/d", Rate(0.004).String())
	assert.Equal(t, "1.200 m/d", Rate(1.2).String())
}
