package forcing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourlyTimes(n int) []time.Time {
	t0 := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := make([]time.Time, n)
	for i := range ts {
		ts[i] = t0.Add(time.Duration(i) * time.Hour)
	}
	return ts
}

func TestNew_DerivesStepFromFirstSpacing(t *testing.T) {
	s, err := New(hourlyTimes(4), []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 3600.0, s.StepSec, "hourly grid should give 3600 s steps")
	assert.Equal(t, 4, s.Steps())
}

func TestNew_DailyStep(t *testing.T) {
	t0 := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	s, err := New([]time.Time{t0, t0.AddDate(0, 0, 1)}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 86400.0, s.StepSec)
}

func TestNew_ShortSeries(t *testing.T) {
	_, err := New(hourlyTimes(1), []float64{1})
	require.ErrorIs(t, err, ErrShortSeries)

	_, err = New(nil, nil)
	require.ErrorIs(t, err, ErrShortSeries)
}

func TestNew_LengthMismatch(t *testing.T) {
	_, err := New(hourlyTimes(3), []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNew_BadTimeAxis(t *testing.T) {
	ts := hourlyTimes(3)
	ts[0], ts[1] = ts[1], ts[0]
	_, err := New(ts, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrBadTimeAxis)

	// zero spacing is just as unusable as reversed order
	_, err = New([]time.Time{ts[1], ts[1]}, []float64{1, 2})
	require.ErrorIs(t, err, ErrBadTimeAxis)
}

func TestLoad_UnknownFormat(t *testing.T) {
	_, err := Load("forcing.txt", DefaultVar)
	require.ErrorIs(t, err, ErrUnknownFormat)
}
