package forcing

import (
	"fmt"
	"time"
)

// DefaultVar is the CF-convention name of the precipitation flux variable
// expected in forcing datasets.
const DefaultVar = "pr"

// Series is a single-station precipitation record on a uniform time grid.
// Values carries one precipitation flux [kg m-2 s-1] per step, aligned to
// Times. StepSec is derived once from the spacing of the first two timestamps
// and is assumed constant for the whole record.
type Series struct {
	Times   []time.Time
	Values  []float64
	StepSec float64
}

// New builds a Series from a time coordinate and an aligned value array,
// deriving the step duration from the first two timestamps.
func New(times []time.Time, values []float64) (*Series, error) {
	if len(times) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrShortSeries, len(times))
	}
	if len(values) != len(times) {
		return nil, fmt.Errorf("%w: %d times, %d values", ErrLengthMismatch, len(times), len(values))
	}
	step := times[1].Sub(times[0]).Seconds()
	if step <= 0 {
		return nil, fmt.Errorf("%w: %v followed by %v", ErrBadTimeAxis, times[0], times[1])
	}
	return &Series{Times: times, Values: values, StepSec: step}, nil
}

// Steps returns the run length defined by the record.
func (s *Series) Steps() int { return len(s.Times) }
