package types

import "fmt"

// Depth is a water depth equivalent in metres.
type Depth float64

// M returns the depth in metres.
func (d Depth) M() float64 { return float64(d) }

// MM returns the depth in millimetres.
func (d Depth) MM() float64 { return float64(d) * 1000 }

// String renders the depth with an automatic unit (m above 1 m, mm below).
func (d Depth) String() string {
	if d >= 1 || d <= -1 {
		return fmt.Sprintf("%.3f m", float64(d))
	}
	return fmt.Sprintf("%.2f mm", d.MM())
}

// Rate is a water flux rate in metres per day.
type Rate float64

// MPerDay returns the rate in metres per day.
func (r Rate) MPerDay() float64 { return float64(r) }

// MMPerDay returns the rate in millimetres per day.
func (r Rate) MMPerDay() float64 { return float64(r) * 1000 }

// Over returns the depth the rate accumulates over a step of the given
// length in seconds.
func (r Rate) Over(stepSec float64) Depth {
	return Depth(float64(r) * stepSec / 86400)
}

// String renders the rate with an automatic unit.
func (r Rate) String() string {
	if r >= 1 || r <= -1 {
		return fmt.Sprintf("%.3f m/d", float64(r))
	}
	return fmt.Sprintf("%.2f mm/d", r.MMPerDay())
}
