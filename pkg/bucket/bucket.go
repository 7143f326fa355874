package bucket

import "fmt"

// Update advances the simulation by exactly one time step. Past the end of
// the forcing record it is a silent no-op; callers detect completion by
// comparing CurrentStep against EndStep.
func (m *Model) Update() error {
	if !m.ready {
		return ErrUninitialized
	}
	if m.step >= m.endStep {
		return nil
	}

	// Precipitation flux [kg m-2 s-1] integrated over one step is a depth
	// increment [m] under unit water density.
	m.storage += m.frc.Values[m.step] * m.stepSec

	// Linear leak: a fixed fraction of storage discharges each step. The
	// per-step leak reads as [m d-1] once rescaled by the step's day fraction,
	// so the depth it removes from storage is leak * stepSec/86400.
	m.discharge = m.storage * m.leakiness
	m.storage -= m.discharge * (m.stepSec / secondsPerDay)

	m.step++
	return nil
}

// GetValue broadcasts the named variable into every element of dest and
// returns dest. On error dest is left untouched. Discharge is reported in
// [m d-1] regardless of step length.
func (m *Model) GetValue(name string, dest []float64) ([]float64, error) {
	if !m.ready {
		return nil, ErrUninitialized
	}
	v, ok := variables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	val := v.get(m)
	for i := range dest {
		dest[i] = val
	}
	return dest, nil
}

// SetValue overrides the named variable from the first element of src. Only
// storage is writable; discharge is derived and any other name is unknown, so
// both fail with ErrUnsupportedAssignment and no state changes.
func (m *Model) SetValue(name string, src []float64) error {
	if !m.ready {
		return ErrUninitialized
	}
	v, ok := variables[name]
	if !ok || v.set == nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedAssignment, name)
	}
	if len(src) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyBuffer, name)
	}
	v.set(m, src[0])
	return nil
}

// GetVarUnits returns the unit string of a registered variable.
func (m *Model) GetVarUnits(name string) (string, error) {
	v, ok := variables[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return v.units, nil
}

// GetOutputVarNames declares the variables the model computes for couplers.
func (m *Model) GetOutputVarNames() []string { return outputVarNames }
