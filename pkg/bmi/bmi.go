// Package bmi defines the Basic Model Interface style contract used to couple
// lumped simulation models to external drivers. A driver written against
// Model can initialize, step and introspect any conforming model without
// knowing its internals.
package bmi

// Model is the capability surface a coupled model exposes.
//
// The lifecycle is: Initialize once, then Update once per time step until
// CurrentStep reaches EndStep. Update past the end of the forcing record is a
// silent no-op, not an error; drivers detect completion by comparing the two
// step accessors.
//
// GetValue broadcasts the named scalar into every element of dest and returns
// dest for chaining; on error dest is left untouched. SetValue overrides a
// writable variable from src[0]. Both operate on the variable names declared
// by the model, with units reported by GetVarUnits.
type Model interface {
	Initialize(configFile string) error
	Update() error

	GetComponentName() string
	GetOutputVarNames() []string

	GetValue(name string, dest []float64) ([]float64, error)
	SetValue(name string, src []float64) error
	GetVarUnits(name string) (string, error)

	CurrentStep() int
	EndStep() int
}
