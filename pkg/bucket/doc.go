// Package bucket implements a minimal lumped hydrological model: a single
// leaky storage driven by precipitation, exposed through the BMI-style
// contract in pkg/bmi so coupling frameworks can step and introspect it.
//
// # Water balance
//
// Each Update integrates the current step's precipitation flux into storage,
// leaks a fixed fraction of the result as discharge, and advances the step
// index:
//
//	storage += pr * dt            // flux [kg m-2 s-1] -> depth [m]
//	discharge = storage * k       // linear leak
//	storage  -= discharge * dt/86400
//
// dt is derived once from the spacing of the first two forcing timestamps;
// non-uniform time grids are not supported. Discharge is reported through
// GetValue in [m d-1].
//
// # Variables
//
//	name        units   access
//	storage     m       read/write
//	discharge   m d-1   read-only (derived)
//
// Names outside this table fail with ErrUnknownVariable (reads) or
// ErrUnsupportedAssignment (writes).
//
// # Example: run a model to the end of its forcing
//
//	/*
//	m := bucket.New()
//	if err := m.Initialize("config.yml"); err != nil { log.Fatal(err) }
//
//	buf := make([]float64, 1)
//	for m.CurrentStep() < m.EndStep() {
//	    _ = m.Update()
//	    q, _ := m.GetValue("discharge", buf)
//	    fmt.Printf("step %d: q = %.4f m/d\n", m.CurrentStep(), q[0])
//	}
//	*/
//
// The Pitman parameter set from the configuration is retained on the model
// (Parameters accessor) but not consumed by the linear-leak recurrence.
package bucket
