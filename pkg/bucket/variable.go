package bucket

// variable binds a registered name to its unit and accessors. A nil set marks
// the variable as derived-only.
type variable struct {
	units string
	get   func(m *Model) float64
	set   func(m *Model, v float64)
}

// variables is the single dispatch table behind GetValue, SetValue and
// GetVarUnits. Extending the model with a new variable is one entry here.
var variables = map[string]variable{
	"storage": {
		units: "m",
		get:   func(m *Model) float64 { return m.storage },
		set:   func(m *Model, v float64) { m.storage = v },
	},
	"discharge": {
		units: "m d-1",
		// rescale the internal per-step leak to a daily rate
		get: func(m *Model) float64 { return m.discharge / (m.stepSec / secondsPerDay) },
	},
}

// outputVarNames is a static declaration, not computed from state.
var outputVarNames = []string{"discharge"}
