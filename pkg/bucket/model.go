package bucket

import (
	"github.com/ja7ad/leakybucket/pkg/bmi"
	"github.com/ja7ad/leakybucket/pkg/config"
	"github.com/ja7ad/leakybucket/pkg/forcing"
)

const componentName = "leakybucket"

const secondsPerDay = 86400.0

// Model is a single-storage leaky-bucket water balance driven by a
// precipitation series. One instance owns one simulation run; it is not safe
// for concurrent use and is not meant to be.
type Model struct {
	params    config.Parameters
	frc       *forcing.Series
	leakiness float64
	stepSec   float64

	// storage is the accumulated water depth equivalent [m]. discharge holds
	// the per-step leak, storage*leakiness; GetValue rescales it to [m d-1].
	storage   float64
	discharge float64

	step, endStep int
	ready         bool
}

var _ bmi.Model = (*Model)(nil)

// New returns an empty model. Call Initialize (or InitializeFrom) before
// stepping it.
func New() *Model { return &Model{} }

// Initialize loads the configuration file and the precipitation forcing it
// names, then resets the model to the start of the series.
func (m *Model) Initialize(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	frc, err := forcing.Load(cfg.PrecipitationFile, forcing.DefaultVar)
	if err != nil {
		return err
	}
	return m.InitializeFrom(cfg, frc)
}

// InitializeFrom wires pre-loaded collaborators into the model. It is the
// seam used when configuration and forcing come from somewhere other than
// files, and by tests.
func (m *Model) InitializeFrom(cfg *config.Config, frc *forcing.Series) error {
	if cfg == nil || frc == nil {
		return ErrUninitialized
	}
	m.params = cfg.Parameters
	m.leakiness = cfg.Leakiness
	m.frc = frc
	m.stepSec = frc.StepSec
	m.storage = 0
	m.discharge = 0
	m.step = 0
	m.endStep = frc.Steps()
	m.ready = true
	return nil
}

// GetComponentName identifies the model to a coupling framework.
func (m *Model) GetComponentName() string { return componentName }

// CurrentStep returns the index of the next step to run.
func (m *Model) CurrentStep() int { return m.step }

// EndStep returns the run length defined by the forcing record. The run is
// complete once CurrentStep equals EndStep.
func (m *Model) EndStep() int { return m.endStep }

// StepSeconds returns the real-world duration of one simulation step.
func (m *Model) StepSeconds() float64 { return m.stepSec }

// Parameters returns the retained Pitman parameter set.
func (m *Model) Parameters() config.Parameters { return m.params }

// Forcing returns the precipitation record driving the run, for drivers that
// echo the input alongside the simulated state. Nil before Initialize.
func (m *Model) Forcing() *forcing.Series { return m.frc }
