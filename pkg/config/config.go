package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Parameters is the Pitman-model parameter set. All twelve are required in
// the configuration and retained on the model; the current linear-leak
// recurrence does not consume them.
type Parameters struct {
	// PI, interception storage [mm].
	InterceptionStorage float64 `mapstructure:"interception storage"`
	// AI, ratio of impervious to total area [-].
	ImperviousAreaRatio float64 `mapstructure:"ratio of impervious to total area"`
	// ZMIN, minimum catchment absorption rate [mm/month].
	MinAbsorptionRate float64 `mapstructure:"minimum catchment absorption rate"`
	// ZMAX, maximum catchment absorption rate [mm/month].
	MaxAbsorptionRate float64 `mapstructure:"maximum catchment absorption rate"`
	// ST, maximum moisture storage capacity [mm].
	MaxMoistureCapacity float64 `mapstructure:"maximum moisture storage capacity"`
	// SL, moisture storage capacity below which no runoff occurs [mm].
	NoRunoffCapacity float64 `mapstructure:"moisture storage capacity below which no runoff occurs"`
	// FT, runoff from moisture storage at full capacity [mm/month].
	FullCapacityRunoff float64 `mapstructure:"runoff from moisture storage at full capacity"`
	// GW, maximum groundwater runoff [mm/month].
	MaxGroundwaterRunoff float64 `mapstructure:"maximum groundwater runoff"`
	// R, evaporation-moisture storage relationship parameter [-].
	EvaporationStorageParam float64 `mapstructure:"evaporation-moisture storage relationship parameter"`
	// POW, power of the moisture storage-runoff equation [-].
	StorageRunoffPower float64 `mapstructure:"power of the moisture storage-runoff equation"`
	// TL, lag for surface and soil moisture [months].
	SurfaceSoilLag float64 `mapstructure:"lag for surface and soil moisture"`
	// GL, lag for groundwater runoff [months].
	GroundwaterLag float64 `mapstructure:"lag for groundwater runoff"`
}

// Config is the model configuration. TemperatureFile is accepted for forward
// compatibility but not read by the current model.
type Config struct {
	PrecipitationFile string     `mapstructure:"precipitation_file"`
	TemperatureFile   string     `mapstructure:"temperature_file"`
	Leakiness         float64    `mapstructure:"leakiness"`
	Parameters        Parameters `mapstructure:",squash"`
}

// requiredKeys are validated for presence before decoding so a missing key
// fails fast with its name instead of silently decoding to zero.
var requiredKeys = []string{
	"precipitation_file",
	"leakiness",
	"interception storage",
	"ratio of impervious to total area",
	"minimum catchment absorption rate",
	"maximum catchment absorption rate",
	"maximum moisture storage capacity",
	"moisture storage capacity below which no runoff occurs",
	"runoff from moisture storage at full capacity",
	"maximum groundwater runoff",
	"evaporation-moisture storage relationship parameter",
	"power of the moisture storage-runoff equation",
	"lag for surface and soil moisture",
	"lag for groundwater runoff",
}

// Load reads and parses a YAML model configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse parses a YAML model configuration document.
func Parse(b []byte) (*Config, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	for _, k := range requiredKeys {
		if _, ok := raw[k]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingKey, k)
		}
	}

	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadValue, err)
	}

	if cfg.PrecipitationFile == "" {
		return nil, fmt.Errorf("%w: %q is empty", ErrBadValue, "precipitation_file")
	}
	if cfg.Leakiness < 0 {
		return nil, fmt.Errorf("%w: leakiness must be >= 0, got %v", ErrBadValue, cfg.Leakiness)
	}
	return &cfg, nil
}
