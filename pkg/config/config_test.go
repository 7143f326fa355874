package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validDoc() map[string]any {
	return map[string]any{
		"precipitation_file": "forcing/pr.nc",
		"temperature_file":   "forcing/tas.nc",
		"leakiness":          0.05,

		"interception storage":                                   1.5,
		"ratio of impervious to total area":                      0.0,
		"minimum catchment absorption rate":                      0.0,
		"maximum catchment absorption rate":                      350.0,
		"maximum moisture storage capacity":                      250.0,
		"moisture storage capacity below which no runoff occurs": 0.0,
		"runoff from moisture storage at full capacity":          25.0,
		"maximum groundwater runoff":                             6.0,
		"evaporation-moisture storage relationship parameter":    0.5,
		"power of the moisture storage-runoff equation":          2.0,
		"lag for surface and soil moisture":                      0.25,
		"lag for groundwater runoff":                             2.0,
	}
}

func marshal(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	b, err := yaml.Marshal(doc)
	require.NoError(t, err)
	return b
}

func TestParse_Valid(t *testing.T) {
	cfg, err := Parse(marshal(t, validDoc()))
	require.NoError(t, err)

	assert.Equal(t, "forcing/pr.nc", cfg.PrecipitationFile)
	assert.Equal(t, "forcing/tas.nc", cfg.TemperatureFile)
	assert.Equal(t, 0.05, cfg.Leakiness)

	p := cfg.Parameters
	assert.Equal(t, 1.5, p.InterceptionStorage)
	assert.Equal(t, 350.0, p.MaxAbsorptionRate)
	assert.Equal(t, 250.0, p.MaxMoistureCapacity)
	assert.Equal(t, 25.0, p.FullCapacityRunoff)
	assert.Equal(t, 2.0, p.StorageRunoffPower)
	assert.Equal(t, 2.0, p.GroundwaterLag)
}

func TestParse_TemperatureFileOptional(t *testing.T) {
	doc := validDoc()
	delete(doc, "temperature_file")
	cfg, err := Parse(marshal(t, doc))
	require.NoError(t, err)
	assert.Empty(t, cfg.TemperatureFile)
}

func TestParse_EachRequiredKeyMissing(t *testing.T) {
	for _, k := range requiredKeys {
		doc := validDoc()
		delete(doc, k)
		_, err := Parse(marshal(t, doc))
		require.ErrorIs(t, err, ErrMissingKey, "key %q", k)
		assert.ErrorContains(t, err, k)
	}
}

func TestParse_NegativeLeakiness(t *testing.T) {
	doc := validDoc()
	doc["leakiness"] = -0.1
	_, err := Parse(marshal(t, doc))
	require.ErrorIs(t, err, ErrBadValue)
}

func TestParse_NotYAML(t *testing.T) {
	_, err := Parse([]byte("{:"))
	require.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(fp, marshal(t, validDoc()), 0o644))

	cfg, err := Load(fp)
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.Leakiness)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
