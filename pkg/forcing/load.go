package forcing

import (
	"fmt"

	"github.com/maseology/goHydro/gmet"
	"github.com/maseology/mmio"
)

// Load reads the named variable from a NetCDF or CSV forcing dataset and
// returns it as a Series. Dataset parse failures surface unreinterpreted from
// the reader; only the shape checks in New are added on top.
func Load(path, varName string) (*Series, error) {
	var g *gmet.GMET
	var err error
	switch mmio.GetExtension(path) {
	case ".nc":
		g, err = gmet.LoadNC(path, "", []string{varName})
	case ".csv":
		g, err = gmet.LoadCsv(path, varName)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, err
	}

	dat := g.GetAllData(varName)
	if len(dat) == 0 {
		return nil, fmt.Errorf("%w: %q in %q", ErrNoStations, varName, path)
	}
	// Lumped model: one station/grid cell per run, take the first.
	return New(g.Ts, dat[0])
}
