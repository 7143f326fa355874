package forcing

import "errors"

var (
	// ErrShortSeries indicates a time coordinate with fewer than two points,
	// which is too short to derive a step duration from.
	ErrShortSeries = errors.New("forcing: series needs at least 2 time points")

	// ErrLengthMismatch indicates the value array and the time coordinate
	// disagree in length.
	ErrLengthMismatch = errors.New("forcing: times/values length mismatch")

	// ErrBadTimeAxis indicates a non-increasing time coordinate.
	ErrBadTimeAxis = errors.New("forcing: time axis not increasing")

	// ErrNoStations indicates the dataset held no station/grid-cell data for
	// the requested variable.
	ErrNoStations = errors.New("forcing: no stations in dataset")

	// ErrUnknownFormat indicates a forcing file extension other than .nc or .csv.
	ErrUnknownFormat = errors.New("forcing: unknown file format")
)
