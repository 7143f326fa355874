package bucket

import "errors"

var (
	// ErrUnknownVariable indicates a variable name outside the model's
	// registry, from GetValue or GetVarUnits.
	ErrUnknownVariable = errors.New("bucket: unknown variable")

	// ErrUnsupportedAssignment indicates a SetValue target that is either
	// unknown or derived-only (discharge cannot be set externally).
	ErrUnsupportedAssignment = errors.New("bucket: unsupported assignment")

	// ErrUninitialized indicates the model was stepped or queried before a
	// successful Initialize.
	ErrUninitialized = errors.New("bucket: model not initialized")

	// ErrEmptyBuffer indicates SetValue was given an empty source slice.
	ErrEmptyBuffer = errors.New("bucket: empty source buffer")
)
