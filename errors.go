package interpolate

import "errors"

// Errors returned by mode dispatch.
var (
	// ErrUnknownMode indicates a mode value or name that is not defined.
	ErrUnknownMode = errors.New("unknown interpolation mode")

	// ErrControlPoints indicates the wrong number of keys for a mode.
	ErrControlPoints = errors.New("wrong number of control points")
)
