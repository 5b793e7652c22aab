package geom

// Slerp constants
const (
	// Below this squared half-angle sine the two rotations are nearly parallel
	// and Slerp falls back to a normalized linear blend.
	slerpLinearThreshold = 0.001

	// Axis-angle conversion falls back to the X axis below this sine.
	axisAngleSinThreshold = 1e-6
)

// Common numeric constants
const (
	halfDivisor = 2.0
	rotationMul = 2.0
)
