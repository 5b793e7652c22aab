package engine

// Cubic (Hermite) kernel constants
const (
	// Hermite segments combine four values: start, start tangent, end, end tangent
	cubicInterpolationPoints = 4
)

// Uniform ramp constants
const (
	// A ramp needs both endpoints to have a step
	minRampPoints = 2
)
