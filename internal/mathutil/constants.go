package mathutil

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)

// Hermite basis polynomial coefficients, by ascending power of t.
//
//	h00 = 1 - 3t² + 2t³
//	h10 = t - 2t² + t³
//	h01 = 3t² - 2t³
//	h11 = -t² + t³
const (
	hermiteH00Quad  = -3.0
	hermiteH00Cubic = 2.0
	hermiteH10Quad  = -2.0
	hermiteH10Cubic = 1.0
	hermiteH01Quad  = 3.0
	hermiteH01Cubic = -2.0
	hermiteH11Quad  = -1.0
	hermiteH11Cubic = 1.0
)

// Bezier handle placement equivalent to a Hermite tangent.
const (
	hermiteHandleFraction = 1.0 / 3.0
)
