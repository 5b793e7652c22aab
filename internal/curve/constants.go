package curve

// Component counts
const (
	quatDims = 4
	axisDims = 3
)

// Angle conversion
const (
	degreesPerHalfTurn = 180.0
)
