package interpolate

// Handle reflection: v' = b + (b - v) = 2b - v
const (
	reflectMul = 2
)

// Control point counts per mode
const (
	twoPointKeys   = 2
	threePointKeys = 3
	fourPointKeys  = 4
)
