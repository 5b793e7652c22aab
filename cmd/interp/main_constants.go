package main

// Output number formatting
const (
	paramDecimals     = 4
	componentDecimals = 6
	floatBits         = 64
)
