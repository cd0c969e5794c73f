package main

// Default command-line flag values
const (
	defaultStart  = 0.0
	defaultEnd    = 1.0
	defaultCurve  = "linear"
	defaultFormat = formatText
)

// Output formats
const (
	formatText = "text"
	formatCSV  = "csv"
)

// Demo table parameters
const (
	demoStart = 0.0
	demoEnd   = 10000.0
	demoSteps = 10
)

// Text output precision
const (
	textPrecision = 6
	csvPrecision  = -1 // Shortest representation that round-trips
)
