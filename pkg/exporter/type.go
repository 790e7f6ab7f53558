package exporter

type Format int

const (
	FormatCSV Format = iota
	FormatXLSX
)

type Options struct {
	// Decimal places for energy values, -1 for the shortest exact representation
	EnergyPrecision int
}

var csvHeader = []string{"month", "weekday", "hour", "energy"}

const (
	xlsxProfileSheet = "load_profile"
	xlsxSummarySheet = "summary"
)
