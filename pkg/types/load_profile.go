package types

import "time"

// Profile dimensions. A complete profile always has ProfileSize entries.
const (
	MonthsPerYear = 12
	DaysPerWeek   = 7
	HoursPerDay   = 24
	ProfileSize   = MonthsPerYear * DaysPerWeek * HoursPerDay
)

// RawReading is a single interval reading from the export file.
type RawReading struct {
	Timestamp time.Time
	EnergyWh  float64
}

// HourlySample is the sum of all readings within one calendar hour.
type HourlySample struct {
	HourStart int64 // unix seconds, UTC wall clock
	Month     int   // 1-12
	Weekday   int   // 0=Monday
	Hour      int   // 0-23
	EnergyWh  float64
}

// ProfileEntry is the averaged energy for one (month, weekday, hour) slot.
type ProfileEntry struct {
	Month   int     `db:"month"`
	Weekday int     `db:"weekday"`
	Hour    int     `db:"hour"`
	Energy  float64 `db:"energy"`
}

// MondayWeekday maps time.Weekday (Sunday=0) onto a Monday=0 week.
func MondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
