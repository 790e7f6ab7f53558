package builder

import (
	"time"

	"github.com/NotCoffee418/esm_load_profile/pkg/esmutils"
	"github.com/NotCoffee418/esm_load_profile/pkg/types"
)

type Options struct {
	// Nil makes input without readings an error
	EmptyInputFallbackWh *float64
	EnergyPrecision      int
	// Empty disables archiving
	ArchiveDbPath string
	// Defaults to time.Now
	Now func() time.Time
}

type Report struct {
	InputPath         string
	OutputPath        string
	ReadingCount      int
	HourlySampleCount int
	FallbackSlotCount int
	FallbackMeanWh    float64
	Entries           []types.ProfileEntry
	Summary           esmutils.EnergySummary
	// Zero when the profile was not archived
	ArchiveID int64
}
