package aggregator

import (
	"errors"

	"github.com/NotCoffee418/esm_load_profile/pkg/types"
)

var ErrNoReadings = errors.New("no hourly samples to build a profile from")

type ProfileOptions struct {
	// Used for every slot when the input holds no readings at all.
	// When nil, empty input fails with ErrNoReadings.
	EmptyInputFallbackWh *float64
}

type ProfileResult struct {
	Entries           []types.ProfileEntry
	HourlySampleCount int
	// Slots that had no observations and received FallbackMeanWh
	FallbackSlotCount int
	FallbackMeanWh    float64
}
