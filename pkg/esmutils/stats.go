package esmutils

import (
	"github.com/NotCoffee418/esm_load_profile/pkg/types"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type EnergySummary struct {
	Count  int
	MinWh  float64
	MaxWh  float64
	MeanWh float64
}

// SummarizeProfile computes count and min/max/mean energy over profile entries.
// An empty profile yields a zero summary.
func SummarizeProfile(entries []types.ProfileEntry) EnergySummary {
	if len(entries) == 0 {
		return EnergySummary{}
	}

	energies := make([]float64, len(entries))
	for i, e := range entries {
		energies[i] = e.Energy
	}

	return EnergySummary{
		Count:  len(entries),
		MinWh:  floats.Min(energies),
		MaxWh:  floats.Max(energies),
		MeanWh: stat.Mean(energies, nil),
	}
}
