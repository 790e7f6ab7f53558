package aggregator

import (
	"sort"
	"time"

	"github.com/NotCoffee418/esm_load_profile/pkg/types"
	"gonum.org/v1/gonum/stat"
)

// roundToHourStart returns the Unix timestamp of the start of the hour for the given time
func roundToHourStart(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC).Unix()
}

// AggregateHourly sums readings per calendar date and hour.
// Samples are returned in chronological order.
func AggregateHourly(readings []types.RawReading) []types.HourlySample {
	index := make(map[int64]int)
	samples := make([]types.HourlySample, 0, len(readings)/12+1)

	for _, reading := range readings {
		hourStart := roundToHourStart(reading.Timestamp)
		i, exists := index[hourStart]
		if !exists {
			t := time.Unix(hourStart, 0).UTC()
			samples = append(samples, types.HourlySample{
				HourStart: hourStart,
				Month:     int(t.Month()),
				Weekday:   types.MondayWeekday(t),
				Hour:      t.Hour(),
			})
			i = len(samples) - 1
			index[hourStart] = i
		}
		samples[i].EnergyWh += reading.EnergyWh
	}

	sort.Slice(samples, func(a, b int) bool {
		return samples[a].HourStart < samples[b].HourStart
	})
	return samples
}

// BuildProfile averages hourly samples per (month, weekday, hour) slot.
// Slots without observations get the mean of all hourly samples.
// Entries are ordered by month, then weekday, then hour.
func BuildProfile(samples []types.HourlySample, opts ProfileOptions) (*ProfileResult, error) {
	var fallback float64
	if len(samples) == 0 {
		if opts.EmptyInputFallbackWh == nil {
			return nil, ErrNoReadings
		}
		fallback = *opts.EmptyInputFallbackWh
	} else {
		energies := make([]float64, len(samples))
		for i, s := range samples {
			energies[i] = s.EnergyWh
		}
		fallback = stat.Mean(energies, nil)
	}

	var (
		sums   [types.MonthsPerYear][types.DaysPerWeek][types.HoursPerDay]float64
		counts [types.MonthsPerYear][types.DaysPerWeek][types.HoursPerDay]int
	)
	for _, s := range samples {
		sums[s.Month-1][s.Weekday][s.Hour] += s.EnergyWh
		counts[s.Month-1][s.Weekday][s.Hour]++
	}

	result := &ProfileResult{
		Entries:           make([]types.ProfileEntry, 0, types.ProfileSize),
		HourlySampleCount: len(samples),
		FallbackMeanWh:    fallback,
	}
	for month := 1; month <= types.MonthsPerYear; month++ {
		for weekday := 0; weekday < types.DaysPerWeek; weekday++ {
			for hour := 0; hour < types.HoursPerDay; hour++ {
				energy := fallback
				if n := counts[month-1][weekday][hour]; n > 0 {
					energy = sums[month-1][weekday][hour] / float64(n)
				} else {
					result.FallbackSlotCount++
				}
				result.Entries = append(result.Entries, types.ProfileEntry{
					Month:   month,
					Weekday: weekday,
					Hour:    hour,
					Energy:  energy,
				})
			}
		}
	}

	return result, nil
}
