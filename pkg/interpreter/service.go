// Package interpreter turns the rows of a meter export CSV into raw readings.
package interpreter

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/NotCoffee418/esm_load_profile/pkg/types"
)

// ReadReadings reads every data row from an export file.
// The first two lines are skipped without being looked at.
// Any row that cannot be interpreted aborts the whole read.
func ReadReadings(r io.Reader) ([]types.RawReading, error) {
	br := bufio.NewReader(r)
	for i := 0; i < skippedHeaderLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				// Headers only, no data
				return []types.RawReading{}, nil
			}
			return nil, fmt.Errorf("failed to skip header line %d: %w", i+1, err)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	readings := make([]types.RawReading, 0, 1024)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}

		reading, err := ParseRow(record)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, &RowError{Line: line + skippedHeaderLines, Err: err}
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

// ParseRow interprets a (timestamp, energy) record.
// A missing or NaN energy value counts as 0 Wh.
func ParseRow(record []string) (types.RawReading, error) {
	if len(record) == 0 {
		return types.RawReading{}, fmt.Errorf("%w: empty row", ErrInvalidTimestamp)
	}

	timestamp, err := ParseTimestamp(record[0])
	if err != nil {
		return types.RawReading{}, err
	}

	var energy float64
	if len(record) > 1 {
		raw := strings.TrimSpace(record[1])
		if raw != "" {
			energy, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return types.RawReading{}, fmt.Errorf("%w: %q", ErrInvalidEnergy, record[1])
			}
			if math.IsNaN(energy) {
				energy = 0
			}
		}
	}

	return types.RawReading{
		Timestamp: timestamp,
		EnergyWh:  energy,
	}, nil
}

// ParseTimestamp parses "dd.MM.yyyy HH:mm" as UTC wall-clock time.
// No timezone or daylight saving adjustment is applied.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
	}
	return t, nil
}
