// Package exporter writes load profiles to disk.
// Files are written to a temporary sibling and renamed into place,
// so a failed export never leaves a partial file behind.
package exporter

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NotCoffee418/esm_load_profile/pkg/esmutils"
	"github.com/NotCoffee418/esm_load_profile/pkg/pathing"
	"github.com/NotCoffee418/esm_load_profile/pkg/types"
	"github.com/xuri/excelize/v2"
)

// FormatForPath picks the output format from the file extension.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// Export writes the profile to path, creating parent directories
// and replacing any existing file.
func Export(path string, entries []types.ProfileEntry, opts Options) error {
	dir := filepath.Dir(path)
	if err := pathing.EnsureDir(dir); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".load_profile-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	switch FormatForPath(path) {
	case FormatXLSX:
		err = WriteXLSX(tmp, entries, opts)
	default:
		err = WriteCSV(tmp, entries, opts)
	}
	if err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move profile into place: %w", err)
	}
	return nil
}

// WriteCSV writes the header row followed by one row per entry.
func WriteCSV(w io.Writer, entries []types.ProfileEntry, opts Options) error {
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	row := make([]string, len(csvHeader))
	for _, e := range entries {
		row[0] = strconv.Itoa(e.Month)
		row[1] = strconv.Itoa(e.Weekday)
		row[2] = strconv.Itoa(e.Hour)
		row[3] = FormatEnergy(e.Energy, opts.EnergyPrecision)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return bw.Flush()
}

// WriteXLSX writes a workbook with the profile sheet and a summary sheet.
// Energy cells are numeric, rounded to opts.EnergyPrecision when it is set.
func WriteXLSX(w io.Writer, entries []types.ProfileEntry, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxProfileSheet); err != nil {
		return fmt.Errorf("failed to name profile sheet: %w", err)
	}
	if _, err := f.NewSheet(xlsxSummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxProfileSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write xlsx header: %w", err)
	}
	for i, e := range entries {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{e.Month, e.Weekday, e.Hour, RoundEnergy(e.Energy, opts.EnergyPrecision)}
		if err := f.SetSheetRow(xlsxProfileSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write xlsx row %s: %w", cell, err)
		}
	}

	summary := esmutils.SummarizeProfile(entries)
	summaryRows := [][]interface{}{
		{"Total entries", summary.Count},
		{"Min energy (Wh)", summary.MinWh},
		{"Max energy (Wh)", summary.MaxWh},
		{"Mean energy (Wh)", summary.MeanWh},
	}
	for i, row := range summaryRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(xlsxSummarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write xlsx summary row %s: %w", cell, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// RoundEnergy rounds v the way FormatEnergy renders it.
// Precision -1 keeps the value unchanged.
func RoundEnergy(v float64, precision int) float64 {
	if precision < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', precision, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// FormatEnergy renders an energy value as a decimal number.
// With precision -1 the shortest exact form is used and whole
// numbers keep a trailing ".0" (30 -> "30.0").
func FormatEnergy(v float64, precision int) string {
	if precision >= 0 {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
