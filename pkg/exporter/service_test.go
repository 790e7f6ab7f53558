package exporter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NotCoffee418/esm_load_profile/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func fullProfile(energy float64) []types.ProfileEntry {
	entries := make([]types.ProfileEntry, 0, types.ProfileSize)
	for month := 1; month <= 12; month++ {
		for weekday := 0; weekday < 7; weekday++ {
			for hour := 0; hour < 24; hour++ {
				entries = append(entries, types.ProfileEntry{Month: month, Weekday: weekday, Hour: hour, Energy: energy})
			}
		}
	}
	return entries
}

func TestFormatEnergy(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      string
	}{
		{30, -1, "30.0"},
		{0, -1, "0.0"},
		{12.345, -1, "12.345"},
		{0.30000000000000004, -1, "0.30000000000000004"},
		{12.345, 2, "12.35"},
		{30, 0, "30"},
		{-4.5, -1, "-4.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEnergy(tt.value, tt.precision))
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []types.ProfileEntry{
		{Month: 1, Weekday: 0, Hour: 0, Energy: 12.5},
		{Month: 1, Weekday: 0, Hour: 1, Energy: 30},
	}, Options{EnergyPrecision: -1})
	require.NoError(t, err)

	assert.Equal(t, "month,weekday,hour,energy\n1,0,0,12.5\n1,0,1,30.0\n", buf.String())
}

func TestExportCSVCreatesDirectoriesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config", "load_profile.csv")

	require.NoError(t, Export(path, fullProfile(1), Options{EnergyPrecision: -1}))
	require.NoError(t, Export(path, fullProfile(2), Options{EnergyPrecision: -1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, types.ProfileSize+1)
	assert.Equal(t, "month,weekday,hour,energy", lines[0])
	assert.Equal(t, "1,0,0,2.0", lines[1])
	assert.Equal(t, "12,6,23,2.0", lines[len(lines)-1])

	// No temp files left behind
	dirEntries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, dirEntries, 1)
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "load_profile.xlsx")
	entries := fullProfile(3.5)

	require.NoError(t, Export(path, entries, Options{EnergyPrecision: -1}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxProfileSheet)
	require.NoError(t, err)
	require.Len(t, rows, types.ProfileSize+1)
	assert.Equal(t, []string{"month", "weekday", "hour", "energy"}, rows[0])
	assert.Equal(t, []string{"12", "6", "23", "3.5"}, rows[len(rows)-1])

	count, err := f.GetCellValue(xlsxSummarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "2016", count)
}

func TestExportXLSXRoundsToPrecision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "load_profile.xlsx")

	require.NoError(t, Export(path, fullProfile(12.3456), Options{EnergyPrecision: 2}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	energy, err := f.GetCellValue(xlsxProfileSheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "12.35", energy)
}

func TestRoundEnergy(t *testing.T) {
	assert.Equal(t, 12.35, RoundEnergy(12.3456, 2))
	assert.Equal(t, 12.0, RoundEnergy(12.3456, 0))
	assert.Equal(t, 12.3456, RoundEnergy(12.3456, -1))
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatCSV, FormatForPath("out/load_profile.csv"))
	assert.Equal(t, FormatXLSX, FormatForPath("out/load_profile.XLSX"))
	assert.Equal(t, FormatCSV, FormatForPath("out/load_profile"))
}
