// Package builder runs the full read, aggregate and export pipeline.
package builder

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/NotCoffee418/esm_load_profile/pkg/aggregator"
	"github.com/NotCoffee418/esm_load_profile/pkg/esmutils"
	"github.com/NotCoffee418/esm_load_profile/pkg/exporter"
	"github.com/NotCoffee418/esm_load_profile/pkg/interpreter"
	"github.com/NotCoffee418/esm_load_profile/pkg/logging"
	"github.com/NotCoffee418/esm_load_profile/pkg/profiledb"
	"github.com/dustin/go-humanize"
)

// Build converts the export at inputPath into a load profile at outputPath.
// Nothing is written unless the whole input was read and aggregated.
func Build(inputPath, outputPath string, opts Options) (*Report, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	logging.Infof("Reading input file: %s", inputPath)
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	readings, err := interpreter.ReadReadings(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	logging.Infof("Parsed %s readings", humanize.Comma(int64(len(readings))))

	samples := aggregator.AggregateHourly(readings)
	logging.Debugf("Aggregated into %s hourly samples", humanize.Comma(int64(len(samples))))

	result, err := aggregator.BuildProfile(samples, aggregator.ProfileOptions{
		EmptyInputFallbackWh: opts.EmptyInputFallbackWh,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build profile: %w", err)
	}

	if err := exporter.Export(outputPath, result.Entries, exporter.Options{
		EnergyPrecision: opts.EnergyPrecision,
	}); err != nil {
		return nil, fmt.Errorf("failed to export profile: %w", err)
	}

	report := &Report{
		InputPath:         inputPath,
		OutputPath:        outputPath,
		ReadingCount:      len(readings),
		HourlySampleCount: result.HourlySampleCount,
		FallbackSlotCount: result.FallbackSlotCount,
		FallbackMeanWh:    result.FallbackMeanWh,
		Entries:           result.Entries,
		Summary:           esmutils.SummarizeProfile(result.Entries),
	}

	// The profile file is the primary artifact, archive failures only warn
	if opts.ArchiveDbPath != "" {
		if id, err := archive(opts.ArchiveDbPath, report, opts.Now()); err != nil {
			logging.Warnf("Could not archive load profile in %s: %v", opts.ArchiveDbPath, err)
		} else {
			report.ArchiveID = id
			logging.Debugf("Archived load profile as #%d", id)
		}
	}

	return report, nil
}

func archive(dbPath string, report *Report, now time.Time) (int64, error) {
	db, err := profiledb.Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	return profiledb.InsertLoadProfile(db, &profiledb.LoadProfileRun{
		CreatedAt:         now.Unix(),
		SourcePath:        report.InputPath,
		OutputPath:        report.OutputPath,
		ReadingCount:      report.ReadingCount,
		HourlySampleCount: report.HourlySampleCount,
		FallbackSlotCount: report.FallbackSlotCount,
		FallbackMeanWh:    report.FallbackMeanWh,
	}, report.Entries)
}

// WriteSummary prints the statistics shown after a successful build.
func (r *Report) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "Created load profile: %s\n", r.OutputPath)
	fmt.Fprintf(w, "Total entries: %d\n", r.Summary.Count)
	fmt.Fprintf(w, "Energy range: %.2f - %.2f Wh\n", r.Summary.MinWh, r.Summary.MaxWh)
	fmt.Fprintf(w, "Mean energy: %.2f Wh\n", r.Summary.MeanWh)
	fmt.Fprintf(w, "Readings: %s, hourly samples: %s\n",
		humanize.Comma(int64(r.ReadingCount)), humanize.Comma(int64(r.HourlySampleCount)))
	fmt.Fprintf(w, "Slots filled with global mean: %d of %d (%.2f Wh)\n",
		r.FallbackSlotCount, r.Summary.Count, r.FallbackMeanWh)
}
