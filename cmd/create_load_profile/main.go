// Create a load profile (month x weekday x hour averages) from a meter export CSV.
//
// Usage: create_load_profile [input_path] [output_path]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/NotCoffee418/esm_load_profile/pkg/builder"
	"github.com/NotCoffee418/esm_load_profile/pkg/config"
	"github.com/NotCoffee418/esm_load_profile/pkg/logging"
	"github.com/NotCoffee418/esm_load_profile/pkg/pathing"
)

const (
	exitInputNotFound    = 1
	exitProcessingFailed = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Load config
	if err := config.LoadProfileBuilderConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return exitProcessingFailed
	}
	cfg := config.ActiveProfileBuilderConfig

	if err := logging.Init(cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitProcessingFailed
	}
	defer logging.Sync()

	inputPath := cfg.InputPath
	if len(args) > 0 {
		inputPath = args[0]
	}
	if !pathing.FileExists(inputPath) {
		logging.Errorf("Input file not found: %s", inputPath)
		return exitInputNotFound
	}

	now := time.Now()
	outputPath := pathing.GetDefaultOutputPath(cfg.OutputDir, now)
	if len(args) > 1 {
		outputPath = args[1]
	}

	report, err := builder.Build(inputPath, outputPath, builder.Options{
		EmptyInputFallbackWh: cfg.FallbackForEmptyInput(),
		EnergyPrecision:      cfg.EnergyPrecision,
		ArchiveDbPath:        cfg.ArchiveDbPath,
		Now:                  func() time.Time { return now },
	})
	if err != nil {
		logging.Errorf("Load profile not created: %v", err)
		return exitProcessingFailed
	}

	report.WriteSummary(os.Stdout)
	return 0
}
