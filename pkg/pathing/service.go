package pathing

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultInputDir  = "docs/test data"
	defaultInputFile = "Rieck_01012025-31122025.csv"
	configFileName   = "load_profile_builder.toml"
)

// GetProjectRoot is the directory the tool is run from.
func GetProjectRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func GetConfigDir() string {
	return filepath.Join(GetProjectRoot(), "config")
}

func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), configFileName)
}

func GetDefaultInputPath() string {
	return filepath.Join(GetProjectRoot(), defaultInputDir, defaultInputFile)
}

// GetDefaultOutputPath builds load_profile_dd_mm_yyyy.csv inside dir.
func GetDefaultOutputPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("load_profile_%s.csv", now.Format("02_01_2006")))
}

// FileExists reports whether anything exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Create the directory and its parents if they don't exist yet
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
