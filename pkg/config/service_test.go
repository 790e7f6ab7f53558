package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "load_profile_builder.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfileBuilderConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, err := LoadProfileBuilderConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, EmptyInputPolicyFail, cfg.EmptyInputPolicy)
	assert.Equal(t, -1, cfg.EnergyPrecision)
	assert.Empty(t, cfg.ArchiveDbPath)
	assert.Nil(t, cfg.FallbackForEmptyInput())

	// Nothing gets written for a missing config
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadProfileBuilderConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
input_path = "/data/export.csv"
empty_input_policy = "fixed"
empty_input_fallback_wh = 12.5
energy_precision = 3
`)

	cfg, err := LoadProfileBuilderConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/export.csv", cfg.InputPath)
	assert.Equal(t, 3, cfg.EnergyPrecision)
	assert.NotEmpty(t, cfg.OutputDir, "unset keys keep their defaults")

	fallback := cfg.FallbackForEmptyInput()
	require.NotNil(t, fallback)
	assert.Equal(t, 12.5, *fallback)
}

func TestLoadProfileBuilderConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown policy", `empty_input_policy = "guess"`},
		{"bad precision", `energy_precision = -2`},
		{"not toml", `energy_precision = [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProfileBuilderConfigFrom(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
