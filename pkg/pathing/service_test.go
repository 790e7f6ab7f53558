package pathing

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultOutputPath(t *testing.T) {
	now := time.Date(2026, 3, 7, 15, 4, 0, 0, time.UTC)
	assert.Equal(t,
		filepath.Join("config", "load_profile_07_03_2026.csv"),
		GetDefaultOutputPath("config", now))
}

func TestGetDefaultInputPath(t *testing.T) {
	path := GetDefaultInputPath()
	assert.Equal(t, "Rieck_01012025-31122025.csv", filepath.Base(path))
	assert.Equal(t, "test data", filepath.Base(filepath.Dir(path)))
}

func TestEnsureDirAndFileExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	assert.False(t, FileExists(dir))

	require.NoError(t, EnsureDir(dir))
	assert.True(t, FileExists(dir))
	require.NoError(t, EnsureDir(dir))
}
