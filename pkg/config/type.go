package config

const (
	EmptyInputPolicyFail  = "fail"
	EmptyInputPolicyFixed = "fixed"
)

type ProfileBuilderConfig struct {
	// Used when no input path argument is given
	InputPath string `toml:"input_path"`
	// Directory for the dated default output file
	OutputDir string `toml:"output_dir"`
	// "fail" aborts on input without readings,
	// "fixed" fills every slot with EmptyInputFallbackWh instead.
	EmptyInputPolicy     string  `toml:"empty_input_policy"`
	EmptyInputFallbackWh float64 `toml:"empty_input_fallback_wh"`
	// Decimal places for energy values, -1 for shortest exact representation
	EnergyPrecision int `toml:"energy_precision"`
	// Optional SQLite archive of generated profiles. Empty disables it.
	ArchiveDbPath string `toml:"archive_db_path"`
	Debug         bool   `toml:"debug"`
}

// FallbackForEmptyInput returns the value substituted for empty input,
// or nil when empty input should fail.
func (c *ProfileBuilderConfig) FallbackForEmptyInput() *float64 {
	if c.EmptyInputPolicy != EmptyInputPolicyFixed {
		return nil
	}
	v := c.EmptyInputFallbackWh
	return &v
}
