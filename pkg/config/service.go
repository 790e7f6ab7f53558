package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/NotCoffee418/esm_load_profile/pkg/pathing"
)

var ActiveProfileBuilderConfig *ProfileBuilderConfig

func DefaultProfileBuilderConfig() *ProfileBuilderConfig {
	return &ProfileBuilderConfig{
		InputPath:        pathing.GetDefaultInputPath(),
		OutputDir:        pathing.GetConfigDir(),
		EmptyInputPolicy: EmptyInputPolicyFail,
		EnergyPrecision:  -1,
	}
}

// LoadProfileBuilderConfig loads the config from the project config dir.
// The file is optional: without it the defaults are used and nothing is written.
func LoadProfileBuilderConfig() error {
	cfg, err := LoadProfileBuilderConfigFrom(pathing.GetConfigPath())
	if err != nil {
		return err
	}
	ActiveProfileBuilderConfig = cfg
	return nil
}

func LoadProfileBuilderConfigFrom(configPath string) (*ProfileBuilderConfig, error) {
	cfg := DefaultProfileBuilderConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Keys missing from the file keep their defaults
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", configPath, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return cfg, nil
}

func (c *ProfileBuilderConfig) validate() error {
	switch c.EmptyInputPolicy {
	case EmptyInputPolicyFail, EmptyInputPolicyFixed:
	default:
		return fmt.Errorf("empty_input_policy must be %q or %q, got %q",
			EmptyInputPolicyFail, EmptyInputPolicyFixed, c.EmptyInputPolicy)
	}
	if c.EnergyPrecision < -1 {
		return fmt.Errorf("energy_precision must be -1 or greater, got %d", c.EnergyPrecision)
	}
	return nil
}
