// Package config loads the simulator's optional YAML configuration. Game
// tuning is deliberately not configurable; the file covers host concerns
// only.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/josephtungate/mesmerise/parameter"
)

// Config holds host-side settings for the simulator.
type Config struct {
	// StoragePath is the EEPROM image file. Empty keeps persistence in
	// memory for the process lifetime.
	StoragePath string `yaml:"storage_path"`

	// Sound enables synthesized speaker cues.
	Sound bool `yaml:"sound"`

	// DefaultAlias is recorded for qualifying scores when alias entry is
	// skipped.
	DefaultAlias string `yaml:"default_alias"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StoragePath:  "mesmerise.eep",
		Sound:        true,
		DefaultAlias: "AAA",
	}
}

// Load reads a config file and fills gaps with defaults. A missing file is
// not an error; it simply yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks semantic constraints.
func (c Config) Validate() error {
	var errs []string
	if len(c.DefaultAlias) != parameter.AliasLength {
		errs = append(errs, fmt.Sprintf("default_alias must be exactly %d characters", parameter.AliasLength))
	}
	for _, r := range c.DefaultAlias {
		if r < 0x20 || r > 0x7E {
			errs = append(errs, "default_alias must be printable ASCII")
			break
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
