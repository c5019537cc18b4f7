// Package config holds mcnpwiz configuration, loaded from an optional YAML
// file with sensible defaults for everything.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the wizard looks for its config relative to the
// user's home directory.
const DefaultPath = ".mcnpwiz/config.yaml"

// Config holds all mcnpwiz configuration.
type Config struct {
	UI       UIConfig       `yaml:"ui"`
	Selector SelectorConfig `yaml:"selector"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	DarkMode bool `yaml:"dark_mode"`
}

// SelectorConfig holds the advisory size-guard thresholds for the visual
// lattice selector. Exceeding them warns the operator; it never blocks.
type SelectorConfig struct {
	MaxCellsPerLayer int `yaml:"max_cells_per_layer"`
	MaxTotalCells    int `yaml:"max_total_cells"`
}

// LoggingConfig configures session file logging. The wizard runs a
// full-screen TUI, so logs go to files, never stdout.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"` // debug, info, warn, error
	Dir     string `yaml:"dir"`   // defaults to ~/.mcnpwiz/logs
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{DarkMode: false},
		Selector: SelectorConfig{
			MaxCellsPerLayer: 400, // 20x20 cross-section stays readable
			MaxTotalCells:    2000,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// Load reads the config at path, falling back to defaults when the file
// does not exist. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadDefault loads the config from the default location under the user's
// home directory.
func LoadDefault() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	return Load(filepath.Join(home, DefaultPath))
}

// Save writes the config to path, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LogDir resolves the logging directory, defaulting under the user's home.
func (c *Config) LogDir() string {
	if c.Logging.Dir != "" {
		return c.Logging.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "mcnpwiz-logs")
	}
	return filepath.Join(home, ".mcnpwiz", "logs")
}
