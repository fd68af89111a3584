package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nikogura/skill-dashboard/pkg/aggregate"
	"github.com/pkg/errors"
)

const (
	// EnvDataset overrides dataset_location.
	EnvDataset = "SKILL_DASHBOARD_DATASET"
	// EnvOutputDir overrides defaults.output_dir.
	EnvOutputDir = "SKILL_DASHBOARD_OUTPUT_DIR"

	defaultOutputDir = "./reports"
	defaultFormat    = "md"
)

// Config represents the application configuration.
type Config struct {
	Name            string           `json:"name"`
	DatasetLocation string           `json:"dataset_location,omitempty"`
	Limits          aggregate.Limits `json:"limits"`
	Defaults        DefaultConfig    `json:"defaults"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
}

// DefaultPath returns ~/.skill-dashboard/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".skill-dashboard", "config.json")
	return path, err
}

// Default returns a configuration that uses the bundled dataset.
func Default() (cfg Config) {
	cfg = Config{
		Name:   "student",
		Limits: aggregate.DefaultLimits(),
		Defaults: DefaultConfig{
			OutputDir: defaultOutputDir,
			Format:    defaultFormat,
		},
	}
	return cfg
}

// Load reads configuration from file with environment variable overrides.
// When configPath is empty and no file exists at the default location the
// built-in defaults are used; an explicit configPath must exist.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	cfg = Default()

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'skill-dashboard init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Override with environment variables if set
	if dataset := os.Getenv(EnvDataset); dataset != "" {
		cfg.DatasetLocation = dataset
	}
	if outDir := os.Getenv(EnvOutputDir); outDir != "" {
		cfg.Defaults.OutputDir = outDir
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() (err error) {
	if c.DatasetLocation != "" {
		_, err = os.Stat(c.DatasetLocation)
		if os.IsNotExist(err) {
			err = errors.Errorf("dataset file not found: %s", c.DatasetLocation)
			return err
		}
		err = nil
	}

	if c.Limits.Events < 0 || c.Limits.Skills < 0 {
		err = errors.New("limits must not be negative")
		return err
	}

	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = defaultOutputDir
	}

	switch c.Defaults.Format {
	case "":
		c.Defaults.Format = defaultFormat
	case "md", "markdown", "json":
	default:
		err = errors.Errorf("invalid defaults.format '%s': must be 'md' or 'json'", c.Defaults.Format)
		return err
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	defaultConfig := Default()
	defaultConfig.Defaults.OutputDir = filepath.Join(dir, "reports")

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
