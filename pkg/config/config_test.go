package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikogura/skill-dashboard/pkg/aggregate"
)

func TestLoad(t *testing.T) {
	t.Setenv(EnvDataset, "")
	t.Setenv(EnvOutputDir, "")

	// Create a temporary config file and dataset.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	datasetPath := filepath.Join(tmpDir, "events.json")

	err := os.WriteFile(datasetPath, []byte(`{"events":[]}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}

	testConfig := Config{
		Name:            "test-user",
		DatasetLocation: datasetPath,
		Limits:          aggregate.Limits{Events: 2, Skills: 4},
		Defaults: DefaultConfig{
			OutputDir: "./test-output",
			Format:    "json",
		},
	}

	data, err := json.MarshalIndent(testConfig, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Test loading the config.
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DatasetLocation != datasetPath {
		t.Errorf("Expected dataset location %s, got %s", datasetPath, cfg.DatasetLocation)
	}

	if cfg.Limits.Events != 2 || cfg.Limits.Skills != 4 {
		t.Errorf("Expected limits {2 4}, got %+v", cfg.Limits)
	}

	if cfg.Defaults.Format != "json" {
		t.Errorf("Expected format json, got %s", cfg.Defaults.Format)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	datasetPath := filepath.Join(tmpDir, "events.yaml")

	err := os.WriteFile(datasetPath, []byte("events: []\n"), 0600)
	if err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}

	configPath := filepath.Join(tmpDir, "config.json")
	err = os.WriteFile(configPath, []byte(`{"name":"env-user"}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv(EnvDataset, datasetPath)
	t.Setenv(EnvOutputDir, "/tmp/env-reports")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DatasetLocation != datasetPath {
		t.Errorf("Expected env dataset %s, got %s", datasetPath, cfg.DatasetLocation)
	}

	if cfg.Defaults.OutputDir != "/tmp/env-reports" {
		t.Errorf("Expected env output dir, got %s", cfg.Defaults.OutputDir)
	}

	if cfg.Limits != aggregate.DefaultLimits() {
		t.Errorf("Expected default limits, got %+v", cfg.Limits)
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadMissingDefaultUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvDataset, "")
	t.Setenv(EnvOutputDir, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected defaults when no config exists, got %v", err)
	}

	if cfg.DatasetLocation != "" {
		t.Errorf("Expected bundled dataset, got %s", cfg.DatasetLocation)
	}

	if cfg.Defaults.Format != "md" {
		t.Errorf("Expected default format md, got %s", cfg.Defaults.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{
			name:      "valid default config",
			config:    Default(),
			wantError: false,
		},
		{
			name:      "zero config gets defaults",
			config:    Config{},
			wantError: false,
		},
		{
			name: "nonexistent dataset file",
			config: Config{
				DatasetLocation: "/nonexistent/file.json",
			},
			wantError: true,
		},
		{
			name: "negative limits",
			config: Config{
				Limits: aggregate.Limits{Events: -1},
			},
			wantError: true,
		},
		{
			name: "invalid format",
			config: Config{
				Defaults: DefaultConfig{Format: "pdf"},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	var cfg Config
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		t.Fatalf("Failed to unmarshal config: %v", err)
	}

	if cfg.Defaults.OutputDir == "" {
		t.Error("Default output dir was not set")
	}

	if cfg.Name == "" {
		t.Error("Default name was not set")
	}
}

func TestInitConfigAlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	// Create file first.
	err := os.WriteFile(configPath, []byte("{}"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Try to init - should fail.
	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
