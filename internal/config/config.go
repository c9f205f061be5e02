// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FileName is the configuration file stored in the user's home directory.
const FileName = ".coinbase-cli.json"

// Variables are the user-settable configuration values.
type Variables struct {
	APIKey     string `json:"apiKey,omitempty"`
	APISecret  string `json:"apiSecret,omitempty"`
	APIVersion string `json:"apiVersion,omitempty"`
}

// Configuration is the on-disk configuration shape.
type Configuration struct {
	Variables Variables `json:"variables"`
}

// Manager loads and saves the configuration file. One Manager is created at
// process start and passed explicitly to the commands that need it; there is
// no hidden module-level cache, so a reload always reflects the file.
type Manager struct {
	path string
}

// NewManager creates a Manager for the per-user configuration file.
func NewManager() (*Manager, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return &Manager{path: filepath.Join(home, FileName)}, nil
}

// NewManagerAt creates a Manager for an explicit file path.
func NewManagerAt(path string) *Manager {
	return &Manager{path: path}
}

// Load reads the configuration file. A missing or malformed file yields an
// empty configuration, never an error.
func (m *Manager) Load() Configuration {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return Configuration{}
	}
	var cfg Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		slog.Warn("ignoring malformed configuration file", "path", m.path, "error", err)
		return Configuration{}
	}
	return cfg
}

// Save writes the configuration file as indented JSON, readable only by the
// user since it holds API credentials.
func (m *Manager) Save(cfg Configuration) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("error writing configuration file '%s': %s", m.path, err.Error())
	}
	return nil
}

// ApplyEnv overlays environment variables on top of the file configuration.
// A .env file in the working directory is honored when present; real
// environment variables win over it.
func ApplyEnv(cfg Configuration) Configuration {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg.Variables.APIKey = getEnv("COINBASE_API_KEY", cfg.Variables.APIKey)
	cfg.Variables.APISecret = getEnv("COINBASE_API_SECRET", cfg.Variables.APISecret)
	cfg.Variables.APIVersion = getEnv("COINBASE_API_VERSION", cfg.Variables.APIVersion)
	return cfg
}

// Helper to get env with a fallback.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
