package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ramonerose/ezgangsheets/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.ezgangsheets/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".ezgangsheets")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentOrders is never nil
	if config.RecentOrders == nil {
		config.RecentOrders = []string{}
	}
	return config, nil
}

// RememberOrder prepends path to the recent order list, dropping duplicates
// and capping the list at ten entries.
func RememberOrder(config *model.AppConfig, path string) {
	recent := []string{path}
	for _, p := range config.RecentOrders {
		if p == path {
			continue
		}
		recent = append(recent, p)
		if len(recent) >= 10 {
			break
		}
	}
	config.RecentOrders = recent
}
