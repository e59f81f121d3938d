package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ramonerose/ezgangsheets/internal/pricing"
)

// ProfilesDir returns the directory holding named pricing profiles.
func ProfilesDir() string {
	return filepath.Join(DefaultConfigDir(), "pricing")
}

func profilePath(name string) string {
	return filepath.Join(ProfilesDir(), name+".json")
}

// SavePricingProfile stores tier tables under a name for later reuse.
func SavePricingProfile(name string, tables pricing.Tables) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("profile name is empty")
	}
	if err := os.MkdirAll(ProfilesDir(), 0755); err != nil {
		return err
	}
	raw := make(map[string]pricing.TierTable, len(tables))
	for width, table := range tables {
		raw[fmt.Sprintf("%g", width)] = table
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(profilePath(name), data, 0644)
}

// LoadPricingProfile loads a named profile. A missing or corrupt profile
// falls back to the built-in tables with a MalformedConfigError, matching
// the behavior of pricing.Load for explicit paths.
func LoadPricingProfile(name string) (pricing.Tables, error) {
	if strings.TrimSpace(name) == "" {
		return pricing.DefaultTables(), nil
	}
	return pricing.Load(profilePath(name))
}

// ListPricingProfiles returns the names of all saved profiles.
func ListPricingProfiles() ([]string, error) {
	entries, err := os.ReadDir(ProfilesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return names, nil
}
