package pricing

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// MalformedConfigError reports a caller-supplied tier configuration that
// failed to parse or validate. It is non-fatal: the loader substitutes the
// built-in tables and returns this error so the caller can log a warning.
type MalformedConfigError struct {
	Path string
	Err  error
}

func (e *MalformedConfigError) Error() string {
	return fmt.Sprintf("malformed pricing config %q: %v", e.Path, e.Err)
}

func (e *MalformedConfigError) Unwrap() error { return e.Err }

// Parse reads a tier configuration from JSON of the form
//
//	{"22": [{"height": 12, "price": 5.28}, ...], "30": [...]}
//
// keyed by sheet width. Tables are validated (positive heights and prices)
// and sorted ascending by height.
func Parse(data []byte) (Tables, error) {
	var raw map[string]TierTable
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no tier tables defined")
	}

	tables := make(Tables, len(raw))
	for key, table := range raw {
		width, err := strconv.ParseFloat(key, 64)
		if err != nil || width <= 0 {
			return nil, fmt.Errorf("invalid sheet width key %q", key)
		}
		if len(table) == 0 {
			return nil, fmt.Errorf("width %s has no tiers", key)
		}
		for _, tier := range table {
			if tier.Height <= 0 || tier.Price < 0 {
				return nil, fmt.Errorf("width %s has invalid tier %.0f -> %.2f", key, tier.Height, tier.Price)
			}
		}
		tables[width] = table.sorted()
	}
	return tables, nil
}

// Load reads tier tables from a JSON file. An empty path returns the
// built-in defaults. A file that cannot be read or parsed also returns the
// defaults, together with a MalformedConfigError: degraded, not fatal.
func Load(path string) (Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTables(), &MalformedConfigError{Path: path, Err: err}
	}

	tables, err := Parse(data)
	if err != nil {
		return DefaultTables(), &MalformedConfigError{Path: path, Err: err}
	}
	return tables, nil
}
