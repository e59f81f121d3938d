package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new jobs
	DefaultSheetWidth float64 `json:"default_sheet_width"`
	DefaultMaxLength  float64 `json:"default_max_length"`
	DefaultMargin     float64 `json:"default_margin"`
	DefaultSpacing    float64 `json:"default_spacing"`
	DefaultDPI        float64 `json:"default_dpi"`
	DefaultSmartFit   bool    `json:"default_smart_fit"`

	// Application preferences
	PricingProfile string   `json:"pricing_profile"` // Named custom tier table, "" = built-in
	RecentOrders   []string `json:"recent_orders"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultSheetWidth: defaults.SheetWidth,
		DefaultMaxLength:  defaults.MaxLength,
		DefaultMargin:     defaults.Margin,
		DefaultSpacing:    defaults.Spacing,
		DefaultDPI:        defaults.DPI,
		DefaultSmartFit:   defaults.SmartFit,
		RecentOrders:      []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a GangSettings
// struct. Used when starting a new job so it inherits the saved defaults.
func (c AppConfig) ApplyToSettings(s *GangSettings) {
	s.SheetWidth = c.DefaultSheetWidth
	s.MaxLength = c.DefaultMaxLength
	s.Margin = c.DefaultMargin
	s.Spacing = c.DefaultSpacing
	s.DPI = c.DefaultDPI
	s.SmartFit = c.DefaultSmartFit
}
