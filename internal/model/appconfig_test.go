package model

import "testing"

func TestDefaultAppConfig_MatchesDefaultSettings(t *testing.T) {
	config := DefaultAppConfig()
	defaults := DefaultSettings()

	if config.DefaultSheetWidth != defaults.SheetWidth {
		t.Errorf("sheet width mismatch: %v", config.DefaultSheetWidth)
	}
	if config.DefaultMaxLength != defaults.MaxLength {
		t.Errorf("max length mismatch: %v", config.DefaultMaxLength)
	}
	if config.RecentOrders == nil {
		t.Error("recent orders should be initialized")
	}
}

func TestAppConfig_ApplyToSettings(t *testing.T) {
	config := DefaultAppConfig()
	config.DefaultSheetWidth = 30
	config.DefaultSmartFit = false

	s := DefaultSettings()
	config.ApplyToSettings(&s)

	if s.SheetWidth != 30 {
		t.Errorf("expected width 30, got %v", s.SheetWidth)
	}
	if s.SmartFit {
		t.Error("smart fit should be off")
	}
}
