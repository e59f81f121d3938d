package project

import (
	"errors"
	"testing"

	"github.com/ramonerose/ezgangsheets/internal/pricing"
)

// ─── Pricing Profile Tests ──────────────────────────────

func TestSaveAndLoadPricingProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tables := pricing.Tables{
		22: {{Height: 12, Price: 4.99}, {Height: 24, Price: 9.98}},
	}
	if err := SavePricingProfile("wholesale", tables); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadPricingProfile("wholesale")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := loaded.Cost(22, 12); got != 4.99 {
		t.Errorf("expected 4.99, got %v", got)
	}
}

func TestLoadPricingProfile_EmptyNameUsesDefaults(t *testing.T) {
	tables, err := LoadPricingProfile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) == 0 {
		t.Fatal("expected built-in tables")
	}
}

func TestLoadPricingProfile_MissingFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tables, err := LoadPricingProfile("nope")

	var malformed *pricing.MalformedConfigError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedConfigError, got %v", err)
	}
	if len(tables) == 0 {
		t.Fatal("fallback tables should not be empty")
	}
}

func TestSavePricingProfile_RejectsEmptyName(t *testing.T) {
	if err := SavePricingProfile("  ", pricing.DefaultTables()); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestListPricingProfiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if names, err := ListPricingProfiles(); err != nil || names != nil {
		t.Errorf("expected no profiles yet, got %v, %v", names, err)
	}

	if err := SavePricingProfile("retail", pricing.DefaultTables()); err != nil {
		t.Fatal(err)
	}
	if err := SavePricingProfile("wholesale", pricing.DefaultTables()); err != nil {
		t.Fatal(err)
	}

	names, err := ListPricingProfiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 profiles, got %v", names)
	}
}
