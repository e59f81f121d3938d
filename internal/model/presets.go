package model

// SheetPreset describes a standard gang sheet roll available for printing.
type SheetPreset struct {
	Name      string  `json:"name"`
	Width     float64 `json:"width"`      // inches
	MaxLength float64 `json:"max_length"` // inches
}

// DefaultPresets returns the stock roll sizes offered by the shop.
func DefaultPresets() []SheetPreset {
	return []SheetPreset{
		{Name: "22in roll", Width: 22.0, MaxLength: 200.0},
		{Name: "30in roll", Width: 30.0, MaxLength: 200.0},
	}
}

// PresetForWidth returns the preset matching the given width, or false if
// the width is not a stock size.
func PresetForWidth(width float64) (SheetPreset, bool) {
	for _, p := range DefaultPresets() {
		if p.Width == width {
			return p, true
		}
	}
	return SheetPreset{}, false
}
