package model

import "github.com/google/uuid"

// Item represents one input logo file to be repeated across gang sheets.
// Dimensions are in inches and describe the native (unrotated) bounding box.
// Content is the raw file payload; the packing core never parses it.
type Item struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"` // Usually the source filename
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Quantity    int     `json:"quantity"`
	ContentType string  `json:"content_type,omitempty"` // "png", "jpeg", "gif", "dxf"
	Content     []byte  `json:"-"`
}

func NewItem(label string, w, h float64, qty int) Item {
	return Item{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Width:    w,
		Height:   h,
		Quantity: qty,
	}
}

// OrientedItem is an Item with a resolved rotation decision. LayoutWidth and
// LayoutHeight equal the native dimensions when upright, swapped when rotated.
type OrientedItem struct {
	Item         Item    `json:"item"`
	Rotated      bool    `json:"rotated"`
	LayoutWidth  float64 `json:"layout_width"`
	LayoutHeight float64 `json:"layout_height"`
}

// Orient resolves an item into the given orientation.
func Orient(it Item, rotated bool) OrientedItem {
	o := OrientedItem{Item: it, Rotated: rotated, LayoutWidth: it.Width, LayoutHeight: it.Height}
	if rotated {
		o.LayoutWidth, o.LayoutHeight = it.Height, it.Width
	}
	return o
}

// GangSettings holds the sheet geometry and packing configuration.
// All linear values are inches.
type GangSettings struct {
	SheetWidth  float64 `json:"sheet_width"` // Fixed roll width (e.g. 22 or 30)
	MaxLength   float64 `json:"max_length"`  // Maximum sheet length
	Margin      float64 `json:"margin"`      // Border kept free on all four edges
	Spacing     float64 `json:"spacing"`     // Gap between adjacent items
	Unit        float64 `json:"unit"`        // Height rounding granularity
	SmartFit    bool    `json:"smart_fit"`   // Pick the orientation with more items per sheet
	Rotate      bool    `json:"rotate"`      // Fixed rotation when SmartFit is off
	Consolidate bool    `json:"consolidate"` // Group multiple files onto shared sheets
	DPI         float64 `json:"dpi"`         // Raster measurement resolution
}

func DefaultSettings() GangSettings {
	return GangSettings{
		SheetWidth: 22.0,
		MaxLength:  200.0,
		Margin:     0.125,
		Spacing:    0.5,
		Unit:       1.0,
		SmartFit:   true,
		DPI:        300.0,
	}
}

// Placement represents a single item copy placed on a gang sheet.
// X and Y are measured from the sheet's bottom-left corner; Y is the bottom
// edge of the item. For rotated items X is the rotation anchor: the rendered
// content extends leftward from it by the item's layout width.
type Placement struct {
	Item  OrientedItem `json:"item"`
	Sheet int          `json:"sheet"` // Zero-based sheet index
	Row   int          `json:"row"`   // Zero-based row index within the sheet
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
}

// PlacedWidth returns the footprint width considering rotation.
func (p Placement) PlacedWidth() float64 {
	return p.Item.LayoutWidth
}

// PlacedHeight returns the footprint height considering rotation.
func (p Placement) PlacedHeight() float64 {
	return p.Item.LayoutHeight
}

// SheetResult represents one finished gang sheet. Height is the minimal
// whole-unit height accommodating the placements, never the configured
// maximum unless that many rows are actually needed.
type SheetResult struct {
	Index      int         `json:"index"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Placements []Placement `json:"placements"`
	Cost       float64     `json:"cost"`
}

// UsedArea returns the total area covered by placed items.
func (sr SheetResult) UsedArea() float64 {
	var total float64
	for _, p := range sr.Placements {
		total += p.PlacedWidth() * p.PlacedHeight()
	}
	return total
}

// TotalArea returns the sheet area.
func (sr SheetResult) TotalArea() float64 {
	return sr.Width * sr.Height
}

// Efficiency returns the usage percentage.
func (sr SheetResult) Efficiency() float64 {
	ta := sr.TotalArea()
	if ta == 0 {
		return 0
	}
	return (sr.UsedArea() / ta) * 100.0
}

// PackResult holds the full packing solution for one job.
type PackResult struct {
	Sheets    []SheetResult `json:"sheets"`
	TotalCost float64       `json:"total_cost"`
}

// TotalItems returns the number of placed item copies across all sheets.
func (pr PackResult) TotalItems() int {
	total := 0
	for _, s := range pr.Sheets {
		total += len(s.Placements)
	}
	return total
}

// TotalLength returns the summed height of all sheets.
func (pr PackResult) TotalLength() float64 {
	var total float64
	for _, s := range pr.Sheets {
		total += s.Height
	}
	return total
}

// TotalEfficiency returns overall sheet usage percentage.
func (pr PackResult) TotalEfficiency() float64 {
	var usedArea, totalArea float64
	for _, s := range pr.Sheets {
		usedArea += s.UsedArea()
		totalArea += s.TotalArea()
	}
	if totalArea == 0 {
		return 0
	}
	return (usedArea / totalArea) * 100.0
}
