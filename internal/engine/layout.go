package engine

import "math"

// Layout holds the grid capacity for one item footprint on one sheet size.
type Layout struct {
	ItemsPerRow   int `json:"items_per_row"`
	RowsPerSheet  int `json:"rows_per_sheet"`
	ItemsPerSheet int `json:"items_per_sheet"`
}

// ComputeLayout derives the grid capacity for an item of the given layout
// dimensions on a sheet of the given width and maximum length.
//
// Spacing is only needed between items, not after the last one, so the
// margin-to-margin span holds n items plus (n-1) gaps. Adding one spacing to
// the usable span rearranges that into n <= (usable + spacing) / (item + spacing).
func ComputeLayout(itemWidth, itemHeight, sheetWidth, maxLength, margin, spacing float64) Layout {
	usableWidth := sheetWidth - 2*margin + spacing
	usableHeight := maxLength - 2*margin + spacing

	perRow := int(math.Floor(usableWidth / (itemWidth + spacing)))
	rows := int(math.Floor(usableHeight / (itemHeight + spacing)))
	if perRow < 0 {
		perRow = 0
	}
	if rows < 0 {
		rows = 0
	}

	return Layout{
		ItemsPerRow:   perRow,
		RowsPerSheet:  rows,
		ItemsPerSheet: perRow * rows,
	}
}

// Feasible reports whether at least one item fits across the sheet width.
// An infeasible layout must be rejected before packing.
func (l Layout) Feasible() bool {
	return l.ItemsPerRow >= 1
}
