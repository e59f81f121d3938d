package engine

import (
	"math"

	"github.com/ramonerose/ezgangsheets/internal/model"
)

// packSingleFile fills sheets with copies of a single oriented item. Every
// sheet except possibly the last carries a full grid; the last sheet holds
// the remainder. Each sheet is trimmed to the rows it actually uses, rounded
// up to the next whole unit.
func (e *Engine) packSingleFile(it model.OrientedItem, firstSheet int) ([]model.SheetResult, error) {
	s := e.Settings

	layout := ComputeLayout(it.LayoutWidth, it.LayoutHeight, s.SheetWidth, s.MaxLength, s.Margin, s.Spacing)
	if !layout.Feasible() || layout.RowsPerSheet < 1 {
		return nil, &ItemTooLargeError{
			Label:      it.Item.Label,
			Width:      it.Item.Width,
			Height:     it.Item.Height,
			SheetWidth: s.SheetWidth,
			MaxLength:  s.MaxLength,
		}
	}

	qty := it.Item.Quantity
	numSheets := ceilDiv(qty, layout.ItemsPerSheet)
	sheets := make([]model.SheetResult, 0, numSheets)

	remaining := qty
	for n := 0; n < numSheets; n++ {
		count := layout.ItemsPerSheet
		if remaining < count {
			count = remaining
		}
		remaining -= count

		usedRows := ceilDiv(count, layout.ItemsPerRow)
		height := e.roundHeight(float64(usedRows)*(it.LayoutHeight+s.Spacing) + 2*s.Margin - s.Spacing)

		sheet := model.SheetResult{
			Index:      firstSheet + n,
			Width:      s.SheetWidth,
			Height:     height,
			Placements: make([]model.Placement, 0, count),
		}

		for i := 0; i < count; i++ {
			row := i / layout.ItemsPerRow
			col := i % layout.ItemsPerRow

			x := s.Margin + float64(col)*(it.LayoutWidth+s.Spacing)
			if it.Rotated {
				// The renderer pivots rotated content around the placement
				// anchor, extending it leftward, so the anchor shifts right
				// by the rotated footprint width.
				x += it.LayoutWidth
			}
			y := height - s.Margin - it.LayoutHeight - float64(row)*(it.LayoutHeight+s.Spacing)

			sheet.Placements = append(sheet.Placements, model.Placement{
				Item:  it,
				Sheet: sheet.Index,
				Row:   row,
				X:     x,
				Y:     y,
			})
		}

		sheets = append(sheets, sheet)
	}

	return sheets, nil
}

// roundHeight rounds a raw content height up to the next whole unit.
func (e *Engine) roundHeight(raw float64) float64 {
	unit := e.Settings.Unit
	if unit <= 0 {
		unit = 1.0
	}
	return math.Ceil(raw/unit) * unit
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
