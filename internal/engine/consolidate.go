package engine

import "github.com/ramonerose/ezgangsheets/internal/model"

// instance is a single copy of an item awaiting placement, carrying the
// precomputed grid capacity of its source file.
type instance struct {
	item   model.OrientedItem
	layout Layout
}

// packConsolidated packs copies of several files onto shared sheets. Items
// from different source files are never interleaved within a row: crossing a
// file boundary always starts a new row, even when the current row has spare
// column capacity, so each file's block stays contiguous on the physical
// sheet. That costs some material versus an unconstrained packing but keeps
// every design's segment cuttable in one piece downstream.
//
// Each sheet is produced in two passes over the remaining sequence: a sizing
// pass that decides how many instances fit and the minimal height, then a
// placement pass replaying the identical row-advance logic against the
// trimmed height to emit coordinates.
func (e *Engine) packConsolidated(items []model.OrientedItem) ([]model.SheetResult, error) {
	s := e.Settings

	var seq []instance
	for _, it := range items {
		layout := ComputeLayout(it.LayoutWidth, it.LayoutHeight, s.SheetWidth, s.MaxLength, s.Margin, s.Spacing)
		if !layout.Feasible() {
			return nil, &ItemTooLargeError{
				Label:      it.Item.Label,
				Width:      it.Item.Width,
				Height:     it.Item.Height,
				SheetWidth: s.SheetWidth,
				MaxLength:  s.MaxLength,
			}
		}
		for i := 0; i < it.Item.Quantity; i++ {
			seq = append(seq, instance{item: it, layout: layout})
		}
	}

	var sheets []model.SheetResult
	for len(seq) > 0 {
		fit, finalCursor := e.sizeSheet(seq)
		if fit == 0 {
			// The next instance cannot fit even on an empty sheet; looping
			// would never terminate.
			first := seq[0].item
			return nil, &ItemTooLargeError{
				Label:      first.Item.Label,
				Width:      first.Item.Width,
				Height:     first.Item.Height,
				SheetWidth: s.SheetWidth,
				MaxLength:  s.MaxLength,
			}
		}

		height := e.roundHeight(s.MaxLength - finalCursor + s.Margin)
		sheets = append(sheets, e.placeSheet(seq[:fit], height, len(sheets)))
		seq = seq[fit:]
	}

	return sheets, nil
}

// sizeSheet walks the remaining sequence deciding how many instances fit on
// one fresh sheet. The height cursor starts at the top content line and
// drops by one row height whenever the current instance opens a new row:
// first instance on the sheet, a source file change, or a full row. It stops
// as soon as a new row would push past the bottom margin.
func (e *Engine) sizeSheet(seq []instance) (int, float64) {
	s := e.Settings
	cursor := s.MaxLength - s.Margin

	count := 0
	col := 0
	var fileID string

	for _, inst := range seq {
		rowHeight := inst.item.LayoutHeight + s.Spacing
		if count == 0 || inst.item.Item.ID != fileID || col >= inst.layout.ItemsPerRow {
			if cursor-rowHeight < s.Margin {
				break
			}
			cursor -= rowHeight
			col = 0
			fileID = inst.item.Item.ID
		}
		col++
		count++
	}

	return count, cursor
}

// placeSheet replays the sizing pass over exactly the selected instances,
// with the cursor rebased to the trimmed sheet height, and emits placements.
func (e *Engine) placeSheet(seq []instance, height float64, index int) model.SheetResult {
	s := e.Settings
	sheet := model.SheetResult{
		Index:      index,
		Width:      s.SheetWidth,
		Height:     height,
		Placements: make([]model.Placement, 0, len(seq)),
	}

	cursor := height - s.Margin
	col := 0
	row := -1
	var fileID string

	for i, inst := range seq {
		rowHeight := inst.item.LayoutHeight + s.Spacing
		if i == 0 || inst.item.Item.ID != fileID || col >= inst.layout.ItemsPerRow {
			cursor -= rowHeight
			col = 0
			row++
			fileID = inst.item.Item.ID
		}

		x := s.Margin + float64(col)*(inst.item.LayoutWidth+s.Spacing)
		if inst.item.Rotated {
			x += inst.item.LayoutWidth
		}

		sheet.Placements = append(sheet.Placements, model.Placement{
			Item:  inst.item,
			Sheet: index,
			Row:   row,
			X:     x,
			Y:     cursor + s.Spacing,
		})
		col++
	}

	return sheet
}
