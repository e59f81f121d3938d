// Package engine implements the gang sheet layout engine: orientation
// selection, grid layout computation, and the single-file and consolidated
// multi-file sheet packers.
package engine

import "github.com/ramonerose/ezgangsheets/internal/model"

// Engine runs the sheet packing algorithm for one job.
type Engine struct {
	Settings model.GangSettings
}

func New(settings model.GangSettings) *Engine {
	return &Engine{Settings: settings}
}

// Pack validates the job, resolves each item's orientation, and packs all
// requested copies onto gang sheets. With Consolidate enabled items from all
// files share sheets in contiguous row blocks; otherwise each file gets its
// own run of sheets. Sheet indices are contiguous across the whole job.
//
// Any infeasibility aborts the whole job with no partial output: silently
// incomplete print runs are worse than a rejected order.
func (e *Engine) Pack(items []model.Item) (model.PackResult, error) {
	if err := validate(items); err != nil {
		return model.PackResult{}, err
	}

	oriented := make([]model.OrientedItem, 0, len(items))
	for _, it := range items {
		oriented = append(oriented, ChooseOrientation(it, e.Settings))
	}

	var sheets []model.SheetResult
	if e.Settings.Consolidate && len(oriented) > 1 {
		packed, err := e.packConsolidated(oriented)
		if err != nil {
			return model.PackResult{}, err
		}
		sheets = packed
	} else {
		for _, it := range oriented {
			packed, err := e.packSingleFile(it, len(sheets))
			if err != nil {
				return model.PackResult{}, err
			}
			sheets = append(sheets, packed...)
		}
	}

	return model.PackResult{Sheets: sheets}, nil
}

func validate(items []model.Item) error {
	if len(items) == 0 {
		return &InvalidInputError{Reason: "no items to pack"}
	}
	for _, it := range items {
		if it.Width <= 0 || it.Height <= 0 {
			return &InvalidInputError{Reason: "item " + it.Label + " has non-positive dimensions"}
		}
		if it.Quantity <= 0 {
			return &InvalidInputError{Reason: "item " + it.Label + " has non-positive quantity"}
		}
	}
	return nil
}
