package engine

import "github.com/ramonerose/ezgangsheets/internal/model"

// WidthComparison holds the packing result and computed statistics for one
// candidate sheet width.
type WidthComparison struct {
	Preset       model.SheetPreset
	Result       model.PackResult
	SheetsUsed   int
	TotalLength  float64
	WastePercent float64
	Cost         float64
	Err          error
}

// CostFunc prices one finished sheet of the given width and height.
type CostFunc func(width, height float64) float64

// CompareWidths packs the same items against each preset roll width and
// returns side-by-side statistics, enabling a "which roll is cheapest for
// this order" report. A preset the items cannot fit on carries its error
// instead of aborting the comparison.
func CompareWidths(base model.GangSettings, presets []model.SheetPreset, items []model.Item, cost CostFunc) []WidthComparison {
	results := make([]WidthComparison, 0, len(presets))

	for _, preset := range presets {
		settings := base
		settings.SheetWidth = preset.Width
		settings.MaxLength = preset.MaxLength

		result, err := New(settings).Pack(items)
		cmp := WidthComparison{Preset: preset, Result: result, Err: err}
		if err == nil {
			cmp.SheetsUsed = len(result.Sheets)
			cmp.TotalLength = result.TotalLength()
			cmp.WastePercent = 100.0 - result.TotalEfficiency()
			if cost != nil {
				for _, s := range result.Sheets {
					cmp.Cost += cost(s.Width, s.Height)
				}
			}
		}
		results = append(results, cmp)
	}

	return results
}
