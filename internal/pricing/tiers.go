// Package pricing maps finished gang sheet dimensions to print prices using
// per-width tier tables.
package pricing

import (
	"math"
	"sort"

	"github.com/ramonerose/ezgangsheets/internal/model"
)

// TierStep is the height granularity of the price tables: sheets are billed
// in 12-inch increments.
const TierStep = 12.0

// Tier maps a sheet height threshold (whole inches) to a price.
type Tier struct {
	Height float64 `json:"height"`
	Price  float64 `json:"price"`
}

// TierTable is an ordered list of tiers, ascending by height.
type TierTable []Tier

// Cost returns the price for a sheet of the given height. The height is
// rounded up to the next 12-inch tier; an exact tier match wins, otherwise
// the smallest defined tier at or above the rounded height applies. Heights
// beyond the table's maximum saturate at the top tier's price rather than
// failing; oversize sheets are billed at the flat ceiling rate.
func (t TierTable) Cost(height float64) float64 {
	if len(t) == 0 {
		return 0
	}

	rounded := math.Ceil(height/TierStep) * TierStep
	for _, tier := range t {
		if tier.Height == rounded {
			return tier.Price
		}
	}
	for _, tier := range t {
		if tier.Height >= rounded {
			return tier.Price
		}
	}
	return t[len(t)-1].Price
}

// sorted returns the table ordered ascending by height.
func (t TierTable) sorted() TierTable {
	out := make(TierTable, len(t))
	copy(out, t)
	sort.Slice(out, func(i, j int) bool { return out[i].Height < out[j].Height })
	return out
}

// Tables holds one tier table per sheet width.
type Tables map[float64]TierTable

// ForWidth returns the tier table for the given sheet width. A width without
// its own table falls back to the smallest defined width at or above it, or
// the largest defined width when none is bigger, matching the saturation
// policy of the height lookup.
func (ts Tables) ForWidth(width float64) TierTable {
	if table, ok := ts[width]; ok {
		return table
	}

	widths := make([]float64, 0, len(ts))
	for w := range ts {
		widths = append(widths, w)
	}
	sort.Float64s(widths)

	for _, w := range widths {
		if w >= width {
			return ts[w]
		}
	}
	if len(widths) == 0 {
		return nil
	}
	return ts[widths[len(widths)-1]]
}

// Cost prices one finished sheet.
func (ts Tables) Cost(width, height float64) float64 {
	return ts.ForWidth(width).Cost(height)
}

// Total sums the cost of all sheets in a result, pricing each sheet through
// the tables and writing the per-sheet cost back onto it.
func (ts Tables) Total(sheets []model.SheetResult) float64 {
	var total float64
	for i := range sheets {
		sheets[i].Cost = ts.Cost(sheets[i].Width, sheets[i].Height)
		total += sheets[i].Cost
	}
	return total
}

// Per-foot rates for the stock roll widths.
const (
	ratePerTier22 = 5.28
	ratePerTier30 = 7.20
	maxTierHeight = 204.0
)

// DefaultTables returns the built-in price tables for the stock roll widths.
func DefaultTables() Tables {
	return Tables{
		22.0: linearTable(ratePerTier22, maxTierHeight),
		30.0: linearTable(ratePerTier30, maxTierHeight),
	}
}

// linearTable builds a table charging perTier for every started 12-inch step.
func linearTable(perTier, maxHeight float64) TierTable {
	var table TierTable
	for h := TierStep; h <= maxHeight; h += TierStep {
		table = append(table, Tier{Height: h, Price: perTier * (h / TierStep)})
	}
	return table
}
