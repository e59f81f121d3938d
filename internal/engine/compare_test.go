package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonerose/ezgangsheets/internal/model"
)

func TestCompareWidths_ReportsEveryPreset(t *testing.T) {
	s := defaultTestSettings()
	items := []model.Item{model.NewItem("logo", 4, 2, 100)}
	cost := func(width, height float64) float64 { return width * height }

	results := CompareWidths(s, model.DefaultPresets(), items, cost)

	require.Len(t, results, len(model.DefaultPresets()))
	for _, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, 1, r.SheetsUsed)
		assert.Greater(t, r.TotalLength, 0.0)
		assert.Greater(t, r.Cost, 0.0)
		assert.Equal(t, r.Preset.Width, r.Result.Sheets[0].Width)
	}

	// The wider roll holds more per row, so it needs less length.
	assert.Less(t, results[1].TotalLength, results[0].TotalLength)
}

func TestCompareWidths_RecordsPerPresetErrors(t *testing.T) {
	s := defaultTestSettings()
	// Fits the 30in roll but not the 22in roll.
	items := []model.Item{model.NewItem("banner", 26, 10, 1)}

	results := CompareWidths(s, model.DefaultPresets(), items, nil)

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
}
