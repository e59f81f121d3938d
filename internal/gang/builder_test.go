package gang

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonerose/ezgangsheets/internal/engine"
	"github.com/ramonerose/ezgangsheets/internal/model"
	"github.com/ramonerose/ezgangsheets/internal/pricing"
	"github.com/ramonerose/ezgangsheets/internal/render"
)

// stubRenderer records which sheets were rendered without producing real PDFs.
type stubRenderer struct {
	rendered []int
	fail     error
}

func (r *stubRenderer) RenderSheet(sheet model.SheetResult, contents render.ContentFunc) ([]byte, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	r.rendered = append(r.rendered, sheet.Index)
	return []byte("%PDF-stub"), nil
}

func testBuilderSettings() model.GangSettings {
	s := model.DefaultSettings()
	s.SmartFit = false
	return s
}

func TestBuild_PacksPricesAndRenders(t *testing.T) {
	renderer := &stubRenderer{}
	builder := NewBuilder(testBuilderSettings(), pricing.DefaultTables(), renderer, zerolog.Nop())
	items := []model.Item{model.NewItem("logo", 4, 2, 100)}

	job, err := builder.Build(items)

	require.NoError(t, err)
	require.Len(t, job.Sheets, 1)
	assert.Equal(t, []int{0}, renderer.rendered)
	assert.Equal(t, []byte("%PDF-stub"), job.Sheets[0].PDF)

	// 100 upright copies use 25 rows: 25*2.5 + 0.25 - 0.5 = 62.25, so a
	// 63in sheet billing six 12in tiers at the 22in rate.
	assert.Equal(t, 63.0, job.Sheets[0].Height)
	assert.InDelta(t, 31.68, job.Sheets[0].Cost, 1e-9)
	assert.InDelta(t, 31.68, job.TotalCost, 1e-9)
	assert.Equal(t, job.TotalCost, job.Pack.TotalCost)
}

func TestBuild_NilRendererSkipsArtifacts(t *testing.T) {
	builder := NewBuilder(testBuilderSettings(), pricing.DefaultTables(), nil, zerolog.Nop())
	items := []model.Item{model.NewItem("logo", 4, 2, 10)}

	job, err := builder.Build(items)

	require.NoError(t, err)
	require.Len(t, job.Sheets, 1)
	assert.Nil(t, job.Sheets[0].PDF)
	assert.Greater(t, job.TotalCost, 0.0)
}

func TestBuild_PackErrorAbortsJob(t *testing.T) {
	renderer := &stubRenderer{}
	builder := NewBuilder(testBuilderSettings(), pricing.DefaultTables(), renderer, zerolog.Nop())
	items := []model.Item{model.NewItem("banner", 30, 300, 1)}

	_, err := builder.Build(items)

	var tooLarge *engine.ItemTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Empty(t, renderer.rendered)
}

func TestBuild_RenderErrorAbortsJob(t *testing.T) {
	renderer := &stubRenderer{fail: assert.AnError}
	builder := NewBuilder(testBuilderSettings(), pricing.DefaultTables(), renderer, zerolog.Nop())
	items := []model.Item{model.NewItem("logo", 4, 2, 10)}

	_, err := builder.Build(items)

	require.ErrorIs(t, err, assert.AnError)
}
