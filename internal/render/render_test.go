package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonerose/ezgangsheets/internal/model"
)

func pngPayload(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 80, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testSheet() model.SheetResult {
	it := model.NewItem("logo.png", 4, 2, 2)
	upright := model.Orient(it, false)
	rotated := model.Orient(it, true)
	return model.SheetResult{
		Index:  0,
		Width:  22,
		Height: 10,
		Cost:   5.28,
		Placements: []model.Placement{
			{Item: upright, Sheet: 0, Row: 0, X: 0.125, Y: 7.875},
			{Item: rotated, Sheet: 0, Row: 1, X: 2.125, Y: 3.375},
		},
	}
}

func TestRenderSheet_ProducesPDF(t *testing.T) {
	sheet := testSheet()
	payload := pngPayload(t, 400, 200)
	contents := func(id string) ([]byte, string, error) {
		return payload, "png", nil
	}

	data, err := NewPDFRenderer().RenderSheet(sheet, contents)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(data), 500)
}

func TestRenderSheet_PlaceholderForVectorPayloads(t *testing.T) {
	sheet := testSheet()
	contents := func(id string) ([]byte, string, error) {
		return []byte("0\nSECTION\n"), "dxf", nil
	}

	data, err := NewPDFRenderer().RenderSheet(sheet, contents)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderSheet_RejectsZeroSizeSheet(t *testing.T) {
	_, err := NewPDFRenderer().RenderSheet(model.SheetResult{}, nil)
	require.Error(t, err)
}

func TestRenderSheet_ContentErrorAborts(t *testing.T) {
	sheet := testSheet()
	contents := func(id string) ([]byte, string, error) {
		return nil, "", assert.AnError
	}

	_, err := NewPDFRenderer().RenderSheet(sheet, contents)
	require.ErrorIs(t, err, assert.AnError)
}

func TestSummaryPDF(t *testing.T) {
	result := model.PackResult{
		Sheets:    []model.SheetResult{testSheet()},
		TotalCost: 5.28,
	}

	data, err := SummaryPDF(result, model.DefaultSettings())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestLabelsPDF(t *testing.T) {
	result := model.PackResult{Sheets: []model.SheetResult{testSheet()}}

	data, err := LabelsPDF(result)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestCollectLabelInfos(t *testing.T) {
	sheet := testSheet()
	result := model.PackResult{Sheets: []model.SheetResult{sheet}}

	infos := CollectLabelInfos(result)

	require.Len(t, infos, 1)
	assert.Equal(t, 0, infos[0].SheetIndex)
	assert.Equal(t, 22.0, infos[0].Width)
	assert.Equal(t, 10.0, infos[0].Height)
	assert.Equal(t, 2, infos[0].Items)
	assert.Equal(t, []string{"logo.png"}, infos[0].Designs)
	assert.Equal(t, 5.28, infos[0].Cost)
}
