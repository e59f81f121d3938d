// Package render turns packed gang sheets into PDF artifacts: the printable
// sheets themselves, a job summary report, and QR-coded roll labels.
package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"

	"github.com/ramonerose/ezgangsheets/internal/model"
)

// ContentFunc resolves an item ID to its raw payload and content type.
type ContentFunc func(id string) ([]byte, string, error)

// itemColor represents an RGB color for placeholder rectangles.
type itemColor struct {
	R, G, B int
}

var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
}

// PDFRenderer renders gang sheets as print-ready PDF pages.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// RenderSheet produces a single-page PDF of the sheet's exact physical size
// with every placement drawn at its layout position. Placement coordinates
// use a bottom-left origin; fpdf uses top-left, so Y is flipped here.
// Rotated items honor the packing convention that rotation pivots around the
// placement anchor and extends the content leftward from it.
func (r *PDFRenderer) RenderSheet(sheet model.SheetResult, contents ContentFunc) ([]byte, error) {
	if sheet.Width <= 0 || sheet.Height <= 0 {
		return nil, fmt.Errorf("sheet %d has no physical size", sheet.Index)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: sheet.Width, Ht: sheet.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	registered := make(map[string]bool)
	for i, p := range sheet.Placements {
		data, contentType, err := contents(p.Item.Item.ID)
		if err != nil {
			return nil, fmt.Errorf("content for item %q: %w", p.Item.Item.Label, err)
		}

		switch contentType {
		case "png", "jpeg", "gif":
			if err := drawRaster(pdf, p, sheet.Height, data, contentType, registered); err != nil {
				return nil, fmt.Errorf("draw item %q: %w", p.Item.Item.Label, err)
			}
		default:
			// Vector and unknown payloads get a labeled placeholder so the
			// proof still shows the exact footprint.
			drawPlaceholder(pdf, p, sheet.Height, itemColors[i%len(itemColors)])
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize sheet %d: %w", sheet.Index, err)
	}
	return buf.Bytes(), nil
}

// drawRaster embeds a raster payload at the placement position. Non-PNG,
// non-JPEG payloads are re-encoded to PNG first; fpdf's PNG path handles
// transparency and palette images most reliably.
func drawRaster(pdf *fpdf.Fpdf, p model.Placement, sheetHeight float64, data []byte, contentType string, registered map[string]bool) error {
	imgType := "PNG"
	switch contentType {
	case "jpeg":
		imgType = "JPG"
	case "gif":
		converted, err := toPNG(data)
		if err != nil {
			return err
		}
		data = converted
	}

	name := "item_" + p.Item.Item.ID
	if !registered[name] {
		pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: imgType}, bytes.NewReader(data))
		registered[name] = true
	}

	opts := fpdf.ImageOptions{ImageType: imgType}
	if !p.Item.Rotated {
		fy := sheetHeight - p.Y - p.Item.LayoutHeight
		pdf.ImageOptions(name, p.X, fy, p.Item.Item.Width, p.Item.Item.Height, false, opts, 0, "")
		return nil
	}

	// Rotated placement: p.X is the anchor; content extends leftward from it.
	// Rotate the native image -90 degrees about the footprint's top-right
	// corner so it lands on [p.X - layoutWidth, p.X].
	ax := p.X
	ay := sheetHeight - p.Y - p.Item.LayoutHeight
	pdf.TransformBegin()
	pdf.TransformRotate(-90, ax, ay)
	pdf.ImageOptions(name, ax, ay, p.Item.Item.Width, p.Item.Item.Height, false, opts, 0, "")
	pdf.TransformEnd()
	return nil
}

// toPNG re-encodes an arbitrary raster payload as PNG.
func toPNG(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawPlaceholder renders the placement footprint as a filled rectangle with
// the item's label and dimensions.
func drawPlaceholder(pdf *fpdf.Fpdf, p model.Placement, sheetHeight float64, col itemColor) {
	w := p.PlacedWidth()
	h := p.PlacedHeight()
	fx := p.X
	if p.Item.Rotated {
		fx -= w
	}
	fy := sheetHeight - p.Y - h

	pdf.SetFillColor(col.R, col.G, col.B)
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.01)
	pdf.Rect(fx, fy, w, h, "FD")

	if w < 0.75 || h < 0.3 {
		return
	}
	pdf.SetFont("Helvetica", "", labelFontSize(w, h))
	pdf.SetTextColor(0, 0, 0)

	label := p.Item.Item.Label
	labelW := pdf.GetStringWidth(label)
	if labelW < w-0.1 {
		pdf.SetXY(fx+(w-labelW)/2, fy+h/2-0.15)
		pdf.CellFormat(labelW, 0.15, label, "", 0, "C", false, 0, "")
	}

	dims := fmt.Sprintf("%.1fx%.1f", p.Item.Item.Width, p.Item.Item.Height)
	dimsW := pdf.GetStringWidth(dims)
	if h > 0.55 && dimsW < w-0.1 {
		pdf.SetXY(fx+(w-dimsW)/2, fy+h/2+0.02)
		pdf.CellFormat(dimsW, 0.15, dims, "", 0, "C", false, 0, "")
	}
}

// labelFontSize returns an appropriate font size based on footprint size in inches.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 2:
		return 8
	case minDim > 1:
		return 7
	default:
		return 6
	}
}
