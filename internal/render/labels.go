package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ramonerose/ezgangsheets/internal/model"
)

// LabelInfo holds the data encoded into each sheet label's QR code.
type LabelInfo struct {
	SheetIndex int      `json:"sheet"`
	Width      float64  `json:"width_in"`
	Height     float64  `json:"height_in"`
	Items      int      `json:"items"`
	Designs    []string `json:"designs"`
	Cost       float64  `json:"cost"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows
// per page). Each label cell is approximately 66.7mm x 25.4mm on US Letter.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// LabelsPDF generates a PDF of QR-coded roll labels, one per produced gang
// sheet, for attaching to the finished rolls. Each label carries the sheet
// number, physical size, item count, and cost, with the same data encoded as
// JSON in the QR code.
func LabelsPDF(result model.PackResult) ([]byte, error) {
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return nil, fmt.Errorf("no sheets to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return nil, fmt.Errorf("render label for sheet %d: %w", label.SheetIndex, err)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize labels: %w", err)
	}
	return buf.Bytes(), nil
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_sheet_%d", info.SheetIndex)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("Gang Sheet %d", info.SheetIndex+1), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.0f x %.0f in", info.Width, info.Height)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	detail := fmt.Sprintf("%d items / %d designs", info.Items, len(info.Designs))
	pdf.CellFormat(textW, 3, detail, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetTextColor(0, 100, 0)
	pdf.CellFormat(textW, 3, fmt.Sprintf("$%.2f", info.Cost), "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a pack result for use in
// testing or alternative export formats.
func CollectLabelInfos(result model.PackResult) []LabelInfo {
	labels := make([]LabelInfo, 0, len(result.Sheets))
	for _, sheet := range result.Sheets {
		info := LabelInfo{
			SheetIndex: sheet.Index,
			Width:      sheet.Width,
			Height:     sheet.Height,
			Items:      len(sheet.Placements),
			Cost:       sheet.Cost,
		}
		seen := make(map[string]bool)
		for _, p := range sheet.Placements {
			if !seen[p.Item.Item.Label] {
				seen[p.Item.Item.Label] = true
				info.Designs = append(info.Designs, p.Item.Item.Label)
			}
		}
		labels = append(labels, info)
	}
	return labels
}
