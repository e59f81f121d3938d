package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/ramonerose/ezgangsheets/internal/model"
)

// Summary page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
)

// SummaryPDF generates a one-page job report: overall statistics, a
// per-sheet breakdown table with costs, and the settings used.
func SummaryPDF(result model.PackResult, settings model.GangSettings) ([]byte, error) {
	if len(result.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets to summarize")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Gang Sheet Job Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Total Sheets", fmt.Sprintf("%d", len(result.Sheets))},
		{"Total Items Placed", fmt.Sprintf("%d", result.TotalItems())},
		{"Total Print Length", fmt.Sprintf("%.0f in", result.TotalLength())},
		{"Overall Efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency())},
		{"Total Cost", fmt.Sprintf("$%.2f", result.TotalCost)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-sheet breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Sheet Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 45, 35, 45, 35, 35}
	headers := []string{"Sheet", "Size (in)", "Items", "Designs", "Efficiency", "Cost"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, sheet := range result.Sheets {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", sheet.Index+1),
			fmt.Sprintf("%.0f x %.0f", sheet.Width, sheet.Height),
			fmt.Sprintf("%d", len(sheet.Placements)),
			fmt.Sprintf("%d", countDesigns(sheet)),
			fmt.Sprintf("%.1f%%", sheet.Efficiency()),
			fmt.Sprintf("$%.2f", sheet.Cost),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Settings block
	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Job Settings", "", 0, "L", false, 0, "")
	y += 9

	mode := "per file"
	if settings.Consolidate {
		mode = "consolidated"
	}
	orientation := "fixed upright"
	if settings.SmartFit {
		orientation = "smart fit"
	} else if settings.Rotate {
		orientation = "fixed rotated"
	}

	settingsItems := []struct {
		label string
		value string
	}{
		{"Sheet Width", fmt.Sprintf("%.0f in", settings.SheetWidth)},
		{"Max Length", fmt.Sprintf("%.0f in", settings.MaxLength)},
		{"Margin", fmt.Sprintf("%.3f in", settings.Margin)},
		{"Spacing", fmt.Sprintf("%.2f in", settings.Spacing)},
		{"Orientation", orientation},
		{"Packing Mode", mode},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by ezgangsheets", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize summary: %w", err)
	}
	return buf.Bytes(), nil
}

// countDesigns returns the number of distinct source files on a sheet.
func countDesigns(sheet model.SheetResult) int {
	seen := make(map[string]bool)
	for _, p := range sheet.Placements {
		seen[p.Item.Item.ID] = true
	}
	return len(seen)
}
