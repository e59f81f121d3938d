// Package importer reads order lists from CSV and Excel files. It supports
// automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// OrderLine is one row of an imported order list: a design file with a copy
// count and optional size and orientation overrides. When HasSize is false
// the dimensions must come from measuring the file itself.
type OrderLine struct {
	File     string
	Quantity int
	Width    float64
	Height   float64
	Rotate   bool
	HasSize  bool
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Lines    []OrderLine
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	File     int
	Quantity int
	Width    int
	Height   int
	Rotate   int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"file":     {"file", "filename", "file name", "design", "image", "logo", "path", "artwork"},
	"quantity": {"quantity", "qty", "count", "copies", "num", "amount", "pcs", "pieces"},
	"width":    {"width", "w", "x"},
	"height":   {"height", "h", "y"},
	"rotate":   {"rotate", "rotated", "rotation", "landscape", "turn"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row.
		// Only consider delimiters that produce more than 1 column.
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		File:     -1,
		Quantity: -1,
		Width:    -1,
		Height:   -1,
		Rotate:   -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "file":
						if mapping.File == -1 {
							mapping.File = i
						}
					case "quantity":
						if mapping.Quantity == -1 {
							mapping.Quantity = i
						}
					case "width":
						if mapping.Width == -1 {
							mapping.Width = i
						}
					case "height":
						if mapping.Height == -1 {
							mapping.Height = i
						}
					case "rotate":
						if mapping.Rotate == -1 {
							mapping.Rotate = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: File, Quantity, Width, Height, Rotate
		return ColumnMapping{
			File:     0,
			Quantity: 1,
			Width:    2,
			Height:   3,
			Rotate:   4,
		}, false
	}

	return mapping, true
}

// parseRotate converts an orientation cell to a bool.
// Returns the value and whether the string was recognized.
func parseRotate(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "rotated", "landscape":
		return true, true
	case "", "no", "n", "false", "0", "upright", "portrait", "-":
		return false, true
	default:
		return false, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts an OrderLine from a row using the given column mapping.
// Returns the line, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (OrderLine, string, string) {
	file := getCell(row, mapping.File)
	if file == "" {
		return OrderLine{}, fmt.Sprintf("%s: Missing file value", rowLabel), ""
	}

	qtyStr := getCell(row, mapping.Quantity)
	if qtyStr == "" {
		return OrderLine{}, fmt.Sprintf("%s: Missing quantity value", rowLabel), ""
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return OrderLine{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), ""
	}
	if qty <= 0 {
		return OrderLine{}, fmt.Sprintf("%s: Quantity must be positive", rowLabel), ""
	}

	line := OrderLine{File: file, Quantity: qty}

	// Width and height are optional as a pair; giving only one is an error.
	widthStr := getCell(row, mapping.Width)
	heightStr := getCell(row, mapping.Height)
	if widthStr != "" || heightStr != "" {
		if widthStr == "" || heightStr == "" {
			return OrderLine{}, fmt.Sprintf("%s: Width and height must be given together", rowLabel), ""
		}
		width, err := strconv.ParseFloat(widthStr, 64)
		if err != nil {
			return OrderLine{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), ""
		}
		height, err := strconv.ParseFloat(heightStr, 64)
		if err != nil {
			return OrderLine{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), ""
		}
		if width <= 0 || height <= 0 {
			return OrderLine{}, fmt.Sprintf("%s: Width and height must be positive", rowLabel), ""
		}
		line.Width = width
		line.Height = height
		line.HasSize = true
	}

	// Optional orientation override
	var warning string
	rotateStr := getCell(row, mapping.Rotate)
	if rotateStr != "" {
		rotate, ok := parseRotate(rotateStr)
		if ok {
			line.Rotate = rotate
		} else {
			warning = fmt.Sprintf("%s: Unknown rotate value '%s', defaulting to upright", rowLabel, rotateStr)
		}
	}

	return line, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports order lines from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports order lines from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports order lines from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into order lines.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		missing := []string{}
		if mapping.File == -1 {
			missing = append(missing, "File")
		}
		if mapping.Quantity == -1 {
			missing = append(missing, "Quantity")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check whether the quantity column of the first row is
		// numeric. If not, it is likely an unrecognized header row.
		if len(rows[0]) >= 2 {
			if _, err := strconv.Atoi(strings.TrimSpace(rows[0][1])); err != nil {
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		line, errMsg, warning := parseRow(row, mapping, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Lines = append(result.Lines, line)
	}

	return result
}
