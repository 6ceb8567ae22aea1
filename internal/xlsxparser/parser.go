// =============================================================================
// CSV to YAML Converter - XLSX Worksheet Parser
// =============================================================================
//
// This module reads records from an XLSX workbook. It treats one worksheet
// like a CSV file:
//
//   | Column A | Column B  | Column C |
//   |----------|-----------|----------|
//   | url      | name      | region   |   <- header row (row 1)
//   | http://x | Example X | eu       |   <- data rows
//   | http://y | Example Y |          |
//
// excelize trims trailing empty cells from each row, so a short row yields a
// types.Row without the missing columns, the same as a short CSV record.
// A blank row between data rows is kept, so row numbers match the sheet.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/config"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"
)

// =============================================================================
// SHEET DATA STRUCTURE
// =============================================================================

// SheetData represents the records read from one worksheet.
type SheetData struct {
	// SourceFile is the path to the workbook.
	SourceFile string

	// Sheet is the name of the worksheet that was read.
	Sheet string

	// Headers contains the cleaned header row.
	Headers []string

	// Rows contains the data rows, keyed by header.
	Rows []types.Row
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a worksheet from an XLSX workbook.
//
// PARAMETERS:
//   - workbookPath: The path to the XLSX file.
//   - settings: Selects the worksheet. An empty sheet name means the first one.
//
// RETURNS:
//   - A pointer to the SheetData struct.
//   - An error if the workbook cannot be opened or the sheet does not exist.
func Parse(workbookPath string, settings config.XLSXSettings) (*SheetData, error) {
	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	data, err := parseFile(f, settings)
	if err != nil {
		return nil, err
	}
	data.SourceFile = workbookPath

	return data, nil
}

func parseFile(f *excelize.File, settings config.XLSXSettings) (*SheetData, error) {
	sheetName := settings.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	} else if index, err := f.GetSheetIndex(sheetName); err != nil || index < 0 {
		return nil, fmt.Errorf("sheet %q not found (available: %s)",
			sheetName, strings.Join(f.GetSheetList(), ", "))
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	data := &SheetData{Sheet: sheetName}

	// Skip leading blank rows; the first non-blank row is the header.
	start := 0
	for start < len(rows) && isRowEmpty(rows[start]) {
		start++
	}
	if start == len(rows) {
		return data, nil
	}

	data.Headers = cleanHeaders(rows[start])

	// Blank rows after the last data row are formatting, not records.
	end := len(rows)
	for end > start+1 && isRowEmpty(rows[end-1]) {
		end--
	}

	// A blank row between data rows is a record with every cell empty.
	for _, row := range rows[start+1 : end] {
		data.Rows = append(data.Rows, types.NewRow(data.Headers, row))
	}

	return data, nil
}

// cleanHeaders trims header cells and names blank ones Column_<n>.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
