// =============================================================================
// Purchase Order Generator - XLSX Order Export Parser
// =============================================================================
//
// Some shop back-offices hand out the order export as an Excel workbook
// instead of CSV. This module reads such a workbook into the same Records
// shape the CSV parser produces, so everything downstream is format-agnostic.
//
// WORKBOOK STRUCTURE (Expected):
//   | Column A | Column B      | ... | Column N          | Column O          |
//   |----------|---------------|-----|-------------------|-------------------|
//   | Name     | Email         | ... | Lineitem name     | Lineitem quantity |
//   | #1001    | a@example.com | ... | Gi - A2           | 3                 |
//
//   Row 1 is the header row. The first sheet is used unless a sheet name is
//   given explicitly.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/po-generator/internal/types"
	"github.com/xuri/excelize/v2"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads the first sheet of an XLSX workbook.
//
// PARAMETERS:
//   - filePath: The path to the XLSX file.
//
// RETURNS:
//   - The parsed records (possibly with zero rows).
//   - An error if the workbook cannot be opened or has no sheets.
func Parse(filePath string) (*types.Records, error) {
	return ParseSheet(filePath, "")
}

// ParseSheet reads a named sheet; an empty name selects the first sheet.
func ParseSheet(filePath, sheetName string) (*types.Records, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	records := &types.Records{
		Headers:    []string{},
		Rows:       []map[string]string{},
		SourceFile: filePath,
	}

	// Find the header row.
	start := 0
	for start < len(rows) && isRowEmpty(rows[start]) {
		start++
	}
	if start >= len(rows) {
		return records, nil
	}

	records.Headers = cleanHeaders(rows[start])

	for _, row := range rows[start+1:] {
		// GetRows drops trailing empty cells, so rows may be short.
		if isRowEmpty(row) {
			continue
		}

		rowMap := make(map[string]string, len(records.Headers))
		for colIndex, header := range records.Headers {
			if colIndex < len(row) {
				rowMap[header] = strings.TrimSpace(row[colIndex])
			} else {
				rowMap[header] = ""
			}
		}
		records.Rows = append(records.Rows, rowMap)
	}

	return records, nil
}

// cleanHeaders trims header values and names blank headers by position.
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

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
