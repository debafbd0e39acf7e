// =============================================================================
// Purchase Order Generator - CSV Parser Module
// =============================================================================
//
// This module is responsible for reading the order export produced by the
// shop system. The export is a UTF-8 delimited text file with one header row
// followed by one row per order line. Only a couple of columns are consumed
// downstream; all others are carried through untouched.
//
// FEATURES:
//   - Configurable delimiter (comma, pipe, tab, semicolon)
//   - Byte-order-mark tolerant header row
//   - Ragged rows (short rows are padded with empty values)
//   - Empty files yield empty records, not an error
//
// =============================================================================

package csvparser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/po-generator/internal/config"
	"github.com/ginjaninja78/po-generator/internal/types"
)

// utf8BOM is stripped from the first header when present.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns its records.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings from the main configuration.
//
// RETURNS:
//   - The parsed records (possibly with zero rows).
//   - An error if the file cannot be opened or is not valid delimited text.
func Parse(filePath string, settings config.CSVSettings) (*types.Records, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	records, err := ParseReader(file, settings)
	if err != nil {
		return nil, err
	}

	records.SourceFile = filePath
	return records, nil
}

// ParseReader reads delimited text from r.
//
// The first non-empty row is treated as the header row. Every following row
// is converted to a map of header -> trimmed value.
func ParseReader(r io.Reader, settings config.CSVSettings) (*types.Records, error) {
	reader := bufio.NewReader(r)

	// Drop a leading byte-order mark so the first header matches exactly.
	if head, err := reader.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = reader.Discard(len(utf8BOM))
	}

	csvReader := csv.NewReader(reader)
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	records := &types.Records{
		Headers: []string{},
		Rows:    []map[string]string{},
	}

	// Find the header row.
	start := 0
	for start < len(allRows) && isRowEmpty(allRows[start]) {
		start++
	}
	if start >= len(allRows) {
		return records, nil
	}

	records.Headers = cleanHeaders(allRows[start])
	records.Rows = extractDataRows(allRows[start+1:], records.Headers)

	return records, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Shop exports are not always rectangular.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
}

// cleanHeaders trims header values and names blank headers by position.
//
// Header names are otherwise kept byte-for-byte: the order columns are looked
// up by exact name, so no case folding happens here.
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

// extractDataRows converts raw rows to header -> value maps.
func extractDataRows(rows [][]string, headers []string) []map[string]string {
	dataRows := make([]map[string]string, 0, len(rows))

	for _, row := range rows {
		if isRowEmpty(row) {
			continue
		}

		rowMap := make(map[string]string, len(headers))
		for colIndex, header := range headers {
			if colIndex < len(row) {
				rowMap[header] = strings.TrimSpace(row[colIndex])
			} else {
				rowMap[header] = ""
			}
		}

		dataRows = append(dataRows, rowMap)
	}

	return dataRows
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

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// GetColumnByHeader returns all values for a specific column.
func GetColumnByHeader(records *types.Records, header string) []string {
	values := make([]string, len(records.Rows))
	for i, row := range records.Rows {
		values[i] = row[header]
	}
	return values
}
