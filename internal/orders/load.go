package orders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/po-generator/internal/config"
	"github.com/ginjaninja78/po-generator/internal/csvparser"
	"github.com/ginjaninja78/po-generator/internal/types"
	"github.com/ginjaninja78/po-generator/internal/xlsxparser"
)

// SourceStatus describes whether the export could be read at all.
type SourceStatus string

const (
	// SourceOK means the source was read; the aggregation may still be empty.
	SourceOK SourceStatus = "ok"
	// SourceMissing means no path was given or the file does not exist.
	SourceMissing SourceStatus = "missing"
	// SourceUnreadable means the file exists but could not be opened or parsed.
	SourceUnreadable SourceStatus = "unreadable"
)

// LoadOptions controls how an export is read.
type LoadOptions struct {
	NameColumn     string
	QuantityColumn string
	CSV            config.CSVSettings

	// Names, when set, rewrites item names before size extraction.
	Names *Transformer
}

// DefaultLoadOptions returns options matching the standard shop export.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		NameColumn:     config.DefaultNameColumn,
		QuantityColumn: config.DefaultQuantityColumn,
		CSV:            config.CSVSettings{Delimiter: ","},
	}
}

// LoadResult is the outcome of loading one export.
type LoadResult struct {
	// Orders is never nil; it is empty unless Status is SourceOK.
	Orders Aggregated

	Status SourceStatus

	// Err is the cause when Status is not SourceOK.
	Err error

	// Rows is the number of data rows read from the source.
	Rows int

	// Skipped is the number of rows dropped as malformed.
	Skipped int

	// MissingColumns lists required headers the source does not have.
	// Their absence yields zero usable rows, not an error.
	MissingColumns []string
}

// Empty reports whether no product was aggregated, for whatever reason.
func (r LoadResult) Empty() bool {
	return len(r.Orders) == 0
}

// Load reads an order export and aggregates it.
//
// PARAMETERS:
//   - path: A CSV file, or an .xlsx workbook.
//   - opts: Column names, CSV settings and name rules.
//
// RETURNS:
//   - A LoadResult. Load never fails outright: the status tells a missing
//     source from an unreadable one from an export that simply has no rows.
func Load(path string, opts LoadOptions) LoadResult {
	result := LoadResult{Orders: make(Aggregated)}

	if path == "" {
		result.Status = SourceMissing
		result.Err = fmt.Errorf("no input file given")
		return result
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.Status = SourceMissing
		} else {
			result.Status = SourceUnreadable
		}
		result.Err = fmt.Errorf("failed to stat input file: %w", err)
		return result
	}
	if info.IsDir() {
		result.Status = SourceUnreadable
		result.Err = fmt.Errorf("input path %s is a directory", path)
		return result
	}

	records, err := readRecords(path, opts)
	if err != nil {
		result.Status = SourceUnreadable
		result.Err = err
		return result
	}

	result.Status = SourceOK
	result.Rows = len(records.Rows)

	for _, column := range []string{opts.NameColumn, opts.QuantityColumn} {
		if !records.HasColumn(column) {
			result.MissingColumns = append(result.MissingColumns, column)
		}
	}
	if len(result.MissingColumns) > 0 {
		result.Skipped = result.Rows
		return result
	}

	rows := RowsFromRecords(records, opts.NameColumn, opts.QuantityColumn)
	rows = opts.Names.Apply(rows)
	result.Orders, result.Skipped = aggregate(rows)

	return result
}

// RowsFromRecords pairs the name and quantity columns of each record.
func RowsFromRecords(records *types.Records, nameColumn, quantityColumn string) []RawRow {
	names := csvparser.GetColumnByHeader(records, nameColumn)
	quantities := csvparser.GetColumnByHeader(records, quantityColumn)

	rows := make([]RawRow, len(names))
	for i := range names {
		rows[i] = RawRow{Name: names[i], Quantity: quantities[i]}
	}
	return rows
}

// readRecords dispatches on the file extension.
func readRecords(path string, opts LoadOptions) (*types.Records, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		records, err := xlsxparser.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse workbook: %w", err)
		}
		return records, nil
	}

	records, err := csvparser.Parse(path, opts.CSV)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return records, nil
}
