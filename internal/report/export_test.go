package report

import (
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/po-generator/internal/orders"
	"github.com/ginjaninja78/po-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportSummaryToXLSX(t *testing.T) {
	products := orders.Aggregated{
		"Rashguard": {"XL": 4, "M": 3, orders.NoSize: 5},
		"Gi":        {"A2": 2},
	}.Products()
	path := filepath.Join(t.TempDir(), "out", "summary.xlsx")

	n, err := ExportSummaryToXLSX(products, path)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Product", "Size", "Quantity"},
		{"Gi", "A2", "2"},
		{"Gi", "TOTAL", "2"},
		{"Rashguard", "M", "3"},
		{"Rashguard", "XL", "4"},
		{"Rashguard", "No Size", "5"},
		{"Rashguard", "TOTAL", "12"},
	}, rows)
}

func TestExportSummaryToXLSX_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")

	n, err := ExportSummaryToXLSX([]types.Product{}, path)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.FileExists(t, path)
}
