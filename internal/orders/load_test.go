package orders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/po-generator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const shopExport = "Name,Email,Lineitem quantity,Lineitem name,Lineitem price\n" +
	"#1001,a@example.com,3,Gi - A2,120.00\n" +
	"#1002,b@example.com,2,Gi - A2,120.00\n" +
	"#1003,c@example.com,5,Rashguard,45.00\n" +
	"#1004,d@example.com,three,Belt,20.00\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "orders_export.csv", shopExport)

	result := Load(path, DefaultLoadOptions())

	require.Equal(t, SourceOK, result.Status)
	require.NoError(t, result.Err)
	assert.Equal(t, 4, result.Rows)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.MissingColumns)
	assert.Equal(t, Aggregated{
		"Gi":        {"A2": 5},
		"Rashguard": {NoSize: 5},
	}, result.Orders)
}

func TestLoad_MissingSource(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "no such file", path: filepath.Join(t.TempDir(), "missing.csv")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Load(tt.path, DefaultLoadOptions())

			assert.Equal(t, SourceMissing, result.Status)
			assert.Error(t, result.Err)
			assert.NotNil(t, result.Orders)
			assert.True(t, result.Empty())
		})
	}
}

func TestLoad_DirectoryIsUnreadable(t *testing.T) {
	result := Load(t.TempDir(), DefaultLoadOptions())

	assert.Equal(t, SourceUnreadable, result.Status)
	assert.Error(t, result.Err)
	assert.True(t, result.Empty())
}

func TestLoad_CorruptWorkbookIsUnreadable(t *testing.T) {
	path := writeFile(t, "orders.xlsx", "this is not a zip archive")

	result := Load(path, DefaultLoadOptions())

	assert.Equal(t, SourceUnreadable, result.Status)
	assert.Error(t, result.Err)
}

func TestLoad_RenamedColumnYieldsNoRows(t *testing.T) {
	path := writeFile(t, "orders.csv", "Item,Qty\nGi - A2,3\n")

	result := Load(path, DefaultLoadOptions())

	assert.Equal(t, SourceOK, result.Status)
	assert.NoError(t, result.Err)
	assert.True(t, result.Empty())
	assert.Equal(t, []string{config.DefaultNameColumn, config.DefaultQuantityColumn}, result.MissingColumns)
	assert.Equal(t, 1, result.Skipped)
}

func TestLoad_EmptyFileIsOKAndEmpty(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	result := Load(path, DefaultLoadOptions())

	assert.Equal(t, SourceOK, result.Status)
	assert.True(t, result.Empty())
}

func TestLoad_CustomColumnsAndDelimiter(t *testing.T) {
	path := writeFile(t, "orders.txt", "sku|item|qty\n1|Hoodie - L|2\n2|Hoodie - L|1\n")

	opts := LoadOptions{
		NameColumn:     "item",
		QuantityColumn: "qty",
		CSV:            config.CSVSettings{Delimiter: "pipe"},
	}
	result := Load(path, opts)

	require.Equal(t, SourceOK, result.Status)
	assert.Equal(t, Aggregated{"Hoodie": {"L": 3}}, result.Orders)
}

func TestLoad_NameRules(t *testing.T) {
	path := writeFile(t, "orders.csv", "Lineitem name,Lineitem quantity\nRashguard – M,1\nRashguard - M,2\n")

	names, err := NewTransformer([]config.TransformationRule{
		{Type: "replace", Find: "–", Value: "-"},
	})
	require.NoError(t, err)

	opts := DefaultLoadOptions()
	opts.Names = names
	result := Load(path, opts)

	assert.Equal(t, Aggregated{"Rashguard": {"M": 3}}, result.Orders)
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Name", "Lineitem name", "Lineitem quantity"},
		{"#1001", "Rashguard / XL", 2},
		{"#1002", "Rashguard / XL", 1},
		{"#1003", "Belt", "n/a"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "orders.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := Load(path, DefaultLoadOptions())

	require.Equal(t, SourceOK, result.Status)
	assert.Equal(t, Aggregated{"Rashguard": {"XL": 3}}, result.Orders)
	assert.Equal(t, 1, result.Skipped)
}
