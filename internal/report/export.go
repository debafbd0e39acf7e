// Package report writes the aggregated order summary to a spreadsheet.
package report

import (
	"fmt"

	"github.com/ginjaninja78/po-generator/internal/composer"
	"github.com/ginjaninja78/po-generator/internal/orders"
	"github.com/ginjaninja78/po-generator/internal/types"
	"github.com/ginjaninja78/po-generator/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the summary worksheet.
const SheetName = "Summary"

var headers = []string{"Product", "Size", "Quantity"}

// ExportSummaryToXLSX writes one row per (product, size) and a TOTAL row per
// product. Products appear in the given order; sizes use the purchase order
// display order.
//
// RETURNS:
//   - the number of data rows written (headers excluded)
func ExportSummaryToXLSX(products []types.Product, outputPath string) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return 0, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"003366"}},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create header style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E8F0F7"}},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create total style: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}
	_ = f.SetCellStyle(SheetName, "A1", "C1", headerStyle)

	r := 2
	set := func(col int, value any) {
		cell, _ := excelize.CoordinatesToCellName(col, r)
		_ = f.SetCellValue(SheetName, cell, value)
	}

	for _, p := range products {
		for _, size := range orders.SortedSizes(p.Sizes) {
			set(1, p.Name)
			set(2, composer.SizeLabel(size))
			set(3, p.Sizes[size])
			r++
		}
		set(1, p.Name)
		set(2, composer.TotalLabel)
		set(3, p.Total())
		start, _ := excelize.CoordinatesToCellName(1, r)
		end, _ := excelize.CoordinatesToCellName(3, r)
		_ = f.SetCellStyle(SheetName, start, end, totalStyle)
		r++
	}

	_ = f.SetColWidth(SheetName, "A", "A", 40)
	_ = f.SetColWidth(SheetName, "B", "C", 12)

	if err := utils.EnsureParentDir(outputPath); err != nil {
		return 0, err
	}
	if err := f.SaveAs(outputPath); err != nil {
		return 0, fmt.Errorf("failed to save summary: %w", err)
	}
	return r - 2, nil
}
