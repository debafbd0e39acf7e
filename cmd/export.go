package cmd

import (
	"errors"
	"fmt"

	"github.com/ginjaninja78/po-generator/internal/generator"
	"github.com/ginjaninja78/po-generator/internal/orders"
	"github.com/ginjaninja78/po-generator/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportInput  string
	exportOutput string
)

// exportCmd writes the size summary of every product to a spreadsheet.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the order summary to XLSX",
	Long: `Write one row per product and size, plus a TOTAL row per product, to an
XLSX workbook. Sizes appear in the same order as on the purchase order.`,
	Example: `  pogen export --output summary.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportOutput == "" {
			return errors.New("--output is required")
		}

		gen := generator.New(appConfig, logger)
		loaded, err := gen.LoadOrders(exportInput)
		if err != nil {
			return err
		}
		if loaded.Status != orders.SourceOK {
			return fmt.Errorf("failed to load orders: %w", loaded.Err)
		}

		n, err := report.ExportSummaryToXLSX(loaded.Orders.Products(), exportOutput)
		if err != nil {
			return err
		}
		logger.Info("exported order summary", zap.String("output", exportOutput), zap.Int("rows", n))
		fmt.Fprintf(cmd.OutOrStdout(), "Summary written: %s (%d rows)\n", exportOutput, n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "Order export to read (CSV or XLSX)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "XLSX file to write")
}
