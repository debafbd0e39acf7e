package cmd

import (
	"fmt"

	"github.com/ginjaninja78/po-generator/internal/composer"
	"github.com/ginjaninja78/po-generator/internal/generator"
	"github.com/ginjaninja78/po-generator/internal/orders"
	"github.com/spf13/cobra"
)

var (
	listInput string
	listSizes bool
)

// listCmd prints the products in the export with their total units.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List products in the order export",
	Long: `List every product found in the order export, sorted by name, with the
total number of units ordered. Use --sizes to show the per-size breakdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := generator.New(appConfig, logger)
		loaded, err := gen.LoadOrders(listInput)
		if err != nil {
			return err
		}
		if loaded.Status == orders.SourceUnreadable {
			return fmt.Errorf("failed to read orders: %w", loaded.Err)
		}

		out := cmd.OutOrStdout()
		if loaded.Empty() {
			fmt.Fprintln(out, "No products found in orders file.")
			return nil
		}

		for _, p := range loaded.Orders.Products() {
			fmt.Fprintf(out, "%s (%d units)\n", p.Name, p.Total())
			if listSizes {
				for _, size := range orders.SortedSizes(p.Sizes) {
					fmt.Fprintf(out, "    %-10s %d\n", displaySize(size), p.Sizes[size])
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listInput, "input", "i", "", "Order export to read (CSV or XLSX)")
	listCmd.Flags().BoolVar(&listSizes, "sizes", false, "Show quantities per size")
}

// displaySize returns the printable label of a size bucket.
func displaySize(size string) string {
	return composer.SizeLabel(size)
}
