// =============================================================================
// Purchase Order Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, the main command. It writes one
// purchase order PDF for the selected products.
//
// COMMAND USAGE:
//   pogen generate (--product NAME ... | --all) [flags]
//
// FLAGS:
//   --input    : Order export to read (default from config)
//   --product  : Product to include; repeat for several
//   --all      : Include every product in the export
//   --output   : PDF path (default PO_<product>_<timestamp>.pdf)
//   --logo     : Logo image, overrides the saved one
//   --vendor   : Use a saved vendor
//   --no-save  : Do not save the settings used
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"

	"github.com/ginjaninja78/po-generator/internal/generator"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	generateInput   string
	generateProduct []string
	generateAll     bool
	generateOutput  string
	generateLogo    string
	generateVendor  string
	generateNoSave  bool
)

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a purchase order PDF",
	Long: `The generate command reads the order export, sums the quantities per
product and size, and writes a purchase order for the selected products.

Company, vendor and ship-to details come from the settings file. After a
successful run those settings are saved back (use --no-save to skip), and
the vendor is added to the saved vendor list.`,
	Example: `  pogen generate --product "Competition Gi"
  pogen generate --product Gi --product Rashguard --output po.pdf
  pogen generate --all --vendor "Mat Supply Co"`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.StringVarP(&generateInput, "input", "i", "", "Order export to read (CSV or XLSX)")
	flags.StringArrayVarP(&generateProduct, "product", "p", nil, "Product to include (repeatable)")
	flags.BoolVar(&generateAll, "all", false, "Include every product in the export")
	flags.StringVarP(&generateOutput, "output", "o", "", "Output PDF path")
	flags.StringVar(&generateLogo, "logo", "", "Logo image (PNG, JPEG or GIF)")
	flags.StringVar(&generateVendor, "vendor", "", "Name of a saved vendor to use")
	flags.BoolVar(&generateNoSave, "no-save", false, "Do not save the settings used")

	generateCmd.MarkFlagsMutuallyExclusive("product", "all")
}

// =============================================================================
// GENERATE IMPLEMENTATION
// =============================================================================

func runGenerate(cmd *cobra.Command) error {
	if !generateAll && len(generateProduct) == 0 {
		return errors.New("select products with --product or use --all")
	}

	gen := generator.New(appConfig, logger)
	result := gen.Run(generator.Options{
		InputFile:    generateInput,
		Products:     generateProduct,
		All:          generateAll,
		OutputPath:   generateOutput,
		LogoPath:     generateLogo,
		Vendor:       generateVendor,
		SaveSettings: !generateNoSave,
	})
	if result.Error != nil {
		return result.Error
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "PO generated: %s\n", result.OutputFile)
	fmt.Fprintf(out, "Products:     %d (%d units)\n", len(result.Products), result.Stats.UnitsOrdered)
	if len(result.Warnings) > 0 {
		fmt.Fprintf(out, "Warnings:     %d (see log)\n", len(result.Warnings))
	}
	return nil
}
