package cmd

import (
	"fmt"

	"github.com/ginjaninja78/po-generator/internal/pdfwriter"
	"github.com/spf13/cobra"
)

var inspectText bool

// inspectCmd reads a generated purchase order back.
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE.pdf",
	Short: "Show page count and text of a generated purchase order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := pdfwriter.Inspect(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File:  %s\n", args[0])
		fmt.Fprintf(out, "Pages: %d\n", summary.Pages)
		if inspectText {
			for i, text := range summary.Text {
				fmt.Fprintf(out, "\n--- page %d ---\n%s\n", i+1, text)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectText, "text", false, "Print the text of every page")
}
