// =============================================================================
// Purchase Order Generator - Main Entry Point
// =============================================================================
//
// USAGE:
//   pogen list              - List products in the order export
//   pogen generate          - Generate a purchase order PDF
//   pogen export            - Export the size summary to XLSX
//   pogen vendor            - Manage saved vendors
//   pogen version           - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core logic (orders, composer, pdfwriter, settings, ...)
//   - pkg/       : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/po-generator/cmd"
)

func main() {
	cmd.Execute()
}
