// =============================================================================
// Purchase Order Generator - File Manager Utility
// =============================================================================
//
// This module provides file helpers shared by the generator and the CLI:
//   - Output file naming (placeholders, safe product names)
//   - Directory management
//   - Existence checks
//
// NAMING:
//   A purchase order for one product is named after it:
//     PO_Competition_Gi_20240115_143022.pdf
//   An order for several products uses a fixed label:
//     PO_Multiple_Items_20240115_143022.pdf
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// MultipleItemsLabel names an order that covers more than one product.
const MultipleItemsLabel = "Multiple_Items"

// DefaultOutputNameFormat is the default output file name format.
const DefaultOutputNameFormat = "PO_{product}_{timestamp}.pdf"

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName expands an output file name format.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Order timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Order date (YYYYMMDD)
//               {time}      - Order time (HHMMSS)
//               {product}   - Product label (see ProductLabel)
//   - now: The order timestamp.
//   - params: Extra placeholder values, keyed without braces.
//   - ext: The required extension, e.g. ".pdf".
//
// RETURNS:
//   - The generated file name, always ending in ext.
//
// EXAMPLE:
//   format: "PO_{product}_{timestamp}"
//   params: {"product": "Gi"}
//   output: "PO_Gi_20240115_143022.pdf"
func GenerateOutputFileName(format string, now time.Time, params map[string]string, ext string) string {
	if format == "" {
		format = DefaultOutputNameFormat
	}

	replacements := map[string]string{
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}
	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// {uuid} is expanded per occurrence so two placeholders never collide.
	for strings.Contains(result, "{uuid}") {
		result = strings.Replace(result, "{uuid}", uuid.New().String(), 1)
	}

	if ext != "" && !strings.HasSuffix(strings.ToLower(result), strings.ToLower(ext)) {
		result += ext
	}

	return result
}

// SafeName replaces every rune that is not a letter or digit with "_".
func SafeName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
}

// ProductLabel returns the {product} value for a set of product names:
// the safe name of a single product, or MultipleItemsLabel.
func ProductLabel(names []string) string {
	if len(names) == 1 {
		return SafeName(names[0])
	}
	return MultipleItemsLabel
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates a directory and its parents if they don't exist.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	return EnsureDir(filepath.Dir(path))
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
