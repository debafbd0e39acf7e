// =============================================================================
// Purchase Order Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser / xlsxparser (Records)
//   - orders (Product)
//   - composer (contact blocks, Product)
//   - settings and validation (contact blocks)
//
// =============================================================================

package types

// =============================================================================
// TABULAR RECORDS
// =============================================================================

// Records is a header-addressable view of a tabular order export.
// Both the CSV reader and the XLSX reader produce this shape.
type Records struct {
	// Headers contains the column headers in file order.
	Headers []string

	// Rows contains the data rows as maps of header -> value.
	Rows []map[string]string

	// SourceFile is the path the records were read from.
	SourceFile string
}

// HasColumn reports whether the records carry a column with this exact header.
func (r *Records) HasColumn(header string) bool {
	for _, h := range r.Headers {
		if h == header {
			return true
		}
	}
	return false
}

// =============================================================================
// PRODUCT TYPES
// =============================================================================

// Product is one selected product with its per-size quantities.
type Product struct {
	// Name is the base product name (size suffix removed).
	Name string

	// Sizes maps a size token (or the no-size sentinel) to its summed quantity.
	Sizes map[string]int
}

// Total returns the sum of all size quantities.
func (p Product) Total() int {
	total := 0
	for _, qty := range p.Sizes {
		total += qty
	}
	return total
}

// =============================================================================
// CONTACT BLOCKS
// =============================================================================
// Each party on the purchase order has a fixed-shape record. Every field is
// optional. How a blank field is rendered is documented per field.

// Issuer is the company issuing the purchase order.
// All five lines are always rendered; blank values leave a blank line
// (labelled lines keep their label, e.g. "Phone: ").
type Issuer struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	City    string `yaml:"city"` // "City, ST ZIP"
	Phone   string `yaml:"phone"`
	Fax     string `yaml:"fax"`
}

// Vendor is the supplier receiving the purchase order.
// Website is omitted entirely when empty; other lines are always rendered.
type Vendor struct {
	Name    string `yaml:"name"`
	Website string `yaml:"website"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	Phone   string `yaml:"phone"`
}

// ShipTo is the delivery destination.
// City is omitted entirely when empty. Website is kept with the record but
// is not part of the rendered layout.
type ShipTo struct {
	Attn    string `yaml:"attn"`
	Company string `yaml:"company"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	Phone   string `yaml:"phone"`
	Website string `yaml:"website"`
}
