// =============================================================================
// Purchase Order Generator - Document Composer
// =============================================================================
//
// This package turns selected products and contact details into an ordered
// block layout ready for the renderer.
//
// LAYOUT (top to bottom):
//   1. Header: logo + issuer lines | title + date/PO table
//   2. Vendor and Ship To panels side by side
//   3. One "Item Details" section per product with its size table
//
// The composer never fails. A logo that cannot be decoded becomes a
// placeholder paragraph and is reported through Document.LogoStatus.
//
// =============================================================================

package composer

import (
	"errors"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/ginjaninja78/po-generator/internal/orders"
	"github.com/ginjaninja78/po-generator/internal/types"
	"github.com/go-pdf/fpdf"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// Title is the document heading.
	Title = "Purchase Order"

	// DateLayout formats the order date as MM/DD/YYYY.
	DateLayout = "01/02/2006"

	// PONumberLayout formats the PO number as YYYYMMDD_HHMMSS.
	PONumberLayout = "20060102_150405"

	// LogoErrorText replaces a logo that exists but cannot be decoded.
	LogoErrorText = "[Logo Error]"

	// NoSizeLabel is how the no-size bucket is displayed.
	NoSizeLabel = "No Size"

	// TotalLabel labels the last row of each size table.
	TotalLabel = "TOTAL"

	// MaxLogoSize bounds the logo on both axes.
	MaxLogoSize = 1.5 * Inch
)

// LogoStatus records what happened to the logo during composition.
type LogoStatus string

const (
	// LogoNone means no logo path was configured.
	LogoNone LogoStatus = "none"
	// LogoOK means the logo was decoded and placed.
	LogoOK LogoStatus = "ok"
	// LogoMissing means the configured logo file does not exist.
	LogoMissing LogoStatus = "missing"
	// LogoError means the logo file exists but could not be decoded.
	LogoError LogoStatus = "error"
)

// =============================================================================
// REQUEST AND DOCUMENT
// =============================================================================

// Request carries everything one purchase order is built from.
type Request struct {
	// Products are rendered in this order.
	Products []types.Product

	Issuer types.Issuer
	Vendor types.Vendor
	ShipTo types.ShipTo

	// LogoPath is an optional raster image shown in the header.
	LogoPath string

	// Now is the order timestamp. The zero value means time.Now().
	Now time.Time
}

// Document is a composed purchase order.
type Document struct {
	// Blocks are the top-level blocks in page order.
	Blocks []Block

	Title    string
	PONumber string
	Date     string

	LogoStatus LogoStatus

	// LogoErr holds the decode or stat error when LogoStatus is not OK.
	LogoErr error
}

// =============================================================================
// COMPOSE
// =============================================================================

// Compose builds the purchase order layout for a request.
//
// PARAMETERS:
//   - req: products, contact blocks, optional logo and timestamp
//
// RETURNS:
//   - *Document: the ordered block layout (never nil)
func Compose(req Request) *Document {
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	doc := &Document{
		Title:    Title,
		PONumber: now.Format(PONumberLayout),
		Date:     now.Format(DateLayout),
	}

	logo, status, logoErr := logoBlock(req.LogoPath)
	doc.LogoStatus = status
	doc.LogoErr = logoErr

	doc.Blocks = append(doc.Blocks,
		headerTable(logo, req.Issuer, doc.Date, doc.PONumber),
		NewSpacer(0.4*Inch),
		partiesTable(req.Vendor, req.ShipTo),
		NewSpacer(0.4*Inch),
	)

	for _, product := range req.Products {
		doc.Blocks = append(doc.Blocks, productBlocks(product)...)
	}

	return doc
}

// =============================================================================
// HEADER
// =============================================================================

func headerTable(logo Block, issuer types.Issuer, date, poNumber string) Block {
	left := []Block{logo, NewSpacer(0.2 * Inch)}
	left = append(left, IssuerLines(issuer)...)

	dateTable := NewTable(Table{
		ColWidths: []float64{0.8 * Inch, 1.5 * Inch},
		Rows: []Row{
			{Cells: []Cell{
				{Blocks: []Block{NewText(StyleHeaderLabel, "Date")}},
				{Blocks: []Block{NewText(StyleHeaderValue, date)}},
			}},
			{Cells: []Cell{
				{Blocks: []Block{NewText(StyleHeaderLabel, "P.O. #")}},
				{Blocks: []Block{NewText(StyleHeaderValue, poNumber)}},
			}},
		},
		Padding: Padding{Top: 2, Right: 4, Bottom: 2, Left: 4},
		Align:   AlignRight,
	})

	right := []Block{
		NewText(StyleTitle, Title),
		NewSpacer(0.3 * Inch),
		dateTable,
	}

	return NewTable(Table{
		ColWidths: []float64{4 * Inch, 3.5 * Inch},
		Rows: []Row{{Cells: []Cell{
			{Blocks: left, Align: AlignLeft},
			{Blocks: right, Align: AlignRight},
		}}},
		Padding: noPadding,
	})
}

// logoBlock decodes the logo header to size it. The pixel size is taken as
// points (72 dpi) and only ever scaled down to fit MaxLogoSize.
func logoBlock(path string) (Block, LogoStatus, error) {
	if path == "" {
		return NewSpacer(0.5 * Inch), LogoNone, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewSpacer(0.5 * Inch), LogoMissing, err
		}
		return NewText(StyleNormal, LogoErrorText), LogoError, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return NewText(StyleNormal, LogoErrorText), LogoError, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return NewText(StyleNormal, LogoErrorText), LogoError, errors.New("logo has no pixels")
	}
	if err := embeddable(path, format); err != nil {
		return NewText(StyleNormal, LogoErrorText), LogoError, err
	}

	width, height := float64(cfg.Width), float64(cfg.Height)
	scale := 1.0
	if width > MaxLogoSize {
		scale = MaxLogoSize / width
	}
	if height*scale > MaxLogoSize {
		scale = MaxLogoSize / height
	}

	return NewImage(Image{
		Path:   path,
		Format: format,
		Width:  width * scale,
		Height: height * scale,
	}), LogoOK, nil
}

// embeddable reports whether the PDF writer can load the image. Some files
// decode fine but cannot be embedded, e.g. interlaced PNGs.
func embeddable(path, format string) error {
	scratch := fpdf.New("P", "pt", "Letter", "")
	scratch.RegisterImageOptions(path, fpdf.ImageOptions{ImageType: format})
	return scratch.Error()
}

// =============================================================================
// CONTACT BLOCKS
// =============================================================================

// IssuerLines returns the issuer contact lines. All lines are always present.
func IssuerLines(issuer types.Issuer) []Block {
	return []Block{
		NewParagraph(StyleContact, Run{Text: issuer.Name, Bold: true}),
		NewText(StyleContact, issuer.Address),
		NewText(StyleContact, issuer.City),
		NewText(StyleContact, "Phone: "+issuer.Phone),
		NewText(StyleContact, "Fax: "+issuer.Fax),
	}
}

// VendorLines returns the vendor contact lines. The website line is left
// out when empty.
func VendorLines(vendor types.Vendor) []Block {
	lines := []Block{NewParagraph(StyleContact, Run{Text: vendor.Name, Bold: true})}
	if vendor.Website != "" {
		lines = append(lines, NewText(StyleContact, vendor.Website))
	}
	return append(lines,
		NewText(StyleContact, vendor.Address),
		NewText(StyleContact, vendor.City),
		NewText(StyleContact, "Phone: "+vendor.Phone),
	)
}

// ShipToLines returns the ship-to contact lines. The city line is left out
// when empty.
func ShipToLines(shipTo types.ShipTo) []Block {
	lines := []Block{
		NewText(StyleContact, "Attn: "+shipTo.Attn),
		NewText(StyleContact, shipTo.Company),
		NewText(StyleContact, shipTo.Address),
	}
	if shipTo.City != "" {
		lines = append(lines, NewText(StyleContact, shipTo.City))
	}
	return append(lines, NewText(StyleContact, "Phone: "+shipTo.Phone))
}

func partiesTable(vendor types.Vendor, shipTo types.ShipTo) Block {
	return NewTable(Table{
		ColWidths: []float64{3.5 * Inch, 0.5 * Inch, 3.5 * Inch},
		Rows: []Row{{Cells: []Cell{
			{Blocks: []Block{panel("Vendor", VendorLines(vendor))}},
			{},
			{Blocks: []Block{panel("Ship To", ShipToLines(shipTo))}},
		}}},
		Padding: noPadding,
	})
}

// panel is a one-column table with a dark caption band above the lines.
func panel(caption string, lines []Block) Block {
	band := DarkBlue
	return NewTable(Table{
		ColWidths: []float64{3.5 * Inch},
		Rows: []Row{
			{
				Cells:      []Cell{{Blocks: []Block{NewText(StyleSectionHeader, caption)}}},
				Background: &band,
			},
			{Cells: []Cell{{Blocks: lines}}},
		},
		Padding: cellPadding,
	})
}

// =============================================================================
// PRODUCT SECTIONS
// =============================================================================

func productBlocks(product types.Product) []Block {
	return []Block{
		NewText(StyleItemCaption, "Item Details"),
		NewParagraph(StyleNormal, Run{Text: "Product: "}, Run{Text: product.Name, Bold: true}),
		NewSpacer(0.1 * Inch),
		SizeTable(product),
		NewSpacer(0.3 * Inch),
	}
}

// SizeTable builds the Size | Quantity table for one product, ending with a
// TOTAL row.
func SizeTable(product types.Product) Block {
	header := DarkBlue
	total := LightBlue
	sizePadding := Padding{Top: cellPadding.Top, Right: cellPadding.Right, Bottom: cellPadding.Bottom, Left: 12}

	row := func(style Style, size, qty string, bg *Color) Row {
		return Row{
			Cells: []Cell{
				{Blocks: []Block{NewText(style, size)}, Padding: &sizePadding},
				{Blocks: []Block{NewText(aligned(style, AlignCenter), qty)}},
			},
			Background: bg,
		}
	}

	rows := []Row{row(StyleSizeHeader, "Size", "Quantity", &header)}
	for _, size := range orders.SortedSizes(product.Sizes) {
		rows = append(rows, row(StyleSizeCell, SizeLabel(size), strconv.Itoa(product.Sizes[size]), nil))
	}
	rows = append(rows, row(StyleSizeTotal, TotalLabel, strconv.Itoa(product.Total()), &total))

	return NewTable(Table{
		ColWidths: []float64{5.5 * Inch, 2 * Inch},
		Rows:      rows,
		Box:       1,
		BoxColor:  Black,
		Grid:      0.5,
		GridColor: Grey,
		Padding:   cellPadding,
		Align:     AlignLeft,
	})
}

// SizeLabel returns the display text of a size bucket.
func SizeLabel(size string) string {
	if size == orders.NoSize {
		return NoSizeLabel
	}
	return size
}
