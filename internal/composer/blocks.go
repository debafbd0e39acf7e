// =============================================================================
// Purchase Order Generator - Document Blocks
// =============================================================================
//
// A composed purchase order is a flat, ordered list of blocks. Tables nest
// further blocks inside their cells, which is how the two-column header and
// the vendor/ship-to panels are expressed. Blocks carry no drawing state;
// the renderer decides where on the page each one lands.
//
// BLOCK KINDS:
//   - paragraph : styled text made of one or more runs (bold or regular)
//   - spacer    : fixed vertical gap
//   - image     : a raster image drawn at a fixed size
//   - table     : rows of cells with column widths and per-table styling
//
// All dimensions are in points (1 inch = 72 points).
//
// =============================================================================

package composer

// Inch is one inch in points.
const Inch = 72.0

// Kind identifies the type of a block.
type Kind string

const (
	KindParagraph Kind = "paragraph"
	KindSpacer    Kind = "spacer"
	KindImage     Kind = "image"
	KindTable     Kind = "table"
)

// Align is the horizontal alignment of text or cell content.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Color is an RGB color.
type Color struct {
	R, G, B int
}

// Block is one visual unit of the document.
// Exactly one of Paragraph, Image or Table is set, according to Kind;
// spacers only use Height.
type Block struct {
	Kind Kind

	// Height is the vertical size of a spacer.
	Height float64

	Paragraph *Paragraph
	Image     *Image
	Table     *Table
}

// Run is a stretch of text with a uniform weight.
type Run struct {
	Text string
	Bold bool
}

// Paragraph is styled, wrapped text.
type Paragraph struct {
	Runs  []Run
	Style Style
}

// Text returns the concatenated text of every run.
func (p *Paragraph) Text() string {
	text := ""
	for _, run := range p.Runs {
		text += run.Text
	}
	return text
}

// Style describes how a paragraph is set.
type Style struct {
	Name     string
	FontSize float64
	Leading  float64
	Bold     bool
	Align    Align
	Color    Color
}

// Image is a raster image scaled to Width x Height points.
type Image struct {
	Path string

	// Format is the decoded image format ("png", "jpeg", "gif").
	Format string

	Width  float64
	Height float64
}

// Table is a grid of cells.
type Table struct {
	ColWidths []float64
	Rows      []Row

	// Box is the outer border width; zero means no border.
	Box float64
	// BoxColor is the outer border color.
	BoxColor Color

	// Grid is the inner grid line width; zero means no grid.
	Grid float64
	// GridColor is the inner grid line color.
	GridColor Color

	// Padding is the default cell padding on every side.
	Padding Padding

	// Align is the horizontal alignment of the table within its container.
	Align Align
}

// Row is one table row.
type Row struct {
	Cells []Cell

	// Background fills the whole row when set.
	Background *Color
}

// Cell holds the blocks stacked inside one table cell.
type Cell struct {
	Blocks []Block

	// Background fills the cell when set; it wins over the row background.
	Background *Color

	// Padding overrides the table padding when set.
	Padding *Padding

	// Align positions nested blocks (images, tables) horizontally.
	Align Align
}

// Padding is the inner spacing of a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// =============================================================================
// BLOCK CONSTRUCTORS
// =============================================================================

// NewParagraph creates a paragraph block.
func NewParagraph(style Style, runs ...Run) Block {
	return Block{Kind: KindParagraph, Paragraph: &Paragraph{Runs: runs, Style: style}}
}

// NewText creates a single-run paragraph block.
func NewText(style Style, text string) Block {
	return NewParagraph(style, Run{Text: text, Bold: style.Bold})
}

// NewSpacer creates a spacer block.
func NewSpacer(height float64) Block {
	return Block{Kind: KindSpacer, Height: height}
}

// NewImage creates an image block.
func NewImage(img Image) Block {
	return Block{Kind: KindImage, Image: &img}
}

// NewTable creates a table block.
func NewTable(t Table) Block {
	return Block{Kind: KindTable, Table: &t}
}
