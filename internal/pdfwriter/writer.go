// =============================================================================
// Purchase Order Generator - PDF Writer Module
// =============================================================================
//
// This module draws a composed purchase order onto PDF pages using fpdf.
//
// PAGE FLOW:
//   Top-level blocks are placed from the top margin downwards. A block that
//   does not fit in the remaining space starts a new page. Top-level tables
//   are the exception: they break between rows, and the outer box is drawn
//   around the part of the table on each page. Nested blocks (inside table
//   cells) are never split.
//
// TEXT:
//   Text uses the PDF core Helvetica fonts, so runes are mapped to cp1252
//   before measuring and drawing. Lines wrap at word boundaries to the width
//   of their cell.
//
// OUTPUT:
//   WriteFile renders the whole document in memory first, then writes it to a
//   temporary file next to the target and renames it into place. A failed
//   render never leaves a partial file behind.
//
// =============================================================================

package pdfwriter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/po-generator/internal/composer"
	"github.com/go-pdf/fpdf"
)

// =============================================================================
// WRITER OPTIONS
// =============================================================================

// Options controls page setup.
type Options struct {
	// PageSize is an fpdf page size name.
	// Default: "Letter"
	PageSize string

	// Margin is the page margin on every side, in points.
	// Default: 36 (0.5 inch)
	Margin float64

	// FontFamily is a core PDF font family.
	// Default: "Helvetica"
	FontFamily string

	// Creator is written to the PDF metadata.
	// Default: "po-generator"
	Creator string
}

// DefaultOptions returns the default page setup.
func DefaultOptions() Options {
	return Options{
		PageSize:   "Letter",
		Margin:     0.5 * composer.Inch,
		FontFamily: "Helvetica",
		Creator:    "po-generator",
	}
}

// Writer renders documents to PDF.
type Writer struct {
	options Options
}

// New creates a Writer. Zero-valued options fall back to the defaults.
func New(options Options) *Writer {
	defaults := DefaultOptions()
	if options.PageSize == "" {
		options.PageSize = defaults.PageSize
	}
	if options.Margin <= 0 {
		options.Margin = defaults.Margin
	}
	if options.FontFamily == "" {
		options.FontFamily = defaults.FontFamily
	}
	if options.Creator == "" {
		options.Creator = defaults.Creator
	}
	return &Writer{options: options}
}

// =============================================================================
// RENDER FUNCTIONS
// =============================================================================

// Render draws the document and writes the PDF bytes to w.
//
// PARAMETERS:
//   - doc: the composed document
//   - w: destination for the PDF bytes
//
// RETURNS:
//   - error: a *RenderError on failure
func (wr *Writer) Render(doc *composer.Document, w io.Writer) error {
	pdf, err := wr.render(doc)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return renderError(CodeRenderFailed, "failed to write PDF output", err)
	}
	return nil
}

// Generate renders the document and returns the PDF bytes.
func (wr *Writer) Generate(doc *composer.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := wr.Render(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders the document to path. The file appears only once the
// whole PDF has been written.
//
// PARAMETERS:
//   - doc: the composed document
//   - path: output file path; the directory must exist
//
// RETURNS:
//   - error: a *RenderError on failure
func (wr *Writer) WriteFile(doc *composer.Document, path string) error {
	data, err := wr.Generate(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".po-*.pdf.tmp")
	if err != nil {
		return renderError(CodeOutputUnwritable, fmt.Sprintf("failed to create file in %s", dir), err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return renderError(CodeOutputUnwritable, fmt.Sprintf("failed to write %s", path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return renderError(CodeOutputUnwritable, fmt.Sprintf("failed to write %s", path), err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return renderError(CodeOutputUnwritable, fmt.Sprintf("failed to set permissions on %s", path), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return renderError(CodeOutputUnwritable, fmt.Sprintf("failed to move output to %s", path), err)
	}

	return nil
}

// =============================================================================
// RENDERER
// =============================================================================

// renderer holds the drawing state of one Render call.
type renderer struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	options Options

	top, bottom float64
	left, width float64
	y           float64
}

func (wr *Writer) render(doc *composer.Document) (*fpdf.Fpdf, error) {
	if doc == nil {
		return nil, renderError(CodeRenderFailed, "no document to render", nil)
	}

	pdf := fpdf.New("P", "pt", wr.options.PageSize, "")
	margin := wr.options.Margin
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetTitle(fmt.Sprintf("%s %s", doc.Title, doc.PONumber), true)
	pdf.SetCreator(wr.options.Creator, true)

	pageWidth, pageHeight := pdf.GetPageSize()
	r := &renderer{
		pdf:     pdf,
		tr:      pdf.UnicodeTranslatorFromDescriptor(""),
		options: wr.options,
		top:     margin,
		bottom:  pageHeight - margin,
		left:    margin,
		width:   pageWidth - 2*margin,
	}

	r.newPage()
	for _, block := range doc.Blocks {
		if err := r.flow(block); err != nil {
			return nil, err
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, renderError(CodeRenderFailed, "failed to render document", err)
	}
	return pdf, nil
}

func (r *renderer) newPage() {
	r.pdf.AddPage()
	r.y = r.top
}

// fits reports whether h more points fit on the current page. Anything fits
// on an empty page; oversized blocks are clipped rather than looping.
func (r *renderer) fits(h float64) bool {
	return r.y == r.top || r.y+h <= r.bottom
}

// flow places one top-level block, breaking pages as needed.
func (r *renderer) flow(b composer.Block) error {
	switch b.Kind {
	case composer.KindSpacer:
		r.y += b.Height
		return nil
	case composer.KindTable:
		return r.flowTable(b.Table)
	}

	h := r.height(b, r.width)
	if !r.fits(h) {
		r.newPage()
	}
	if err := r.draw(b, r.left, r.y, r.width, composer.AlignLeft); err != nil {
		return err
	}
	r.y += h
	return nil
}

// flowTable draws a top-level table row by row, starting a new page when a
// row does not fit.
func (r *renderer) flowTable(t *composer.Table) error {
	x := r.left + offset(t.Align, r.width, tableWidth(t))

	start := 0
	heights := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		heights[i] = r.rowHeight(t, row)
	}

	for start < len(t.Rows) {
		if !r.fits(heights[start]) {
			r.newPage()
		}

		// the rows that fit on this page, at least one
		end := start + 1
		used := heights[start]
		for end < len(t.Rows) && r.y+used+heights[end] <= r.bottom {
			used += heights[end]
			end++
		}

		if err := r.drawRows(t, t.Rows[start:end], heights[start:end], x, r.y); err != nil {
			return err
		}
		r.y += used
		start = end
	}
	return nil
}

// =============================================================================
// DRAWING
// =============================================================================

// draw renders a block with its top-left corner at (x, y) inside a box of
// the given width. align positions images and tables within the box.
func (r *renderer) draw(b composer.Block, x, y, width float64, align composer.Align) error {
	switch b.Kind {
	case composer.KindSpacer:
		return nil
	case composer.KindParagraph:
		r.drawParagraph(b.Paragraph, x, y, width)
		return nil
	case composer.KindImage:
		return r.drawImage(b.Image, x+offset(align, width, b.Image.Width), y)
	case composer.KindTable:
		t := b.Table
		heights := make([]float64, len(t.Rows))
		for i, row := range t.Rows {
			heights[i] = r.rowHeight(t, row)
		}
		tableAlign := t.Align
		if tableAlign == "" {
			tableAlign = align
		}
		return r.drawRows(t, t.Rows, heights, x+offset(tableAlign, width, tableWidth(t)), y)
	}
	return renderError(CodeRenderFailed, fmt.Sprintf("unknown block kind %q", b.Kind), nil)
}

func (r *renderer) drawParagraph(p *composer.Paragraph, x, y, width float64) {
	style := p.Style
	r.pdf.SetTextColor(style.Color.R, style.Color.G, style.Color.B)

	for i, ln := range r.wrap(p, width) {
		lineTop := y + float64(i)*style.Leading
		baseline := lineTop + (style.Leading+style.FontSize*0.7)/2
		cursor := x + offset(style.Align, width, ln.width)

		for _, seg := range ln.segments {
			r.setFont(style.FontSize, seg.bold)
			r.pdf.Text(cursor, baseline, r.tr(seg.text))
			cursor += seg.width
		}
	}
}

func (r *renderer) drawImage(img *composer.Image, x, y float64) error {
	opts := fpdf.ImageOptions{ImageType: img.Format, ReadDpi: false}
	r.pdf.RegisterImageOptions(img.Path, opts)
	if err := r.pdf.Error(); err != nil {
		return renderError(CodeImageFailed, fmt.Sprintf("failed to load image %s", img.Path), err)
	}
	r.pdf.ImageOptions(img.Path, x, y, img.Width, img.Height, false, opts, 0, "")
	if err := r.pdf.Error(); err != nil {
		return renderError(CodeImageFailed, fmt.Sprintf("failed to draw image %s", img.Path), err)
	}
	return nil
}

// drawRows draws a run of table rows: fills first, then cell content, then
// the grid and the outer box.
func (r *renderer) drawRows(t *composer.Table, rows []composer.Row, heights []float64, x, y float64) error {
	width := tableWidth(t)

	// backgrounds
	rowY := y
	for i, row := range rows {
		cellX := x
		for c, cell := range row.Cells {
			if c >= len(t.ColWidths) {
				break
			}
			bg := row.Background
			if cell.Background != nil {
				bg = cell.Background
			}
			if bg != nil {
				r.pdf.SetFillColor(bg.R, bg.G, bg.B)
				r.pdf.Rect(cellX, rowY, t.ColWidths[c], heights[i], "F")
			}
			cellX += t.ColWidths[c]
		}
		rowY += heights[i]
	}

	// content
	rowY = y
	for i, row := range rows {
		cellX := x
		for c, cell := range row.Cells {
			if c >= len(t.ColWidths) {
				break
			}
			pad := cellPadding(t, cell)
			inner := t.ColWidths[c] - pad.Left - pad.Right
			blockY := rowY + pad.Top
			for _, b := range cell.Blocks {
				if err := r.draw(b, cellX+pad.Left, blockY, inner, cell.Align); err != nil {
					return err
				}
				blockY += r.height(b, inner)
			}
			cellX += t.ColWidths[c]
		}
		rowY += heights[i]
	}
	height := rowY - y

	// grid
	if t.Grid > 0 {
		r.pdf.SetLineWidth(t.Grid)
		r.pdf.SetDrawColor(t.GridColor.R, t.GridColor.G, t.GridColor.B)
		lineY := y
		for i := 0; i < len(rows)-1; i++ {
			lineY += heights[i]
			r.pdf.Line(x, lineY, x+width, lineY)
		}
		lineX := x
		for c := 0; c < len(t.ColWidths)-1; c++ {
			lineX += t.ColWidths[c]
			r.pdf.Line(lineX, y, lineX, y+height)
		}
	}

	// box
	if t.Box > 0 {
		r.pdf.SetLineWidth(t.Box)
		r.pdf.SetDrawColor(t.BoxColor.R, t.BoxColor.G, t.BoxColor.B)
		r.pdf.Rect(x, y, width, height, "D")
	}

	return nil
}

// =============================================================================
// FONTS
// =============================================================================

func (r *renderer) setFont(size float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	r.pdf.SetFont(r.options.FontFamily, style, size)
}

// measure returns the width of text in the given font.
func (r *renderer) measure(text string, size float64, bold bool) float64 {
	r.setFont(size, bold)
	return r.pdf.GetStringWidth(r.tr(text))
}
