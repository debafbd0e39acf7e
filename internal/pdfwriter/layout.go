package pdfwriter

import (
	"strings"
	"unicode"

	"github.com/ginjaninja78/po-generator/internal/composer"
)

// segment is a measured piece of text drawn with one weight.
type segment struct {
	text  string
	bold  bool
	width float64
}

// line is one wrapped line of a paragraph.
type line struct {
	segments []segment
	width    float64
}

// token is a word or a single space of a run.
type token struct {
	text  string
	bold  bool
	space bool
}

func tokenize(p *composer.Paragraph) []token {
	var tokens []token
	for _, run := range p.Runs {
		bold := run.Bold || p.Style.Bold
		for i, word := range strings.Split(normalizeSpace(run.Text), " ") {
			if i > 0 && (len(tokens) == 0 || !tokens[len(tokens)-1].space) {
				tokens = append(tokens, token{text: " ", bold: bold, space: true})
			}
			if word != "" {
				tokens = append(tokens, token{text: word, bold: bold})
			}
		}
	}
	return tokens
}

// normalizeSpace maps newlines, tabs and other whitespace to plain spaces.
func normalizeSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)
}

// wrap breaks a paragraph into lines no wider than width. Words are kept
// whole; a single word wider than the line is placed on its own line.
// Spaces at a break are dropped. A paragraph without text still yields one
// empty line so blank contact lines keep their height.
func (r *renderer) wrap(p *composer.Paragraph, width float64) []line {
	var lines []line
	var current line
	var pending []token

	for _, tok := range tokenize(p) {
		if tok.space {
			pending = append(pending, tok)
			continue
		}

		w := r.measure(tok.text, p.Style.FontSize, tok.bold)
		spaces := 0.0
		for _, sp := range pending {
			spaces += r.measure(sp.text, p.Style.FontSize, sp.bold)
		}

		if len(current.segments) > 0 && current.width+spaces+w > width {
			lines = append(lines, current)
			current = line{}
			pending = nil
		}
		for _, sp := range pending {
			current.add(sp.text, sp.bold, r.measure(sp.text, p.Style.FontSize, sp.bold))
		}
		pending = nil
		current.add(tok.text, tok.bold, w)
	}

	return append(lines, current)
}

// add appends text, merging with the previous segment of the same weight.
func (l *line) add(text string, bold bool, width float64) {
	if n := len(l.segments); n > 0 && l.segments[n-1].bold == bold {
		l.segments[n-1].text += text
		l.segments[n-1].width += width
	} else {
		l.segments = append(l.segments, segment{text: text, bold: bold, width: width})
	}
	l.width += width
}

// height returns the vertical space a block needs at the given width.
func (r *renderer) height(b composer.Block, width float64) float64 {
	switch b.Kind {
	case composer.KindSpacer:
		return b.Height
	case composer.KindParagraph:
		return float64(len(r.wrap(b.Paragraph, width))) * b.Paragraph.Style.Leading
	case composer.KindImage:
		return b.Image.Height
	case composer.KindTable:
		total := 0.0
		for _, row := range b.Table.Rows {
			total += r.rowHeight(b.Table, row)
		}
		return total
	}
	return 0
}

// rowHeight is the tallest cell of a row, padding included.
func (r *renderer) rowHeight(t *composer.Table, row composer.Row) float64 {
	tallest := 0.0
	for i, cell := range row.Cells {
		if i >= len(t.ColWidths) {
			break
		}
		pad := cellPadding(t, cell)
		inner := t.ColWidths[i] - pad.Left - pad.Right
		h := pad.Top + pad.Bottom
		for _, b := range cell.Blocks {
			h += r.height(b, inner)
		}
		if h > tallest {
			tallest = h
		}
	}
	return tallest
}

func cellPadding(t *composer.Table, cell composer.Cell) composer.Padding {
	if cell.Padding != nil {
		return *cell.Padding
	}
	return t.Padding
}

func tableWidth(t *composer.Table) float64 {
	w := 0.0
	for _, c := range t.ColWidths {
		w += c
	}
	return w
}

// offset returns the x offset of content of the given width inside a box.
func offset(align composer.Align, box, content float64) float64 {
	switch align {
	case composer.AlignCenter:
		return (box - content) / 2
	case composer.AlignRight:
		return box - content
	}
	return 0
}
