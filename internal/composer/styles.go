package composer

// Palette of the reference layout.
var (
	DarkBlue  = Color{R: 0x00, G: 0x33, B: 0x66}
	LightBlue = Color{R: 0xe8, G: 0xf0, B: 0xf7}
	White     = Color{R: 0xff, G: 0xff, B: 0xff}
	Black     = Color{R: 0x00, G: 0x00, B: 0x00}
	Grey      = Color{R: 0x80, G: 0x80, B: 0x80}
)

// Paragraph styles of the reference layout.
var (
	// StyleNormal is body text.
	StyleNormal = Style{Name: "Normal", FontSize: 10, Leading: 12, Align: AlignLeft, Color: Black}

	// StyleTitle is the "Purchase Order" heading.
	StyleTitle = Style{Name: "Title", FontSize: 28, Leading: 34, Bold: true, Align: AlignRight, Color: DarkBlue}

	// StyleContact is one line of a contact block.
	StyleContact = Style{Name: "Contact", FontSize: 10, Leading: 14, Align: AlignLeft, Color: Black}

	// StyleHeaderLabel is the label column of the date/PO table.
	StyleHeaderLabel = Style{Name: "HeaderLabel", FontSize: 10, Leading: 12, Bold: true, Align: AlignLeft, Color: Black}

	// StyleHeaderValue is the value column of the date/PO table.
	StyleHeaderValue = Style{Name: "HeaderValue", FontSize: 10, Leading: 12, Align: AlignLeft, Color: Black}

	// StyleSectionHeader is white caption text set on a dark band.
	StyleSectionHeader = Style{Name: "SectionHeader", FontSize: 11, Leading: 13.2, Bold: true, Align: AlignLeft, Color: White}

	// StyleItemCaption is the "Item Details" caption above each product.
	StyleItemCaption = Style{Name: "ItemCaption", FontSize: 11, Leading: 13.2, Bold: true, Align: AlignLeft, Color: DarkBlue}

	// StyleSizeHeader is the header row of a size table.
	StyleSizeHeader = Style{Name: "SizeHeader", FontSize: 10, Leading: 12, Bold: true, Align: AlignLeft, Color: White}

	// StyleSizeCell is a data row of a size table.
	StyleSizeCell = Style{Name: "SizeCell", FontSize: 10, Leading: 12, Align: AlignLeft, Color: Black}

	// StyleSizeTotal is the total row of a size table.
	StyleSizeTotal = Style{Name: "SizeTotal", FontSize: 10, Leading: 12, Bold: true, Align: AlignLeft, Color: Black}
)

// aligned returns a copy of s with a different alignment.
func aligned(s Style, a Align) Style {
	s.Align = a
	return s
}

// cellPadding is the default table cell padding.
var cellPadding = Padding{Top: 3, Right: 6, Bottom: 3, Left: 6}

// noPadding removes all padding, for pure layout tables.
var noPadding = Padding{}
