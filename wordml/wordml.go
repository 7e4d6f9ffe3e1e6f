// Package wordml builds Office Open XML word-processing documents.
//
// DOCX files are ZIP archives containing OOXML parts; the main document
// lives at word/document.xml. This package models the subset of
// WordprocessingML the generator needs — paragraphs with styled runs,
// numbering references, and tables — and serializes it as a complete
// package (content types, relationships, styles, numbering) that Word
// and independent readers accept.
package wordml

// Numbering definition IDs declared in word/numbering.xml.
const (
	NumBullet  = 1 // single-level bullet list
	NumDecimal = 2 // single-level decimal list
)

// Document is an ordered, append-only sequence of block-level content.
type Document struct {
	// Blocks holds *Paragraph and *Table values in document order.
	Blocks []any
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// AddParagraph appends an empty paragraph and returns it.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{}
	d.Blocks = append(d.Blocks, p)
	return p
}

// AddTable appends a table pre-allocated to rows × cols. Every cell starts
// with one empty paragraph so the emitted XML is valid even for cells the
// caller never touches.
func (d *Document) AddTable(rows, cols int) *Table {
	t := &Table{Rows: make([]*TableRow, rows)}
	for i := range t.Rows {
		row := &TableRow{Cells: make([]*TableCell, cols)}
		for j := range row.Cells {
			row.Cells[j] = &TableCell{Paragraphs: []*Paragraph{{}}}
		}
		t.Rows[i] = row
	}
	d.Blocks = append(d.Blocks, t)
	return t
}

// Paragraph is one block of runs with optional paragraph-level formatting.
// Indents are in twips (1/20 point); line spacing is in 240ths of a line,
// so 300 means 1.25× spacing.
type Paragraph struct {
	StyleID string // paragraph style, e.g. "Heading1"; empty = Normal
	Justify string // "center", "left", ...; empty = default
	NumID   int    // numbering definition reference; 0 = none
	Line    int    // line spacing; 0 = default
	First   int    // first-line indent; 0 = none
	Left    int    // left indent; 0 = none
	Right   int    // right indent; 0 = none
	Runs    []*Run
}

// AddRun appends a text run and returns it for chained property setters.
// Newlines in text become explicit line breaks when serialized.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Text: text}
	p.Runs = append(p.Runs, r)
	return r
}

// Style sets the paragraph style ID.
func (p *Paragraph) Style(id string) *Paragraph {
	p.StyleID = id
	return p
}

// Justification sets the horizontal alignment ("center", "left", "right",
// "both", "distribute").
func (p *Paragraph) Justification(val string) *Paragraph {
	p.Justify = val
	return p
}

// Numbering marks the paragraph as a level-0 item of the given numbering
// definition (NumBullet or NumDecimal).
func (p *Paragraph) Numbering(numID int) *Paragraph {
	p.NumID = numID
	return p
}

// LineSpacing sets line spacing in 240ths of a line.
func (p *Paragraph) LineSpacing(line int) *Paragraph {
	p.Line = line
	return p
}

// FirstLineIndent sets the first-line indent in twips.
func (p *Paragraph) FirstLineIndent(twips int) *Paragraph {
	p.First = twips
	return p
}

// Indent sets the left and right block indents in twips.
func (p *Paragraph) Indent(left, right int) *Paragraph {
	p.Left = left
	p.Right = right
	return p
}

// Run is a span of text sharing one set of character properties.
type Run struct {
	Text  string
	Props RunProps
}

// RunProps are character-level properties. Zero values mean "inherit".
type RunProps struct {
	Bold     bool
	Italic   bool
	ASCII    string // Latin font
	EastAsia string // east-Asian font
	HAnsi    string // high-ANSI font
	Size     int    // half-points; 24 = 12 pt
	Color    string // RRGGBB hex, no leading #
}

// Bold sets the bold flag.
func (r *Run) Bold() *Run {
	r.Props.Bold = true
	return r
}

// Italic sets the italic flag.
func (r *Run) Italic() *Run {
	r.Props.Italic = true
	return r
}

// Font sets the Latin, east-Asian, and high-ANSI font families.
func (r *Run) Font(ascii, eastAsia, hansi string) *Run {
	r.Props.ASCII = ascii
	r.Props.EastAsia = eastAsia
	r.Props.HAnsi = hansi
	return r
}

// Size sets the font size in half-points.
func (r *Run) Size(halfPoints int) *Run {
	r.Props.Size = halfPoints
	return r
}

// Color sets the text color as RRGGBB hex.
func (r *Run) Color(hex string) *Run {
	r.Props.Color = hex
	return r
}

// Table is a grid of pre-allocated rows and cells.
type Table struct {
	Rows []*TableRow
}

// TableRow is one row of cells.
type TableRow struct {
	Cells []*TableCell
}

// TableCell holds the cell's paragraphs; pre-allocation guarantees at
// least one.
type TableCell struct {
	Paragraphs []*Paragraph
}
