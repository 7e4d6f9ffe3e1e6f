package wordml

// xml.go — encoding/xml mappings for word/document.xml.
//
// Tags carry literal "w:" prefixes and fields appear in schema order, so
// a plain xml.Marshal emits WordprocessingML that validates. Properties
// are pointers with omitempty; a nil property collapses to nothing.

import (
	"encoding/xml"
	"strconv"
	"strings"
)

const wordMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	// Blocks holds *xmlParagraph and *xmlTable; each names its own
	// element via XMLName.
	Blocks []any
}

type xmlParagraph struct {
	XMLName xml.Name       `xml:"w:p"`
	Props   *xmlParaProps  `xml:"w:pPr,omitempty"`
	Runs    []*xmlRun
}

type xmlParaProps struct {
	Style   *xmlVal     `xml:"w:pStyle,omitempty"`
	Num     *xmlNumPr   `xml:"w:numPr,omitempty"`
	Spacing *xmlSpacing `xml:"w:spacing,omitempty"`
	Indent  *xmlIndent  `xml:"w:ind,omitempty"`
	Justify *xmlVal     `xml:"w:jc,omitempty"`
}

// xmlVal is any single-attribute element of the form <w:x w:val="..."/>.
type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlNumPr struct {
	Level xmlVal `xml:"w:ilvl"`
	NumID xmlVal `xml:"w:numId"`
}

type xmlSpacing struct {
	Line     string `xml:"w:line,attr"`
	LineRule string `xml:"w:lineRule,attr"`
}

type xmlIndent struct {
	Left      string `xml:"w:left,attr,omitempty"`
	Right     string `xml:"w:right,attr,omitempty"`
	FirstLine string `xml:"w:firstLine,attr,omitempty"`
}

type xmlRun struct {
	XMLName xml.Name     `xml:"w:r"`
	Props   *xmlRunProps `xml:"w:rPr,omitempty"`
	// Content interleaves *xmlText and *xmlBreak.
	Content []any
}

type xmlRunProps struct {
	Fonts  *xmlFonts `xml:"w:rFonts,omitempty"`
	Bold   *xmlFlag  `xml:"w:b,omitempty"`
	Italic *xmlFlag  `xml:"w:i,omitempty"`
	Color  *xmlVal   `xml:"w:color,omitempty"`
	Size   *xmlVal   `xml:"w:sz,omitempty"`
	SizeCs *xmlVal   `xml:"w:szCs,omitempty"`
}

// xmlFlag is an empty toggle element such as <w:b/>.
type xmlFlag struct{}

type xmlFonts struct {
	ASCII    string `xml:"w:ascii,attr,omitempty"`
	EastAsia string `xml:"w:eastAsia,attr,omitempty"`
	HAnsi    string `xml:"w:hAnsi,attr,omitempty"`
}

type xmlText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr"`
	Text    string   `xml:",chardata"`
}

type xmlBreak struct {
	XMLName xml.Name `xml:"w:br"`
}

type xmlTable struct {
	XMLName xml.Name      `xml:"w:tbl"`
	Props   xmlTableProps `xml:"w:tblPr"`
	Grid    xmlTableGrid  `xml:"w:tblGrid"`
	Rows    []*xmlTableRow
}

type xmlTableProps struct {
	Width   xmlTableWidth   `xml:"w:tblW"`
	Borders xmlTableBorders `xml:"w:tblBorders"`
}

type xmlTableWidth struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type xmlTableBorders struct {
	Top     xmlBorder `xml:"w:top"`
	Left    xmlBorder `xml:"w:left"`
	Bottom  xmlBorder `xml:"w:bottom"`
	Right   xmlBorder `xml:"w:right"`
	InsideH xmlBorder `xml:"w:insideH"`
	InsideV xmlBorder `xml:"w:insideV"`
}

type xmlBorder struct {
	Val   string `xml:"w:val,attr"`
	Size  string `xml:"w:sz,attr"`
	Space string `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type xmlTableGrid struct {
	Cols []xmlGridCol
}

type xmlGridCol struct {
	XMLName xml.Name `xml:"w:gridCol"`
}

type xmlTableRow struct {
	XMLName xml.Name `xml:"w:tr"`
	Cells   []*xmlTableCell
}

type xmlTableCell struct {
	XMLName xml.Name `xml:"w:tc"`
	Paras   []*xmlParagraph
}

// ---- model → XML conversion ----

func (d *Document) toXML() *xmlDocument {
	out := &xmlDocument{NS: wordMLNamespace}
	for _, b := range d.Blocks {
		switch v := b.(type) {
		case *Paragraph:
			out.Body.Blocks = append(out.Body.Blocks, v.toXML())
		case *Table:
			out.Body.Blocks = append(out.Body.Blocks, v.toXML())
		}
	}
	return out
}

func (p *Paragraph) toXML() *xmlParagraph {
	out := &xmlParagraph{Props: p.propsXML()}
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, r.toXML())
	}
	return out
}

func (p *Paragraph) propsXML() *xmlParaProps {
	props := &xmlParaProps{}
	used := false
	if p.StyleID != "" {
		props.Style = &xmlVal{Val: p.StyleID}
		used = true
	}
	if p.NumID != 0 {
		props.Num = &xmlNumPr{
			Level: xmlVal{Val: "0"},
			NumID: xmlVal{Val: strconv.Itoa(p.NumID)},
		}
		used = true
	}
	if p.Line != 0 {
		props.Spacing = &xmlSpacing{Line: strconv.Itoa(p.Line), LineRule: "auto"}
		used = true
	}
	if p.First != 0 || p.Left != 0 || p.Right != 0 {
		props.Indent = &xmlIndent{
			Left:      nonZero(p.Left),
			Right:     nonZero(p.Right),
			FirstLine: nonZero(p.First),
		}
		used = true
	}
	if p.Justify != "" {
		props.Justify = &xmlVal{Val: p.Justify}
		used = true
	}
	if !used {
		return nil
	}
	return props
}

func (r *Run) toXML() *xmlRun {
	out := &xmlRun{Props: r.Props.toXML()}
	// Interior newlines become explicit breaks; Word ignores raw "\n"
	// inside w:t.
	for i, seg := range strings.Split(r.Text, "\n") {
		if i > 0 {
			out.Content = append(out.Content, &xmlBreak{})
		}
		out.Content = append(out.Content, &xmlText{Space: "preserve", Text: seg})
	}
	return out
}

func (rp *RunProps) toXML() *xmlRunProps {
	props := &xmlRunProps{}
	used := false
	if rp.ASCII != "" || rp.EastAsia != "" || rp.HAnsi != "" {
		props.Fonts = &xmlFonts{ASCII: rp.ASCII, EastAsia: rp.EastAsia, HAnsi: rp.HAnsi}
		used = true
	}
	if rp.Bold {
		props.Bold = &xmlFlag{}
		used = true
	}
	if rp.Italic {
		props.Italic = &xmlFlag{}
		used = true
	}
	if rp.Color != "" {
		props.Color = &xmlVal{Val: rp.Color}
		used = true
	}
	if rp.Size != 0 {
		sz := strconv.Itoa(rp.Size)
		props.Size = &xmlVal{Val: sz}
		props.SizeCs = &xmlVal{Val: sz}
		used = true
	}
	if !used {
		return nil
	}
	return props
}

func (t *Table) toXML() *xmlTable {
	cols := 0
	if len(t.Rows) > 0 {
		cols = len(t.Rows[0].Cells)
	}
	out := &xmlTable{
		Props: xmlTableProps{
			Width:   xmlTableWidth{W: "0", Type: "auto"},
			Borders: gridBorders(),
		},
	}
	out.Grid.Cols = make([]xmlGridCol, cols)
	for _, row := range t.Rows {
		xr := &xmlTableRow{}
		for _, cell := range row.Cells {
			xc := &xmlTableCell{}
			for _, p := range cell.Paragraphs {
				xc.Paras = append(xc.Paras, p.toXML())
			}
			xr.Cells = append(xr.Cells, xc)
		}
		out.Rows = append(out.Rows, xr)
	}
	return out
}

// gridBorders is the single-line border set Word's built-in Table Grid
// style produces.
func gridBorders() xmlTableBorders {
	b := xmlBorder{Val: "single", Size: "4", Space: "0", Color: "auto"}
	return xmlTableBorders{Top: b, Left: b, Bottom: b, Right: b, InsideH: b, InsideV: b}
}

func nonZero(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
