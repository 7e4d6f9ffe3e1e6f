package docgen

// styles.go — the fixed formatting rules applied per semantic role.
//
// East-Asian text renders in 黑体 (SimHei) for the title and headings and
// 宋体 (SimSun) for everything else; Latin text renders in Times New
// Roman, code in Courier New. Sizes are half-points, paragraph metrics
// twips, line spacing 240ths of a line. None of this is configurable.

import "github.com/docwright/md2docx/wordml"

const (
	fontHei   = "黑体"
	fontSong  = "宋体"
	fontLatin = "Times New Roman"
	fontMono  = "Courier New"

	colorBlack = "000000"
)

const (
	bodyIndent     = 480 // first-line indent, two characters at body size
	codeSideIndent = 720 // half-inch code block margin
	lineSpacing125 = 300 // 1.25 lines
)

// runStyle is one row of the formatting table: the character properties
// a semantic role stamps onto its runs.
type runStyle struct {
	ascii    string
	eastAsia string
	hansi    string
	size     int
	color    string
	bold     bool
	italic   bool
}

var (
	titleStyle = runStyle{ascii: fontLatin, eastAsia: fontHei, hansi: fontLatin, size: 44, color: colorBlack, bold: true}
	bodyStyle  = runStyle{ascii: fontLatin, eastAsia: fontSong, hansi: fontLatin, size: 24, color: colorBlack}
	codeStyle  = runStyle{ascii: fontMono, hansi: fontMono, size: 18, color: colorBlack}

	// Table cells use the body character rules; the header variant is
	// kept distinct so header cells can diverge without touching body
	// cells.
	cellStyle   = bodyStyle
	headerStyle = bodyStyle
)

// headingSizes maps heading level 1-6 to font size in half-points;
// levels 3 through 6 all render at the body size.
var headingSizes = [7]int{0, 32, 28, 24, 24, 24, 24}

func headingStyle(level int) runStyle {
	return runStyle{ascii: fontLatin, eastAsia: fontHei, hansi: fontLatin, size: headingSizes[level], color: colorBlack}
}

// apply stamps the style onto a run and returns the run.
func (s runStyle) apply(r *wordml.Run) *wordml.Run {
	r.Font(s.ascii, s.eastAsia, s.hansi)
	if s.size != 0 {
		r.Size(s.size)
	}
	if s.color != "" {
		r.Color(s.color)
	}
	if s.bold {
		r.Bold()
	}
	if s.italic {
		r.Italic()
	}
	return r
}
