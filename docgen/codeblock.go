package docgen

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/docwright/md2docx/wordml"
)

// addCodeBlock emits one indented monospace paragraph for a <pre> block,
// led by an italic "Language: xxx" line when the fence carried a syntax
// hint. The code text is kept verbatim apart from marker stripping.
func addCodeBlock(doc *wordml.Document, pre *html.Node) {
	p := doc.AddParagraph().LineSpacing(lineSpacing125).Indent(codeSideIndent, codeSideIndent)
	if lang := codeLanguage(pre); lang != "" {
		style := bodyStyle
		style.italic = true
		style.apply(p.AddRun("Language: " + lang + "\n"))
	}
	codeStyle.apply(p.AddRun(stripMarker(collectText(pre))))
}

// codeLanguage extracts the syntax hint from a language-xxx class on the
// block's inner <code> element.
func codeLanguage(pre *html.Node) string {
	code := firstElement(pre, "code")
	if code == nil {
		return ""
	}
	for _, cls := range strings.Fields(attrVal(code, "class")) {
		if lang, ok := strings.CutPrefix(cls, "language-"); ok {
			return lang
		}
	}
	return ""
}
