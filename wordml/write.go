package wordml

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
)

// WriteTo serializes the document as a complete DOCX package.
// It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	body, err := xml.Marshal(d.toXML())
	if err != nil {
		return cw.n, fmt.Errorf("marshal document body: %w", err)
	}

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/document.xml", append([]byte(xmlHeader), body...)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/styles.xml", []byte(stylesXML)},
		{"word/numbering.xml", []byte(numberingXML)},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return cw.n, fmt.Errorf("create part %s: %w", part.name, err)
		}
		if _, err := f.Write(part.data); err != nil {
			return cw.n, fmt.Errorf("write part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finish package: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
