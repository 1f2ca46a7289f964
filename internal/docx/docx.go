// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx appends styled paragraphs to a Word document template and
// saves the result. A .docx file is a zip archive; the paragraph text lives
// in word/document.xml and the style definitions in word/styles.xml. The
// writer keeps every template entry byte-identical except document.xml,
// where new paragraphs are spliced in before the closing section
// properties, so the template's styles, numbering, and page setup survive
// untouched.
//
// Inside word/document.xml:
//
//	<w:p> = paragraph
//	<w:r> = run (chunk of text with consistent formatting)
//	<w:t> = the actual text node
package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const documentPath = "word/document.xml"

// Run is one formatted chunk of text within a paragraph.
type Run struct {
	// Text is the run content. Invalid UTF-8 and XML-illegal control
	// characters are dropped at render time.
	Text string

	// Bold renders the run in bold.
	Bold bool

	// Color is an RRGGBB hex color for the run, empty for the default.
	Color string

	// Break appends a soft line break after the text, staying inside
	// the same paragraph.
	Break bool
}

// paragraph is one pending paragraph with its resolved style id.
type paragraph struct {
	styleID string
	runs    []Run
}

// entry is one file carried over from the template archive.
type entry struct {
	name string
	data []byte
}

// Document is an open Word template plus the paragraphs queued for append.
type Document struct {
	entries []entry
	body    string
	styles  map[string]string // styleId and display name → styleId
	paras   []paragraph
}

// Open reads a .docx template into memory. The archive must contain
// word/document.xml; word/styles.xml is optional and, when present, feeds
// the style name resolution used by HasStyle and AddParagraph.
func Open(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening template %s: %w", path, err)
	}
	defer zr.Close()

	doc := &Document{styles: map[string]string{}}

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening template entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading template entry %s: %w", f.Name, err)
		}
		doc.entries = append(doc.entries, entry{name: f.Name, data: data})

		switch f.Name {
		case documentPath:
			doc.body = string(data)
		case stylesPath:
			doc.styles = parseStyles(data)
		}
	}

	if doc.body == "" {
		return nil, fmt.Errorf("%s not found in template %s", documentPath, path)
	}
	return doc, nil
}

// HasStyle reports whether name resolves to a style defined in the
// template, by style id or by display name.
func (d *Document) HasStyle(name string) bool {
	_, ok := d.styles[name]
	return ok
}

// styleID resolves a requested style name to the template's style id, or ""
// when the template does not define it. Missing styles are never errors;
// the paragraph simply renders with the document default.
func (d *Document) styleID(name string) string {
	return d.styles[name]
}

// AddParagraph queues a paragraph styled with the named template style.
// An unknown or empty style name yields an unstyled paragraph.
func (d *Document) AddParagraph(style string, runs ...Run) {
	d.paras = append(d.paras, paragraph{styleID: d.styleID(style), runs: runs})
}

// AddHeading queues a heading paragraph at the given level (1-based),
// using the template's built-in heading style when it defines one.
func (d *Document) AddHeading(text string, level int) {
	style := "Heading" + strconv.Itoa(level)
	if !d.HasStyle(style) {
		// Builtin heading styles carry lowercase display names.
		style = "heading " + strconv.Itoa(level)
	}
	d.AddParagraph(style, Run{Text: text})
}

// ParagraphCount returns the number of paragraphs queued so far.
func (d *Document) ParagraphCount() int {
	return len(d.paras)
}

// Save writes the document to path, creating parent directories as needed.
// Every template entry is copied verbatim except word/document.xml, which
// receives the queued paragraphs.
func (d *Document) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	zw := zip.NewWriter(f)
	for _, e := range d.entries {
		w, err := zw.Create(e.name)
		if err != nil {
			f.Close()
			return fmt.Errorf("writing archive entry %s: %w", e.name, err)
		}
		data := e.data
		if e.name == documentPath {
			data = []byte(d.renderBody())
		}
		if _, err := w.Write(data); err != nil {
			f.Close()
			return fmt.Errorf("writing archive entry %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalizing archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

// renderBody splices the queued paragraphs into the template body, ahead of
// the body-level section properties so the template's page setup stays the
// final element.
func (d *Document) renderBody() string {
	if len(d.paras) == 0 {
		return d.body
	}

	var b strings.Builder
	for _, p := range d.paras {
		writeParagraph(&b, p)
	}

	at := strings.LastIndex(d.body, "<w:sectPr")
	if at < 0 {
		at = strings.LastIndex(d.body, "</w:body>")
	}
	if at < 0 {
		// No recognizable body close; append at the end as a last resort.
		return d.body + b.String()
	}
	return d.body[:at] + b.String() + d.body[at:]
}

func writeParagraph(b *strings.Builder, p paragraph) {
	b.WriteString("<w:p>")
	if p.styleID != "" {
		b.WriteString(`<w:pPr><w:pStyle w:val="` + escapeXML(p.styleID) + `"/></w:pPr>`)
	}
	for _, r := range p.runs {
		writeRun(b, r)
	}
	b.WriteString("</w:p>")
}

func writeRun(b *strings.Builder, r Run) {
	text := sanitizeText(r.Text)
	if text == "" && !r.Break {
		return
	}

	b.WriteString("<w:r>")
	if r.Bold || r.Color != "" {
		b.WriteString("<w:rPr>")
		if r.Bold {
			b.WriteString("<w:b/>")
		}
		if r.Color != "" {
			b.WriteString(`<w:color w:val="` + escapeXML(r.Color) + `"/>`)
		}
		b.WriteString("</w:rPr>")
	}
	if text != "" {
		b.WriteString(`<w:t xml:space="preserve">` + escapeXML(text) + `</w:t>`)
	}
	if r.Break {
		b.WriteString("<w:br/>")
	}
	b.WriteString("</w:r>")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// sanitizeText drops bytes that cannot appear in XML text: invalid UTF-8
// sequences and control characters other than tab. Newlines never occur
// here since callers emit one paragraph or break per line.
func sanitizeText(s string) string {
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
