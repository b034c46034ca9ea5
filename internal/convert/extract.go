package convert

import (
	"context"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// Extractor produces intermediate HTML markup from a word-processing
// document on disk. The markup preserves structure (headings, paragraphs,
// tables, lists) but not exact binary layout.
type Extractor interface {
	ExtractHTML(ctx context.Context, path string) (string, error)
}

// Compile-time interface check
var _ Extractor = (*docxExtractor)(nil)

// docxExtractor reads OOXML word documents. Legacy binary .doc files are not
// parseable by the underlying reader and surface as a conversion failure.
type docxExtractor struct{}

// NewDocxExtractor creates the default document extractor.
func NewDocxExtractor() Extractor {
	return &docxExtractor{}
}

func (e *docxExtractor) ExtractHTML(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseDocument, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseDocument, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseDocument, err)
	}

	var b strings.Builder
	inList := false
	for _, item := range doc.Document.Body.Items {
		switch o := item.(type) {
		case *docx.Paragraph:
			writeParagraph(&b, o, &inList)
		case *docx.Table:
			closeList(&b, &inList)
			writeTable(&b, o)
		}
	}
	closeList(&b, &inList)

	return b.String(), nil
}

// headingTags maps Word paragraph style names to HTML heading tags.
var headingTags = map[string]string{
	"Title":    "h1",
	"Heading1": "h1",
	"Heading2": "h2",
	"Heading3": "h3",
	"Heading4": "h4",
	"Heading5": "h5",
	"Heading6": "h6",
}

func paragraphStyle(p *docx.Paragraph) string {
	if p.Properties == nil || p.Properties.Style == nil {
		return ""
	}
	return p.Properties.Style.Val
}

// writeParagraph emits a heading, list item, or plain paragraph depending on
// the paragraph style. Consecutive list items are grouped under one <ul>.
func writeParagraph(b *strings.Builder, p *docx.Paragraph, inList *bool) {
	text := html.EscapeString(paragraphText(p))
	style := paragraphStyle(p)

	if style == "ListParagraph" {
		if !*inList {
			b.WriteString("<ul>\n")
			*inList = true
		}
		b.WriteString("<li>" + text + "</li>\n")
		return
	}
	closeList(b, inList)

	if tag, ok := headingTags[style]; ok {
		b.WriteString("<" + tag + ">" + text + "</" + tag + ">\n")
		return
	}
	if text == "" {
		return
	}
	b.WriteString("<p>" + text + "</p>\n")
}

func closeList(b *strings.Builder, inList *bool) {
	if *inList {
		b.WriteString("</ul>\n")
		*inList = false
	}
}

// paragraphText concatenates the plain text of all runs in a paragraph.
func paragraphText(p *docx.Paragraph) string {
	var b strings.Builder
	for _, child := range p.Children {
		switch r := child.(type) {
		case *docx.Run:
			writeRunText(&b, r)
		case *docx.Hyperlink:
			writeRunText(&b, &r.Run)
		default:
			if s, ok := child.(fmt.Stringer); ok {
				b.WriteString(s.String())
			}
		}
	}
	return b.String()
}

func writeRunText(b *strings.Builder, r *docx.Run) {
	for _, child := range r.Children {
		if t, ok := child.(*docx.Text); ok {
			b.WriteString(t.Text)
		}
	}
}

func writeTable(b *strings.Builder, t *docx.Table) {
	b.WriteString("<table>\n")
	for _, row := range t.TableRows {
		b.WriteString("<tr>")
		for _, cell := range row.TableCells {
			b.WriteString("<td>")
			for i, p := range cell.Paragraphs {
				if i > 0 {
					b.WriteString("<br>")
				}
				b.WriteString(html.EscapeString(paragraphText(p)))
			}
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
}
