package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleDocument(t *testing.T) {
	out := AssembleDocument("<h1>Title</h1>\n<p>Body text</p>")

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<meta charset="utf-8">`)
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<p>Body text</p>")
	// Attribution caption comes after the content
	assert.Greater(t, strings.Index(out, "attribution"), strings.Index(out, "Body text"))
}

func TestAssembleDocumentStylesheet(t *testing.T) {
	out := AssembleDocument("")

	// The fixed stylesheet is always embedded
	assert.Contains(t, out, "serif")
	assert.Contains(t, out, "text-align: justify")
	assert.Contains(t, out, "border-collapse: collapse")
}

func TestAssembleDocumentEmptyMarkup(t *testing.T) {
	out := AssembleDocument("")

	assert.Contains(t, out, "<body>")
	assert.Contains(t, out, "</html>")
}
