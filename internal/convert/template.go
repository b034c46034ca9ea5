package convert

// documentCSS is the fixed stylesheet applied to every converted document:
// serif body with justified paragraphs, bordered and shaded tables, styled
// headings, indented lists.
const documentCSS = `
body {
  font-family: Georgia, "Times New Roman", serif;
  font-size: 12pt;
  line-height: 1.5;
  color: #222;
}
p {
  text-align: justify;
  margin: 0 0 0.7em 0;
}
h1, h2, h3, h4, h5, h6 {
  font-family: Georgia, "Times New Roman", serif;
  color: #1a1a2e;
  line-height: 1.25;
  margin: 1.1em 0 0.45em 0;
}
h1 { font-size: 20pt; border-bottom: 2px solid #1a1a2e; padding-bottom: 0.2em; }
h2 { font-size: 16pt; }
h3 { font-size: 14pt; }
table {
  border-collapse: collapse;
  width: 100%;
  margin: 0.8em 0;
}
th, td {
  border: 1px solid #555;
  padding: 6px 10px;
  text-align: left;
}
tr:nth-child(even) td { background-color: #f2f2f2; }
ul, ol {
  margin: 0.5em 0;
  padding-left: 2.2em;
}
li { margin: 0.2em 0; }
.attribution {
  margin-top: 2.5em;
  font-size: 8pt;
  color: #999;
  text-align: right;
}
`

// attributionCaption is appended after the document content on every
// conversion.
const attributionCaption = `<div class="attribution">Converted by convertapi</div>`

// AssembleDocument wraps extracted markup in the fixed presentational
// template. Pure string composition; it cannot fail.
func AssembleDocument(markup string) string {
	return `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>` + documentCSS + `</style>
</head>
<body>
` + markup + `
` + attributionCaption + `
</body>
</html>`
}
