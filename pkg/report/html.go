package report

import (
	"bytes"
	"html/template"

	"github.com/vibelux/toolkit/pkg/errors"
)

// Kind helpers used by the HTML template.
func (b Block) IsHeading() bool   { return b.Kind == KindHeading }
func (b Block) IsParagraph() bool { return b.Kind == KindParagraph }
func (b Block) IsTable() bool     { return b.Kind == KindTable }
func (b Block) IsStats() bool     { return b.Kind == KindStats }

// RenderHTML produces a standalone single-file HTML report with embedded
// styling.
func RenderHTML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "execute HTML template")
	}
	return buf.Bytes(), nil
}

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  :root {
    --purple: #6B46C1;
    --purple-light: #9333ea;
    --green: #10b981;
    --text: #111827;
    --muted: #4b5563;
    --surface: #f3f4f6;
  }
  body {
    font-family: Helvetica, Arial, sans-serif;
    color: var(--text);
    max-width: 960px;
    margin: 0 auto;
    padding: 2rem;
    line-height: 1.55;
  }
  header {
    border-bottom: 4px solid var(--purple);
    padding-bottom: 1rem;
    margin-bottom: 2rem;
  }
  header h1 { color: var(--purple); margin-bottom: 0.2rem; }
  header .subtitle { color: var(--muted); font-size: 1.1rem; }
  header .meta { color: var(--muted); font-size: 0.8rem; margin-top: 0.6rem; }
  nav.toc {
    background: var(--surface);
    border-radius: 8px;
    padding: 1rem 1.5rem;
    margin-bottom: 2rem;
  }
  nav.toc h2 { font-size: 1rem; margin-top: 0; }
  nav.toc ol { margin: 0; padding-left: 1.2rem; }
  section { margin-bottom: 2.5rem; }
  section > h2 {
    color: var(--purple);
    border-bottom: 2px solid var(--surface);
    padding-bottom: 0.3rem;
  }
  h3 { color: var(--purple-light); margin-top: 1.5rem; }
  table {
    border-collapse: collapse;
    width: 100%;
    margin: 1rem 0;
    font-size: 0.92rem;
  }
  th {
    background: var(--purple);
    color: white;
    text-align: left;
    padding: 0.5rem 0.75rem;
  }
  td { padding: 0.45rem 0.75rem; border-bottom: 1px solid var(--surface); }
  tbody tr:nth-child(even) { background: var(--surface); }
  .stats { display: flex; gap: 1rem; margin: 1.25rem 0; }
  .stat {
    flex: 1;
    background: var(--surface);
    border-top: 3px solid var(--green);
    border-radius: 8px;
    padding: 0.9rem;
    text-align: center;
  }
  .stat .value { font-size: 1.5rem; font-weight: bold; color: var(--green); }
  .stat .label { font-size: 0.8rem; color: var(--muted); }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <div class="subtitle">{{.Subtitle}}</div>
  <div class="meta">Document {{.ID}} &middot; generated {{.Generated.Format "2006-01-02 15:04 MST"}}</div>
</header>

<nav class="toc">
  <h2>Contents</h2>
  <ol>
  {{- range $i, $s := .Sections}}
    <li><a href="#section-{{$i}}">{{$s.Title}}</a></li>
  {{- end}}
  </ol>
</nav>

{{- range $i, $s := .Sections}}
<section id="section-{{$i}}">
  <h2>{{$s.Title}}</h2>
  {{- range $s.Blocks}}
    {{- if .IsHeading}}
  <h3>{{.Text}}</h3>
    {{- else if .IsParagraph}}
  <p>{{.Text}}</p>
    {{- else if .IsStats}}
  <div class="stats">
      {{- range .Stats}}
    <div class="stat"><div class="value">{{.Value}}</div><div class="label">{{.Label}}</div></div>
      {{- end}}
  </div>
    {{- else if .IsTable}}
  <table>
    <thead><tr>{{range .Table.Header}}<th>{{.}}</th>{{end}}</tr></thead>
    <tbody>
      {{- range .Table.Rows}}
      <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
      {{- end}}
    </tbody>
  </table>
    {{- end}}
  {{- end}}
</section>
{{- end}}
</body>
</html>
`))
