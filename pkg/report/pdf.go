package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vibelux/toolkit/pkg/brand"
	"github.com/vibelux/toolkit/pkg/render"
)

// Page geometry: A4 portrait at 96 dpi.
const (
	pageW      = 794.0
	pageH      = 1123.0
	pageMargin = 60.0
	contentW   = pageW - 2*pageMargin
)

// RenderPDF paginates the document into SVG pages and converts them to a
// single multi-page PDF via rsvg-convert.
func RenderPDF(doc *Document) ([]byte, error) {
	return render.PagesToPDF(ComposePages(doc))
}

// ComposePages lays the document out as one SVG per page. The first page is
// the cover; content flows across subsequent pages with automatic breaks.
func ComposePages(doc *Document) [][]byte {
	theme := brand.Light()
	pages := [][]byte{coverPage(doc, theme)}

	p := newPage(theme)
	for i, section := range doc.Sections {
		p.sectionTitle(fmt.Sprintf("%d. %s", i+1, section.Title), &pages)
		for _, b := range section.Blocks {
			switch b.Kind {
			case KindHeading:
				p.heading(b.Text, &pages)
			case KindParagraph:
				p.paragraph(b.Text, &pages)
			case KindTable:
				p.table(b.Table, &pages)
			case KindStats:
				p.statsRow(b.Stats, &pages)
			}
		}
	}
	pages = append(pages, p.close())

	// Footer with page numbers, now that the count is known.
	for i := range pages {
		pages[i] = stampFooter(pages[i], i+1, len(pages), doc, theme)
	}
	return pages
}

// page accumulates SVG elements with a vertical cursor and spills to a new
// page when content would overflow.
type page struct {
	buf   bytes.Buffer
	y     float64
	theme brand.Theme
}

func newPage(theme brand.Theme) *page {
	p := &page{theme: theme}
	p.open()
	return p
}

func (p *page) open() {
	p.buf.Reset()
	fmt.Fprintf(&p.buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		pageW, pageH, pageW, pageH)
	fmt.Fprintf(&p.buf, `<rect width="%.0f" height="%.0f" fill="%s"/>`+"\n",
		pageW, pageH, brand.HexString(p.theme.Background))
	p.y = pageMargin + 10
}

func (p *page) close() []byte {
	p.buf.WriteString("</svg>\n")
	return append([]byte(nil), p.buf.Bytes()...)
}

// breakIfNeeded closes the current page and opens a fresh one when fewer
// than need vertical pixels remain.
func (p *page) breakIfNeeded(need float64, pages *[][]byte) {
	if p.y+need <= pageH-pageMargin-20 {
		return
	}
	*pages = append(*pages, p.close())
	p.open()
}

func (p *page) text(x, y, size float64, weight, fill, anchor, s string) {
	fmt.Fprintf(&p.buf,
		`<text x="%.1f" y="%.1f" font-family="Helvetica, Arial, sans-serif" font-size="%.1f" font-weight="%s" fill="%s" text-anchor="%s">%s</text>`+"\n",
		x, y, size, weight, fill, anchor, escape(s))
}

func (p *page) sectionTitle(title string, pages *[][]byte) {
	p.breakIfNeeded(90, pages)
	p.y += 28
	p.text(pageMargin, p.y, 22, "bold", brand.HexString(p.theme.Purple), "start", title)
	p.y += 10
	fmt.Fprintf(&p.buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="2" fill="%s"/>`+"\n",
		pageMargin, p.y, contentW, brand.HexString(p.theme.SurfaceLight))
	p.y += 24
}

func (p *page) heading(text string, pages *[][]byte) {
	p.breakIfNeeded(60, pages)
	p.y += 16
	p.text(pageMargin, p.y, 16, "bold", brand.HexString(p.theme.PurpleLight), "start", text)
	p.y += 16
}

func (p *page) paragraph(text string, pages *[][]byte) {
	const size = 12.0
	lines := wrapText(text, contentW, size)
	p.breakIfNeeded(float64(len(lines))*size*1.5+10, pages)
	for _, line := range lines {
		p.y += size * 1.5
		p.text(pageMargin, p.y, size, "normal", brand.HexString(p.theme.Text), "start", line)
	}
	p.y += 8
}

func (p *page) table(t *Table, pages *[][]byte) {
	const (
		rowH     = 24.0
		fontSize = 11.0
		cellPad  = 8.0
	)
	widths := columnWidths(t)

	// Keep at least the header plus two rows together.
	p.breakIfNeeded(rowH*3+16, pages)
	p.y += 8

	// Header row.
	x := pageMargin
	fmt.Fprintf(&p.buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		x, p.y, contentW, rowH, brand.HexString(p.theme.Purple))
	for c, cell := range t.Header {
		p.text(x+cellPad, p.y+rowH-8, fontSize, "bold", "#ffffff", "start", cell)
		x += widths[c]
	}
	p.y += rowH

	for r, row := range t.Rows {
		p.breakIfNeeded(rowH, pages)
		if r%2 == 1 {
			fmt.Fprintf(&p.buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				pageMargin, p.y, contentW, rowH, brand.HexString(p.theme.Surface))
		}
		x = pageMargin
		for c, cell := range row {
			if c >= len(widths) {
				break
			}
			p.text(x+cellPad, p.y+rowH-8, fontSize, "normal", brand.HexString(p.theme.Text), "start",
				truncate(cell, widths[c]-2*cellPad, fontSize))
			x += widths[c]
		}
		p.y += rowH
	}
	p.y += 10
}

func (p *page) statsRow(items []Stat, pages *[][]byte) {
	if len(items) == 0 {
		return
	}
	const boxH = 64.0
	p.breakIfNeeded(boxH+20, pages)
	p.y += 10

	gap := 14.0
	boxW := (contentW - gap*float64(len(items)-1)) / float64(len(items))
	for i, s := range items {
		x := pageMargin + float64(i)*(boxW+gap)
		fmt.Fprintf(&p.buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="8" fill="%s"/>`+"\n",
			x, p.y, boxW, boxH, brand.HexString(p.theme.Surface))
		fmt.Fprintf(&p.buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="3" fill="%s"/>`+"\n",
			x, p.y, boxW, brand.HexString(p.theme.Green))
		p.text(x+boxW/2, p.y+30, 18, "bold", brand.HexString(p.theme.Green), "middle", s.Value)
		p.text(x+boxW/2, p.y+50, 10, "normal", brand.HexString(p.theme.TextMuted), "middle", s.Label)
	}
	p.y += boxH + 10
}

func coverPage(doc *Document, theme brand.Theme) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		pageW, pageH, pageW, pageH)
	fmt.Fprintf(&buf, `<rect width="%.0f" height="%.0f" fill="%s"/>`+"\n",
		pageW, pageH, brand.HexString(theme.Background))
	fmt.Fprintf(&buf, `<rect width="%.0f" height="10" fill="%s"/>`+"\n",
		pageW, brand.HexString(theme.Purple))

	write := func(y, size float64, weight, fill, s string) {
		fmt.Fprintf(&buf,
			`<text x="%.1f" y="%.1f" font-family="Helvetica, Arial, sans-serif" font-size="%.1f" font-weight="%s" fill="%s" text-anchor="middle">%s</text>`+"\n",
			pageW/2, y, size, weight, fill, escape(s))
	}

	fmt.Fprintf(&buf, `<circle cx="%.1f" cy="320" r="54" fill="%s"/>`+"\n",
		pageW/2, brand.HexString(theme.Purple))
	write(336, 40, "bold", "#ffffff", "V")

	write(470, 34, "bold", brand.HexString(theme.Purple), doc.Title)
	write(515, 16, "normal", brand.HexString(theme.TextMuted), doc.Subtitle)
	write(600, 12, "normal", brand.HexString(theme.TextMuted),
		"Generated "+doc.Generated.Format("January 2, 2006"))
	write(622, 10, "normal", brand.HexString(theme.TextMuted), "Document "+doc.ID.String())

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// stampFooter injects a page-number line before the closing tag. The cover
// page keeps its clean bottom edge.
func stampFooter(svg []byte, num, total int, doc *Document, theme brand.Theme) []byte {
	if num == 1 {
		return svg
	}
	footer := fmt.Sprintf(
		`<text x="%.1f" y="%.1f" font-family="Helvetica, Arial, sans-serif" font-size="9" fill="%s" text-anchor="middle">%s - page %d of %d</text>`+"\n",
		pageW/2, pageH-24, brand.HexString(theme.TextMuted), escape(doc.Title), num, total)
	return bytes.Replace(svg, []byte("</svg>"), []byte(footer+"</svg>"), 1)
}

// columnWidths distributes the content width across table columns using the
// declared weights, or evenly when none are set.
func columnWidths(t *Table) []float64 {
	n := len(t.Header)
	widths := make([]float64, n)
	if len(t.Widths) == n {
		var sum float64
		for _, w := range t.Widths {
			sum += w
		}
		for i, w := range t.Widths {
			widths[i] = contentW * w / sum
		}
		return widths
	}
	for i := range widths {
		widths[i] = contentW / float64(n)
	}
	return widths
}

// avgCharW estimates glyph width for Helvetica-like faces.
func avgCharW(fontSize float64) float64 { return fontSize * 0.52 }

// wrapText breaks text into lines no wider than width using an estimated
// glyph width. Exact metrics are unnecessary at report font sizes.
func wrapText(text string, width, fontSize float64) []string {
	maxChars := int(width / avgCharW(fontSize))
	if maxChars < 1 {
		maxChars = 1
	}

	words := strings.Fields(text)
	var lines []string
	var cur strings.Builder
	for _, w := range words {
		if cur.Len() > 0 && cur.Len()+1+len(w) > maxChars {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// truncate shortens a cell to fit its column.
func truncate(s string, width, fontSize float64) string {
	maxChars := int(width / avgCharW(fontSize))
	if maxChars < 4 || len(s) <= maxChars {
		return s
	}
	return s[:maxChars-3] + "..."
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string { return escaper.Replace(s) }
