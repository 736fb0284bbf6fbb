// Package render converts SVG documents to distributable formats.
//
// The diagram and report commands compose their output as SVG, then hand
// the bytes to this package. Conversion is delegated to the external
// rsvg-convert tool (from librsvg):
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// Multi-page documents (the architecture report) pass one SVG per page:
//
//	pdf, err := render.PagesToPDF(pages)
package render
