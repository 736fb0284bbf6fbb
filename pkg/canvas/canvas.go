// Package canvas wraps fogleman/gg with the small set of drawing primitives
// the deck and flow generators share: branded boxes, arrows, centered
// multiline text, and image encoding.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/vibelux/toolkit/pkg/brand"
)

// Canvas is a gg drawing context bound to a brand theme.
type Canvas struct {
	*gg.Context
	Theme brand.Theme
}

// New creates a canvas of the given pixel size with the theme background
// already filled.
func New(width, height int, theme brand.Theme) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(theme.Background)
	dc.Clear()
	return &Canvas{Context: dc, Theme: theme}
}

// UseFont switches the active font face. Size is in points.
func (c *Canvas) UseFont(points float64, bold bool) error {
	var (
		face font.Face
		err  error
	)
	if bold {
		face, err = brand.BoldFace(points)
	} else {
		face, err = brand.Face(points)
	}
	if err != nil {
		return err
	}
	c.SetFontFace(face)
	return nil
}

// Box fills an axis-aligned rectangle.
func (c *Canvas) Box(x, y, w, h float64, fill color.Color) {
	c.SetColor(fill)
	c.DrawRectangle(x, y, w, h)
	c.Fill()
}

// RoundedBox fills a rounded rectangle and optionally strokes its border.
// Pass a zero lineWidth to skip the border.
func (c *Canvas) RoundedBox(x, y, w, h, radius float64, fill, border color.Color, lineWidth float64) {
	c.DrawRoundedRectangle(x, y, w, h, radius)
	c.SetColor(fill)
	if lineWidth > 0 {
		c.FillPreserve()
		c.SetColor(border)
		c.SetLineWidth(lineWidth)
		c.Stroke()
		return
	}
	c.Fill()
}

// Disc fills a circle, used for logo marks and step numbers.
func (c *Canvas) Disc(cx, cy, r float64, fill color.Color) {
	c.SetColor(fill)
	c.DrawCircle(cx, cy, r)
	c.Fill()
}

// Ring strokes a circle outline.
func (c *Canvas) Ring(cx, cy, r float64, stroke color.Color, lineWidth float64) {
	c.SetColor(stroke)
	c.SetLineWidth(lineWidth)
	c.DrawCircle(cx, cy, r)
	c.Stroke()
}

// TextCentered draws lines of text centered on (cx, cy), spaced by
// lineHeight pixels. A single line lands exactly on the center.
func (c *Canvas) TextCentered(lines []string, cx, cy, lineHeight float64, col color.Color) {
	c.SetColor(col)
	top := cy - lineHeight*float64(len(lines)-1)/2
	for i, line := range lines {
		c.DrawStringAnchored(line, cx, top+float64(i)*lineHeight, 0.5, 0.5)
	}
}

// TextLeft draws a single line anchored at its left baseline-center.
func (c *Canvas) TextLeft(s string, x, y float64, col color.Color) {
	c.SetColor(col)
	c.DrawStringAnchored(s, x, y, 0, 0.5)
}

// Wrap splits text into lines no wider than width pixels using the active
// font face.
func (c *Canvas) Wrap(s string, width float64) []string {
	return c.WordWrap(s, width)
}

// Arrow draws a straight line from (x1,y1) to (x2,y2) capped with a filled
// triangular head at the destination.
func (c *Canvas) Arrow(x1, y1, x2, y2 float64, col color.Color, lineWidth float64) {
	headLen := 4 * lineWidth
	if headLen < 10 {
		headLen = 10
	}

	angle := math.Atan2(y2-y1, x2-x1)

	// Shorten the shaft so it does not poke through the head.
	sx := x2 - headLen*math.Cos(angle)
	sy := y2 - headLen*math.Sin(angle)

	c.SetColor(col)
	c.SetLineWidth(lineWidth)
	c.DrawLine(x1, y1, sx, sy)
	c.Stroke()

	const spread = math.Pi / 7
	c.MoveTo(x2, y2)
	c.LineTo(x2-headLen*math.Cos(angle-spread), y2-headLen*math.Sin(angle-spread))
	c.LineTo(x2-headLen*math.Cos(angle+spread), y2-headLen*math.Sin(angle+spread))
	c.ClosePath()
	c.Fill()
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.Context.Image()
}
