package flow

import (
	"image"

	"github.com/vibelux/toolkit/pkg/brand"
	"github.com/vibelux/toolkit/pkg/canvas"
	"github.com/vibelux/toolkit/pkg/errors"
)

// Options controls rendering geometry.
type Options struct {
	Width  int
	Height int
	Theme  brand.Theme
}

// Defaults fills zero-valued fields.
func (o Options) Defaults() Options {
	if o.Width == 0 {
		o.Width = 1400
	}
	if o.Height == 0 {
		o.Height = 1000
	}
	if o.Theme.Name == "" {
		o.Theme = brand.Dark()
	}
	return o
}

const (
	boxHeight  = 76.0
	boxGap     = 28.0
	maxBoxW    = 280.0
	marginX    = 80.0
	titleY     = 56.0
	subtitleY  = 96.0
	layersTop  = 140.0
	noteLineH  = 26.0
	notePad    = 22.0
	noteMargin = 30.0
)

type rect struct {
	x, y, w, h float64
}

func (r rect) centerX() float64 { return r.x + r.w/2 }
func (r rect) centerY() float64 { return r.y + r.h/2 }

// layout computes box rectangles for each layer, centered horizontally and
// spaced evenly in the vertical band between the subtitle and the note.
func layout(d *Diagram, opts Options) [][]rect {
	w := float64(opts.Width)
	bottom := float64(opts.Height) - noteMargin
	if len(d.Note) > 0 {
		bottom -= notePad*2 + noteLineH*float64(len(d.Note)) + noteMargin
	}

	n := len(d.Layers)
	rects := make([][]rect, n)
	if n == 0 {
		return rects
	}

	band := bottom - layersTop
	step := band / float64(n)

	for i, layer := range d.Layers {
		k := len(layer.Boxes)
		if k == 0 {
			continue
		}
		bw := (w - 2*marginX - boxGap*float64(k-1)) / float64(k)
		if bw > maxBoxW {
			bw = maxBoxW
		}
		total := bw*float64(k) + boxGap*float64(k-1)
		x0 := (w - total) / 2
		y := layersTop + step*float64(i) + (step-boxHeight)/2

		rects[i] = make([]rect, k)
		for j := range layer.Boxes {
			rects[i][j] = rect{x: x0 + float64(j)*(bw+boxGap), y: y, w: bw, h: boxHeight}
		}
	}
	return rects
}

// Render draws the diagram to an image.
func Render(d *Diagram, opts Options) (image.Image, error) {
	opts = opts.Defaults()
	if len(d.Layers) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "diagram has no layers")
	}

	c := canvas.New(opts.Width, opts.Height, opts.Theme)
	rects := layout(d, opts)

	// Arrows go under the boxes so heads tuck against the borders.
	for _, l := range d.Links {
		from, to, ok := resolve(rects, l)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "link references missing box (%d,%d)->(%d,%d)",
				l.From.Layer, l.From.Box, l.To.Layer, l.To.Box)
		}
		drawLink(c, from, to, l, opts.Theme)
	}

	if err := c.UseFont(34, true); err != nil {
		return nil, err
	}
	c.TextCentered([]string{d.Title}, float64(opts.Width)/2, titleY, 0, opts.Theme.Text)

	if d.Subtitle != "" {
		if err := c.UseFont(18, false); err != nil {
			return nil, err
		}
		c.TextCentered([]string{d.Subtitle}, float64(opts.Width)/2, subtitleY, 0, opts.Theme.TextMuted)
	}

	for i, layer := range d.Layers {
		if layer.Label != "" && len(rects[i]) > 0 {
			if err := c.UseFont(14, true); err != nil {
				return nil, err
			}
			c.TextLeft(layer.Label, marginX-50, rects[i][0].centerY(), opts.Theme.TextMuted)
		}
		for j, box := range layer.Boxes {
			r := rects[i][j]
			c.RoundedBox(r.x, r.y, r.w, r.h, 10, box.Color, opts.Theme.Text, 0)

			if err := c.UseFont(15, true); err != nil {
				return nil, err
			}
			c.TextCentered(box.Lines, r.centerX(), r.centerY(), 20, opts.Theme.Text)
		}
	}

	if len(d.Note) > 0 {
		if err := drawNote(c, d, opts); err != nil {
			return nil, err
		}
	}

	return c.Image(), nil
}

func resolve(rects [][]rect, l Link) (rect, rect, bool) {
	if l.From.Layer >= len(rects) || l.To.Layer >= len(rects) {
		return rect{}, rect{}, false
	}
	fl, tl := rects[l.From.Layer], rects[l.To.Layer]
	if l.From.Box >= len(fl) || l.To.Box >= len(tl) {
		return rect{}, rect{}, false
	}
	return fl[l.From.Box], tl[l.To.Box], true
}

func drawLink(c *canvas.Canvas, from, to rect, l Link, theme brand.Theme) {
	col := theme.TextMuted
	if l.From.Layer == l.To.Layer {
		// Horizontal arrow between neighbors in a row.
		c.Arrow(from.x+from.w, from.centerY(), to.x, to.centerY(), col, 3)
		return
	}
	c.Arrow(from.centerX(), from.y+from.h, to.centerX(), to.y, col, 3)
}

func drawNote(c *canvas.Canvas, d *Diagram, opts Options) error {
	w := float64(opts.Width)
	h := notePad*2 + noteLineH*float64(len(d.Note))
	y := float64(opts.Height) - noteMargin - h

	c.RoundedBox(marginX, y, w-2*marginX, h, 12, opts.Theme.Surface, opts.Theme.Amber, 2)

	if err := c.UseFont(15, false); err != nil {
		return err
	}
	c.TextCentered(d.Note, w/2, y+h/2, noteLineH, opts.Theme.Text)
	return nil
}
