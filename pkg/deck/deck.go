// Package deck renders the VibeLux marketing pitch deck as 16:9 slide
// images plus a combined contact sheet.
package deck

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/vibelux/toolkit/pkg/brand"
	"github.com/vibelux/toolkit/pkg/canvas"
	"github.com/vibelux/toolkit/pkg/errors"
)

// Slide dimensions, 16:9 presentation format.
const (
	Width  = 1600
	Height = 900
)

// Slide is one deck page.
type Slide struct {
	// Name is the CLI identifier and output file stem.
	Name string
	// Title is the human-readable slide title.
	Title string
	// Draw paints the slide body onto a prepared canvas.
	Draw func(c *canvas.Canvas) error
}

// Slides returns the full deck in presentation order.
func Slides() []Slide {
	return []Slide{
		{Name: "title", Title: "VibeLux Platform", Draw: drawTitle},
		{Name: "cfd", Title: "3D Design & CFD Analysis", Draw: drawCFD},
		{Name: "aiml", Title: "AI & Machine Learning Core", Draw: drawAIML},
		{Name: "energy", Title: "Energy Optimization", Draw: drawEnergy},
		{Name: "platform", Title: "Complete Platform", Draw: drawPlatform},
		{Name: "journey", Title: "Grower Journey", Draw: drawJourney},
	}
}

// ByName resolves a slide by its CLI name.
func ByName(name string) (Slide, bool) {
	for _, s := range Slides() {
		if s.Name == name {
			return s, true
		}
	}
	return Slide{}, false
}

// Render draws a single slide with the given theme.
func Render(s Slide, theme brand.Theme) (image.Image, error) {
	if s.Draw == nil {
		return nil, errors.New(errors.ErrCodeInvalidSlide, "slide %q has no draw function", s.Name)
	}
	c := canvas.New(Width, Height, theme)
	if err := s.Draw(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "draw slide %s", s.Name)
	}
	return c.Image(), nil
}

// ContactSheet arranges slide images in a grid, each thumbnail a quarter of
// full slide size, and returns the montage.
func ContactSheet(images []image.Image, cols int) image.Image {
	if cols < 1 {
		cols = 2
	}
	if len(images) == 0 {
		return imaging.New(1, 1, brand.Dark().Background)
	}

	const (
		thumbW = Width / 4
		thumbH = Height / 4
		pad    = 20
	)

	rows := (len(images) + cols - 1) / cols
	sheet := imaging.New(
		cols*thumbW+(cols+1)*pad,
		rows*thumbH+(rows+1)*pad,
		brand.Dark().Background,
	)

	for i, img := range images {
		thumb := imaging.Resize(img, thumbW, thumbH, imaging.Lanczos)
		col, row := i%cols, i/cols
		x := pad + col*(thumbW+pad)
		y := pad + row*(thumbH+pad)
		sheet = imaging.Paste(sheet, thumb, image.Pt(x, y))
	}
	return sheet
}
