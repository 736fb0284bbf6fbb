package brand

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/vibelux/toolkit/pkg/errors"
)

// fontCandidates are tried in order. The original deck artwork used
// Helvetica; the rest are close metrics-compatible stand-ins commonly
// present on macOS and Linux.
var fontCandidates = []string{
	"Helvetica.ttf",
	"Arial.ttf",
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
}

var boldCandidates = []string{
	"Helvetica-Bold.ttf",
	"Arial Bold.ttf",
	"Arial-Bold.ttf",
	"DejaVuSans-Bold.ttf",
	"LiberationSans-Bold.ttf",
}

type fontCache struct {
	mu    sync.Mutex
	font  *truetype.Font
	faces map[float64]font.Face
}

var (
	regular = &fontCache{faces: make(map[float64]font.Face)}
	bold    = &fontCache{faces: make(map[float64]font.Face)}
)

// Face returns the brand sans-serif at the given point size. Faces are
// cached per size; the underlying TTF is located and parsed once.
func Face(points float64) (font.Face, error) {
	return regular.face(fontCandidates, points)
}

// BoldFace returns the bold brand sans-serif at the given point size.
// Falls back to the regular face when no bold variant is installed.
func BoldFace(points float64) (font.Face, error) {
	f, err := bold.face(boldCandidates, points)
	if err != nil {
		return Face(points)
	}
	return f, nil
}

func (c *fontCache) face(candidates []string, points float64) (font.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.faces[points]; ok {
		return f, nil
	}

	if c.font == nil {
		f, err := locate(candidates)
		if err != nil {
			return nil, err
		}
		c.font = f
	}

	face := truetype.NewFace(c.font, &truetype.Options{Size: points})
	c.faces[points] = face
	return face, nil
}

func locate(candidates []string) (*truetype.Font, error) {
	for _, name := range candidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return f, nil
	}
	return nil, errors.New(errors.ErrCodeFontNotFound,
		"no usable sans-serif font found (tried %v); install DejaVu or Liberation fonts", candidates)
}
