package canvas

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/vibelux/toolkit/pkg/brand"
)

func TestNewFillsBackground(t *testing.T) {
	theme := brand.Dark()
	c := New(64, 48, theme)

	img := c.Image()
	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("bounds = %v, want 64x48", b)
	}

	r, g, bl, _ := img.At(32, 24).RGBA()
	want := theme.Background
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(bl>>8) != want.B {
		t.Errorf("center pixel = (%d,%d,%d), want background %v", r>>8, g>>8, bl>>8, want)
	}
}

func TestBoxPaintsFill(t *testing.T) {
	theme := brand.Dark()
	c := New(100, 100, theme)
	c.Box(10, 10, 50, 50, theme.Green)

	r, g, b, _ := c.Image().At(30, 30).RGBA()
	if uint8(r>>8) != theme.Green.R || uint8(g>>8) != theme.Green.G || uint8(b>>8) != theme.Green.B {
		t.Errorf("box interior = (%d,%d,%d), want %v", r>>8, g>>8, b>>8, theme.Green)
	}

	// Outside the box stays background.
	r, g, b, _ = c.Image().At(90, 90).RGBA()
	if uint8(r>>8) != theme.Background.R || uint8(g>>8) != theme.Background.G || uint8(b>>8) != theme.Background.B {
		t.Errorf("outside box = (%d,%d,%d), want background", r>>8, g>>8, b>>8)
	}
}

func TestArrowPaintsHead(t *testing.T) {
	theme := brand.Dark()
	c := New(100, 100, theme)
	c.Arrow(10, 50, 90, 50, theme.Text, 3)

	// The head triangle covers the destination point.
	r, g, b, _ := c.Image().At(88, 50).RGBA()
	bg := theme.Background
	if uint8(r>>8) == bg.R && uint8(g>>8) == bg.G && uint8(b>>8) == bg.B {
		t.Error("arrow head not painted at destination")
	}
}

func TestEncodePNG(t *testing.T) {
	c := New(10, 10, brand.Light())
	data, err := EncodePNG(c.Image())
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 10 {
		t.Errorf("decoded width = %d, want 10", img.Bounds().Dx())
	}
}

func TestEncodeJPEG(t *testing.T) {
	c := New(10, 10, brand.Light())
	data, err := EncodeJPEG(c.Image())
	if err != nil {
		t.Fatalf("EncodeJPEG: %v", err)
	}
	// JPEG SOI marker.
	if len(data) < 2 || data[0] != 0xff || data[1] != 0xd8 {
		t.Errorf("JPEG magic missing, got % x", data[:2])
	}
}
