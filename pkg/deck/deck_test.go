package deck

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/vibelux/toolkit/pkg/brand"
)

func TestSlidesRegistry(t *testing.T) {
	slides := Slides()
	if len(slides) != 6 {
		t.Fatalf("Slides() = %d entries, want 6", len(slides))
	}

	wantOrder := []string{"title", "cfd", "aiml", "energy", "platform", "journey"}
	seen := make(map[string]bool)
	for i, s := range slides {
		if s.Name != wantOrder[i] {
			t.Errorf("slide %d = %q, want %q", i, s.Name, wantOrder[i])
		}
		if seen[s.Name] {
			t.Errorf("duplicate slide name %q", s.Name)
		}
		seen[s.Name] = true
		if s.Draw == nil {
			t.Errorf("slide %q has nil Draw", s.Name)
		}
		if s.Title == "" {
			t.Errorf("slide %q has empty title", s.Name)
		}
	}
}

func TestByName(t *testing.T) {
	if s, ok := ByName("energy"); !ok || s.Name != "energy" {
		t.Errorf("ByName(energy) = %v, %v", s.Name, ok)
	}
	if _, ok := ByName("bogus"); ok {
		t.Error("ByName(bogus) should fail")
	}
}

func TestRenderAllSlides(t *testing.T) {
	if _, err := brand.Face(12); err != nil {
		t.Skipf("no system font available: %v", err)
	}

	for _, s := range Slides() {
		t.Run(s.Name, func(t *testing.T) {
			img, err := Render(s, brand.Dark())
			if err != nil {
				t.Fatalf("Render(%s): %v", s.Name, err)
			}
			if img.Bounds().Dx() != Width || img.Bounds().Dy() != Height {
				t.Errorf("bounds = %v, want %dx%d", img.Bounds(), Width, Height)
			}
		})
	}
}

func TestRenderNilDraw(t *testing.T) {
	_, err := Render(Slide{Name: "empty"}, brand.Dark())
	if err == nil {
		t.Fatal("Render of slide without Draw should fail")
	}
}

func TestContactSheet(t *testing.T) {
	imgs := []image.Image{
		imaging.New(Width, Height, color.NRGBA{R: 10, A: 255}),
		imaging.New(Width, Height, color.NRGBA{G: 10, A: 255}),
		imaging.New(Width, Height, color.NRGBA{B: 10, A: 255}),
	}

	sheet := ContactSheet(imgs, 2)

	// Two columns, two rows of quarter-size thumbnails plus padding.
	const pad = 20
	wantW := 2*(Width/4) + 3*pad
	wantH := 2*(Height/4) + 3*pad
	if sheet.Bounds().Dx() != wantW || sheet.Bounds().Dy() != wantH {
		t.Errorf("sheet bounds = %v, want %dx%d", sheet.Bounds(), wantW, wantH)
	}
}

func TestContactSheetEmpty(t *testing.T) {
	sheet := ContactSheet(nil, 3)
	if sheet == nil {
		t.Fatal("ContactSheet(nil) returned nil")
	}
}
