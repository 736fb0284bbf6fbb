package brand

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"slate background", "#0f172a", color.RGBA{0x0f, 0x17, 0x2a, 0xff}},
		{"brand purple", "#9333ea", color.RGBA{0x93, 0x33, 0xea, 0xff}},
		{"white", "#ffffff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"malformed falls back to black", "oops", color.RGBA{0, 0, 0, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexStringRoundTrip(t *testing.T) {
	for _, s := range []string{"#0f172a", "#22c55e", "#fbbf24"} {
		if got := HexString(Hex(s)); got != s {
			t.Errorf("HexString(Hex(%q)) = %q", s, got)
		}
	}
}

func TestByName(t *testing.T) {
	dark, ok := ByName("dark")
	if !ok || dark.Name != "dark" {
		t.Fatalf("ByName(dark) = %v, %v", dark.Name, ok)
	}
	light, ok := ByName("light")
	if !ok || light.Name != "light" {
		t.Fatalf("ByName(light) = %v, %v", light.Name, ok)
	}
	if _, ok := ByName("sepia"); ok {
		t.Error("ByName(sepia) should not resolve")
	}

	// Print theme keeps a light background, deck theme a dark one.
	if light.Background != Hex("#ffffff") {
		t.Errorf("light background = %v", light.Background)
	}
	if dark.Background != Hex("#0f172a") {
		t.Errorf("dark background = %v", dark.Background)
	}
}
