// Package brand holds the VibeLux visual identity shared by every image
// generator: the color palette and the typeface loader.
package brand

import (
	"fmt"
	"image/color"
)

// Theme is a named set of brand colors. All generators draw from a Theme so
// dark and light artifacts stay consistent.
type Theme struct {
	Name string

	Background   color.RGBA // page background
	Surface      color.RGBA // card/panel fill
	SurfaceLight color.RGBA // raised panel fill

	Purple      color.RGBA // primary brand color
	PurpleLight color.RGBA
	Green       color.RGBA // savings, success
	GreenLight  color.RGBA
	Blue        color.RGBA // platform, data
	Amber       color.RGBA // energy, warnings
	Red         color.RGBA // peak load, alerts
	Yellow      color.RGBA // highlights, stats

	Text      color.RGBA
	TextMuted color.RGBA
}

// Dark is the primary presentation theme (slate background, matches the
// marketing deck).
func Dark() Theme {
	return Theme{
		Name:         "dark",
		Background:   Hex("#0f172a"),
		Surface:      Hex("#1f2937"),
		SurfaceLight: Hex("#374151"),
		Purple:       Hex("#9333ea"),
		PurpleLight:  Hex("#a855f7"),
		Green:        Hex("#22c55e"),
		GreenLight:   Hex("#4ade80"),
		Blue:         Hex("#3b82f6"),
		Amber:        Hex("#f59e0b"),
		Red:          Hex("#ef4444"),
		Yellow:       Hex("#fbbf24"),
		Text:         Hex("#f8fafc"),
		TextMuted:    Hex("#d1d5db"),
	}
}

// Light is the print-friendly theme used by reports and handouts.
func Light() Theme {
	return Theme{
		Name:         "light",
		Background:   Hex("#ffffff"),
		Surface:      Hex("#f3f4f6"),
		SurfaceLight: Hex("#e5e7eb"),
		Purple:       Hex("#6B46C1"),
		PurpleLight:  Hex("#9333ea"),
		Green:        Hex("#10b981"),
		GreenLight:   Hex("#22c55e"),
		Blue:         Hex("#3b82f6"),
		Amber:        Hex("#f59e0b"),
		Red:          Hex("#ef4444"),
		Yellow:       Hex("#d97706"),
		Text:         Hex("#111827"),
		TextMuted:    Hex("#4b5563"),
	}
}

// ByName resolves a theme by its CLI name.
func ByName(name string) (Theme, bool) {
	switch name {
	case "dark":
		return Dark(), true
	case "light":
		return Light(), true
	}
	return Theme{}, false
}

// Hex parses a #rrggbb color string. Malformed input yields opaque black,
// which is loud enough to spot in generated artifacts.
func Hex(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// HexString formats a color back to #rrggbb for SVG and DOT attributes.
func HexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
