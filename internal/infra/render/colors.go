package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/trexfeathers/WOPI/internal/domain"
)

var fallbackColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// ParseColor accepts CSS colour names and #rgb / #rrggbb hex codes.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == domain.DefaultColor {
		return color.RGBA{}, fmt.Errorf("no colour given")
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
}

// ResolveColors picks one colour per table date. Dates whose hint is missing or
// invalid take the next palette colour and produce a note.
func ResolveColors(t domain.SkillTable, hints domain.ColorMap, palette []string) ([]color.RGBA, []string) {
	out := make([]color.RGBA, len(t.Dates))
	var notes []string

	for i, d := range t.Dates {
		c, err := ParseColor(hints.Color(d))
		if err == nil {
			out[i] = c
			continue
		}
		notes = append(notes, fmt.Sprintf("Config \"Colour\" key missing/invalid for %s. Using default colour", d))
		out[i] = paletteColor(palette, i)
	}
	return out, notes
}

func paletteColor(palette []string, i int) color.RGBA {
	if len(palette) == 0 {
		return fallbackColor
	}
	c, err := ParseColor(palette[i%len(palette)])
	if err != nil {
		return fallbackColor
	}
	return c
}

func hexOf(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
