// Package theme derives the editor's UI colors from a Chroma style.
package theme

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Palette holds UI chrome colors derived deterministically from a Chroma theme.
// The grayscale ramp is a linear interpolation from bg to fg; the accent is the
// most saturated token color in the style; error comes from the Error token.
type Palette struct {
	Bg       string // Theme background
	Fg       string // Theme foreground (text)
	FooterBg string // 10% bg→fg
	Gutter   string // 30% bg→fg, line numbers
	Muted    string // 50% bg→fg, help text
	Accent   string // Most saturated token color, file name and current line
	Error    string // From chroma Error token, lerped 60% toward the token color
}

// Default is used when no style is found.
var Default = Palette{
	Bg: "#000000", Fg: "#c8c8c8",
	FooterBg: "#141414",
	Gutter:   "#3c3c3c",
	Muted:    "#646464",
	Accent:   "#00dfff",
	Error:    "#d75f5f",
}

// FromChroma derives a palette from the named Chroma style. The second result
// is false when the style is unknown and Default was returned.
func FromChroma(name string) (Palette, bool) {
	sty, ok := styles.Registry[strings.ToLower(name)]
	if !ok || sty == nil {
		return Default, false
	}

	entry := sty.Get(chroma.Background)
	bg := chroma.MustParseColour("#000000")
	fg := chroma.MustParseColour("#c8c8c8")
	if entry.Background.IsSet() {
		bg = entry.Background
	}
	if entry.Colour.IsSet() {
		fg = entry.Colour
	}

	return Palette{
		Bg:       hex(bg),
		Fg:       hex(fg),
		FooterBg: lerp(bg, fg, 0.10),
		Gutter:   lerp(bg, fg, 0.30),
		Muted:    lerp(bg, fg, 0.50),
		Accent:   pickAccent(sty, fg),
		Error:    pickError(sty, bg, fg),
	}, true
}

// pickAccent returns the most saturated foreground color across all tokens.
func pickAccent(sty *chroma.Style, fallback chroma.Colour) string {
	best := fallback
	bestSat := 0.0
	for _, tt := range sty.Types() {
		c := sty.Get(tt).Colour
		if !c.IsSet() {
			continue
		}
		if sat := saturation(c); sat > bestSat {
			bestSat = sat
			best = c
		}
	}
	return hex(best)
}

func pickError(sty *chroma.Style, bg, fg chroma.Colour) string {
	e := sty.Get(chroma.Error)
	if !e.Colour.IsSet() {
		return lerp(bg, fg, 0.60)
	}
	return lerp(bg, e.Colour, 0.60)
}

func saturation(c chroma.Colour) float64 {
	r, g, b := float64(c.Red()), float64(c.Green()), float64(c.Blue())
	mx := max(r, g, b)
	if mx == 0 {
		return 0
	}
	return (mx - min(r, g, b)) / mx
}

// lerp linearly interpolates between two colors at fraction t.
func lerp(a, b chroma.Colour, t float64) string {
	mix := func(x, y uint8) int {
		v := float64(x) + (float64(y)-float64(x))*t
		return int(min(max(v, 0), 255) + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x",
		mix(a.Red(), b.Red()),
		mix(a.Green(), b.Green()),
		mix(a.Blue(), b.Blue()),
	)
}

func hex(c chroma.Colour) string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}
