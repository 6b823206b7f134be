package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Blend mixes two terminal colors in Luv space, which keeps perceived
// lightness steadier than naive RGB interpolation. t is the fraction of
// the second color, clamped to [0, 1].
func Blend(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mixed := toColorful(a).BlendLuv(toColorful(b), t).Clamped()
	r, g, bl := mixed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// toColorful converts a tcell color to a colorful color.
func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.TrueColor().RGB()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
