package misc

import (
	"image/color"
	"math"
)

// HSL converts hue [0, 360), saturation [0, 1] and lightness [0, 1] to an opaque RGBA color.
// Hues outside the range wrap around.
// https://en.wikipedia.org/wiki/HSL_and_HSV#HSL_to_RGB
func HSL(hue float64, saturation float64, lightness float64) color.RGBA {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	h := hue / 60

	chroma := (1 - math.Abs(2*lightness-1)) * saturation
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := lightness - chroma/2

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = chroma, x, 0
	case h < 2:
		r, g, b = x, chroma, 0
	case h < 3:
		r, g, b = 0, chroma, x
	case h < 4:
		r, g, b = 0, x, chroma
	case h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return color.RGBA{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
		A: 255,
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func LerpFloat64(v1 float64, v2 float64, fraction float64) float64 {
	return v1 + (v2-v1)*fraction
}

// LerpUint8 rounds to the nearest channel value and keeps the result inside [0, 255] for fractions
// outside [0, 1].
func LerpUint8(v1 uint8, v2 uint8, fraction float64) uint8 {
	v := LerpFloat64(float64(v1), float64(v2), fraction)
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// LinearInterpolationRGB blends two colors channel by channel. The result is always opaque.
func LinearInterpolationRGB(color1 color.RGBA, color2 color.RGBA, fraction float64) color.RGBA {
	return color.RGBA{
		R: LerpUint8(color1.R, color2.R, fraction),
		G: LerpUint8(color1.G, color2.G, fraction),
		B: LerpUint8(color1.B, color2.B, fraction),
		A: 255,
	}
}
