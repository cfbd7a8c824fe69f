package misc

import (
	"image/color"
	"testing"
)

func TestHSL(t *testing.T) {
	tests := []struct {
		name       string
		hue        float64
		saturation float64
		lightness  float64
		want       color.RGBA
	}{
		{"red", 0, 1, 0.5, color.RGBA{R: 255, A: 255}},
		{"green", 120, 1, 0.5, color.RGBA{G: 255, A: 255}},
		{"blue", 240, 1, 0.5, color.RGBA{B: 255, A: 255}},
		{"yellow", 60, 1, 0.5, color.RGBA{R: 255, G: 255, A: 255}},
		{"full turn wraps", 360, 1, 0.5, color.RGBA{R: 255, A: 255}},
		{"negative hue wraps", -120, 1, 0.5, color.RGBA{B: 255, A: 255}},
		{"white", 200, 1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"black", 200, 1, 0, color.RGBA{A: 255}},
		{"grey", 75, 0, 0.5, color.RGBA{R: 128, G: 128, B: 128, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSL(tt.hue, tt.saturation, tt.lightness); got != tt.want {
				t.Errorf("HSL(%g, %g, %g) = %v, want %v", tt.hue, tt.saturation, tt.lightness, got, tt.want)
			}
		})
	}
}

func TestLerpUint8(t *testing.T) {
	tests := []struct {
		v1, v2   uint8
		fraction float64
		want     uint8
	}{
		{0, 255, 0, 0},
		{0, 255, 1, 255},
		{0, 200, 0.5, 100},
		{200, 0, 0.25, 150},
		{10, 20, 2, 30},
		{0, 255, 1.5, 255},
		{100, 200, -2, 0},
	}

	for _, tt := range tests {
		if got := LerpUint8(tt.v1, tt.v2, tt.fraction); got != tt.want {
			t.Errorf("LerpUint8(%d, %d, %g) = %d, want %d", tt.v1, tt.v2, tt.fraction, got, tt.want)
		}
	}
}

func TestLinearInterpolationRGB(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	if got := LinearInterpolationRGB(black, white, 0); got != black {
		t.Errorf("fraction 0 = %v, want %v", got, black)
	}
	if got := LinearInterpolationRGB(black, white, 1); got != white {
		t.Errorf("fraction 1 = %v, want %v", got, white)
	}
	if got := LinearInterpolationRGB(color.RGBA{R: 100}, color.RGBA{G: 100}, 0.5); got != (color.RGBA{R: 50, G: 50, A: 255}) {
		t.Errorf("midpoint = %v", got)
	}
}
