package mandelbrot

import (
	"fmt"
	"image/color"

	"InteractiveMandelbrot/misc"
)

const (
	FlatColoring Coloring = iota
	IterationColoring
)

// Coloring selects how an IterationResult becomes a pixel color.
type Coloring int

func (c Coloring) String() string {
	names := []string{
		"Flat", "Iteration",
	}
	if c < 0 || int(c) >= len(names) {
		return fmt.Sprintf("Coloring(%d)", int(c))
	}
	return names[c]
}

// generatePaletteSettings describes one gradient of a palette. Gradients listed one after the other in
// the settings file are concatenated.
type generatePaletteSettings struct {
	StartColor   color.RGBA
	EndColor     color.RGBA
	NumberColors int
}

// GeneratePalette returns NumberColors steps from StartColor towards EndColor. EndColor itself is left
// for the next gradient to start from.
func (gps *generatePaletteSettings) GeneratePalette() []color.RGBA {
	palette := make([]color.RGBA, 0)
	for j := 0; j < gps.NumberColors; j++ {
		fraction := float64(j) / float64(gps.NumberColors)
		palette = append(palette, misc.LinearInterpolationRGB(gps.StartColor, gps.EndColor, fraction))
	}
	return palette
}

// Colorer derives pixel colors from iteration results.
type Colorer struct {
	Coloring    Coloring
	EscapeColor color.RGBA
	Palette     []color.RGBA
}

// Color returns the color for result and whether the pixel should be painted at all. Pixels that are
// not painted keep the surface background.
//
// FlatColoring paints only points in the set, all with the hue 360 * (1 - max/(max+1)). The hue does not
// depend on the pixel so the set renders as a flat silhouette.
//
// IterationColoring paints points that never escaped with EscapeColor. An escaped point takes
// Palette[iterations % len(Palette)], or without a palette a hue proportional to how long it took to
// escape.
func (c Colorer) Color(result IterationResult, maxIterations uint32) (color.RGBA, bool) {
	maxF := float64(maxIterations)

	switch c.Coloring {
	case IterationColoring:
		if result.InSet() {
			return c.EscapeColor, true
		}
		if len(c.Palette) > 0 {
			return c.Palette[int(result.Iterations)%len(c.Palette)], true
		}
		hue := 360 * float64(result.Iterations) / maxF
		return misc.HSL(hue, 1, 0.5), true
	default:
		if result.Escaped {
			return color.RGBA{}, false
		}
		hue := 360 * (1 - maxF/(maxF+1))
		return misc.HSL(hue, 1, 0.5), true
	}
}
