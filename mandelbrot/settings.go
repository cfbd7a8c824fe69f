package mandelbrot

import (
	"fmt"
	"image/color"

	"InteractiveMandelbrot/task"
	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	BackgroundColor         color.RGBA
	Coloring                Coloring
	EscapeColor             color.RGBA
	GeneratePaletteSettings []generatePaletteSettings
	Height                  uint
	MaxIterations           uint32
	OffsetX                 float64
	OffsetY                 float64
	Palette                 []color.RGBA
	TaskGeneration          task.Generation
	Width                   uint
	Workers                 int
	Zoom                    float64
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Size: %dx%d\n", s.Width, s.Height)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Viewport: zoom %g offset (%g, %g)\n", s.Zoom, s.OffsetX, s.OffsetY)
	output += fmt.Sprintf("Coloring: %s (%d palette colors)\n", s.Coloring, len(s.Palette))
	output += fmt.Sprintf("Workers: %d (%s tasks)\n", s.Workers, s.TaskGeneration)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.BackgroundColor == (color.RGBA{}) {
		s.BackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	if s.Coloring < FlatColoring || s.Coloring > IterationColoring {
		s.logger.Warningf("Unknown coloring %d, using %s", s.Coloring, FlatColoring)
		s.Coloring = FlatColoring
	}
	if s.EscapeColor == (color.RGBA{}) {
		s.EscapeColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	if len(s.GeneratePaletteSettings) > 0 {
		s.Palette = make([]color.RGBA, 0)
		for i := 0; i < len(s.GeneratePaletteSettings); i++ {
			s.Palette = append(s.Palette, s.GeneratePaletteSettings[i].GeneratePalette()...)
		}
	}
	if s.Height == 0 {
		s.Height = 800
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = 100
	}
	if !isFinite(s.OffsetX) {
		s.OffsetX = 0
	}
	if !isFinite(s.OffsetY) {
		s.OffsetY = 0
	}
	if !s.TaskGeneration.Valid() {
		s.TaskGeneration = task.Row
	}
	if s.Width == 0 {
		s.Width = 800
	}
	if s.Workers < 1 {
		s.Workers = 1
	}
	if !isFinite(s.Zoom) || s.Zoom <= 0 {
		s.Zoom = DefaultZoom
	}
	if clamped := clampZoom(s.Zoom); clamped != s.Zoom {
		s.logger.Infof("Clamping zoom %g to %g", s.Zoom, clamped)
		s.Zoom = clamped
	}

	return nil
}

// Viewport returns the initial viewport described by the settings.
func (s *Settings) Viewport() (Viewport, error) {
	return NewViewport(s.Zoom, s.OffsetX, s.OffsetY)
}

func (s *Settings) Colorer() Colorer {
	return Colorer{
		Coloring:    s.Coloring,
		EscapeColor: s.EscapeColor,
		Palette:     append([]color.RGBA(nil), s.Palette...),
	}
}
