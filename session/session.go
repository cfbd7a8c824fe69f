package session

import (
	"errors"
	"fmt"
	"sync"

	"InteractiveMandelbrot/mandelbrot"
	"github.com/BrugadaSyndrome/bslogger"
)

// Controller is the gesture contract of an interactive session. Every successful call leaves the
// session with a freshly rendered frame.
type Controller interface {
	OnZoom(cursorX float64, cursorY float64, scrollDeltaSign int) error
	OnPan(movementX float64, movementY float64) error
	OnPinchZoom(midX float64, midY float64, distanceRatio float64) error
	Reset() error
	Frame() (Frame, error)
}

// Frame is a copy of the most recent raster together with the viewport that produced it.
type Frame struct {
	Height        uint
	MaxIterations uint32
	Pix           []uint8
	Renders       uint
	Stats         mandelbrot.RenderStats
	Viewport      mandelbrot.Viewport
	Width         uint
}

// Session owns the viewport of one interactive view and re-renders after every accepted gesture.
// Gestures are serialized: a render in progress finishes before the next gesture is applied.
type Session struct {
	colorer  mandelbrot.Colorer
	initial  mandelbrot.Viewport
	logger   bslogger.Logger
	mutex    sync.Mutex
	renders  uint
	settings mandelbrot.Settings
	stats    mandelbrot.RenderStats
	surface  *mandelbrot.ImageSurface
	viewport mandelbrot.Viewport
}

func NewSession(settings mandelbrot.Settings) (*Session, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}
	viewport, err := settings.Viewport()
	if err != nil {
		return nil, err
	}

	s := &Session{
		colorer:  settings.Colorer(),
		initial:  viewport,
		logger:   bslogger.NewLogger("Session", bslogger.Normal, nil),
		settings: settings,
		surface:  mandelbrot.NewImageSurface(settings.Width, settings.Height),
		viewport: viewport,
	}
	s.logger.Debug(settings.String())

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if err := s.render(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) OnZoom(cursorX float64, cursorY float64, scrollDeltaSign int) error {
	factor, err := mandelbrot.WheelFactor(scrollDeltaSign)
	if err != nil {
		return s.reject("zoom", err)
	}
	return s.apply("zoom", func(v *mandelbrot.Viewport) error {
		return v.ZoomAt(cursorX, cursorY, factor, s.settings.Width, s.settings.Height)
	})
}

func (s *Session) OnPan(movementX float64, movementY float64) error {
	if movementX == 0 && movementY == 0 {
		return s.reject("pan", fmt.Errorf("%w: pan without movement", mandelbrot.ErrDegenerateGesture))
	}
	return s.apply("pan", func(v *mandelbrot.Viewport) error {
		return v.Pan(movementX, movementY)
	})
}

// OnPinchZoom zooms by distanceRatio around the midpoint of the pinch. A ratio of exactly 1 leaves the
// viewport as it is and is ignored without rendering.
func (s *Session) OnPinchZoom(midX float64, midY float64, distanceRatio float64) error {
	if distanceRatio == 1 {
		return s.reject("pinch", fmt.Errorf("%w: pinch without scaling", mandelbrot.ErrDegenerateGesture))
	}
	return s.apply("pinch", func(v *mandelbrot.Viewport) error {
		return v.ZoomAt(midX, midY, distanceRatio, s.settings.Width, s.settings.Height)
	})
}

// Reset returns to the viewport the session started with.
func (s *Session) Reset() error {
	return s.apply("reset", func(v *mandelbrot.Viewport) error {
		*v = s.initial
		return nil
	})
}

func (s *Session) Viewport() mandelbrot.Viewport {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.viewport
}

func (s *Session) Frame() (Frame, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	pix := make([]uint8, len(s.surface.Image.Pix))
	copy(pix, s.surface.Image.Pix)
	return Frame{
		Height:        s.settings.Height,
		MaxIterations: s.settings.MaxIterations,
		Pix:           pix,
		Renders:       s.renders,
		Stats:         s.stats,
		Viewport:      s.viewport,
		Width:         s.settings.Width,
	}, nil
}

// apply runs mutate against the viewport and renders. A failed mutation leaves the viewport as it was.
func (s *Session) apply(gesture string, mutate func(v *mandelbrot.Viewport) error) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	previous := s.viewport
	if err := mutate(&s.viewport); err != nil {
		s.viewport = previous
		return s.reject(gesture, err)
	}
	if err := s.render(); err != nil {
		s.viewport = previous
		return err
	}
	return nil
}

func (s *Session) reject(gesture string, err error) error {
	if errors.Is(err, mandelbrot.ErrDegenerateGesture) {
		s.logger.Debugf("Ignoring %s: %s", gesture, err)
	} else {
		s.logger.Warningf("Rejected %s: %s", gesture, err)
	}
	return err
}

// render must be called with the mutex held.
func (s *Session) render() error {
	s.surface.Clear(s.settings.BackgroundColor)
	stats, err := mandelbrot.RenderTasks(s.viewport, s.surface, s.settings.Width, s.settings.Height, s.settings.MaxIterations, s.colorer, s.settings.TaskGeneration, s.settings.Workers)
	if err != nil {
		s.logger.Errorf("Unable to render %s: %s", s.viewport.String(), err)
		return err
	}
	s.stats = stats
	s.renders++
	s.logger.Debugf("Rendered %s in %s [in set %d/%d]", s.viewport.String(), stats.Elapsed, stats.InSet, stats.Pixels)
	return nil
}
