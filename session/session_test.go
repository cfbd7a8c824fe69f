package session

import (
	"errors"
	"math"
	"testing"

	"InteractiveMandelbrot/mandelbrot"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(mandelbrot.Settings{
		Height:        30,
		MaxIterations: 20,
		Width:         40,
	})
	if err != nil {
		t.Fatalf("NewSession: %s", err)
	}
	return s
}

func mustFrame(t *testing.T, s *Session) Frame {
	t.Helper()
	frame, err := s.Frame()
	if err != nil {
		t.Fatalf("Frame: %s", err)
	}
	return frame
}

func TestNewSessionRendersOnce(t *testing.T) {
	s := newTestSession(t)
	frame := mustFrame(t, s)

	if frame.Renders != 1 {
		t.Errorf("Renders = %d, want 1", frame.Renders)
	}
	if frame.Width != 40 || frame.Height != 30 || len(frame.Pix) != 40*30*4 {
		t.Errorf("frame %dx%d with %d bytes", frame.Width, frame.Height, len(frame.Pix))
	}
	if frame.Viewport != mandelbrot.DefaultViewport() {
		t.Errorf("Viewport = %s", frame.Viewport.String())
	}
	if frame.Stats.Pixels != 40*30 {
		t.Errorf("Stats.Pixels = %d", frame.Stats.Pixels)
	}
}

func TestOnZoomAnchorsCursorAndRenders(t *testing.T) {
	s := newTestSession(t)
	before, _ := mandelbrot.MapPixelToPlane(10, 20, s.Viewport(), 40, 30)

	if err := s.OnZoom(10, 20, 1); err != nil {
		t.Fatalf("OnZoom: %s", err)
	}
	after, _ := mandelbrot.MapPixelToPlane(10, 20, s.Viewport(), 40, 30)

	if math.Abs(before.Real-after.Real) > 1e-12 || math.Abs(before.Imaginary-after.Imaginary) > 1e-12 {
		t.Errorf("cursor moved from %s to %s", before.String(), after.String())
	}
	if got := s.Viewport().Zoom; math.Abs(got-mandelbrot.DefaultZoom*mandelbrot.ZoomStep) > 1e-12 {
		t.Errorf("Zoom = %g", got)
	}
	if frame := mustFrame(t, s); frame.Renders != 2 {
		t.Errorf("Renders = %d, want 2", frame.Renders)
	}
}

func TestOnPanMovesByInverseZoom(t *testing.T) {
	s := newTestSession(t)
	if err := s.OnPan(4, -2); err != nil {
		t.Fatalf("OnPan: %s", err)
	}
	v := s.Viewport()
	if v.OffsetX != -8 || v.OffsetY != 4 {
		t.Errorf("offset = (%g, %g), want (-8, 4)", v.OffsetX, v.OffsetY)
	}
}

func TestRejectedGesturesFreezeState(t *testing.T) {
	tests := []struct {
		name    string
		gesture func(s *Session) error
		wantErr error
	}{
		{"scroll without direction", func(s *Session) error { return s.OnZoom(5, 5, 0) }, mandelbrot.ErrDegenerateGesture},
		{"pan without movement", func(s *Session) error { return s.OnPan(0, 0) }, mandelbrot.ErrDegenerateGesture},
		{"infinite pan", func(s *Session) error { return s.OnPan(math.Inf(1), 0) }, mandelbrot.ErrInvalidViewport},
		{"zero pinch ratio", func(s *Session) error { return s.OnPinchZoom(5, 5, 0) }, mandelbrot.ErrInvalidViewport},
		{"negative pinch ratio", func(s *Session) error { return s.OnPinchZoom(5, 5, -2) }, mandelbrot.ErrInvalidViewport},
		{"nan pinch ratio", func(s *Session) error { return s.OnPinchZoom(5, 5, math.NaN()) }, mandelbrot.ErrInvalidViewport},
		{"pinch without scaling", func(s *Session) error { return s.OnPinchZoom(5, 5, 1) }, mandelbrot.ErrDegenerateGesture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			before := mustFrame(t, s)

			if err := tt.gesture(s); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}

			after := mustFrame(t, s)
			if after.Viewport != before.Viewport {
				t.Errorf("viewport changed from %s to %s", before.Viewport.String(), after.Viewport.String())
			}
			if after.Renders != before.Renders {
				t.Errorf("rejected gesture rendered")
			}
		})
	}
}

func TestZoomNeverReachesZero(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 200; i++ {
		_ = s.OnPinchZoom(3, 3, 0.01)
		_ = s.OnZoom(7, 9, -1)
		if z := s.Viewport().Zoom; z <= 0 {
			t.Fatalf("step %d: zoom %g", i, z)
		}
	}
	if z := s.Viewport().Zoom; z != mandelbrot.MinZoom {
		t.Errorf("zoom = %g, want clamp at %g", z, mandelbrot.MinZoom)
	}
}

func TestReset(t *testing.T) {
	s := newTestSession(t)
	_ = s.OnPan(3, 3)
	_ = s.OnZoom(1, 1, 1)
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %s", err)
	}
	if v := s.Viewport(); v != mandelbrot.DefaultViewport() {
		t.Errorf("Viewport after reset = %s", v.String())
	}
}

func TestFrameIsACopy(t *testing.T) {
	s := newTestSession(t)
	frame := mustFrame(t, s)
	for i := range frame.Pix {
		frame.Pix[i] = 7
	}
	if again := mustFrame(t, s); again.Pix[0] == 7 && again.Pix[1] == 7 && again.Pix[2] == 7 && again.Pix[3] == 7 {
		t.Errorf("changing a frame changed the session raster")
	}
}
