package session

import (
	"errors"
	"math"
	"testing"

	"InteractiveMandelbrot/mandelbrot"
)

type call struct {
	kind string
	a    float64
	b    float64
	c    float64
}

// fakeController records every gesture it receives.
type fakeController struct {
	calls      []call
	frameCalls int
	frameErr   error
}

func (f *fakeController) OnZoom(cursorX float64, cursorY float64, scrollDeltaSign int) error {
	f.calls = append(f.calls, call{"zoom", cursorX, cursorY, float64(scrollDeltaSign)})
	return nil
}

func (f *fakeController) OnPan(movementX float64, movementY float64) error {
	f.calls = append(f.calls, call{"pan", movementX, movementY, 0})
	return nil
}

func (f *fakeController) OnPinchZoom(midX float64, midY float64, distanceRatio float64) error {
	f.calls = append(f.calls, call{"pinch", midX, midY, distanceRatio})
	return nil
}

func (f *fakeController) Reset() error {
	f.calls = append(f.calls, call{kind: "reset"})
	return nil
}

func (f *fakeController) Frame() (Frame, error) {
	f.frameCalls++
	if f.frameErr != nil {
		return Frame{}, f.frameErr
	}
	return Frame{Renders: uint(f.frameCalls)}, nil
}

func TestTouchTrackerPan(t *testing.T) {
	controller := &fakeController{}
	tracker := NewTouchTracker(controller)
	tracker.Start()

	if err := tracker.Move([]Touch{{ID: 1, X: 10, Y: 10}}); !errors.Is(err, mandelbrot.ErrDegenerateGesture) {
		t.Errorf("first move: got %v, want ErrDegenerateGesture", err)
	}
	if len(controller.calls) != 0 {
		t.Fatalf("baseline move reached the controller: %v", controller.calls)
	}

	if err := tracker.Move([]Touch{{ID: 1, X: 13, Y: 6}}); err != nil {
		t.Fatalf("second move: %s", err)
	}
	if err := tracker.Move([]Touch{{ID: 1, X: 14, Y: 6}}); err != nil {
		t.Fatalf("third move: %s", err)
	}

	want := []call{{"pan", 3, -4, 0}, {"pan", 1, 0, 0}}
	if len(controller.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", controller.calls, want)
	}
	for i := range want {
		if controller.calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, controller.calls[i], want[i])
		}
	}
}

func TestTouchTrackerPinch(t *testing.T) {
	controller := &fakeController{}
	tracker := NewTouchTracker(controller)

	if err := tracker.Move([]Touch{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 10, Y: 0}}); !errors.Is(err, mandelbrot.ErrDegenerateGesture) {
		t.Errorf("baseline: got %v, want ErrDegenerateGesture", err)
	}
	if err := tracker.Move([]Touch{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 20, Y: 0}}); err != nil {
		t.Fatalf("spread: %s", err)
	}
	if err := tracker.Move([]Touch{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 0, Y: 30}}); err != nil {
		t.Fatalf("rotate and spread: %s", err)
	}

	if len(controller.calls) != 2 {
		t.Fatalf("calls = %v", controller.calls)
	}
	if got := controller.calls[0]; got != (call{"pinch", 10, 0, 2}) {
		t.Errorf("first pinch = %v", got)
	}
	if got := controller.calls[1]; got != (call{"pinch", 0, 15, 1.5}) {
		t.Errorf("second pinch = %v", got)
	}

	// Ratios compose to the ratio against the distance the gesture began with
	total := controller.calls[0].c * controller.calls[1].c
	if math.Abs(total-3) > 1e-12 {
		t.Errorf("total ratio = %g, want 3", total)
	}
}

func TestTouchTrackerIgnoresDegenerateInput(t *testing.T) {
	controller := &fakeController{}
	tracker := NewTouchTracker(controller)

	if err := tracker.Move(nil); !errors.Is(err, mandelbrot.ErrDegenerateGesture) {
		t.Errorf("no touches: got %v", err)
	}
	_ = tracker.Move([]Touch{{ID: 1, X: 5, Y: 5}, {ID: 2, X: 9, Y: 5}})
	if err := tracker.Move([]Touch{{ID: 1, X: 5, Y: 5}, {ID: 2, X: 5, Y: 5}}); !errors.Is(err, mandelbrot.ErrDegenerateGesture) {
		t.Errorf("coinciding fingers: got %v", err)
	}
	if len(controller.calls) != 0 {
		t.Errorf("degenerate input reached the controller: %v", controller.calls)
	}
}

func TestTouchTrackerResetsWhenFingersChange(t *testing.T) {
	controller := &fakeController{}
	tracker := NewTouchTracker(controller)

	_ = tracker.Move([]Touch{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 10, Y: 0}})
	_ = tracker.Move([]Touch{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 20, Y: 0}})

	// Lifting one finger must not pan from a stale position
	if err := tracker.Move([]Touch{{ID: 1, X: 100, Y: 100}}); !errors.Is(err, mandelbrot.ErrDegenerateGesture) {
		t.Errorf("first single finger move: got %v", err)
	}
	if err := tracker.Move([]Touch{{ID: 1, X: 101, Y: 100}}); err != nil {
		t.Fatalf("pan: %s", err)
	}

	last := controller.calls[len(controller.calls)-1]
	if last != (call{"pan", 1, 0, 0}) {
		t.Errorf("last call = %v, want a one pixel pan", last)
	}

	// A new touch forgets the baseline too
	tracker.Start()
	if err := tracker.Move([]Touch{{ID: 3, X: 0, Y: 0}}); !errors.Is(err, mandelbrot.ErrDegenerateGesture) {
		t.Errorf("after Start: got %v", err)
	}
}

func TestTouchTrackerDrivesASession(t *testing.T) {
	s := newTestSession(t)
	tracker := NewTouchTracker(s)

	_ = tracker.Move([]Touch{{ID: 1, X: 10, Y: 10}, {ID: 2, X: 20, Y: 10}})
	if err := tracker.Move([]Touch{{ID: 1, X: 5, Y: 10}, {ID: 2, X: 25, Y: 10}}); err != nil {
		t.Fatalf("pinch: %s", err)
	}
	if z := s.Viewport().Zoom; math.Abs(z-2*mandelbrot.DefaultZoom) > 1e-12 {
		t.Errorf("zoom = %g, want %g", z, 2*mandelbrot.DefaultZoom)
	}
}

func TestRestingFingersDoNotRender(t *testing.T) {
	s := newTestSession(t)
	tracker := NewTouchTracker(s)
	resting := []Touch{{ID: 1, X: 10, Y: 10}, {ID: 2, X: 30, Y: 20}}

	_ = tracker.Move(resting)
	before := mustFrame(t, s)

	for i := 0; i < 60; i++ {
		if err := tracker.Move(resting); !errors.Is(err, mandelbrot.ErrDegenerateGesture) {
			t.Fatalf("tick %d: got %v, want ErrDegenerateGesture", i, err)
		}
	}

	after := mustFrame(t, s)
	if after.Renders != before.Renders {
		t.Errorf("resting fingers rendered %d times", after.Renders-before.Renders)
	}
	if after.Viewport != before.Viewport {
		t.Errorf("viewport moved to %s", after.Viewport.String())
	}

	// Spreading again after the pause still zooms
	if err := tracker.Move([]Touch{{ID: 1, X: 0, Y: 5}, {ID: 2, X: 40, Y: 25}}); err != nil {
		t.Fatalf("spread after rest: %s", err)
	}
	if got := mustFrame(t, s).Renders; got != before.Renders+1 {
		t.Errorf("Renders = %d, want %d", got, before.Renders+1)
	}
}
