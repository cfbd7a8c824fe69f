package session

import (
	"fmt"
	"math"

	"InteractiveMandelbrot/mandelbrot"
)

// Touch is one finger on the surface, in pixel coordinates of the raster.
type Touch struct {
	ID int
	X  float64
	Y  float64
}

// TouchTracker turns raw touch lists into pan and pinch gestures. One finger pans, two or more pinch
// using the first two. The tracker keeps the baseline of the current gesture, which is dropped
// whenever the number of fingers changes so a pinch that ends in a single finger never jumps.
type TouchTracker struct {
	controller Controller
	fingers    int

	// single finger pan
	hasLast bool
	lastX   float64
	lastY   float64

	// two finger pinch, zero until recorded
	initialDistance float64
}

func NewTouchTracker(controller Controller) *TouchTracker {
	return &TouchTracker{
		controller: controller,
	}
}

// Start forgets every baseline. Call it when a new touch begins or all fingers are lifted.
func (t *TouchTracker) Start() {
	t.fingers = 0
	t.hasLast = false
	t.initialDistance = 0
}

// Move feeds the current fingers to the tracker. Moves that only record a baseline return
// ErrDegenerateGesture and change nothing.
func (t *TouchTracker) Move(touches []Touch) error {
	if len(touches) != t.fingers {
		t.Start()
		t.fingers = len(touches)
	}

	switch {
	case len(touches) == 0:
		return fmt.Errorf("%w: no touch points", mandelbrot.ErrDegenerateGesture)
	case len(touches) == 1:
		return t.pan(touches[0])
	default:
		return t.pinch(touches[0], touches[1])
	}
}

func (t *TouchTracker) pan(touch Touch) error {
	if !t.hasLast {
		t.lastX, t.lastY, t.hasLast = touch.X, touch.Y, true
		return fmt.Errorf("%w: pan baseline recorded", mandelbrot.ErrDegenerateGesture)
	}

	movementX := touch.X - t.lastX
	movementY := touch.Y - t.lastY
	t.lastX, t.lastY = touch.X, touch.Y
	return t.controller.OnPan(movementX, movementY)
}

// pinch applies the distance ratio since the previous move, so the product of all applied ratios
// equals the ratio against the distance recorded when the gesture began.
func (t *TouchTracker) pinch(finger1 Touch, finger2 Touch) error {
	distance := math.Hypot(finger1.X-finger2.X, finger1.Y-finger2.Y)
	if distance == 0 {
		return fmt.Errorf("%w: touch points coincide", mandelbrot.ErrDegenerateGesture)
	}
	if t.initialDistance == 0 {
		t.initialDistance = distance
		return fmt.Errorf("%w: pinch baseline recorded", mandelbrot.ErrDegenerateGesture)
	}

	// Fingers resting on the surface report the same distance every tick
	if distance == t.initialDistance {
		return fmt.Errorf("%w: pinch distance unchanged", mandelbrot.ErrDegenerateGesture)
	}

	ratio := distance / t.initialDistance
	midX := (finger1.X + finger2.X) / 2
	midY := (finger1.Y + finger2.Y) / 2
	if err := t.controller.OnPinchZoom(midX, midY, ratio); err != nil {
		return err
	}
	t.initialDistance = distance
	return nil
}
