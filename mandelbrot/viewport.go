package mandelbrot

import (
	"fmt"
	"math"
)

const (
	DefaultZoom = 0.5

	// MinZoom and MaxZoom bound every zoom transition. Past MaxZoom neighbouring pixels map to the
	// same float64 and the raster degrades into blocks.
	MinZoom = 1e-3
	MaxZoom = 1e13

	// ZoomStep is the factor applied by a single wheel notch.
	ZoomStep = 1.1
)

// Viewport is the visible window onto the complex plane. Mutate it only through its methods, they
// reject any change that would leave the zoom non-positive or an offset non-finite.
type Viewport struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

func DefaultViewport() Viewport {
	return Viewport{Zoom: DefaultZoom}
}

func NewViewport(zoom float64, offsetX float64, offsetY float64) (Viewport, error) {
	v := Viewport{Zoom: zoom, OffsetX: offsetX, OffsetY: offsetY}
	if err := v.Verify(); err != nil {
		return Viewport{}, err
	}
	return v, nil
}

func (v Viewport) String() string {
	return fmt.Sprintf("{Viewport Zoom: %g OffsetX: %g OffsetY: %g}", v.Zoom, v.OffsetX, v.OffsetY)
}

func (v Viewport) Verify() error {
	if !isFinite(v.Zoom) || v.Zoom <= 0 {
		return fmt.Errorf("%w: zoom %g must be finite and positive", ErrInvalidViewport, v.Zoom)
	}
	if !isFinite(v.OffsetX) || !isFinite(v.OffsetY) {
		return fmt.Errorf("%w: offset (%g, %g) must be finite", ErrInvalidViewport, v.OffsetX, v.OffsetY)
	}
	return nil
}

// Pan moves the viewport by a pointer movement given in pixels. The movement is converted to plane
// units by the inverse of the current zoom.
func (v *Viewport) Pan(movementX float64, movementY float64) error {
	next := *v
	next.OffsetX -= movementX / v.Zoom
	next.OffsetY -= movementY / v.Zoom
	return v.commit(next)
}

// ZoomAt scales the zoom by factor while keeping the plane point under (cursorX, cursorY) fixed.
// The resulting zoom is clamped to [MinZoom, MaxZoom].
func (v *Viewport) ZoomAt(cursorX float64, cursorY float64, factor float64, width uint, height uint) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: zoom on an empty %dx%d raster", ErrDegenerateGesture, width, height)
	}
	if !isFinite(factor) || factor <= 0 {
		return fmt.Errorf("%w: zoom factor %g must be finite and positive", ErrInvalidViewport, factor)
	}
	if !isFinite(cursorX) || !isFinite(cursorY) {
		return fmt.Errorf("%w: cursor (%g, %g) must be finite", ErrDegenerateGesture, cursorX, cursorY)
	}

	// Solve the offset so the anchor maps to the same plane point under the new zoom
	anchor := mapToPlane(cursorX, cursorY, *v, width, height)
	next := Viewport{Zoom: clampZoom(v.Zoom * factor)}
	shifted := mapToPlane(cursorX, cursorY, next, width, height)
	next.OffsetX = anchor.Real - shifted.Real
	next.OffsetY = anchor.Imaginary - shifted.Imaginary
	return v.commit(next)
}

func (v *Viewport) commit(next Viewport) error {
	if err := next.Verify(); err != nil {
		return err
	}
	*v = next
	return nil
}

// WheelFactor converts the sign of a scroll delta into a zoom factor. A positive delta (scrolling
// down) multiplies the zoom by ZoomStep, a negative one divides it.
func WheelFactor(scrollDeltaSign int) (float64, error) {
	switch {
	case scrollDeltaSign > 0:
		return ZoomStep, nil
	case scrollDeltaSign < 0:
		return 1 / ZoomStep, nil
	default:
		return 0, fmt.Errorf("%w: scroll without direction", ErrDegenerateGesture)
	}
}

func clampZoom(zoom float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, zoom))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
