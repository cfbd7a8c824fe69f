package mandelbrot

import "errors"

var (
	// ErrInvalidViewport is returned when a zoom would become non-positive or an offset non-finite.
	// The viewport that produced it is left untouched.
	ErrInvalidViewport = errors.New("invalid viewport")

	// ErrOutOfBoundsPixel means a caller asked for a pixel outside the raster.
	ErrOutOfBoundsPixel = errors.New("pixel out of bounds")

	// ErrDegenerateGesture is returned for input that carries no usable motion, such as a pinch
	// without a baseline distance or a scroll with no direction.
	ErrDegenerateGesture = errors.New("degenerate gesture")
)
