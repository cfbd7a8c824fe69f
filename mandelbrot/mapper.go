package mandelbrot

import "fmt"

// MapPixelToPlane converts the (column, row) pixel of a width x height raster to the point of the
// complex plane it shows under viewport.
//
//   - Pixels are indexed from the top left, so the pixel is shifted by half the width and half the height
//     to put the origin of the raster in its center.
//   - Each axis is scaled by its own side length, so a non-square raster stretches the plane.
//   - The zoom multiplies the scale; the larger the zoom the smaller the visible part of the plane.
func MapPixelToPlane(pixelX uint, pixelY uint, viewport Viewport, width uint, height uint) (Point, error) {
	if pixelX >= width || pixelY >= height {
		return Point{}, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBoundsPixel, pixelX, pixelY, width, height)
	}
	if err := viewport.Verify(); err != nil {
		return Point{}, err
	}
	return mapToPlane(float64(pixelX), float64(pixelY), viewport, width, height), nil
}

// PlaneToPixel is the inverse of MapPixelToPlane. The result is continuous and may lie outside the raster.
func PlaneToPixel(p Point, viewport Viewport, width uint, height uint) (float64, float64) {
	w, h := float64(width), float64(height)
	x := (p.Real-viewport.OffsetX)*0.5*viewport.Zoom*w + w/2
	y := (p.Imaginary-viewport.OffsetY)*0.5*viewport.Zoom*h + h/2
	return x, y
}

// mapToPlane is the unchecked mapping. Cursor anchoring needs it for sub-pixel positions.
func mapToPlane(x float64, y float64, viewport Viewport, width uint, height uint) Point {
	w, h := float64(width), float64(height)
	scaleX := 0.5 * viewport.Zoom * w
	scaleY := 0.5 * viewport.Zoom * h
	return Point{
		Real:      (x-w/2)/scaleX + viewport.OffsetX,
		Imaginary: (y-h/2)/scaleY + viewport.OffsetY,
	}
}
