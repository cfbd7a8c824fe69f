package mandelbrot

import (
	"image"
	"image/color"
	"image/draw"
)

// RasterSurface is the pixel grid a render writes to. The renderer never reads it back.
type RasterSurface interface {
	SetPixel(x int, y int, c color.RGBA)
}

// ImageSurface is a RasterSurface backed by an in-memory RGBA image.
type ImageSurface struct {
	Image *image.RGBA
}

func NewImageSurface(width uint, height uint) *ImageSurface {
	return &ImageSurface{
		Image: image.NewRGBA(image.Rectangle{
			Min: image.Point{X: 0, Y: 0},
			Max: image.Point{X: int(width), Y: int(height)},
		}),
	}
}

// SetPixel is safe to call from several goroutines as long as they write different pixels.
func (s *ImageSurface) SetPixel(x int, y int, c color.RGBA) {
	s.Image.SetRGBA(x, y, c)
}

func (s *ImageSurface) Clear(background color.RGBA) {
	draw.Draw(s.Image, s.Image.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
}

func (s *ImageSurface) Width() uint {
	return uint(s.Image.Bounds().Dx())
}

func (s *ImageSurface) Height() uint {
	return uint(s.Image.Bounds().Dy())
}
