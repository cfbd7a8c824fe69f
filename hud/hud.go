// Package hud writes the status overlay of the viewer into a raster.
package hud

import (
	"image"
	"image/color"
	"image/draw"

	"InteractiveMandelbrot/session"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	margin     = 4
	lineHeight = 15
)

var (
	backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func NewPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// Lines describes frame, one entry per overlay line.
func Lines(frame session.Frame, printer *message.Printer) []string {
	return []string{
		printer.Sprintf("zoom %.6g  offset (%.8f, %.8f)", frame.Viewport.Zoom, frame.Viewport.OffsetX, frame.Viewport.OffsetY),
		printer.Sprintf("max iterations %d  renders %d", frame.MaxIterations, frame.Renders),
		printer.Sprintf("in set %d / %d px  in %s", frame.Stats.InSet, frame.Stats.Pixels, frame.Stats.Elapsed.String()),
		"wheel zoom  drag pan  pinch zoom  R reset  H hud  Esc quit",
	}
}

// Draw paints lines on a translucent box in the top left corner of img.
func Draw(img draw.Image, lines []string) {
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, line := range lines {
		if w := font.MeasureString(basicfont.Face7x13, line).Ceil(); w > width {
			width = w
		}
	}
	box := image.Rect(0, 0, width+2*margin, len(lines)*lineHeight+2*margin).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(backgroundColor), image.Point{}, draw.Over)

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(margin, margin+basicfont.Face7x13.Ascent+i*lineHeight)
		drawer.DrawString(line)
	}
}
