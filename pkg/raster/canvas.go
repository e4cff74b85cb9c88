package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/philipparndt/gocad/pkg/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is a software drawing surface backed by an RGBA image.
// Pixels outside the image bounds are silently clipped.
type Canvas struct {
	img  *image.RGBA
	face font.Face
}

// NewCanvas creates a canvas of the given pixel size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
}

// Image returns the backing image. The canvas keeps drawing into it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Clear fills the whole canvas with one color
func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawPixel sets a single pixel
func (c *Canvas) DrawPixel(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// DrawLine draws a line between two points using a stipple pattern
func (c *Canvas) DrawLine(a, b geometry.Vector2, col color.RGBA, pattern Pattern) {
	x1, y1 := a.Ints()
	x2, y2 := b.Ints()
	Line(x1, y1, x2, y2, pattern, c.plotter(col))
}

// DrawCircle draws a circle outline
func (c *Canvas) DrawCircle(center geometry.Vector2, radius int, col color.RGBA) {
	cx, cy := center.Ints()
	Circle(cx, cy, radius, c.plotter(col))
}

// FillCircle draws a filled circle
func (c *Canvas) FillCircle(center geometry.Vector2, radius int, col color.RGBA) {
	cx, cy := center.Ints()
	FillCircle(cx, cy, radius, c.plotter(col))
}

// DrawRect draws a rectangle outline from pos spanning size
func (c *Canvas) DrawRect(pos, size geometry.Vector2, col color.RGBA) {
	x, y := pos.Ints()
	w, h := size.Ints()
	plot := c.plotter(col)
	Line(x, y, x+w, y, Solid, plot)
	Line(x+w, y, x+w, y+h, Solid, plot)
	Line(x+w, y+h, x, y+h, Solid, plot)
	Line(x, y+h, x, y, Solid, plot)
}

// DrawText draws a line of text with its top-left corner at (x, y)
func (c *Canvas) DrawText(text string, x, y int, col color.RGBA) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(x, y+c.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// LineHeight returns the distance between two text lines in pixels
func (c *Canvas) LineHeight() int {
	return c.face.Metrics().Height.Ceil()
}

func (c *Canvas) plotter(col color.RGBA) PlotFunc {
	return func(x, y int) {
		c.DrawPixel(x, y, col)
	}
}
