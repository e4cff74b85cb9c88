package sketch

import (
	"image/color"

	"github.com/philipparndt/gocad/pkg/geometry"
	"github.com/philipparndt/gocad/pkg/raster"
)

// Surface is the drawing target of a frame. Hosts implement it on top of
// their graphics library; coordinates are screen pixels.
type Surface interface {
	Clear(col color.RGBA)
	DrawPixel(x, y int, col color.RGBA)
	DrawLine(a, b geometry.Vector2, col color.RGBA, pattern raster.Pattern)
	DrawCircle(center geometry.Vector2, radius int, col color.RGBA)
	FillCircle(center geometry.Vector2, radius int, col color.RGBA)
	DrawRect(pos, size geometry.Vector2, col color.RGBA)
}

// Palette holds the colors of a frame
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Axis       color.RGBA
	Cursor     color.RGBA
	Stroke     color.RGBA
	Node       color.RGBA
}

// DefaultPalette returns the dark blue drafting palette
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0, 0, 64, 255},
		Grid:       color.RGBA{0, 0, 128, 255},
		Axis:       color.RGBA{192, 192, 192, 255},
		Cursor:     color.RGBA{128, 128, 128, 255},
		Stroke:     color.RGBA{255, 255, 255, 255},
		Node:       color.RGBA{255, 0, 0, 255},
	}
}
