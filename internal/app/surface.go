package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocad/pkg/geometry"
	"github.com/philipparndt/gocad/pkg/raster"
)

// surface draws editor frames with raylib. It must only be used between
// BeginDrawing and EndDrawing on the main thread.
type surface struct{}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (surface) Clear(col color.RGBA) {
	rl.ClearBackground(toRL(col))
}

func (surface) DrawPixel(x, y int, col color.RGBA) {
	rl.DrawPixel(int32(x), int32(y), toRL(col))
}

// DrawLine uses raylib for solid lines. Raylib has no stippled lines, so
// patterned lines are rasterized here pixel by pixel.
func (surface) DrawLine(a, b geometry.Vector2, col color.RGBA, pattern raster.Pattern) {
	x1, y1 := a.Ints()
	x2, y2 := b.Ints()
	c := toRL(col)

	if pattern == raster.Solid {
		rl.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2), c)
		return
	}
	raster.Line(x1, y1, x2, y2, pattern, func(x, y int) {
		rl.DrawPixel(int32(x), int32(y), c)
	})
}

func (surface) DrawCircle(center geometry.Vector2, radius int, col color.RGBA) {
	cx, cy := center.Ints()
	rl.DrawCircleLines(int32(cx), int32(cy), float32(radius), toRL(col))
}

func (surface) FillCircle(center geometry.Vector2, radius int, col color.RGBA) {
	cx, cy := center.Ints()
	rl.DrawCircle(int32(cx), int32(cy), float32(radius), toRL(col))
}

func (surface) DrawRect(pos, size geometry.Vector2, col color.RGBA) {
	x, y := pos.Ints()
	w, h := size.Ints()
	rl.DrawRectangleLines(int32(x), int32(y), int32(w), int32(h), toRL(col))
}
