package sketch

import (
	"image/color"

	"github.com/philipparndt/gocad/pkg/geometry"
	"github.com/philipparndt/gocad/pkg/raster"
)

type call struct {
	op      string
	a, b    geometry.Vector2
	radius  int
	pattern raster.Pattern
	col     color.RGBA
}

// recorder is a Surface that records every draw call
type recorder struct {
	calls  []call
	pixels int
}

func (r *recorder) Clear(col color.RGBA) {
	r.calls = append(r.calls, call{op: "clear", col: col})
}

func (r *recorder) DrawPixel(x, y int, col color.RGBA) {
	r.pixels++
}

func (r *recorder) DrawLine(a, b geometry.Vector2, col color.RGBA, pattern raster.Pattern) {
	r.calls = append(r.calls, call{op: "line", a: a, b: b, col: col, pattern: pattern})
}

func (r *recorder) DrawCircle(center geometry.Vector2, radius int, col color.RGBA) {
	r.calls = append(r.calls, call{op: "circle", a: center, radius: radius, col: col})
}

func (r *recorder) FillCircle(center geometry.Vector2, radius int, col color.RGBA) {
	r.calls = append(r.calls, call{op: "fill", a: center, radius: radius, col: col})
}

func (r *recorder) DrawRect(pos, size geometry.Vector2, col color.RGBA) {
	r.calls = append(r.calls, call{op: "rect", a: pos, b: size, col: col})
}

func (r *recorder) filter(op string) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *recorder) lines(pattern raster.Pattern) []call {
	var out []call
	for _, c := range r.filter("line") {
		if c.pattern == pattern {
			out = append(out, c)
		}
	}
	return out
}

func (r *recorder) reset() {
	r.calls = nil
	r.pixels = 0
}
