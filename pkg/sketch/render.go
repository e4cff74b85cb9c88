package sketch

import (
	"github.com/philipparndt/gocad/pkg/geometry"
	"github.com/philipparndt/gocad/pkg/raster"
)

const (
	nodeRadius   = 2
	cursorRadius = 2
)

// Draw renders the shape geometry followed by its node markers
func (s *Shape) Draw(surface Surface, pal Palette) {
	s.Render(surface, pal)
	s.RenderNodes(surface, pal)
}

// Render draws the kind-specific geometry. Shapes with fewer than two nodes
// have nothing to draw.
func (s *Shape) Render(surface Surface, pal Palette) {
	if s.count < 2 {
		return
	}

	switch s.kind {
	case KindLine:
		surface.DrawLine(s.nodes[0], s.nodes[1], pal.Stroke, raster.Dashed)
		surface.DrawLine(s.nodes[0], s.nodes[1], pal.Stroke, raster.Solid)
	case KindCircle:
		surface.DrawLine(s.nodes[0], s.nodes[1], pal.Stroke, raster.Dashed)
		surface.DrawCircle(s.nodes[0], s.CircleRadius(), pal.Stroke)
	case KindRect:
		r := s.Bounds()
		surface.DrawRect(r.Pos, r.Size, pal.Stroke)
	case KindCurve:
		s.renderCurve(surface, pal)
	}
}

// renderCurve draws only the first guide while the control point is being
// placed, then both guides and the flattened curve.
func (s *Shape) renderCurve(surface Surface, pal Palette) {
	surface.DrawLine(s.nodes[0], s.nodes[1], pal.Stroke, raster.Dashed)
	if s.count < 3 {
		return
	}
	surface.DrawLine(s.nodes[1], s.nodes[2], pal.Stroke, raster.Dashed)

	points := geometry.SampleQuadratic(s.nodes[0], s.nodes[1], s.nodes[2], geometry.DefaultCurveStep)
	prev := s.nodes[0]
	for _, p := range points {
		surface.DrawLine(prev, p, pal.Stroke, raster.Solid)
		prev = p
	}
}

// RenderNodes draws a small filled marker on every placed node
func (s *Shape) RenderNodes(surface Surface, pal Palette) {
	for i := 0; i < s.count; i++ {
		surface.FillCircle(s.nodes[i], nodeRadius, pal.Node)
	}
}
