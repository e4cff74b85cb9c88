package sketch

import (
	"testing"

	"github.com/philipparndt/gocad/pkg/geometry"
	"github.com/philipparndt/gocad/pkg/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor() *Editor {
	return NewEditor(Options{Width: 1280, Height: 720, Grid: 12})
}

func at(x, y float64) Input {
	return Input{Pointer: geometry.NewVector2(x, y)}
}

func begin(kind Kind, x, y float64) Input {
	in := at(x, y)
	in.Begin = kind
	return in
}

func release(x, y float64) Input {
	in := at(x, y)
	in.PrimaryReleased = true
	return in
}

func rightClick(x, y float64) Input {
	in := at(x, y)
	in.SecondaryPressed = true
	return in
}

func del(x, y float64) Input {
	in := at(x, y)
	in.Delete = true
	return in
}

// drawLine builds a complete line from (x1, y1) to (x2, y2)
func drawLine(e *Editor, x1, y1, x2, y2 float64) {
	e.Update(begin(KindLine, x1, y1))
	e.Update(at(x2, y2))
	e.Update(release(x2, y2))
	e.Update(release(x2, y2))
}

func TestBeginSeedsTwoCoincidentNodes(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			e := newTestEditor()
			e.Update(begin(kind, 30, 40))

			draft, ok := e.Draft()
			require.True(t, ok)
			assert.Equal(t, ModeConstructing, e.Mode())
			assert.Equal(t, 2, draft.Len())
			assert.Equal(t, geometry.NewVector2(24, 36), draft.Node(0))
			assert.Equal(t, draft.Node(0), draft.Node(1))

			sel, ok := e.Selected()
			require.True(t, ok)
			assert.Equal(t, Selection{Shape: Draft, Node: 1}, sel)
		})
	}
}

func TestBeginIgnoredWhileConstructing(t *testing.T) {
	e := newTestEditor()
	e.Update(begin(KindLine, 0, 0))
	e.Update(begin(KindCurve, 50, 50))

	draft, ok := e.Draft()
	require.True(t, ok)
	assert.Equal(t, KindLine, draft.Kind())
}

func TestDragFollowsSnappedPointer(t *testing.T) {
	e := newTestEditor()
	e.Update(begin(KindLine, 0, 0))
	e.Update(at(100, 50))

	draft, _ := e.Draft()
	assert.Equal(t, geometry.NewVector2(0, 0), draft.Node(0))
	assert.Equal(t, geometry.NewVector2(96, 48), draft.Node(1))
}

func TestReleaseFinalizesFullLine(t *testing.T) {
	e := newTestEditor()
	e.Update(begin(KindLine, 0, 0))
	e.Update(at(48, 24))

	// The draft already has its two nodes: this release finalizes it
	e.Update(release(48, 24))
	// First release appended nothing, so it completed the line
	assert.Equal(t, ModeIdle, e.Mode())
	_, ok := e.Selected()
	assert.False(t, ok)

	shapes := e.Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, KindLine, shapes[0].Kind())
	assert.Equal(t, 2, shapes[0].Len())
	assert.Equal(t, []geometry.Vector2{{X: 0, Y: 0}, {X: 48, Y: 24}}, shapes[0].Nodes())
}

func TestCurveGainsThirdNodeThenFinalizes(t *testing.T) {
	e := newTestEditor()
	e.Update(begin(KindCurve, 0, 0))
	e.Update(at(24, 48))

	e.Update(release(24, 48))
	draft, ok := e.Draft()
	require.True(t, ok, "curve is still under construction after the first release")
	assert.Equal(t, 3, draft.Len())

	sel, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, Selection{Shape: Draft, Node: 2}, sel)

	e.Update(at(48, 0))
	draft, _ = e.Draft()
	assert.Equal(t, geometry.NewVector2(48, 0), draft.Node(2))
	assert.Equal(t, geometry.NewVector2(24, 48), draft.Node(1))

	e.Update(release(48, 0))
	assert.Equal(t, ModeIdle, e.Mode())
	shapes := e.Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, 3, shapes[0].Len())
}

func TestReleaseWhileIdleClearsSelection(t *testing.T) {
	e := newTestEditor()
	drawLine(e, 0, 0, 48, 48)

	e.Update(rightClick(48, 48))
	_, ok := e.Selected()
	require.True(t, ok)

	e.Update(release(60, 60))
	_, ok = e.Selected()
	assert.False(t, ok)
	assert.Equal(t, geometry.NewVector2(60, 60), e.Shapes()[0].Node(1))
}

func TestSecondaryPressSelectsFirstHit(t *testing.T) {
	e := newTestEditor()
	drawLine(e, 0, 0, 48, 48)
	drawLine(e, 48, 48, 96, 0)

	e.Update(rightClick(50, 50))
	sel, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, Selection{Shape: 0, Node: 1}, sel, "first shape in collection order wins")

	e.Update(at(120, 120))
	shapes := e.Shapes()
	assert.Equal(t, geometry.NewVector2(120, 120), shapes[0].Node(1))
	assert.Equal(t, geometry.NewVector2(48, 48), shapes[1].Node(0))
}

func TestSecondaryPressMissAndWhileConstructing(t *testing.T) {
	e := newTestEditor()
	drawLine(e, 0, 0, 48, 48)

	e.Update(rightClick(200, 200))
	_, ok := e.Selected()
	assert.False(t, ok, "no hit leaves selection empty")

	e.Update(begin(KindRect, 300, 300))
	e.Update(rightClick(0, 0))
	sel, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, Draft, sel.Shape, "secondary press is ignored while constructing")
}

func TestDeleteAbortsConstruction(t *testing.T) {
	e := newTestEditor()
	e.Update(begin(KindCircle, 24, 24))
	e.Update(del(24, 24))

	assert.Equal(t, ModeIdle, e.Mode())
	_, ok := e.Draft()
	assert.False(t, ok)
	_, ok = e.Selected()
	assert.False(t, ok)
	assert.Empty(t, e.Shapes())
}

func TestDeleteExpiresSelectedShape(t *testing.T) {
	e := newTestEditor()
	drawLine(e, 0, 0, 48, 48)
	drawLine(e, 96, 96, 144, 96)

	e.Update(rightClick(96, 96))
	e.Update(del(96, 96))

	_, ok := e.Selected()
	assert.False(t, ok)
	shapes := e.Shapes()
	require.Len(t, shapes, 2, "removal waits for the sweep")
	assert.True(t, shapes[1].Expired())

	r := &recorder{}
	e.Sweep()
	e.Render(r)

	require.Len(t, e.Shapes(), 1)
	for _, c := range r.filter("fill") {
		assert.NotEqual(t, geometry.NewVector2(144, 96), c.a, "deleted shape is never drawn")
	}
}

func TestDeleteWithNothingIsNoop(t *testing.T) {
	e := newTestEditor()
	drawLine(e, 0, 0, 48, 48)

	e.Update(del(0, 0))
	assert.Len(t, e.Shapes(), 1)
	assert.False(t, e.Shapes()[0].Expired())
}

func TestSweepKeepsOrderAndRemapsSelection(t *testing.T) {
	e := newTestEditor()
	drawLine(e, 0, 0, 12, 0)
	drawLine(e, 0, 24, 12, 24)
	drawLine(e, 0, 48, 12, 48)

	e.Update(rightClick(0, 0))
	e.Update(del(0, 0))
	e.Update(rightClick(0, 48))

	sel, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, sel.Shape)

	assert.Equal(t, 1, e.Sweep())
	sel, ok = e.Selected()
	require.True(t, ok)
	assert.Equal(t, Selection{Shape: 1, Node: 0}, sel)

	shapes := e.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, geometry.NewVector2(0, 24), shapes[0].Node(0))
	assert.Equal(t, geometry.NewVector2(0, 48), shapes[1].Node(0))

	e.Update(at(60, 60))
	assert.Equal(t, geometry.NewVector2(60, 60), e.Shapes()[1].Node(0))
	assert.Equal(t, 0, e.Sweep())
}

func TestPickSkipsExpiredShapes(t *testing.T) {
	e := newTestEditor()
	drawLine(e, 0, 0, 48, 0)
	drawLine(e, 0, 0, 0, 48)

	e.Update(rightClick(0, 0))
	e.Update(del(0, 0))
	e.Update(rightClick(0, 0))

	sel, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, sel.Shape)
}

func TestRenderOrder(t *testing.T) {
	e := newTestEditor()
	drawLine(e, 0, 0, 48, 48)
	e.Update(begin(KindRect, 96, 96))
	e.Update(at(120, 108))

	r := &recorder{}
	e.Frame(at(120, 108), r)

	require.NotEmpty(t, r.calls)
	assert.Equal(t, "clear", r.calls[0].op)
	assert.Equal(t, call{op: "circle", a: geometry.NewVector2(120, 108), radius: 2, col: DefaultPalette().Cursor}, r.calls[1])
	assert.Equal(t, (1280/12+1)*(720/12), r.pixels)

	axes := r.calls[2:4]
	assert.Equal(t, geometry.NewVector2(636, 0), axes[0].a)
	assert.Equal(t, geometry.NewVector2(636, 720), axes[0].b)
	assert.Equal(t, geometry.NewVector2(0, 360), axes[1].a)
	assert.Equal(t, geometry.NewVector2(1280, 360), axes[1].b)
	assert.Equal(t, raster.Dashed, axes[0].pattern)

	rects := r.filter("rect")
	require.Len(t, rects, 1)
	assert.Equal(t, geometry.NewVector2(96, 96), rects[0].a)
	assert.Equal(t, geometry.NewVector2(24, 12), rects[0].b)

	// The draft and its markers come last
	last := r.calls[len(r.calls)-3:]
	assert.Equal(t, "rect", last[0].op)
	assert.Equal(t, "fill", last[1].op)
	assert.Equal(t, "fill", last[2].op)
}

func TestAxesFlooredToGrid(t *testing.T) {
	e := NewEditor(Options{Width: 1000, Height: 610, Grid: 12})
	x, y := e.Axes()
	assert.Equal(t, 492.0, x)
	assert.Equal(t, 300.0, y)
	assert.Equal(t, 12, e.Grid())
}

func TestDefaultsAndPalette(t *testing.T) {
	e := NewEditor(Options{Width: 100, Height: 100})
	assert.Equal(t, DefaultGridSize, e.Grid())
	assert.Equal(t, DefaultPalette(), e.Palette())

	pal := DefaultPalette()
	pal.Stroke = pal.Node
	e.SetPalette(pal)
	assert.Equal(t, pal, e.Palette())
}

func TestStatus(t *testing.T) {
	e := newTestEditor()
	drawLine(e, 0, 0, 48, 48)
	e.Update(begin(KindCurve, 13, 25))

	st := e.Status()
	assert.Equal(t, ModeConstructing, st.Mode)
	assert.Equal(t, KindCurve, st.DraftKind)
	assert.Equal(t, 2, st.DraftNodes)
	assert.Equal(t, 3, st.DraftMax)
	assert.Equal(t, 1, st.Shapes)
	assert.True(t, st.Selected)
	assert.Equal(t, geometry.NewVector2(12, 24), st.Cursor)
}

func TestBeginFirst(t *testing.T) {
	pressed := map[Kind]bool{KindRect: true, KindCurve: true}
	assert.Equal(t, KindRect, BeginFirst(func(k Kind) bool { return pressed[k] }))
	assert.Equal(t, KindNone, BeginFirst(func(Kind) bool { return false }))
}
