package sketch

import (
	"log/slog"
	"slices"

	"github.com/philipparndt/gocad/pkg/geometry"
	"github.com/philipparndt/gocad/pkg/raster"
)

// Draft is the Selection.Shape value addressing the shape under construction
const Draft = -1

// DefaultGridSize is the grid cell size in pixels
const DefaultGridSize = 12

// Mode is the editor state
type Mode int

const (
	ModeIdle Mode = iota
	ModeConstructing
)

func (m Mode) String() string {
	if m == ModeConstructing {
		return "constructing"
	}
	return "idle"
}

// Selection addresses one node: a shape index (or Draft) and a node index
type Selection struct {
	Shape int
	Node  int
}

// Options configures a new editor
type Options struct {
	Width   int // Viewport width in pixels
	Height  int // Viewport height in pixels
	Grid    int // Grid cell size in pixels; values below 1 use DefaultGridSize
	Palette *Palette
	Logger  *slog.Logger
}

// Editor is the shape editing state machine. It owns the completed shapes and
// the draft shape, and it is driven one frame at a time from a single
// goroutine.
type Editor struct {
	width, height int
	grid          int
	axisX, axisY  float64
	palette       Palette
	log           *slog.Logger

	shapes   []Shape
	draft    *Shape
	sel      Selection
	selected bool
	cursor   geometry.Vector2
}

// NewEditor creates an idle editor for a viewport
func NewEditor(opts Options) *Editor {
	grid := opts.Grid
	if grid < 1 {
		grid = DefaultGridSize
	}
	pal := DefaultPalette()
	if opts.Palette != nil {
		pal = *opts.Palette
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	halfW := opts.Width / 2
	halfH := opts.Height / 2

	return &Editor{
		width:   opts.Width,
		height:  opts.Height,
		grid:    grid,
		axisX:   float64(halfW - halfW%grid),
		axisY:   float64(halfH - halfH%grid),
		palette: pal,
		log:     log,
	}
}

// Frame runs one complete frame: input handling, sweep and render
func (e *Editor) Frame(in Input, surface Surface) {
	e.Update(in)
	e.Sweep()
	e.Render(surface)
}

// Update applies one frame of input to the editor state
func (e *Editor) Update(in Input) {
	e.cursor = geometry.Snap(in.Pointer, e.grid)

	if in.Begin != KindNone && e.draft == nil {
		e.begin(in.Begin)
	}

	if in.SecondaryPressed && e.draft == nil {
		e.pick()
	}

	if in.Delete {
		e.remove()
	}

	if e.selected {
		e.shapeAt(e.sel.Shape).SetNode(e.sel.Node, e.cursor)
	}

	if in.PrimaryReleased {
		e.release()
	}
}

// begin starts a draft seeded with two coincident nodes and selects the second
func (e *Editor) begin(kind Kind) {
	if kind.MaxNodes() < 2 {
		return
	}
	draft := NewShape(kind)
	draft.AppendNode(e.cursor)
	last, _ := draft.AppendNode(e.cursor)

	e.draft = &draft
	e.selectNode(Draft, last)
	e.log.Debug("shape started", "kind", kind, "at", e.cursor)
}

// pick selects the first node of a completed shape under the cursor
func (e *Editor) pick() {
	for i := range e.shapes {
		if e.shapes[i].expired {
			continue
		}
		if n, ok := e.shapes[i].HitTest(e.cursor); ok {
			e.selectNode(i, n)
			e.log.Debug("node selected", "shape", i, "node", n)
			return
		}
	}
}

// remove aborts construction, or expires the shape of the selected node
func (e *Editor) remove() {
	if e.draft != nil {
		e.log.Debug("construction aborted", "kind", e.draft.kind)
		e.draft = nil
		e.clearSelection()
		return
	}
	if !e.selected {
		return
	}
	e.shapes[e.sel.Shape].Expire()
	e.log.Debug("shape deleted", "shape", e.sel.Shape, "kind", e.shapes[e.sel.Shape].kind)
	e.clearSelection()
}

// release extends the draft by one node, or finalizes it once it is full
func (e *Editor) release() {
	if e.draft == nil {
		e.clearSelection()
		return
	}

	if n, ok := e.draft.AppendNode(e.cursor); ok {
		e.selectNode(Draft, n)
		return
	}

	e.shapes = append(e.shapes, *e.draft)
	e.log.Debug("shape finalized", "kind", e.draft.kind, "shapes", len(e.shapes))
	e.draft = nil
	e.clearSelection()
}

// Sweep removes expired shapes from the collection, keeping the order of the
// survivors and the selection pointing at the same shape. It returns the
// number of removed shapes.
func (e *Editor) Sweep() int {
	kept := e.shapes[:0]
	removed := 0
	for i := range e.shapes {
		if e.shapes[i].expired {
			if e.selected && e.sel.Shape == i {
				e.clearSelection()
			}
			removed++
			continue
		}
		if e.selected && e.sel.Shape == i {
			e.sel.Shape = len(kept)
		}
		kept = append(kept, e.shapes[i])
	}
	e.shapes = kept

	if removed > 0 {
		e.log.Debug("expired shapes removed", "count", removed, "shapes", len(e.shapes))
	}
	return removed
}

// Render draws the whole frame: background, cursor, grid, axes, completed
// shapes and the draft shape.
func (e *Editor) Render(surface Surface) {
	pal := e.palette

	surface.Clear(pal.Background)
	surface.DrawCircle(e.cursor, cursorRadius, pal.Cursor)

	for x := 0; x < e.width; x += e.grid {
		for y := 0; y < e.height; y += e.grid {
			surface.DrawPixel(x, y, pal.Grid)
		}
	}

	w, h := float64(e.width), float64(e.height)
	surface.DrawLine(geometry.NewVector2(e.axisX, 0), geometry.NewVector2(e.axisX, h), pal.Axis, raster.Dashed)
	surface.DrawLine(geometry.NewVector2(0, e.axisY), geometry.NewVector2(w, e.axisY), pal.Axis, raster.Dashed)

	for i := range e.shapes {
		if e.shapes[i].expired {
			continue
		}
		e.shapes[i].Draw(surface, pal)
	}

	if e.draft != nil {
		e.draft.Draw(surface, pal)
	}
}

func (e *Editor) shapeAt(idx int) *Shape {
	if idx == Draft {
		return e.draft
	}
	return &e.shapes[idx]
}

func (e *Editor) selectNode(shape, node int) {
	e.sel = Selection{Shape: shape, Node: node}
	e.selected = true
}

func (e *Editor) clearSelection() {
	e.sel = Selection{}
	e.selected = false
}

// Mode returns the current editor state
func (e *Editor) Mode() Mode {
	if e.draft != nil {
		return ModeConstructing
	}
	return ModeIdle
}

// Shapes returns a copy of the completed shapes in insertion order
func (e *Editor) Shapes() []Shape {
	return slices.Clone(e.shapes)
}

// Draft returns a copy of the shape under construction
func (e *Editor) Draft() (Shape, bool) {
	if e.draft == nil {
		return Shape{}, false
	}
	return *e.draft, true
}

// Selected returns the selected node, if any
func (e *Editor) Selected() (Selection, bool) {
	return e.sel, e.selected
}

// Cursor returns the grid-snapped pointer position of the last update
func (e *Editor) Cursor() geometry.Vector2 {
	return e.cursor
}

// Grid returns the grid cell size
func (e *Editor) Grid() int {
	return e.grid
}

// Axes returns the x of the vertical axis and the y of the horizontal axis
func (e *Editor) Axes() (float64, float64) {
	return e.axisX, e.axisY
}

// Palette returns the active colors
func (e *Editor) Palette() Palette {
	return e.palette
}

// SetPalette replaces the colors used from the next render on
func (e *Editor) SetPalette(pal Palette) {
	e.palette = pal
}
