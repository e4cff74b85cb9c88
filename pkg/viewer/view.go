package viewer

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gocad/internal/config"
	"github.com/philipparndt/gocad/internal/hud"
	"github.com/philipparndt/gocad/pkg/raster"
	"github.com/philipparndt/gocad/pkg/sketch"
)

var _ sketch.Surface = (*raster.Canvas)(nil)

var (
	_ desktop.Mouseable = (*View)(nil)
	_ desktop.Hoverable = (*View)(nil)
	_ fyne.Draggable    = (*View)(nil)
)

// View is a fyne widget that runs the editor on a software canvas. Events
// are latched and consumed once per frame.
type View struct {
	widget.BaseWidget
	editor  *sketch.Editor
	canvas  *raster.Canvas
	image   *canvas.Image
	latch   Latch
	keys    config.Keys
	showHUD bool
	log     *slog.Logger
}

// NewView creates a view sized to the editor viewport
func NewView(editor *sketch.Editor, width, height int, keys config.Keys, showHUD bool, log *slog.Logger) *View {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	v := &View{
		editor:  editor,
		canvas:  raster.NewCanvas(width, height),
		keys:    keys,
		showHUD: showHUD,
		log:     log,
	}
	v.image = canvas.NewImageFromImage(v.canvas.Image())
	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScalePixels
	v.image.SetMinSize(fyne.NewSize(float32(width), float32(height)))

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer creates the renderer for the widget
func (v *View) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.image)
}

// Start runs frames at the given rate until the returned stop function is
// called. Frames run on the fyne main goroutine.
func (v *View) Start(fps int) (stop func()) {
	if fps < 1 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				fyne.Do(v.Frame)
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}

// Frame consumes the latched input, runs one editor frame and refreshes the
// image
func (v *View) Frame() {
	in, toggleHUD := v.latch.Take(v.keys)
	if toggleHUD {
		v.showHUD = !v.showHUD
	}

	v.editor.Frame(in, v.canvas)
	if v.showHUD {
		v.drawHUD()
	}
	v.image.Refresh()
}

func (v *View) drawHUD() {
	pal := v.editor.Palette()
	lines := hud.Lines(v.editor.Status(), v.keys)

	y := 6
	for _, line := range lines {
		v.canvas.DrawText(line, 6, y, pal.Stroke)
		y += v.canvas.LineHeight()
	}
}

// Apply applies a reloaded config. Only the palette and the key bindings
// change at runtime.
func (v *View) Apply(cfg config.Config) {
	v.editor.SetPalette(cfg.Palette.SketchPalette())
	v.keys = cfg.Keys
}

// Canvas returns the software canvas the editor draws on
func (v *View) Canvas() *raster.Canvas {
	return v.canvas
}

// TypedKey latches key presses. Install it with Canvas.SetOnTypedKey so keys
// arrive without the widget holding focus.
func (v *View) TypedKey(ev *fyne.KeyEvent) {
	v.latch.Key(string(ev.Name))
}

// MouseDown handles mouse button presses
func (v *View) MouseDown(ev *desktop.MouseEvent) {
	v.latch.Move(ev.Position.X, ev.Position.Y)
	if ev.Button == desktop.MouseButtonSecondary {
		v.latch.PressSecondary()
	}
}

// MouseUp handles mouse button releases
func (v *View) MouseUp(ev *desktop.MouseEvent) {
	v.latch.Move(ev.Position.X, ev.Position.Y)
	if ev.Button == desktop.MouseButtonPrimary {
		v.latch.ReleasePrimary()
	}
}

func (v *View) MouseIn(ev *desktop.MouseEvent) {
	v.latch.Move(ev.Position.X, ev.Position.Y)
}

func (v *View) MouseMoved(ev *desktop.MouseEvent) {
	v.latch.Move(ev.Position.X, ev.Position.Y)
}

func (v *View) MouseOut() {}

// Dragged keeps the pointer current while a button is held
func (v *View) Dragged(ev *fyne.DragEvent) {
	v.latch.Move(ev.Position.X, ev.Position.Y)
}

func (v *View) DragEnd() {}
