package viewer

import (
	"log/slog"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/philipparndt/gocad/internal/config"
	"github.com/philipparndt/gocad/pkg/sketch"
)

// Options controls how the fyne editor window is run
type Options struct {
	ConfigPath string // Config file to hot reload; empty disables reload
	Watch      bool
	Logger     *slog.Logger
}

// Run opens a fyne window and runs the editor until the window is closed
func Run(cfg config.Config, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	pal := cfg.Palette.SketchPalette()
	editor := sketch.NewEditor(sketch.Options{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Grid:    cfg.Grid,
		Palette: &pal,
		Logger:  log,
	})

	a := fyneapp.New()
	w := a.NewWindow(cfg.Window.Title)

	view := NewView(editor, cfg.Window.Width, cfg.Window.Height, cfg.Keys, cfg.HUD, log)
	w.SetContent(view)
	w.Canvas().SetOnTypedKey(view.TypedKey)
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.SetFixedSize(true)

	if opts.Watch && opts.ConfigPath != "" {
		watch, err := config.Watch(opts.ConfigPath, log, func(cfg config.Config) {
			fyne.Do(func() { view.Apply(cfg) })
		})
		if err != nil {
			log.Warn("config hot reload disabled", "err", err)
		} else {
			defer watch.Close()
		}
	}

	stop := view.Start(cfg.Window.FPS)
	defer stop()

	log.Info("editor started",
		"host", "fyne", "width", cfg.Window.Width, "height", cfg.Window.Height, "grid", cfg.Grid)
	w.ShowAndRun()
	log.Info("editor closed", "shapes", len(editor.Shapes()))
	return nil
}
