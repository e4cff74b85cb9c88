package app

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocad/internal/config"
	"github.com/philipparndt/gocad/pkg/sketch"
)

// Options controls how the editor window is run
type Options struct {
	ConfigPath string // Config file to hot reload; empty disables reload
	Watch      bool
	Logger     *slog.Logger
}

type App struct {
	Editor  *sketch.Editor
	Window  WindowState
	Input   InputState
	UI      UIState
	Reload  ReloadState
	log     *slog.Logger
	surface surface
}

// New creates the application state without opening a window
func New(cfg config.Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	pal := cfg.Palette.SketchPalette()

	app := &App{
		Editor: sketch.NewEditor(sketch.Options{
			Width:   cfg.Window.Width,
			Height:  cfg.Window.Height,
			Grid:    cfg.Grid,
			Palette: &pal,
			Logger:  log,
		}),
		Window: WindowState{
			width:  int32(cfg.Window.Width),
			height: int32(cfg.Window.Height),
			title:  cfg.Window.Title,
			fps:    int32(cfg.Window.FPS),
			grid:   cfg.Grid,
		},
		UI:  UIState{showHUD: cfg.HUD},
		log: log,
	}
	app.bindKeys(cfg.Keys)
	return app
}

// Run opens the window and runs the editor until the window is closed
func Run(cfg config.Config, opts Options) error {
	app := New(cfg, opts.Logger)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(app.Window.width, app.Window.height, app.Window.title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to open %dx%d window", app.Window.width, app.Window.height)
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(app.Window.fps)

	if opts.Watch && opts.ConfigPath != "" {
		if err := app.watchConfig(opts.ConfigPath); err != nil {
			app.log.Warn("config hot reload disabled", "err", err)
		} else {
			defer app.Reload.watcher.Close()
		}
	}

	app.log.Info("editor started",
		"width", app.Window.width, "height", app.Window.height, "grid", app.Window.grid)

	// Main loop
	for !rl.WindowShouldClose() {
		app.applyReload()

		in := app.handleInput()

		rl.BeginDrawing()
		app.Editor.Frame(in, app.surface)
		if app.UI.showHUD {
			app.drawHUD()
		}
		rl.EndDrawing()
	}

	app.log.Info("editor closed", "shapes", len(app.Editor.Shapes()))
	return nil
}

// watchConfig starts hot reloading the config file
func (app *App) watchConfig(path string) error {
	app.Reload.configPath = path
	app.Reload.pending = make(chan config.Config, 1)

	w, err := config.Watch(path, app.log, func(cfg config.Config) {
		// Keep only the newest config
		select {
		case <-app.Reload.pending:
		default:
		}
		app.Reload.pending <- cfg
	})
	if err != nil {
		return err
	}
	app.Reload.watcher = w
	return nil
}

// applyReload applies a reloaded config, if one is pending. Only the palette
// and the key bindings change at runtime.
func (app *App) applyReload() {
	if app.Reload.pending == nil {
		return
	}
	select {
	case cfg := <-app.Reload.pending:
		app.apply(cfg)
	default:
	}
}

func (app *App) apply(cfg config.Config) {
	app.Editor.SetPalette(cfg.Palette.SketchPalette())
	app.bindKeys(cfg.Keys)

	if cfg.Grid != app.Window.grid ||
		int32(cfg.Window.Width) != app.Window.width ||
		int32(cfg.Window.Height) != app.Window.height {
		app.log.Info("grid and window size changes apply on restart")
	}
}
