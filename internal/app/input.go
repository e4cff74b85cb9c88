package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocad/internal/config"
	"github.com/philipparndt/gocad/pkg/geometry"
	"github.com/philipparndt/gocad/pkg/sketch"
)

// keyCode maps a validated key name to its raylib code. Raylib codes for
// letters and digits are their ASCII values.
func keyCode(name string) int32 {
	return int32(name[0])
}

// bindKeys converts key names to raylib codes
func (app *App) bindKeys(keys config.Keys) {
	app.Input.keys = keys
	for i, kind := range sketch.Kinds {
		app.Input.beginKeys[i] = keyCode(keys.Begin(kind))
	}
	app.Input.deleteKey = keyCode(keys.Delete)
	app.Input.hudKey = keyCode(keys.HUD)
}

// handleInput polls this frame's input and handles the HUD toggle
func (app *App) handleInput() sketch.Input {
	if rl.IsKeyPressed(app.Input.hudKey) {
		app.UI.showHUD = !app.UI.showHUD
	}

	return sketch.Input{
		Pointer:          geometry.NewVector2(float64(rl.GetMouseX()), float64(rl.GetMouseY())),
		PrimaryReleased:  rl.IsMouseButtonReleased(rl.MouseLeftButton),
		SecondaryPressed: rl.IsMouseButtonPressed(rl.MouseRightButton),
		Begin: sketch.BeginFirst(func(kind sketch.Kind) bool {
			return rl.IsKeyPressed(app.Input.beginKeys[kind-sketch.KindLine])
		}),
		Delete: rl.IsKeyPressed(app.Input.deleteKey),
	}
}
