package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocad/internal/hud"
)

const (
	hudFontSize = 10
	hudPadding  = 6
	hudSpacing  = 4
)

// drawHUD draws the status and key help panel in the top-left corner
func (app *App) drawHUD() {
	lines := hud.Lines(app.Editor.Status(), app.Input.keys)

	// Size the background panel to the widest line
	var width int32
	for _, line := range lines {
		if w := rl.MeasureText(line, hudFontSize); w > width {
			width = w
		}
	}
	height := int32(len(lines))*(hudFontSize+hudSpacing) - hudSpacing

	pal := app.Editor.Palette()
	rl.DrawRectangle(4, 4, width+2*hudPadding, height+2*hudPadding, rl.NewColor(20, 20, 20, 200))
	rl.DrawRectangleLines(4, 4, width+2*hudPadding, height+2*hudPadding, toRL(pal.Axis))

	y := int32(4 + hudPadding)
	for _, line := range lines {
		rl.DrawText(line, 4+hudPadding, y, hudFontSize, toRL(pal.Stroke))
		y += hudFontSize + hudSpacing
	}
}
