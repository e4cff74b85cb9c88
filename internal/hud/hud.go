// Package hud builds the optional text overlay shared by the raylib and fyne
// hosts.
package hud

import (
	"fmt"

	"github.com/philipparndt/gocad/internal/config"
	"github.com/philipparndt/gocad/pkg/sketch"
)

// Lines returns the overlay text, status first, then the key help
func Lines(st sketch.Status, keys config.Keys) []string {
	lines := []string{statusLine(st)}

	lines = append(lines,
		fmt.Sprintf("[%s] line  [%s] circle  [%s] rect  [%s] curve", keys.Line, keys.Circle, keys.Rect, keys.Curve),
		fmt.Sprintf("[%s] delete  [%s] hide help", keys.Delete, keys.HUD),
		"left release: place node  right click: pick node",
	)
	return lines
}

func statusLine(st sketch.Status) string {
	pos := fmt.Sprintf("(%d, %d)", int(st.Cursor.X), int(st.Cursor.Y))

	if st.Mode == sketch.ModeConstructing {
		return fmt.Sprintf("%s %s  %s %d/%d  shapes: %d",
			pos, st.Mode, st.DraftKind, st.DraftNodes, st.DraftMax, st.Shapes)
	}

	selected := ""
	if st.Selected {
		selected = "  dragging node"
	}
	return fmt.Sprintf("%s %s  shapes: %d%s", pos, st.Mode, st.Shapes, selected)
}
