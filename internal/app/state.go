package app

import (
	"github.com/philipparndt/gocad/internal/config"
	"github.com/philipparndt/gocad/pkg/watcher"
)

// WindowState holds the fixed viewport settings of the session
type WindowState struct {
	width  int32
	height int32
	title  string
	fps    int32
	grid   int // Grid size the editor was built with; not reloadable
}

// InputState holds the active key bindings as raylib key codes
type InputState struct {
	keys      config.Keys
	beginKeys [4]int32 // Line, circle, rect, curve
	deleteKey int32
	hudKey    int32
}

// UIState holds overlay state
type UIState struct {
	showHUD bool
}

// ReloadState holds config hot reload state. Reloaded configs arrive on a
// watcher goroutine and are applied on the main thread at the next frame.
type ReloadState struct {
	configPath string
	watcher    *watcher.Watcher
	pending    chan config.Config
}
