package viewer

import (
	"sync"

	"github.com/philipparndt/gocad/internal/config"
	"github.com/philipparndt/gocad/pkg/geometry"
	"github.com/philipparndt/gocad/pkg/sketch"
)

// Latch collects fyne input events between two frames. Edges stay set until
// the next Take, so an event is seen by exactly one frame.
type Latch struct {
	mu        sync.Mutex
	pointer   geometry.Vector2
	primary   bool
	secondary bool
	pressed   map[string]bool
}

// Move records the latest pointer position
func (l *Latch) Move(x, y float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pointer = geometry.NewVector2(float64(x), float64(y))
}

// ReleasePrimary records a primary button release edge
func (l *Latch) ReleasePrimary() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.primary = true
}

// PressSecondary records a secondary button press edge
func (l *Latch) PressSecondary() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.secondary = true
}

// Key records a key press edge by key name ("L", "7", ...)
func (l *Latch) Key(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pressed == nil {
		l.pressed = make(map[string]bool)
	}
	l.pressed[name] = true
}

// Take returns the input for the next frame and resets all edges. The second
// result reports whether the HUD key was pressed.
func (l *Latch) Take(keys config.Keys) (sketch.Input, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	in := sketch.Input{
		Pointer:          l.pointer,
		PrimaryReleased:  l.primary,
		SecondaryPressed: l.secondary,
		Begin: sketch.BeginFirst(func(kind sketch.Kind) bool {
			return l.pressed[keys.Begin(kind)]
		}),
		Delete: l.pressed[keys.Delete],
	}
	toggleHUD := l.pressed[keys.HUD]

	l.primary = false
	l.secondary = false
	clear(l.pressed)

	return in, toggleHUD
}
