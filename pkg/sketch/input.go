package sketch

import "github.com/philipparndt/gocad/pkg/geometry"

// Input is the polled input of one frame. Edge fields are true only in the
// frame in which the transition happened.
type Input struct {
	Pointer          geometry.Vector2 // Raw pointer position in pixels
	PrimaryReleased  bool
	SecondaryPressed bool
	Begin            Kind // Start-shape key pressed this frame, KindNone if none
	Delete           bool
}

// BeginFirst returns the first kind whose start key is pressed, in the order
// of Kinds. pressed reports the key state for a kind.
func BeginFirst(pressed func(Kind) bool) Kind {
	for _, k := range Kinds {
		if pressed(k) {
			return k
		}
	}
	return KindNone
}
