package sketch

import "github.com/philipparndt/gocad/pkg/geometry"

// Status is a snapshot of the editor for display
type Status struct {
	Mode       Mode
	DraftKind  Kind
	DraftNodes int
	DraftMax   int
	Shapes     int
	Selected   bool
	Cursor     geometry.Vector2
}

// Status returns a snapshot of the editor state
func (e *Editor) Status() Status {
	st := Status{
		Mode:     e.Mode(),
		Shapes:   len(e.shapes),
		Selected: e.selected,
		Cursor:   e.cursor,
	}
	if e.draft != nil {
		st.DraftKind = e.draft.kind
		st.DraftNodes = e.draft.count
		st.DraftMax = e.draft.MaxNodes()
	}
	return st
}
