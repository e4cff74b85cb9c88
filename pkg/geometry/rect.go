package geometry

// Rect is an axis-aligned rectangle with a non-negative size
type Rect struct {
	Pos  Vector2 // Minimum (top-left) corner
	Size Vector2
}

// RectFromCorners builds a rectangle from two arbitrary opposite corners.
// The result always starts at the component-wise minimum corner, so the
// corner order does not matter.
func RectFromCorners(a, b Vector2) Rect {
	lo := a.Min(b)
	hi := a.Max(b)
	return Rect{
		Pos:  lo,
		Size: hi.Sub(lo),
	}
}

// Max returns the bottom-right corner
func (r Rect) Max() Vector2 {
	return r.Pos.Add(r.Size)
}
