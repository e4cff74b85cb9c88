package geometry

// SnapCoord floors a coordinate to the grid: p - (p mod grid).
// The remainder is Go's integer remainder, so negative values move toward zero.
// A grid size below 1 leaves the truncated coordinate unchanged.
func SnapCoord(p float64, grid int) float64 {
	i := int(p)
	if grid < 1 {
		return float64(i)
	}
	return float64(i - i%grid)
}

// Snap snaps both components of a point to the grid
func Snap(p Vector2, grid int) Vector2 {
	return Vector2{
		X: SnapCoord(p.X, grid),
		Y: SnapCoord(p.Y, grid),
	}
}
