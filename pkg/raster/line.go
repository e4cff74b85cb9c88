package raster

// Pattern is a 32-bit stipple mask for lines. The mask is rotated left once per
// pixel and the pixel is plotted when the lowest bit is set.
type Pattern uint32

const (
	// Solid plots every pixel
	Solid Pattern = 0xFFFFFFFF
	// Dashed plots four pixels, then skips four
	Dashed Pattern = 0xF0F0F0F0
)

// PlotFunc receives one pixel coordinate
type PlotFunc func(x, y int)

// Line walks the pixels between (x1, y1) and (x2, y2) using Bresenham's
// algorithm, calling plot for every pixel whose pattern bit is set.
// Both endpoints are included.
func Line(x1, y1, x2, y2 int, pattern Pattern, plot PlotFunc) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	mask := uint32(pattern)
	err := dx - dy

	for {
		mask = mask<<1 | mask>>31
		if mask&1 == 1 {
			plot(x1, y1)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
