package raster

// Circle walks the outline of a circle with the midpoint algorithm.
// A zero radius plots the center pixel; a negative radius plots nothing.
// Pixels on octant boundaries may be reported more than once.
func Circle(cx, cy, radius int, plot PlotFunc) {
	if radius < 0 {
		return
	}
	if radius == 0 {
		plot(cx, cy)
		return
	}

	x, y := 0, radius
	d := 3 - 2*radius
	for y >= x {
		plot(cx+x, cy-y)
		plot(cx+y, cy-x)
		plot(cx+y, cy+x)
		plot(cx+x, cy+y)
		plot(cx-x, cy+y)
		plot(cx-y, cy+x)
		plot(cx-y, cy-x)
		plot(cx-x, cy-y)

		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}

// FillCircle covers a filled circle with horizontal spans
func FillCircle(cx, cy, radius int, plot PlotFunc) {
	if radius < 0 {
		return
	}
	if radius == 0 {
		plot(cx, cy)
		return
	}

	span := func(x1, x2, y int) {
		for x := x1; x <= x2; x++ {
			plot(x, y)
		}
	}

	x, y := 0, radius
	d := 3 - 2*radius
	for y >= x {
		span(cx-x, cx+x, cy-y)
		span(cx-y, cx+y, cy-x)
		span(cx-x, cx+x, cy+y)
		span(cx-y, cx+y, cy+x)

		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}
