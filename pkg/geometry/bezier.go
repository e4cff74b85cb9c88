package geometry

import "math"

// DefaultCurveStep is the parameter step used to flatten curves for drawing
const DefaultCurveStep = 0.01

// QuadraticBezier evaluates the quadratic Bézier curve through start, control
// and end at parameter t:
//
//	B(t) = (1-t)² P0 + 2(1-t)t P1 + t² P2
func QuadraticBezier(p0, p1, p2 Vector2, t float64) Vector2 {
	u := 1 - t
	return p0.Mul(u * u).Add(p1.Mul(2 * u * t)).Add(p2.Mul(t * t))
}

// SampleQuadratic flattens a quadratic Bézier curve into a polyline by
// sampling t over [0, 1] with the given step. Both endpoints are included, so
// a step of 0.01 yields 101 samples. The parameter is derived from an integer
// counter to avoid accumulating floating point error.
func SampleQuadratic(p0, p1, p2 Vector2, step float64) []Vector2 {
	if step <= 0 || step > 1 {
		step = DefaultCurveStep
	}
	n := int(math.Round(1 / step))
	points := make([]Vector2, 0, n+1)
	for i := 0; i <= n; i++ {
		t := math.Min(float64(i)*step, 1)
		points = append(points, QuadraticBezier(p0, p1, p2, t))
	}
	return points
}
