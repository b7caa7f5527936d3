package loopview

import "math"

// Canvas is the drawing surface a LoopView renders into. Angles are in
// degrees, zero along the positive x axis, increasing clockwise (y down).
//
// Save and Restore bracket transform changes; a Restore without a matching
// Save is a no-op.
type Canvas interface {
	Save()
	Restore()
	// Rotate rotates the current frame by degrees about (px, py).
	Rotate(degrees, px, py float64)
	DrawCircle(cx, cy, radius float64, p *Paint) error
	// DrawArc draws the arc of the ellipse inscribed in oval starting at
	// startAngle and sweeping sweepAngle degrees. With useCenter the arc is
	// closed through the oval centre (a wedge).
	DrawArc(oval Rect, startAngle, sweepAngle float64, useCenter bool, p *Paint) error
}

// pathBuilder is the path construction subset shared by gg.Context and
// recording.Recorder. Coordinates pass through the builder's transform.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// buildArc appends an elliptical arc to p and reports whether anything was
// added. A zero sweep or an empty oval adds nothing; a sweep of a full turn
// or more adds the closed ellipse.
func buildArc(p pathBuilder, oval Rect, startDeg, sweepDeg float64, useCenter bool) bool {
	rx, ry := oval.Width()/2, oval.Height()/2
	if sweepDeg == 0 || rx <= 0 || ry <= 0 || math.IsNaN(sweepDeg) {
		return false
	}

	full := math.Abs(sweepDeg) >= 360
	if full {
		useCenter = false
		sweepDeg = math.Copysign(360, sweepDeg)
	}

	c := oval.Center()
	at := func(a float64) (float64, float64) {
		sin, cos := math.Sincos(a)
		return c.X + rx*cos, c.Y + ry*sin
	}

	a0 := startDeg * math.Pi / 180
	total := sweepDeg * math.Pi / 180
	n := int(math.Ceil(math.Abs(total) / (math.Pi / 2)))
	step := total / float64(n)
	// Control distance for a cubic approximating a circular arc of angle step.
	k := 4.0 / 3.0 * math.Tan(step/4)

	x0, y0 := at(a0)
	if useCenter {
		p.MoveTo(c.X, c.Y)
		p.LineTo(x0, y0)
	} else {
		p.MoveTo(x0, y0)
	}

	for i := 0; i < n; i++ {
		a1 := a0 + float64(i)*step
		a2 := a1 + step
		s1, c1 := math.Sincos(a1)
		s2, c2 := math.Sincos(a2)
		x1, y1 := at(a1)
		x2, y2 := at(a2)
		p.CubicTo(
			x1-k*rx*s1, y1+k*ry*c1,
			x2+k*rx*s2, y2-k*ry*c2,
			x2, y2,
		)
	}

	if useCenter || full {
		p.ClosePath()
	}
	return true
}

// rotationOf returns the rotation angle in radians of the affine matrix with
// first column (a, d).
func rotationOf(a, d float64) float64 {
	return math.Atan2(d, a)
}
