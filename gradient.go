package loopview

import "github.com/gogpu/gg"

// Point is a position in view coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in view coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// SweepGradient is an angular shader centred on Center. Angle zero is the
// positive x axis of the coordinate frame the shader is drawn in, and
// positions run clockwise (y down) from 0 to 1 over a full turn.
//
// The loop uses three stops: the top color at both ends and the bottom
// color half way round, so the ring is seamless.
type SweepGradient struct {
	Center    Point
	Colors    [3]Color
	Positions [3]float64
}

// NewLoopGradient returns the [top, bottom, top] gradient at stops [0, 0.5, 1].
func NewLoopGradient(center Point, top, bottom Color) *SweepGradient {
	return &SweepGradient{
		Center:    center,
		Colors:    [3]Color{top, bottom, top},
		Positions: [3]float64{0, 0.5, 1},
	}
}

// brush converts g to a gg brush. center is g.Center already mapped to device
// space and start is the device-space angle of the shader's zero direction.
func (g *SweepGradient) brush(center gg.Point, start float64) *gg.SweepGradientBrush {
	b := gg.NewSweepGradientBrush(center.X, center.Y, start)
	for i, c := range g.Colors {
		b.AddColorStop(g.Positions[i], c.RGBA())
	}
	return b
}
