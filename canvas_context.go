package loopview

import (
	"math"

	"github.com/gogpu/gg"
)

// ContextCanvas draws into a gg.Context.
//
// Shaders are evaluated in the frame they are drawn in, so a SweepGradient
// painted under a rotation rotates with the geometry.
//
// gg's Push and Pop cover the transform, clip and mask only. Save and Restore
// also carry the brush and stroke style, so drawing through a ContextCanvas
// leaves the caller's paint settings as it found them.
type ContextCanvas struct {
	dc    *gg.Context
	saved []paintState
}

// paintState is the part of the gg paint that ContextCanvas changes.
type paintState struct {
	brush  gg.Brush
	stroke gg.Stroke
}

var _ Canvas = (*ContextCanvas)(nil)

// NewContextCanvas wraps dc.
func NewContextCanvas(dc *gg.Context) *ContextCanvas {
	return &ContextCanvas{dc: dc}
}

// Context returns the wrapped gg context.
func (c *ContextCanvas) Context() *gg.Context { return c.dc }

// Save implements Canvas.
func (c *ContextCanvas) Save() {
	c.dc.Push()
	c.saved = append(c.saved, paintState{brush: c.dc.FillBrush(), stroke: c.dc.GetStroke()})
}

// Restore implements Canvas.
func (c *ContextCanvas) Restore() {
	if len(c.saved) == 0 {
		return
	}
	st := c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
	c.dc.Pop()
	c.dc.SetFillBrush(st.brush)
	c.dc.SetStroke(st.stroke)
}

// Rotate implements Canvas.
func (c *ContextCanvas) Rotate(degrees, px, py float64) {
	c.dc.RotateAbout(degrees*math.Pi/180, px, py)
}

// DrawCircle implements Canvas.
func (c *ContextCanvas) DrawCircle(cx, cy, radius float64, p *Paint) error {
	if radius <= 0 {
		return nil
	}
	c.dc.DrawCircle(cx, cy, radius)
	return c.paint(p)
}

// DrawArc implements Canvas. gg.Context.DrawArc maps only the centre through
// the current matrix, so the arc is flattened to cubics here and every point
// goes through MoveTo and CubicTo instead.
func (c *ContextCanvas) DrawArc(oval Rect, startAngle, sweepAngle float64, useCenter bool, p *Paint) error {
	if !buildArc(c.dc, oval, startAngle, sweepAngle, useCenter) {
		return nil
	}
	return c.paint(p)
}

// paint applies p to the current path and consumes it.
func (c *ContextCanvas) paint(p *Paint) error {
	c.dc.SetFillBrush(c.brush(p))
	if p.Style == Fill {
		return c.dc.Fill()
	}
	if p.StrokeWidth <= 0 {
		c.dc.ClearPath()
		return nil
	}
	c.dc.SetLineWidth(p.StrokeWidth)
	c.dc.SetLineCap(ggCap(p.Cap))
	return c.dc.Stroke()
}

func (c *ContextCanvas) brush(p *Paint) gg.Brush {
	if p.Shader == nil {
		return gg.Solid(p.Color.RGBA())
	}
	// gg evaluates brushes in device space; map the shader's frame there.
	m := c.dc.GetTransform()
	center := m.TransformPoint(gg.Pt(p.Shader.Center.X, p.Shader.Center.Y))
	return p.Shader.brush(center, rotationOf(m.A, m.D))
}

func ggCap(cp Cap) gg.LineCap {
	switch cp {
	case RoundCap:
		return gg.LineCapRound
	case SquareCap:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}
