package loopview

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// RecorderCanvas draws into a recording.Recorder, producing an inspectable
// command stream that can be replayed onto any registered recording backend.
type RecorderCanvas struct {
	rec   *recording.Recorder
	depth int
}

var _ Canvas = (*RecorderCanvas)(nil)

// NewRecorderCanvas wraps rec.
func NewRecorderCanvas(rec *recording.Recorder) *RecorderCanvas {
	return &RecorderCanvas{rec: rec}
}

// Recorder returns the wrapped recorder.
func (c *RecorderCanvas) Recorder() *recording.Recorder { return c.rec }

// Save implements Canvas.
func (c *RecorderCanvas) Save() {
	c.rec.Save()
	c.depth++
}

// Restore implements Canvas.
func (c *RecorderCanvas) Restore() {
	if c.depth == 0 {
		return
	}
	c.rec.Restore()
	c.depth--
}

// Rotate implements Canvas.
func (c *RecorderCanvas) Rotate(degrees, px, py float64) {
	c.rec.RotateAbout(degrees*math.Pi/180, px, py)
}

// DrawCircle implements Canvas.
func (c *RecorderCanvas) DrawCircle(cx, cy, radius float64, p *Paint) error {
	if radius <= 0 {
		return nil
	}
	c.rec.DrawCircle(cx, cy, radius)
	c.paint(p)
	return nil
}

// DrawArc implements Canvas. Circular ovals use the recorder's own arc
// builder; elliptical ones are flattened by buildArc.
func (c *RecorderCanvas) DrawArc(oval Rect, startAngle, sweepAngle float64, useCenter bool, p *Paint) error {
	if oval.Width() != oval.Height() {
		if buildArc(c.rec, oval, startAngle, sweepAngle, useCenter) {
			c.paint(p)
		}
		return nil
	}
	if c.arc(oval, startAngle, sweepAngle, useCenter) {
		c.paint(p)
	}
	return nil
}

// arc appends a circular arc through recording.Recorder.DrawArc. The
// recorder always sweeps clockwise, so a negative sweep is drawn from its
// far end.
func (c *RecorderCanvas) arc(oval Rect, startDeg, sweepDeg float64, useCenter bool) bool {
	r := oval.Width() / 2
	if sweepDeg == 0 || r <= 0 || math.IsNaN(sweepDeg) {
		return false
	}
	full := math.Abs(sweepDeg) >= 360
	if full {
		useCenter = false
		sweepDeg = 360
	}

	ctr := oval.Center()
	a1 := math.Min(startDeg, startDeg+sweepDeg) * math.Pi / 180
	a2 := a1 + math.Abs(sweepDeg)*math.Pi/180
	if useCenter {
		c.rec.MoveTo(ctr.X, ctr.Y)
		c.rec.LineTo(ctr.X+r*math.Cos(a1), ctr.Y+r*math.Sin(a1))
	}
	c.rec.DrawArc(ctr.X, ctr.Y, r, a1, a2)
	if useCenter || full {
		c.rec.ClosePath()
	}
	return true
}

func (c *RecorderCanvas) paint(p *Paint) {
	b := c.brush(p)
	if p.Style == Fill {
		c.rec.SetFillStyle(b)
		c.rec.Fill()
		return
	}
	if p.StrokeWidth <= 0 {
		c.rec.ClearPath()
		return
	}
	c.rec.SetStrokeStyle(b)
	c.rec.SetLineWidth(p.StrokeWidth)
	c.rec.SetLineCap(recordingCap(p.Cap))
	c.rec.Stroke()
}

func (c *RecorderCanvas) brush(p *Paint) recording.Brush {
	if p.Shader == nil {
		return recording.NewSolidBrush(p.Color.RGBA())
	}
	m := c.rec.GetTransform()
	cx, cy := m.TransformPoint(p.Shader.Center.X, p.Shader.Center.Y)
	b := recording.NewSweepGradientBrush(cx, cy, rotationOf(m.A, m.D))
	for i, col := range p.Shader.Colors {
		b.AddColorStop(p.Shader.Positions[i], col.RGBA())
	}
	return b
}

func recordingCap(cp Cap) recording.LineCap {
	switch cp {
	case RoundCap:
		return recording.LineCapRound
	case SquareCap:
		return recording.LineCapSquare
	default:
		return recording.LineCapButt
	}
}

// compile-time check that both path sinks satisfy pathBuilder.
var (
	_ pathBuilder = (*gg.Context)(nil)
	_ pathBuilder = (*recording.Recorder)(nil)
)
