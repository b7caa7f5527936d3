package loopview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// ErrInvalidSize is returned by Render and Record for non-positive sizes.
var ErrInvalidSize = errors.New("loopview: invalid size")

// DesiredSize returns the unconstrained preferred size: the outer diameter
// 2*(innerRadius+outerWidth) plus padding on each axis.
func (v *LoopView) DesiredSize() (width, height int) {
	d := 2 * (v.cfg.InnerRadius + v.cfg.OuterWidth)
	return d + v.padding.Horizontal(), d + v.padding.Vertical()
}

// Measure resolves the preferred size against the host's constraints. The
// two axes are resolved independently.
func (v *LoopView) Measure(widthSpec, heightSpec MeasureSpec) (width, height int) {
	dw, dh := v.DesiredSize()
	width = ResolveSize(widthSpec, dw)
	height = ResolveSize(heightSpec, dh)
	Logger().Debug("loopview: measure",
		"widthSpec", widthSpec, "heightSpec", heightSpec,
		"width", width, "height", height)
	return width, height
}

// SizeChanged tells the view its final size. The gradient is rebuilt when
// the size differs from the previous one.
func (v *LoopView) SizeChanged(width, height int) {
	width, height = clampMin(width, 0), clampMin(height, 0)
	if v.sized && width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.sized = true
	v.rebuildGradient()
}

// Draw renders the view into c: the canvas is rotated -90 degrees about the
// content centre so the arc starts at twelve o'clock, the inner circle is
// filled if enabled and the arc is stroked with the sweep gradient. The
// rotation is undone before Draw returns, on every path.
//
// Draw does nothing until the first SizeChanged. It writes the same output
// for the same state.
func (v *LoopView) Draw(c Canvas) error {
	if !v.sized {
		return nil
	}

	center := v.contentCenter()
	c.Save()
	defer c.Restore()
	c.Rotate(-90, center.X, center.Y)

	if v.cfg.ShowInnerCircle {
		inner := &Paint{Style: Fill, Color: v.cfg.InnerColor}
		if err := c.DrawCircle(center.X, center.Y, float64(v.cfg.InnerRadius+1), inner); err != nil {
			return fmt.Errorf("loopview: draw inner circle: %w", err)
		}
	}

	outer := &Paint{
		Style:       Stroke,
		StrokeWidth: float64(v.cfg.OuterWidth),
		Cap:         RoundCap,
		Shader:      v.gradient,
	}
	if err := c.DrawArc(v.outerBounds(), 0, float64(v.cfg.Angle), false, outer); err != nil {
		return fmt.Errorf("loopview: draw arc: %w", err)
	}
	return nil
}

// Render draws v at width x height into a new gg context with a
// transparent background. It calls SizeChanged, so the view keeps the size.
// The caller owns the returned context and should Close it.
func Render(v *LoopView, width, height int, opts ...gg.ContextOption) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}
	dc := gg.NewContext(width, height, opts...)
	v.SizeChanged(width, height)
	if err := v.Draw(NewContextCanvas(dc)); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// Record draws v at width x height into a recording. The recording can be
// inspected or replayed onto any registered recording backend.
func Record(v *LoopView, width, height int) (*recording.Recording, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}
	rec := recording.NewRecorder(width, height)
	v.SizeChanged(width, height)
	if err := v.Draw(NewRecorderCanvas(rec)); err != nil {
		return nil, err
	}
	return rec.FinishRecording(), nil
}
