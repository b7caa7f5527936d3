// Package giohost lays out a LoopView as a Gio widget.
//
// The view is rasterised by gg into an offscreen image that is painted with
// an ImageOp. The image is redrawn only when the view invalidates itself or
// the laid out size changes.
//
//	w := new(app.Window)
//	loop := giohost.New(loopview.New(), w)
//	...
//	case app.FrameEvent:
//	    gtx := app.NewContext(&ops, e)
//	    loop.Layout(gtx)
//	    e.Frame(gtx.Ops)
package giohost

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/gogpu/gg"

	"github.com/cndemo/loopview"
)

// Invalidator schedules a new frame. *app.Window satisfies it.
type Invalidator interface {
	Invalidate()
}

// Loop is a Gio widget and loopview.Host.
type Loop struct {
	view *loopview.LoopView
	win  Invalidator

	dc     *gg.Context
	size   image.Point
	op     paint.ImageOp
	dirty  bool
	frames int
}

var _ loopview.Host = (*Loop)(nil)

// New attaches itself as the host of view. win may be nil when the widget
// is redrawn every frame anyway.
func New(view *loopview.LoopView, win Invalidator) *Loop {
	l := &Loop{view: view, win: win, dirty: true}
	view.SetHost(l)
	return l
}

// View returns the hosted view.
func (l *Loop) View() *loopview.LoopView { return l.view }

// RequestLayout implements loopview.Host.
func (l *Loop) RequestLayout() { l.Invalidate() }

// Invalidate implements loopview.Host.
func (l *Loop) Invalidate() {
	l.dirty = true
	if l.win != nil {
		l.win.Invalidate()
	}
}

// Layout measures the view against the constraints and paints it.
func (l *Loop) Layout(gtx layout.Context) layout.Dimensions {
	cs := gtx.Constraints
	w, h := l.view.Measure(specFor(cs.Min.X, cs.Max.X), specFor(cs.Min.Y, cs.Max.Y))
	size := cs.Constrain(image.Pt(w, h))
	if size.X <= 0 || size.Y <= 0 {
		return layout.Dimensions{Size: size}
	}

	if err := l.frame(size); err != nil {
		loopview.Logger().Warn("giohost: draw failed", "err", err)
		return layout.Dimensions{Size: size}
	}

	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	l.op.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	return layout.Dimensions{Size: size}
}

// specFor maps a Gio constraint range to a measure spec.
func specFor(lo, hi int) loopview.MeasureSpec {
	if lo == hi {
		return loopview.ExactSpec(hi)
	}
	return loopview.AtMostSpec(hi)
}

// frame redraws the offscreen image for size if needed.
func (l *Loop) frame(size image.Point) error {
	if !l.dirty && size == l.size && l.dc != nil {
		return nil
	}
	if l.dc == nil || size != l.size {
		if l.dc != nil {
			_ = l.dc.Close()
		}
		l.dc = gg.NewContext(size.X, size.Y)
		l.size = size
	}

	l.dc.Clear()
	l.view.SizeChanged(size.X, size.Y)
	if err := l.view.Draw(loopview.NewContextCanvas(l.dc)); err != nil {
		return err
	}
	// A new ImageOp per frame: Gio caches uploads by image identity.
	l.op = paint.NewImageOp(l.dc.Image())
	l.dirty = false
	l.frames++
	loopview.Logger().Debug("giohost: frame", "n", l.frames, "width", size.X, "height", size.Y)
	return nil
}

// Close releases the offscreen context and detaches the view.
func (l *Loop) Close() error {
	l.view.SetHost(nil)
	if l.dc == nil {
		return nil
	}
	err := l.dc.Close()
	l.dc = nil
	return err
}
