// Package fynehost wraps a LoopView as a Fyne widget.
//
// The widget renders through a canvas.Raster: Fyne asks for an image at the
// object's pixel size and the view draws it with gg.
//
// Fyne generates raster images on its draw goroutine while callbacks run on
// the event goroutine, and a LoopView is not safe for concurrent use. Change
// the view through Loop.Update, which holds the lock the draw path takes and
// refreshes the widget once afterwards:
//
//	l.Update(func(v *loopview.LoopView) {
//	    v.SetAngle(270)
//	    v.SetColors(loopview.Red, loopview.Blue)
//	})
package fynehost

import (
	"image"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"github.com/cndemo/loopview"
)

// Loop is a Fyne widget hosting a LoopView.
type Loop struct {
	widget.BaseWidget

	mu   sync.Mutex // guards view
	view *loopview.LoopView

	updating atomic.Bool
	pending  atomic.Bool
}

var _ loopview.Host = (*Loop)(nil)

// New wraps view and becomes its host.
func New(view *loopview.LoopView) *Loop {
	l := &Loop{view: view}
	l.ExtendBaseWidget(l)
	view.SetHost(l)
	return l
}

// View returns the hosted view. Reads and writes from callbacks must go
// through Update once the widget is shown.
func (l *Loop) View() *loopview.LoopView { return l.view }

// Update calls fn with the view locked against the draw goroutine, then
// refreshes the widget if fn changed anything visible.
func (l *Loop) Update(fn func(v *loopview.LoopView)) {
	l.mu.Lock()
	l.updating.Store(true)
	fn(l.view)
	l.updating.Store(false)
	l.mu.Unlock()

	if l.pending.Swap(false) {
		l.Refresh()
	}
}

// CreateRenderer implements fyne.Widget.
func (l *Loop) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRaster(l.draw))
}

// MinSize returns the view's unconstrained size in canvas units.
func (l *Loop) MinSize() fyne.Size {
	l.mu.Lock()
	w, h := l.view.Measure(loopview.UnspecifiedSpec(), loopview.UnspecifiedSpec())
	l.mu.Unlock()
	s := l.scale()
	return fyne.NewSize(float32(w)/s, float32(h)/s)
}

// RequestLayout implements loopview.Host. Refreshing lets the parent
// container pick up the new MinSize.
func (l *Loop) RequestLayout() { l.Invalidate() }

// Invalidate implements loopview.Host. Inside Update the refresh is deferred
// until the lock is released.
func (l *Loop) Invalidate() {
	if l.updating.Load() {
		l.pending.Store(true)
		return
	}
	l.Refresh()
}

func (l *Loop) scale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	if c := app.Driver().CanvasForObject(l); c != nil && c.Scale() > 0 {
		return c.Scale()
	}
	return 1
}

// draw is the raster generator; w and h are in pixels.
func (l *Loop) draw(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.view.SizeChanged(w, h)
	if err := l.view.Draw(loopview.NewContextCanvas(dc)); err != nil {
		loopview.Logger().Warn("fynehost: draw failed", "err", err)
	}
	return dc.Image()
}
