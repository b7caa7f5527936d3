// Package gpuhost hosts a LoopView in a gogpu window.
//
// A Surface owns a ggcanvas.Canvas sized to the view's measured size. The
// view draws into the canvas on the CPU; the canvas uploads to a GPU texture
// only after the view invalidated itself, and the texture is composited into
// the window on every frame:
//
//	app := gogpu.NewApp(gogpu.DefaultConfig())
//	var s *gpuhost.Surface
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if s == nil {
//	        s, _ = gpuhost.New(app.GPUContextProvider(), loopview.New())
//	    }
//	    _ = s.Frame(dc.AsTextureDrawer(), 0, 0)
//	})
package gpuhost

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/cndemo/loopview"
)

// ErrNilView is returned by New when no view is given.
var ErrNilView = errors.New("gpuhost: nil view")

// Surface is a loopview.Host backed by a ggcanvas.Canvas.
//
// Surface is NOT safe for concurrent use; call it from the window's draw
// callback only.
type Surface struct {
	view   *loopview.LoopView
	canvas *ggcanvas.Canvas

	layoutPending bool
	dirty         bool
}

var _ loopview.Host = (*Surface)(nil)

// New measures view, creates a canvas of that size and attaches itself as the
// view's host.
func New(provider gpucontext.DeviceProvider, view *loopview.LoopView) (*Surface, error) {
	if view == nil {
		return nil, ErrNilView
	}
	w, h := measure(view)
	canvas, err := ggcanvas.New(provider, w, h)
	if err != nil {
		return nil, fmt.Errorf("gpuhost: %w", err)
	}

	s := &Surface{view: view, canvas: canvas, dirty: true}
	view.SetHost(s)
	view.SizeChanged(w, h)
	return s, nil
}

// measure returns the view's unconstrained size, at least 1x1 so the canvas
// can always be allocated.
func measure(v *loopview.LoopView) (int, int) {
	w, h := v.Measure(loopview.UnspecifiedSpec(), loopview.UnspecifiedSpec())
	return max(w, 1), max(h, 1)
}

// View returns the hosted view.
func (s *Surface) View() *loopview.LoopView { return s.view }

// Size returns the canvas size.
func (s *Surface) Size() (width, height int) { return s.canvas.Size() }

// RequestLayout implements loopview.Host. The canvas is resized on the next Frame.
func (s *Surface) RequestLayout() { s.layoutPending = true }

// Invalidate implements loopview.Host. The view is redrawn on the next Frame.
func (s *Surface) Invalidate() { s.dirty = true }

// Dirty reports whether the next Frame redraws the view.
func (s *Surface) Dirty() bool { return s.dirty || s.layoutPending }

// Frame brings the canvas up to date and composites it at (x, y).
func (s *Surface) Frame(dc gpucontext.TextureDrawer, x, y float32) error {
	if err := s.sync(); err != nil {
		return err
	}
	return s.canvas.RenderToPosition(dc, x, y)
}

// sync applies a pending layout and redraws the view if needed.
func (s *Surface) sync() error {
	if s.layoutPending {
		w, h := measure(s.view)
		if err := s.canvas.Resize(w, h); err != nil {
			return fmt.Errorf("gpuhost: %w", err)
		}
		s.view.SizeChanged(w, h)
		s.layoutPending = false
		s.dirty = true
		loopview.Logger().Debug("gpuhost: resized", "width", w, "height", h)
	}
	if !s.dirty {
		return nil
	}

	var drawErr error
	err := s.canvas.Draw(func(dc *gg.Context) {
		dc.Clear()
		drawErr = s.view.Draw(loopview.NewContextCanvas(dc))
	})
	if err != nil {
		return fmt.Errorf("gpuhost: %w", err)
	}
	if drawErr != nil {
		return drawErr
	}
	s.dirty = false
	return nil
}

// Close releases the canvas and detaches the view.
func (s *Surface) Close() error {
	s.view.SetHost(nil)
	return s.canvas.Close()
}
