// Package ebitenhost draws a LoopView inside an ebiten game.
//
// Call Draw from the game's Draw method. The view is rasterised with gg and
// uploaded to an ebiten.Image only after it invalidated itself, so an idle
// view costs one DrawImage per frame.
package ebitenhost

import (
	"errors"
	"image"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cndemo/loopview"
)

// errNotRGBA is returned if gg hands back an image that cannot be uploaded directly.
var errNotRGBA = errors.New("ebitenhost: frame is not *image.RGBA")

// Loop is a loopview.Host for ebiten.
//
// Loop is NOT safe for concurrent use; call it from the game loop only.
type Loop struct {
	view *loopview.LoopView

	dc  *gg.Context
	img *ebiten.Image

	width, height int
	layoutPending bool
	dirty         bool
}

var _ loopview.Host = (*Loop)(nil)

// New becomes the host of view.
func New(view *loopview.LoopView) *Loop {
	l := &Loop{view: view, layoutPending: true, dirty: true}
	view.SetHost(l)
	return l
}

// View returns the hosted view.
func (l *Loop) View() *loopview.LoopView { return l.view }

// Size returns the view's unconstrained size.
func (l *Loop) Size() (width, height int) {
	return l.view.Measure(loopview.UnspecifiedSpec(), loopview.UnspecifiedSpec())
}

// RequestLayout implements loopview.Host.
func (l *Loop) RequestLayout() {
	l.layoutPending = true
	l.dirty = true
}

// Invalidate implements loopview.Host.
func (l *Loop) Invalidate() { l.dirty = true }

// Draw draws the view onto screen with its top-left corner at (x, y).
func (l *Loop) Draw(screen *ebiten.Image, x, y float64) error {
	frame, err := l.render()
	if err != nil {
		return err
	}
	if frame != nil {
		l.upload(frame)
	}
	if l.dc == nil && l.img != nil {
		l.img.Deallocate()
		l.img = nil
	}
	if l.img == nil {
		return nil
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(l.img, op)
	return nil
}

// render redraws the view when needed. It returns nil when the previous
// frame is still current.
func (l *Loop) render() (*image.RGBA, error) {
	if l.layoutPending {
		w, h := l.Size()
		if w != l.width || h != l.height || l.dc == nil {
			if l.dc != nil {
				_ = l.dc.Close()
				l.dc = nil
			}
			if w > 0 && h > 0 {
				l.dc = gg.NewContext(w, h)
			}
			l.width, l.height = w, h
		}
		l.view.SizeChanged(w, h)
		l.layoutPending = false
	}
	if !l.dirty || l.dc == nil {
		return nil, nil
	}

	l.dc.Clear()
	if err := l.view.Draw(loopview.NewContextCanvas(l.dc)); err != nil {
		return nil, err
	}
	rgba, ok := l.dc.Image().(*image.RGBA)
	if !ok {
		return nil, errNotRGBA
	}
	l.dirty = false
	return rgba, nil
}

func (l *Loop) upload(frame *image.RGBA) {
	b := frame.Bounds()
	if l.img != nil {
		if s := l.img.Bounds().Size(); s != b.Size() {
			l.img.Deallocate()
			l.img = nil
		}
	}
	if l.img == nil {
		l.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	l.img.WritePixels(frame.Pix)
	loopview.Logger().Debug("ebitenhost: uploaded frame", "width", b.Dx(), "height", b.Dy())
}

// Close releases the offscreen buffers and detaches the view.
func (l *Loop) Close() error {
	l.view.SetHost(nil)
	if l.img != nil {
		l.img.Deallocate()
		l.img = nil
	}
	if l.dc == nil {
		return nil
	}
	err := l.dc.Close()
	l.dc = nil
	return err
}
