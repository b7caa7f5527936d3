package ebitenhost

import (
	"image/color"
	"testing"

	"github.com/cndemo/loopview"
)

func TestRenderFirstFrame(t *testing.T) {
	v := loopview.New()
	v.SetShowInnerCircle(true)
	l := New(v)

	frame, err := l.render()
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if frame == nil {
		t.Fatal("first render returned no frame")
	}
	if b := frame.Bounds(); b.Dx() != 160 || b.Dy() != 160 {
		t.Errorf("frame bounds = %v, want 160x160", b)
	}
	p := color.NRGBAModel.Convert(frame.At(80, 80)).(color.NRGBA)
	if p.G != 255 || p.A != 255 {
		t.Errorf("centre = %+v, want green", p)
	}
}

func TestRenderSkipsCleanFrames(t *testing.T) {
	l := New(loopview.New())
	if _, err := l.render(); err != nil {
		t.Fatal(err)
	}

	frame, err := l.render()
	if err != nil {
		t.Fatal(err)
	}
	if frame != nil {
		t.Error("clean view produced a frame")
	}

	l.View().SetColors(loopview.Blue, loopview.White)
	frame, err = l.render()
	if err != nil {
		t.Fatal(err)
	}
	if frame == nil {
		t.Error("SetColors did not trigger a new frame")
	}
}

func TestRenderRelayout(t *testing.T) {
	l := New(loopview.New())
	if _, err := l.render(); err != nil {
		t.Fatal(err)
	}

	l.View().SetRadiusAndWidth(20, 10)
	frame, err := l.render()
	if err != nil {
		t.Fatal(err)
	}
	if frame == nil {
		t.Fatal("SetRadiusAndWidth did not trigger a new frame")
	}
	if b := frame.Bounds(); b.Dx() != 60 || b.Dy() != 60 {
		t.Errorf("frame bounds = %v, want 60x60", b)
	}
	if w, h := l.View().Size(); w != 60 || h != 60 {
		t.Errorf("view size = %dx%d, want 60x60", w, h)
	}
}

func TestRenderEmptyView(t *testing.T) {
	v := loopview.New()
	v.SetRadiusAndWidth(0, 0)
	l := New(v)

	frame, err := l.render()
	if err != nil {
		t.Fatal(err)
	}
	if frame != nil {
		t.Error("zero-sized view produced a frame")
	}
}
