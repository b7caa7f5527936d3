package loopview

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// recordingHost logs host callbacks in order.
type recordingHost struct {
	calls []string
}

func (h *recordingHost) RequestLayout() { h.calls = append(h.calls, "layout") }
func (h *recordingHost) Invalidate()    { h.calls = append(h.calls, "invalidate") }

// fakeCanvas logs canvas calls as strings and can fail on demand.
type fakeCanvas struct {
	calls   []string
	paints  []Paint
	depth   int
	failArc error
}

func (c *fakeCanvas) Save() {
	c.depth++
	c.calls = append(c.calls, "save")
}

func (c *fakeCanvas) Restore() {
	c.depth--
	c.calls = append(c.calls, "restore")
}

func (c *fakeCanvas) Rotate(degrees, px, py float64) {
	c.calls = append(c.calls, fmt.Sprintf("rotate %g %g %g", degrees, px, py))
}

func (c *fakeCanvas) DrawCircle(cx, cy, radius float64, p *Paint) error {
	c.calls = append(c.calls, fmt.Sprintf("circle %g %g %g", cx, cy, radius))
	c.paints = append(c.paints, *p)
	return nil
}

func (c *fakeCanvas) DrawArc(oval Rect, start, sweep float64, useCenter bool, p *Paint) error {
	c.calls = append(c.calls, fmt.Sprintf("arc %g %g %g %g %g %g %v",
		oval.Left, oval.Top, oval.Right, oval.Bottom, start, sweep, useCenter))
	c.paints = append(c.paints, *p)
	return c.failArc
}

func TestNewDefaults(t *testing.T) {
	v := New()
	if got := v.Config(); got != DefaultConfig() {
		t.Errorf("Config() = %+v, want %+v", got, DefaultConfig())
	}
	if v.ShowInnerCircle() {
		t.Error("inner circle shown by default")
	}
	if v.InnerRadius() != 60 || v.OuterWidth() != 20 || v.Angle() != 90 {
		t.Errorf("geometry = %d/%d/%d, want 60/20/90", v.InnerRadius(), v.OuterWidth(), v.Angle())
	}
	if v.TopColor() != Red || v.BottomColor() != Yellow || v.InnerColor() != Green {
		t.Errorf("colors = %v/%v/%v", v.TopColor(), v.BottomColor(), v.InnerColor())
	}
	if v.Gradient() != nil {
		t.Error("gradient built before SizeChanged")
	}
}

func TestNewWithAttributesUnresolved(t *testing.T) {
	v, err := NewWithAttributes(Attributes{AttrTopColor: "@color/none"})
	if !errors.Is(err, ErrUnresolvedReference) {
		t.Fatalf("error = %v, want ErrUnresolvedReference", err)
	}
	if v != nil {
		t.Error("view returned alongside error")
	}
}

func TestNewWithBrokenStyleUsesDefaults(t *testing.T) {
	v := New(WithStyle(Attributes{AttrAngle: "@integer/none"}))
	if v.Config() != DefaultConfig() {
		t.Errorf("Config() = %+v, want defaults", v.Config())
	}
}

func TestNewClampsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InnerRadius = -3
	cfg.OuterWidth = -1
	cfg.Angle = 720
	v := New(WithConfig(cfg))
	if v.InnerRadius() != 0 || v.OuterWidth() != 0 || v.Angle() != 360 {
		t.Errorf("normalized = %d/%d/%d, want 0/0/360", v.InnerRadius(), v.OuterWidth(), v.Angle())
	}
}

func TestSettersNotifyHost(t *testing.T) {
	tests := []struct {
		name string
		set  func(v *LoopView)
		want []string
	}{
		{"show inner circle", func(v *LoopView) { v.SetShowInnerCircle(true) }, []string{"invalidate"}},
		{"inner color", func(v *LoopView) { v.SetInnerColor(Blue) }, []string{"invalidate"}},
		{"angle", func(v *LoopView) { v.SetAngle(10) }, []string{"invalidate"}},
		{"colors", func(v *LoopView) { v.SetColors(Blue, Black) }, []string{"invalidate"}},
		{"radius and width", func(v *LoopView) { v.SetRadiusAndWidth(5, 5) }, []string{"layout", "invalidate"}},
		{"padding", func(v *LoopView) { v.SetPadding(UniformPadding(3)) }, []string{"layout", "invalidate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &recordingHost{}
			v := New(WithHost(h))
			tt.set(v)
			if !reflect.DeepEqual(h.calls, tt.want) {
				t.Errorf("host calls = %v, want %v", h.calls, tt.want)
			}
		})
	}
}

func TestSetAngleClamps(t *testing.T) {
	v := New()
	for _, tt := range []struct{ in, want int }{{-10, 0}, {0, 0}, {180, 180}, {360, 360}, {361, 360}} {
		v.SetAngle(tt.in)
		if v.Angle() != tt.want {
			t.Errorf("SetAngle(%d) -> %d, want %d", tt.in, v.Angle(), tt.want)
		}
	}
}

func TestSetRadiusAndWidthClamps(t *testing.T) {
	v := New()
	v.SetRadiusAndWidth(-1, -2)
	if v.InnerRadius() != 0 || v.OuterWidth() != 0 {
		t.Errorf("got %d/%d, want 0/0", v.InnerRadius(), v.OuterWidth())
	}
}

func TestSetColorsRebuildsGradient(t *testing.T) {
	v := New()
	v.SizeChanged(160, 160)
	v.SetColors(Blue, White)

	if v.TopColor() != Blue || v.BottomColor() != White {
		t.Errorf("colors = %v/%v", v.TopColor(), v.BottomColor())
	}
	g := v.Gradient()
	if g == nil {
		t.Fatal("no gradient after SetColors")
	}
	if g.Colors != [3]Color{Blue, White, Blue} {
		t.Errorf("gradient colors = %v", g.Colors)
	}
	if g.Positions != [3]float64{0, 0.5, 1} {
		t.Errorf("gradient positions = %v", g.Positions)
	}
	if g.Center != (Point{X: 80, Y: 80}) {
		t.Errorf("gradient center = %v", g.Center)
	}
}

func TestSizeChangedRebuildsOnlyOnChange(t *testing.T) {
	v := New()
	v.SizeChanged(160, 160)
	first := v.Gradient()

	v.SizeChanged(160, 160)
	if v.Gradient() != first {
		t.Error("gradient rebuilt for an unchanged size")
	}

	v.SizeChanged(200, 100)
	if v.Gradient() == first {
		t.Error("gradient not rebuilt for a new size")
	}
	if got := v.Gradient().Center; got != (Point{X: 100, Y: 50}) {
		t.Errorf("center = %v, want (100, 50)", got)
	}
	if w, h := v.Size(); w != 200 || h != 100 {
		t.Errorf("Size() = %dx%d", w, h)
	}
}

func TestSetHostNil(t *testing.T) {
	h := &recordingHost{}
	v := New(WithHost(h))
	v.SetHost(nil)
	v.SetAngle(1)
	if len(h.calls) != 0 {
		t.Errorf("detached host received %v", h.calls)
	}
}

func TestHostFuncs(t *testing.T) {
	var layouts, invalidates int
	v := New(WithHost(HostFuncs{
		OnRequestLayout: func() { layouts++ },
		OnInvalidate:    func() { invalidates++ },
	}))
	v.SetRadiusAndWidth(1, 1)
	v.SetAngle(1)
	if layouts != 1 || invalidates != 2 {
		t.Errorf("layouts=%d invalidates=%d, want 1 and 2", layouts, invalidates)
	}

	// Nil funcs are skipped.
	HostFuncs{}.RequestLayout()
	HostFuncs{}.Invalidate()
}

func TestDrawBeforeSizeChanged(t *testing.T) {
	c := &fakeCanvas{}
	if err := New().Draw(c); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if len(c.calls) != 0 {
		t.Errorf("unsized view drew %v", c.calls)
	}
}

func TestDrawDefault(t *testing.T) {
	v := New()
	v.SizeChanged(160, 160)
	c := &fakeCanvas{}
	if err := v.Draw(c); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	want := []string{
		"save",
		"rotate -90 80 80",
		"arc 10 10 150 150 0 90 false",
		"restore",
	}
	if !reflect.DeepEqual(c.calls, want) {
		t.Errorf("calls = %v, want %v", c.calls, want)
	}

	p := c.paints[0]
	if p.Style != Stroke || p.StrokeWidth != 20 || p.Cap != RoundCap {
		t.Errorf("arc paint = %+v", p)
	}
	if p.Shader != v.Gradient() {
		t.Error("arc not painted with the view gradient")
	}
}

func TestDrawInnerCircle(t *testing.T) {
	v := New()
	v.SetShowInnerCircle(true)
	v.SetInnerColor(Blue)
	v.SizeChanged(160, 160)
	c := &fakeCanvas{}
	if err := v.Draw(c); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if c.calls[2] != "circle 80 80 61" {
		t.Errorf("calls[2] = %q, want inner circle at radius 61", c.calls[2])
	}
	if p := c.paints[0]; p.Style != Fill || p.Color != Blue || p.Shader != nil {
		t.Errorf("inner paint = %+v", p)
	}
}

func TestDrawPaddingMovesCenter(t *testing.T) {
	v := New(WithPadding(Padding{Left: 10, Top: 20}))
	v.SizeChanged(170, 180)
	c := &fakeCanvas{}
	if err := v.Draw(c); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if c.calls[1] != "rotate -90 90 100" {
		t.Errorf("rotation = %q, want about (90, 100)", c.calls[1])
	}
	if got := v.Gradient().Center; got != (Point{X: 90, Y: 100}) {
		t.Errorf("gradient center = %v, want (90, 100)", got)
	}
}

func TestDrawErrorRestores(t *testing.T) {
	v := New()
	v.SizeChanged(160, 160)
	boom := errors.New("boom")
	c := &fakeCanvas{failArc: boom}

	err := v.Draw(c)
	if !errors.Is(err, boom) {
		t.Fatalf("Draw() error = %v, want boom", err)
	}
	if c.depth != 0 {
		t.Errorf("save/restore unbalanced: depth %d", c.depth)
	}
}

func TestDrawIsRepeatable(t *testing.T) {
	v := New()
	v.SetShowInnerCircle(true)
	v.SizeChanged(160, 160)

	a, b := &fakeCanvas{}, &fakeCanvas{}
	if err := v.Draw(a); err != nil {
		t.Fatal(err)
	}
	if err := v.Draw(b); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.calls, b.calls) || !reflect.DeepEqual(a.paints, b.paints) {
		t.Error("two draws of the same state differ")
	}
}
