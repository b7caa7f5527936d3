package loopview

// LoopView is a circular progress indicator: an optional filled inner circle
// and an outer arc stroked with a sweep gradient running from the top color
// through the bottom color and back.
//
// A LoopView is driven by its host. The host calls Measure to learn the
// preferred size, SizeChanged once the size is final and Draw on every frame.
// Setters call back into the host through RequestLayout and Invalidate.
//
// LoopView is not safe for concurrent use; all calls belong on the host's
// UI goroutine.
type LoopView struct {
	cfg     Config
	padding Padding
	host    Host

	width, height int
	sized         bool
	gradient      *SweepGradient
}

// New creates a LoopView with the default configuration, adjusted by the
// style and config options. A style whose references cannot be resolved is
// logged and ignored.
func New(opts ...Option) *LoopView {
	o := collectOptions(opts)
	cfg, err := o.load(nil)
	if err != nil {
		Logger().Warn("loopview: style not applied", "err", err)
		cfg = DefaultConfig()
	}
	return o.build(cfg)
}

// NewWithAttributes creates a LoopView configured from attrs, falling back
// to the style set with WithStyle and then to the defaults. Malformed values
// fall back silently; the only error is an attribute reference that the
// configured Resources cannot resolve.
func NewWithAttributes(attrs AttributeSet, opts ...Option) (*LoopView, error) {
	o := collectOptions(opts)
	cfg, err := o.load(attrs)
	if err != nil {
		return nil, err
	}
	return o.build(cfg), nil
}

func collectOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) load(attrs AttributeSet) (Config, error) {
	if attrs == nil && o.style == nil {
		return DefaultConfig(), nil
	}
	return loadConfig(attrs, o.style, o.resources, o.metrics)
}

func (o options) build(cfg Config) *LoopView {
	if o.config != nil {
		cfg = *o.config
	}
	return &LoopView{
		cfg:     cfg.normalize(),
		padding: o.padding,
		host:    o.host,
	}
}

// SetHost replaces the host. A nil host detaches the view.
func (v *LoopView) SetHost(h Host) {
	if h == nil {
		h = nopHost{}
	}
	v.host = h
}

// Config returns a copy of the current configuration.
func (v *LoopView) Config() Config { return v.cfg }

// ShowInnerCircle reports whether the inner circle is drawn.
func (v *LoopView) ShowInnerCircle() bool { return v.cfg.ShowInnerCircle }

// SetShowInnerCircle toggles the inner circle.
func (v *LoopView) SetShowInnerCircle(show bool) {
	v.cfg.ShowInnerCircle = show
	v.host.Invalidate()
}

// InnerColor returns the inner circle fill color.
func (v *LoopView) InnerColor() Color { return v.cfg.InnerColor }

// SetInnerColor sets the inner circle fill color.
func (v *LoopView) SetInnerColor(c Color) {
	v.cfg.InnerColor = c
	v.host.Invalidate()
}

// InnerRadius returns the inner radius in pixels.
func (v *LoopView) InnerRadius() int { return v.cfg.InnerRadius }

// OuterWidth returns the arc stroke width in pixels.
func (v *LoopView) OuterWidth() int { return v.cfg.OuterWidth }

// SetRadiusAndWidth sets the inner radius and the arc stroke width. Negative
// values are clamped to zero. Both change the preferred size, so the host is
// asked for a new layout before the redraw.
func (v *LoopView) SetRadiusAndWidth(radius, width int) {
	v.cfg.InnerRadius = clampMin(radius, 0)
	v.cfg.OuterWidth = clampMin(width, 0)
	v.host.RequestLayout()
	v.host.Invalidate()
}

// Angle returns the arc sweep in degrees.
func (v *LoopView) Angle() int { return v.cfg.Angle }

// SetAngle sets the arc sweep, clamped to [0, 360] degrees.
func (v *LoopView) SetAngle(degrees int) {
	v.cfg.Angle = clampAngle(degrees)
	v.host.Invalidate()
}

// TopColor returns the gradient color at the start of the arc.
func (v *LoopView) TopColor() Color { return v.cfg.TopColor }

// BottomColor returns the gradient color half way round.
func (v *LoopView) BottomColor() Color { return v.cfg.BottomColor }

// SetColors sets both gradient colors and rebuilds the gradient for the
// current size right away.
func (v *LoopView) SetColors(top, bottom Color) {
	v.cfg.TopColor = top
	v.cfg.BottomColor = bottom
	v.rebuildGradient()
	v.host.Invalidate()
}

// Padding returns the current padding.
func (v *LoopView) Padding() Padding { return v.padding }

// SetPadding sets the padding. It moves the content centre and changes the
// preferred size.
func (v *LoopView) SetPadding(p Padding) {
	v.padding = p
	if v.sized {
		v.rebuildGradient()
	}
	v.host.RequestLayout()
	v.host.Invalidate()
}

// Size returns the size last passed to SizeChanged.
func (v *LoopView) Size() (width, height int) { return v.width, v.height }

// Gradient returns the current sweep gradient, or nil before the first
// SizeChanged or SetColors.
func (v *LoopView) Gradient() *SweepGradient { return v.gradient }

// contentCenter returns the centre of the area inside the padding.
func (v *LoopView) contentCenter() Point {
	cw := float64(v.width - v.padding.Horizontal())
	ch := float64(v.height - v.padding.Vertical())
	return Point{
		X: float64(v.padding.Left) + cw/2,
		Y: float64(v.padding.Top) + ch/2,
	}
}

// outerBounds returns the square the arc is inscribed in: centred on the
// content centre, half-extent innerRadius + outerWidth/2 so the stroke's
// inner edge touches the inner radius.
func (v *LoopView) outerBounds() Rect {
	c := v.contentCenter()
	half := float64(v.cfg.InnerRadius) + float64(v.cfg.OuterWidth)/2
	return Rect{Left: c.X - half, Top: c.Y - half, Right: c.X + half, Bottom: c.Y + half}
}

func (v *LoopView) rebuildGradient() {
	v.gradient = NewLoopGradient(v.contentCenter(), v.cfg.TopColor, v.cfg.BottomColor)
	Logger().Debug("loopview: gradient rebuilt",
		"cx", v.gradient.Center.X, "cy", v.gradient.Center.Y,
		"top", v.cfg.TopColor, "bottom", v.cfg.BottomColor)
}
