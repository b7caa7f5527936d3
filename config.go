package loopview

// Defaults applied when neither the attribute set nor the style provides a value.
const (
	DefaultInnerColor  Color = 0xFF00FF00
	DefaultInnerRadius       = 60
	DefaultTopColor    Color = 0xFFFF0000
	DefaultBottomColor Color = 0xFFFFFF00
	DefaultOuterWidth        = 20
	DefaultAngle             = 90
)

// MaxAngle is the largest arc sweep in degrees. Larger sweeps would only
// redraw the same ring.
const MaxAngle = 360

// Config holds the user-visible state of a LoopView.
type Config struct {
	ShowInnerCircle bool
	InnerColor      Color
	InnerRadius     int // pixels
	TopColor        Color
	BottomColor     Color
	OuterWidth      int // pixels
	Angle           int // degrees
}

// DefaultConfig returns the configuration of a LoopView built without attributes.
func DefaultConfig() Config {
	return Config{
		ShowInnerCircle: false,
		InnerColor:      DefaultInnerColor,
		InnerRadius:     DefaultInnerRadius,
		TopColor:        DefaultTopColor,
		BottomColor:     DefaultBottomColor,
		OuterWidth:      DefaultOuterWidth,
		Angle:           DefaultAngle,
	}
}

// normalize clamps geometry to non-negative values and the sweep to [0, MaxAngle].
func (c Config) normalize() Config {
	c.InnerRadius = clampMin(c.InnerRadius, 0)
	c.OuterWidth = clampMin(c.OuterWidth, 0)
	c.Angle = clampAngle(c.Angle)
	return c
}

func clampMin(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

func clampAngle(deg int) int {
	switch {
	case deg < 0:
		return 0
	case deg > MaxAngle:
		return MaxAngle
	}
	return deg
}

// Padding is the space between the view bounds and its content area.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Horizontal returns Left+Right.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns Top+Bottom.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// UniformPadding returns a Padding with all sides set to v.
func UniformPadding(v int) Padding {
	return Padding{Left: v, Top: v, Right: v, Bottom: v}
}
