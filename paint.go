package loopview

// PaintStyle selects whether a shape is filled or stroked.
type PaintStyle uint8

const (
	// Fill paints the interior of the shape.
	Fill PaintStyle = iota
	// Stroke paints the outline of the shape.
	Stroke
)

// Cap is the shape drawn at the open ends of a stroke.
type Cap uint8

const (
	// ButtCap ends the stroke flush with its endpoint.
	ButtCap Cap = iota
	// RoundCap ends the stroke with a half disc.
	RoundCap
	// SquareCap ends the stroke with a half square.
	SquareCap
)

// Paint describes how a primitive is colored.
// When Shader is set it takes precedence over Color.
type Paint struct {
	Style       PaintStyle
	Color       Color
	StrokeWidth float64
	Cap         Cap
	Shader      *SweepGradient
}
