package loopview

import "fmt"

// SpecMode is the constraint kind carried by a MeasureSpec.
type SpecMode uint8

const (
	// Unspecified places no constraint on the size.
	Unspecified SpecMode = iota
	// Exactly requires the size to be MeasureSpec.Size.
	Exactly
	// AtMost caps the size at MeasureSpec.Size.
	AtMost
)

// String returns the mode name.
func (m SpecMode) String() string {
	switch m {
	case Unspecified:
		return "Unspecified"
	case Exactly:
		return "Exactly"
	case AtMost:
		return "AtMost"
	default:
		return fmt.Sprintf("SpecMode(%d)", m)
	}
}

// MeasureSpec is the constraint a host passes down for one dimension.
type MeasureSpec struct {
	Mode SpecMode
	Size int
}

// ExactSpec returns a spec that requires size.
func ExactSpec(size int) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: size} }

// AtMostSpec returns a spec that caps the size.
func AtMostSpec(size int) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: size} }

// UnspecifiedSpec returns a spec with no constraint.
func UnspecifiedSpec() MeasureSpec { return MeasureSpec{Mode: Unspecified} }

// String formats s for logs, e.g. "AtMost(120)".
func (s MeasureSpec) String() string {
	if s.Mode == Unspecified {
		return "Unspecified"
	}
	return fmt.Sprintf("%s(%d)", s.Mode, s.Size)
}

// ResolveSize applies spec to the desired size.
func ResolveSize(spec MeasureSpec, desired int) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		return min(spec.Size, desired)
	default:
		return desired
	}
}
