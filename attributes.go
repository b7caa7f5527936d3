package loopview

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Attribute names understood by LoopView.
const (
	AttrShowInnerCircle = "showInnerCircle"
	AttrInnerColor      = "innerColor"
	AttrInnerRadius     = "innerRadius"
	AttrTopColor        = "topColor"
	AttrBottomColor     = "bottomColor"
	AttrOuterWidth      = "outerWidth"
	AttrAngle           = "angle"
)

// attrAliases maps legacy attribute names to their current spelling.
var attrAliases = map[string]string{
	"outterWidth": AttrOuterWidth,
}

var (
	// ErrInvalidDimension is returned when a dimension literal cannot be parsed.
	ErrInvalidDimension = errors.New("loopview: invalid dimension")

	// ErrUnresolvedReference is returned by Resources implementations when a
	// reference does not name a known resource.
	ErrUnresolvedReference = errors.New("loopview: unresolved reference")
)

// AttributeSet is a read-only bag of raw attribute values as declared by the
// embedding layout, keyed by attribute name.
type AttributeSet interface {
	Lookup(name string) (string, bool)
}

// Attributes is a map-backed AttributeSet.
type Attributes map[string]string

// Lookup implements AttributeSet.
func (a Attributes) Lookup(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// lookupAttr reads name from set, falling back to a legacy spelling when the
// current name is absent.
func lookupAttr(set AttributeSet, name string) (string, bool) {
	if v, ok := set.Lookup(name); ok {
		return v, true
	}
	for legacy, current := range attrAliases {
		if current != name {
			continue
		}
		if v, ok := set.Lookup(legacy); ok {
			return v, true
		}
	}
	return "", false
}

// Resources resolves "@type/name" references found in attribute values.
type Resources interface {
	Resolve(ref string) (string, error)
}

// ResourceMap is a map-backed Resources keyed by the full reference,
// for example "@color/accent".
type ResourceMap map[string]string

// Resolve implements Resources.
func (m ResourceMap) Resolve(ref string) (string, error) {
	v, ok := m[ref]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedReference, ref)
	}
	return v, nil
}

// noResources fails every lookup.
type noResources struct{}

func (noResources) Resolve(ref string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrUnresolvedReference, ref)
}

// DisplayMetrics describes the output device for dimension conversion.
type DisplayMetrics struct {
	Density       float64 // pixels per dp
	ScaledDensity float64 // pixels per sp
	Xdpi          float64 // physical pixels per inch
}

// DefaultDisplayMetrics is a baseline 160 dpi display.
func DefaultDisplayMetrics() DisplayMetrics {
	return DisplayMetrics{Density: 1, ScaledDensity: 1, Xdpi: 160}
}

// ParseDimension converts a dimension literal such as "24dp" or "3.5mm" to
// pixels. A bare number is taken as pixels.
func ParseDimension(s string, dm DisplayMetrics) (float64, error) {
	s = strings.TrimSpace(s)
	num, unit := splitUnit(s)
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
	}

	switch unit {
	case "", "px":
		return v, nil
	case "dp", "dip":
		return v * dm.Density, nil
	case "sp":
		return v * dm.ScaledDensity, nil
	case "pt":
		return v * dm.Xdpi / 72, nil
	case "in":
		return v * dm.Xdpi, nil
	case "mm":
		return v * dm.Xdpi / 25.4, nil
	default:
		return 0, fmt.Errorf("%w: unknown unit %q in %q", ErrInvalidDimension, unit, s)
	}
}

func splitUnit(s string) (num, unit string) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			break
		}
		i--
	}
	return strings.TrimSpace(s[:i]), strings.ToLower(s[i:])
}

// PixelSize converts a pixel dimension to an integer size: rounded half up,
// and a non-zero value never collapses to zero.
func PixelSize(px float64) int {
	var res int
	if px >= 0 {
		res = int(px + 0.5)
	} else {
		res = int(px - 0.5)
	}
	if res != 0 {
		return res
	}
	switch {
	case px == 0:
		return 0
	case px > 0:
		return 1
	default:
		return -1
	}
}
