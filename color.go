package loopview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// ErrInvalidColor is returned when a color literal cannot be parsed.
var ErrInvalidColor = errors.New("loopview: invalid color")

// Color is a packed 32-bit color in 0xAARRGGBB order.
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
	Yellow      Color = 0xFFFFFF00
)

// ARGB packs 8-bit components into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// RGBA converts c to a gg color with straight (non-premultiplied) components.
func (c Color) RGBA() gg.RGBA {
	return gg.RGBA{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
		A: float64(c.A()) / 255,
	}
}

// String formats c as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// namedColors mirrors the names understood by the platform color parser.
var namedColors = map[string]Color{
	"black":     0xFF000000,
	"darkgray":  0xFF444444,
	"darkgrey":  0xFF444444,
	"gray":      0xFF888888,
	"grey":      0xFF888888,
	"lightgray": 0xFFCCCCCC,
	"lightgrey": 0xFFCCCCCC,
	"white":     0xFFFFFFFF,
	"red":       0xFFFF0000,
	"green":     0xFF00FF00,
	"blue":      0xFF0000FF,
	"yellow":    0xFFFFFF00,
	"cyan":      0xFF00FFFF,
	"magenta":   0xFFFF00FF,
	"aqua":      0xFF00FFFF,
	"fuchsia":   0xFFFF00FF,
	"lime":      0xFF00FF00,
	"maroon":    0xFF800000,
	"navy":      0xFF000080,
	"olive":     0xFF808000,
	"purple":    0xFF800080,
	"silver":    0xFFC0C0C0,
	"teal":      0xFF008080,
}

// ParseColor parses a color literal.
//
// Accepted forms:
//   - "#RGB", "#ARGB", "#RRGGBB", "#AARRGGBB" (short forms expand each digit)
//   - "0xAARRGGBB" or a decimal integer
//   - a named color such as "red" or "lightgray"
//
// Forms without an alpha component are opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidColor)
	}

	if s[0] == '#' {
		return parseHexColor(s)
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return Color(v), nil
	}

	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	// Negative decimals are how signed 32-bit colors are usually written.
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v < -1<<31 || v > 1<<32-1 {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidColor, s)
		}
		return Color(uint32(v)), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHexColor(s string) (Color, error) {
	hex := s[1:]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	switch len(hex) {
	case 3: // RGB
		return expand(0xF, uint32(v)>>8&0xF, uint32(v)>>4&0xF, uint32(v)&0xF), nil
	case 4: // ARGB
		return expand(uint32(v)>>12&0xF, uint32(v)>>8&0xF, uint32(v)>>4&0xF, uint32(v)&0xF), nil
	case 6: // RRGGBB
		return Color(0xFF000000 | uint32(v)), nil
	case 8: // AARRGGBB
		return Color(v), nil
	default:
		return 0, fmt.Errorf("%w: %q has %d digits", ErrInvalidColor, s, len(hex))
	}
}

// expand widens 4-bit components to 8 bits by repeating each nibble.
func expand(a, r, g, b uint32) Color {
	return ARGB(uint8(a*17), uint8(r*17), uint8(g*17), uint8(b*17))
}
