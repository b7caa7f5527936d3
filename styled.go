package loopview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ErrRecycled is the panic value raised when a StyledAttributes is used after Recycle.
var ErrRecycled = errors.New("loopview: styled attributes used after Recycle")

// StyledAttributes reads typed values out of an attribute set, falling back
// to a default style and then to the caller's default. Instances are pooled:
// obtain one with obtainStyledAttributes and always Recycle it.
//
// A StyledAttributes is not safe for concurrent use.
type StyledAttributes struct {
	attrs     AttributeSet
	style     AttributeSet
	resources Resources
	metrics   DisplayMetrics
	recycled  bool
}

// testHookRecycle is called from Recycle when non-nil.
var testHookRecycle func()

var styledPool = sync.Pool{
	New: func() any { return new(StyledAttributes) },
}

func obtainStyledAttributes(attrs, style AttributeSet, res Resources, dm DisplayMetrics) *StyledAttributes {
	ta := styledPool.Get().(*StyledAttributes)
	*ta = StyledAttributes{
		attrs:     attrs,
		style:     style,
		resources: res,
		metrics:   dm,
	}
	return ta
}

// Recycle releases ta back to the pool. It is safe to call more than once.
func (ta *StyledAttributes) Recycle() {
	if ta.recycled {
		return
	}
	*ta = StyledAttributes{recycled: true}
	styledPool.Put(ta)
	if testHookRecycle != nil {
		testHookRecycle()
	}
}

// value returns the raw value for name, resolving "@" references.
// A reference that cannot be resolved is an error; a missing key is not.
func (ta *StyledAttributes) value(name string) (string, bool, error) {
	if ta.recycled {
		panic(ErrRecycled)
	}

	var (
		raw string
		ok  bool
	)
	for _, set := range [...]AttributeSet{ta.attrs, ta.style} {
		if set == nil {
			continue
		}
		if raw, ok = lookupAttr(set, name); ok {
			break
		}
	}
	if !ok {
		return "", false, nil
	}

	// Follow reference chains, bounded so a cycle cannot hang construction.
	for i := 0; strings.HasPrefix(raw, "@") && raw != "@null"; i++ {
		if i == 8 {
			return "", false, fmt.Errorf("%w: reference chain too deep at %s", ErrUnresolvedReference, raw)
		}
		res := ta.resources
		if res == nil {
			res = noResources{}
		}
		v, err := res.Resolve(raw)
		if err != nil {
			return "", false, err
		}
		raw = v
	}
	if raw == "@null" {
		return "", false, nil
	}
	return raw, true, nil
}

func (ta *StyledAttributes) fallback(name, raw string, err error) {
	Logger().Debug("loopview: attribute fallback", "attr", name, "value", raw, "err", err)
}

// Bool returns the boolean attribute name, or def.
func (ta *StyledAttributes) Bool(name string, def bool) (bool, error) {
	raw, ok, err := ta.value(name)
	if err != nil || !ok {
		return def, err
	}
	v, perr := strconv.ParseBool(strings.TrimSpace(raw))
	if perr != nil {
		ta.fallback(name, raw, perr)
		return def, nil
	}
	return v, nil
}

// Color returns the color attribute name, or def.
func (ta *StyledAttributes) Color(name string, def Color) (Color, error) {
	raw, ok, err := ta.value(name)
	if err != nil || !ok {
		return def, err
	}
	v, perr := ParseColor(raw)
	if perr != nil {
		ta.fallback(name, raw, perr)
		return def, nil
	}
	return v, nil
}

// DimensionPixelSize returns the dimension attribute name converted to an
// integer pixel size, or def.
func (ta *StyledAttributes) DimensionPixelSize(name string, def int) (int, error) {
	raw, ok, err := ta.value(name)
	if err != nil || !ok {
		return def, err
	}
	px, perr := ParseDimension(raw, ta.metrics)
	if perr != nil {
		ta.fallback(name, raw, perr)
		return def, nil
	}
	return PixelSize(px), nil
}

// Int returns the integer attribute name, or def. Hex literals with a 0x
// prefix are accepted.
func (ta *StyledAttributes) Int(name string, def int) (int, error) {
	raw, ok, err := ta.value(name)
	if err != nil || !ok {
		return def, err
	}
	v, perr := strconv.ParseInt(strings.TrimSpace(raw), 0, 32)
	if perr != nil {
		ta.fallback(name, raw, perr)
		return def, nil
	}
	return int(v), nil
}

// readConfig fills a Config from ta. The first unresolvable reference aborts
// the read and is returned wrapped with the attribute name.
func readConfig(ta *StyledAttributes) (Config, error) {
	cfg := DefaultConfig()

	var err error
	wrap := func(name string, e error) error {
		return fmt.Errorf("loopview: read attribute %q: %w", name, e)
	}

	if cfg.ShowInnerCircle, err = ta.Bool(AttrShowInnerCircle, cfg.ShowInnerCircle); err != nil {
		return Config{}, wrap(AttrShowInnerCircle, err)
	}
	if cfg.InnerColor, err = ta.Color(AttrInnerColor, cfg.InnerColor); err != nil {
		return Config{}, wrap(AttrInnerColor, err)
	}
	if cfg.InnerRadius, err = ta.DimensionPixelSize(AttrInnerRadius, cfg.InnerRadius); err != nil {
		return Config{}, wrap(AttrInnerRadius, err)
	}
	if cfg.TopColor, err = ta.Color(AttrTopColor, cfg.TopColor); err != nil {
		return Config{}, wrap(AttrTopColor, err)
	}
	if cfg.BottomColor, err = ta.Color(AttrBottomColor, cfg.BottomColor); err != nil {
		return Config{}, wrap(AttrBottomColor, err)
	}
	if cfg.OuterWidth, err = ta.DimensionPixelSize(AttrOuterWidth, cfg.OuterWidth); err != nil {
		return Config{}, wrap(AttrOuterWidth, err)
	}
	if cfg.Angle, err = ta.Int(AttrAngle, cfg.Angle); err != nil {
		return Config{}, wrap(AttrAngle, err)
	}
	return cfg, nil
}

// loadConfig obtains a reader, reads the configuration and recycles the
// reader on every path, including a panic raised by a custom AttributeSet.
func loadConfig(attrs, style AttributeSet, res Resources, dm DisplayMetrics) (Config, error) {
	ta := obtainStyledAttributes(attrs, style, res, dm)
	defer ta.Recycle()
	return readConfig(ta)
}
