package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cndemo/loopview"
	"github.com/cndemo/loopview/attrs"
)

// viewFlags are the flags shared by every command that builds a view.
type viewFlags struct {
	attrsFile string
	padding   int
	density   float64
}

// attrFlags maps command-line flags onto attribute names. Flag values go
// through the same parsing as attribute files.
var attrFlags = []struct {
	flag, attr, usage, def string
}{
	{flag: "show-inner", attr: loopview.AttrShowInnerCircle, usage: "draw the inner circle", def: "false"},
	{flag: "inner-color", attr: loopview.AttrInnerColor, usage: "inner circle color", def: loopview.DefaultInnerColor.String()},
	{flag: "inner-radius", attr: loopview.AttrInnerRadius, usage: "inner radius (px, dp, sp, pt, in, mm)", def: "60"},
	{flag: "top-color", attr: loopview.AttrTopColor, usage: "gradient color at the start of the arc", def: loopview.DefaultTopColor.String()},
	{flag: "bottom-color", attr: loopview.AttrBottomColor, usage: "gradient color half way round", def: loopview.DefaultBottomColor.String()},
	{flag: "outer-width", attr: loopview.AttrOuterWidth, usage: "arc stroke width (px, dp, sp, pt, in, mm)", def: "20"},
	{flag: "angle", attr: loopview.AttrAngle, usage: "arc sweep in degrees, 0 to 360", def: "90"},
}

func addViewFlags(cmd *cobra.Command, vf *viewFlags) {
	f := cmd.Flags()
	for _, a := range attrFlags {
		if a.attr == loopview.AttrShowInnerCircle {
			f.Bool(a.flag, false, a.usage)
			continue
		}
		f.String(a.flag, a.def, a.usage)
	}
	f.StringVar(&vf.attrsFile, "attrs", "", "attribute file (.yaml, .yml or .xml); flags override it")
	f.IntVar(&vf.padding, "padding", 0, "padding on every side in px")
	f.Float64Var(&vf.density, "density", 1, "pixels per dp")
}

// buildView creates a view from the attribute file and any flags the user
// set explicitly.
func buildView(flags *pflag.FlagSet, vf *viewFlags, opts ...loopview.Option) (*loopview.LoopView, error) {
	a := loopview.Attributes{}
	if vf.attrsFile != "" {
		loaded, err := attrs.Load(vf.attrsFile)
		if err != nil {
			return nil, err
		}
		a = loaded
	}

	dm := loopview.DisplayMetrics{Density: vf.density}
	for _, af := range attrFlags {
		if !flags.Changed(af.flag) {
			continue
		}
		val := flags.Lookup(af.flag).Value.String()
		if err := checkFlag(af.attr, val, dm); err != nil {
			return nil, fmt.Errorf("--%s: %w", af.flag, err)
		}
		a[af.attr] = val
	}

	if vf.padding < 0 {
		return nil, fmt.Errorf("--padding: must not be negative, got %d", vf.padding)
	}
	opts = append([]loopview.Option{
		loopview.WithDisplayMetrics(dm),
		loopview.WithPadding(loopview.UniformPadding(vf.padding)),
	}, opts...)
	return loopview.NewWithAttributes(a, opts...)
}

// checkFlag rejects malformed values that an attribute file would silently
// replace with defaults.
func checkFlag(attr, val string, dm loopview.DisplayMetrics) error {
	var err error
	switch attr {
	case loopview.AttrInnerColor, loopview.AttrTopColor, loopview.AttrBottomColor:
		_, err = loopview.ParseColor(val)
	case loopview.AttrInnerRadius, loopview.AttrOuterWidth:
		_, err = loopview.ParseDimension(val, dm)
	case loopview.AttrAngle:
		_, err = strconv.Atoi(val)
	}
	return err
}
