// Package loopview provides a circular loop indicator widget: an optional
// filled inner circle surrounded by an arc stroked with a sweep gradient.
//
// # Overview
//
// The widget is independent of any UI toolkit. A host drives it through
// three calls and receives two requests back:
//
//	host -> view:  Measure(widthSpec, heightSpec)  preferred size
//	               SizeChanged(width, height)      final size, rebuilds the gradient
//	               Draw(canvas)                    paint one frame
//	view -> host:  RequestLayout()                 radius, width or padding changed
//	               Invalidate()                    anything visible changed
//
// Ready-made hosts live in the host/ sub-packages (gogpu, Gio, Fyne, ebiten).
//
// # Quick Start
//
//	v := loopview.New()
//	v.SetAngle(270)
//	v.SetColors(loopview.Red, loopview.Blue)
//
//	w, h := v.Measure(loopview.UnspecifiedSpec(), loopview.UnspecifiedSpec())
//	dc, err := loopview.Render(v, w, h)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dc.Close()
//	dc.SavePNG("loop.png")
//
// # Attributes
//
// NewWithAttributes reads the configuration from an AttributeSet, the way a
// layout declares per-instance options:
//
//	v, err := loopview.NewWithAttributes(loopview.Attributes{
//	    "innerRadius": "24dp",
//	    "outerWidth":  "6dp",
//	    "topColor":    "#FF2196F3",
//	    "bottomColor": "@color/accent",
//	    "angle":       "135",
//	}, loopview.WithDisplayMetrics(loopview.DisplayMetrics{Density: 2}),
//	    loopview.WithResources(loopview.ResourceMap{"@color/accent": "#FFFF4081"}))
//
// Malformed values fall back to the defaults. Only a reference that cannot
// be resolved is reported as an error.
//
// # Canvases
//
// Draw accepts any Canvas. ContextCanvas rasterises through gg (software or
// GPU accelerated); RecorderCanvas captures a gg recording that can be
// inspected or replayed.
//
// # Coordinate System
//
// Origin at the top-left, y down. Angles are in degrees, zero along the
// positive x axis, increasing clockwise on screen. The view rotates its frame
// by -90 degrees before drawing, so the arc starts at twelve o'clock.
package loopview
