package loopview

// Option configures a LoopView during construction.
//
// Example:
//
//	v := loopview.New(
//	    loopview.WithPadding(loopview.UniformPadding(8)),
//	    loopview.WithHost(myHost),
//	)
type Option func(*options)

type options struct {
	host      Host
	style     AttributeSet
	resources Resources
	metrics   DisplayMetrics
	padding   Padding
	config    *Config
}

func defaultOptions() options {
	return options{
		host:    nopHost{},
		metrics: DefaultDisplayMetrics(),
	}
}

// WithHost sets the host notified by setters. A nil host is ignored.
func WithHost(h Host) Option {
	return func(o *options) {
		if h != nil {
			o.host = h
		}
	}
}

// WithStyle sets the default style consulted for attributes missing from
// the instance attribute set.
func WithStyle(style AttributeSet) Option {
	return func(o *options) {
		o.style = style
	}
}

// WithResources sets the resolver for "@type/name" attribute values.
func WithResources(r Resources) Option {
	return func(o *options) {
		o.resources = r
	}
}

// WithDisplayMetrics sets the metrics used to convert dp, sp, pt, in and mm
// dimensions to pixels. Non-positive fields keep their defaults.
func WithDisplayMetrics(dm DisplayMetrics) Option {
	return func(o *options) {
		def := DefaultDisplayMetrics()
		if dm.Density <= 0 {
			dm.Density = def.Density
		}
		if dm.ScaledDensity <= 0 {
			dm.ScaledDensity = dm.Density
		}
		if dm.Xdpi <= 0 {
			dm.Xdpi = def.Xdpi * dm.Density
		}
		o.metrics = dm
	}
}

// WithPadding sets the initial padding.
func WithPadding(p Padding) Option {
	return func(o *options) {
		o.padding = p
	}
}

// WithConfig replaces the configuration read from attributes. It is applied
// after attribute loading, so it wins over both attributes and style.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = &cfg
	}
}
