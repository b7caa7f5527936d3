package loopview

// Host is the toolkit side of a LoopView. Setters call back into it to ask
// for a new measure pass or a redraw; hosts typically coalesce the requests
// until their next frame.
type Host interface {
	// RequestLayout schedules a new Measure pass.
	RequestLayout()
	// Invalidate schedules a new Draw.
	Invalidate()
}

// HostFuncs adapts a pair of functions to Host. Nil fields are ignored.
type HostFuncs struct {
	OnRequestLayout func()
	OnInvalidate    func()
}

// RequestLayout implements Host.
func (h HostFuncs) RequestLayout() {
	if h.OnRequestLayout != nil {
		h.OnRequestLayout()
	}
}

// Invalidate implements Host.
func (h HostFuncs) Invalidate() {
	if h.OnInvalidate != nil {
		h.OnInvalidate()
	}
}

type nopHost struct{}

func (nopHost) RequestLayout() {}
func (nopHost) Invalidate()    {}
