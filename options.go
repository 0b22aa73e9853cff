package quiver

// Option configures an Arrow during creation.
//
// Example:
//
//	// Default style, direct route
//	a := quiver.NewArrow(from)
//
//	// Dashed elbow connector with a host-allocated key
//	a := quiver.NewArrow(from,
//		quiver.WithRouter(quiver.ElbowHV),
//		quiver.WithStyle(quiver.DefaultStyle().WithDash(6, 4)),
//		quiver.WithKey(keys.Next()),
//	)
type Option func(*Arrow)

// WithStyle sets the arrow's style.
func WithStyle(s Style) Option {
	return func(a *Arrow) {
		a.style = s.Clone()
	}
}

// WithRouter sets the routing policy. The default is Direct.
func WithRouter(r Router) Option {
	return func(a *Arrow) {
		if r != nil {
			a.router = r
		}
	}
}

// WithKey sets the host-allocated key.
func WithKey(k Key) Option {
	return func(a *Arrow) {
		a.key = k
	}
}

// WithHeadMode overrides just the arrowhead variant of the current
// style.
func WithHeadMode(m HeadMode) Option {
	return func(a *Arrow) {
		a.style.Mode = m
	}
}
