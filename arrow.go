package quiver

import (
	"fmt"
	"math"
)

// hitSlop widens hit-testing beyond the stroke so thin connectors stay
// clickable.
const hitSlop = 2.0

// Arrow is a connector from one anchor to another. It owns the route,
// the style, and the hover state, and renders itself onto any Canvas.
// Rendering never mutates the arrow or its anchors, so Draw can be
// called every frame.
//
// An Arrow belongs to a single logical renderer and is not safe for
// concurrent use.
type Arrow struct {
	key    Key
	from   Anchor
	target Anchor
	router Router
	style  Style

	width  float64
	height float64

	// live is the stroke width in effect, toggled by hover.
	live    float64
	hovered bool
}

// NewArrow creates an arrow starting at from. The arrow has no target
// until To is called; drawing a targetless arrow emits nothing.
func NewArrow(from Anchor, opts ...Option) *Arrow {
	a := &Arrow{
		from:   from,
		router: Direct,
		style:  DefaultStyle(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.live = a.style.Width
	if a.hovered {
		a.live = a.style.HoverWidth
	}
	return a
}

// To points the arrow at a target. It may be called again to retarget;
// the derived width and height are recomputed from the current anchor
// positions each time.
func (a *Arrow) To(target Anchor) *Arrow {
	a.target = target
	a.width, a.height = 0, 0
	if a.from != nil && a.target != nil {
		f := anchorPoint(a.from)
		t := anchorPoint(a.target)
		a.width = math.Abs(t.X - f.X)
		a.height = math.Abs(t.Y - f.Y)
	}
	return a
}

// Key returns the host-assigned key.
func (a *Arrow) Key() Key { return a.key }

// SetKey assigns the host key.
func (a *Arrow) SetKey(k Key) { a.key = k }

// From returns the source anchor.
func (a *Arrow) From() Anchor { return a.from }

// Target returns the target anchor, nil before To is called.
func (a *Arrow) Target() Anchor { return a.target }

// Width returns the absolute horizontal extent between the anchors, as
// recorded by the last To call.
func (a *Arrow) Width() float64 { return a.width }

// Height returns the absolute vertical extent between the anchors, as
// recorded by the last To call.
func (a *Arrow) Height() float64 { return a.height }

// Style returns a copy of the arrow's style.
func (a *Arrow) Style() Style { return a.style.Clone() }

// SetStyle replaces the style. The live stroke width follows the new
// style and the current hover state.
func (a *Arrow) SetStyle(s Style) {
	a.style = s.Clone()
	if a.hovered {
		a.live = a.style.HoverWidth
	} else {
		a.live = a.style.Width
	}
}

// StrokeWidth returns the stroke width currently in effect.
func (a *Arrow) StrokeWidth() float64 { return a.live }

// Hovered reports whether the pointer is over the connector.
func (a *Arrow) Hovered() bool { return a.hovered }

// PointerEnter switches the stroke to the hover width. It changes
// nothing else and is safe to call repeatedly. Use it directly as the
// host's enter callback.
func (a *Arrow) PointerEnter() {
	a.hovered = true
	a.live = a.style.HoverWidth
}

// PointerLeave restores the normal stroke width. Any enter/leave
// sequence that ends in a leave lands on exactly the configured width.
func (a *Arrow) PointerLeave() {
	a.hovered = false
	a.live = a.style.Width
}

// Waypoints resolves the anchors and runs the router, returning the
// full polyline the connector follows, starting at the source anchor.
// It returns nil when either anchor is missing.
func (a *Arrow) Waypoints() []Point {
	if a.from == nil || a.target == nil {
		return nil
	}
	f := anchorPoint(a.from)
	t := anchorPoint(a.target)
	steps := a.router(f, t)
	pts := make([]Point, 0, len(steps)+1)
	pts = append(pts, f)
	return append(pts, Plan(f, steps)...)
}

// Trace returns the arrow's drawable geometry at current anchor
// positions. The zero Traced means there is nothing to draw.
func (a *Arrow) Trace() Traced {
	pts := a.Waypoints()
	if len(pts) < 2 {
		return Traced{}
	}
	return Trace(pts, a.style.traceOptions())
}

// Draw renders the connector onto the canvas. With no target or an
// empty route it emits no commands and returns nil. Draw issues the
// same command sequence every time it is called on an unchanged arrow.
func (a *Arrow) Draw(c Canvas) error {
	pts := a.Waypoints()
	if len(pts) < 2 {
		return nil
	}
	tr := Trace(pts, a.style.traceOptions())

	c.SetLineWidth(a.live)
	c.SetStrokeColor(a.style.Color)
	if ls, ok := c.(LineStyler); ok {
		ls.SetLineCap(a.style.Cap)
		ls.SetLineJoin(a.style.Join)
	}
	dasher, dashable := c.(Dasher)
	if dashable {
		dasher.SetDash(a.style.Dash, a.style.DashOffset)
	}

	tr.Line.Replay(c)
	if err := c.Stroke(); err != nil {
		return fmt.Errorf("stroke connector %d: %w", a.key, err)
	}

	if tr.Head != nil {
		// The composite head is always a solid stroke.
		if dashable && a.style.IsDashed() {
			dasher.SetDash(nil, 0)
		}
		tr.Head.Replay(c)
		if err := c.Stroke(); err != nil {
			return fmt.Errorf("stroke head %d: %w", a.key, err)
		}
	}

	Logger().Debug("arrow drawn",
		"key", uint64(a.key),
		"waypoints", len(pts),
		"mode", a.style.Mode.String(),
		"hovered", a.hovered,
	)
	return nil
}

// Bounds returns the rectangle spanned by the anchors. It is the
// layout box, not the tight ink extent; see Traced.Bounds for the
// latter. Returns false when the arrow has no target.
func (a *Arrow) Bounds() (Rect, bool) {
	if a.from == nil || a.target == nil {
		return Rect{}, false
	}
	return NewRect(anchorPoint(a.from), anchorPoint(a.target)), true
}

// Hits reports whether (x, y) lies on the stroked connector, within
// half the live stroke width plus a small slop.
func (a *Arrow) Hits(x, y float64) bool {
	tr := a.Trace()
	if tr.IsEmpty() {
		return false
	}
	return tr.Distance(Pt(x, y)) <= a.live/2+hitSlop
}
