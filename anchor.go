package quiver

// Anchor is anything with a 2D position. Connectors read anchor
// coordinates on every draw, so an anchor backed by live host state
// (a node widget, a table row) keeps the arrow attached as it moves.
// Anchors are never mutated by this package.
type Anchor interface {
	XY() (x, y float64)
}

// XY implements Anchor, so a bare Point can be used wherever an anchor
// is expected.
func (p Point) XY() (float64, float64) {
	return p.X, p.Y
}

// Shifted decorates an anchor with a fixed offset. Useful for attaching
// a connector to the edge of a box whose anchor reports its origin.
type Shifted struct {
	Anchor Anchor
	DX, DY float64
}

// Shift wraps an anchor with an offset.
func Shift(a Anchor, dx, dy float64) Shifted {
	return Shifted{Anchor: a, DX: dx, DY: dy}
}

// XY implements Anchor.
func (s Shifted) XY() (float64, float64) {
	x, y := s.Anchor.XY()
	return x + s.DX, y + s.DY
}

// anchorPoint resolves an anchor's current position.
func anchorPoint(a Anchor) Point {
	x, y := a.XY()
	return Pt(x, y)
}
