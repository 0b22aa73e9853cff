package quiver

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing. It starts a new subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Path is an ordered list of drawing commands. Connectors only ever
// produce moves, lines, and quadratic curves, so that is the whole
// element vocabulary.
type Path struct {
	elements []PathElement
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.current = p.current
	return result
}

// Translate returns a copy of the path shifted by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(e.Point.X+dx, e.Point.Y+dy)
		case LineTo:
			result.LineTo(e.Point.X+dx, e.Point.Y+dy)
		case QuadTo:
			result.QuadraticTo(e.Control.X+dx, e.Control.Y+dy, e.Point.X+dx, e.Point.Y+dy)
		}
	}
	return result
}

// Bounds returns the tight bounding box of the drawn geometry.
// The second return value is false for an empty path.
func (p *Path) Bounds() (Rect, bool) {
	var (
		bbox Rect
		ok   bool
		cur  Point
	)
	include := func(r Rect) {
		if !ok {
			bbox = r
			ok = true
			return
		}
		bbox = bbox.Union(r)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			include(NewRect(e.Point, e.Point))
			cur = e.Point
		case LineTo:
			include(NewRect(cur, e.Point))
			cur = e.Point
		case QuadTo:
			include(QuadBez{P0: cur, P1: e.Control, P2: e.Point}.BoundingBox())
			cur = e.Point
		}
	}
	return bbox, ok
}

// Replay emits the path's commands onto a canvas. It issues only
// geometry commands; the caller decides when to stroke.
func (p *Path) Replay(c Canvas) {
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			c.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			c.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			c.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		}
	}
}

// Flatten converts the path into polylines, one per subpath. Curves are
// approximated within the given tolerance (a tolerance <= 0 selects a
// default). Subpath boundaries matter to stroking: each polyline gets
// its own caps.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}

	var (
		polys [][]Point
		poly  []Point
		cur   Point
	)
	flush := func() {
		if len(poly) > 0 {
			polys = append(polys, poly)
			poly = nil
		}
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			poly = append(poly, e.Point)
			cur = e.Point
		case LineTo:
			if len(poly) == 0 {
				poly = append(poly, cur)
			}
			poly = append(poly, e.Point)
			cur = e.Point
		case QuadTo:
			if len(poly) == 0 {
				poly = append(poly, cur)
			}
			poly = QuadBez{P0: cur, P1: e.Control, P2: e.Point}.Flatten(tolerance, poly)
			cur = e.Point
		}
	}
	flush()
	return polys
}
