package quiver

import "math"

// HeadMode selects how the arrowhead is emitted.
type HeadMode uint8

const (
	// HeadComposite emits the arrowhead as a separate path, stroked
	// independently of the line. Traced.Head is non-nil in this mode.
	HeadComposite HeadMode = iota

	// HeadIntegrated appends the arrowhead commands to the line path so
	// the whole connector is a single stroke.
	HeadIntegrated
)

// headModeNames maps HeadMode values to their string representation.
var headModeNames = [...]string{
	HeadComposite:  "composite",
	HeadIntegrated: "integrated",
}

// String returns the string representation of a HeadMode.
func (m HeadMode) String() string {
	if int(m) < len(headModeNames) {
		return headModeNames[m]
	}
	return "unknown"
}

// TraceOptions configures Trace.
type TraceOptions struct {
	// CornerRadius is the nominal radius of rounded corners. Each joint
	// clamps it so the rounding never consumes more than half of either
	// adjacent segment.
	CornerRadius float64

	// HeadLength is the length of each chevron stroke.
	HeadLength float64

	// HeadSpread is the angle in radians between each chevron stroke
	// and the reversed final-segment direction.
	HeadSpread float64

	// Mode selects the arrowhead variant.
	Mode HeadMode
}

// DefaultTraceOptions returns the standard connector geometry.
func DefaultTraceOptions() TraceOptions {
	return TraceOptions{
		CornerRadius: 40,
		HeadLength:   10,
		HeadSpread:   math.Pi / 6,
		Mode:         HeadComposite,
	}
}

// Traced is the drawable output of Trace.
type Traced struct {
	// Line is the connector body. In HeadIntegrated mode it also
	// carries the arrowhead.
	Line *Path

	// Head is the arrowhead path in HeadComposite mode, nil otherwise.
	Head *Path
}

// IsEmpty returns true when there is nothing to draw.
func (t Traced) IsEmpty() bool {
	return t.Line == nil || t.Line.IsEmpty()
}

// Bounds returns the bounding box of the traced geometry, including
// the arrowhead. The second return value is false when empty.
func (t Traced) Bounds() (Rect, bool) {
	var (
		bbox Rect
		ok   bool
	)
	for _, p := range []*Path{t.Line, t.Head} {
		if p == nil {
			continue
		}
		if b, has := p.Bounds(); has {
			if !ok {
				bbox = b
				ok = true
			} else {
				bbox = bbox.Union(b)
			}
		}
	}
	return bbox, ok
}

// Distance returns the minimum distance from p to the traced geometry.
// Curves are measured against a flattened approximation. Returns +Inf
// for an empty trace.
func (t Traced) Distance(p Point) float64 {
	best := math.Inf(1)
	for _, path := range []*Path{t.Line, t.Head} {
		if path == nil {
			continue
		}
		for _, poly := range path.Flatten(defaultTolerance) {
			if len(poly) == 1 {
				if d := p.Distance(poly[0]); d < best {
					best = d
				}
				continue
			}
			for i := 1; i < len(poly); i++ {
				if d := NewLine(poly[i-1], poly[i]).Distance(p); d < best {
					best = d
				}
			}
		}
	}
	return best
}

// Trace converts a waypoint sequence into canvas geometry: straight
// segments joined by quadratic rounded corners, plus a two-stroke
// chevron arrowhead at the terminus, oriented along the incoming
// segment.
//
// Fewer than two points produce an empty Traced. Exactly two points
// produce a single straight segment with no curve. Trace never mutates
// pts and yields identical output for identical input.
func Trace(pts []Point, o TraceOptions) Traced {
	if len(pts) < 2 {
		return Traced{}
	}

	line := NewPath()
	line.MoveTo(pts[0].X, pts[0].Y)

	for i := 1; i < len(pts)-1; i++ {
		prev, joint, next := pts[i-1], pts[i], pts[i+1]
		d1 := joint.Sub(prev)
		d2 := next.Sub(joint)

		// Clamp the radius to half of each adjacent segment's dominant
		// axis extent, then take the tighter of the two.
		br := math.Min(blendRadius(o.CornerRadius, d1), blendRadius(o.CornerRadius, d2))

		// Stop short of the joint on the incoming segment, curve
		// through the literal joint, resume past it on the outgoing
		// segment. sign(0) is 0, so straight-through axes stay put.
		pullBack := Point{
			X: joint.X - sign(d1.X)*br,
			Y: joint.Y - sign(d1.Y)*br,
		}
		pushForward := Point{
			X: joint.X + sign(d2.X)*br,
			Y: joint.Y + sign(d2.Y)*br,
		}
		line.LineTo(pullBack.X, pullBack.Y)
		line.QuadraticTo(joint.X, joint.Y, pushForward.X, pushForward.Y)
	}

	tip := pts[len(pts)-1]
	line.LineTo(tip.X, tip.Y)

	e1, e2 := headPoints(pts[len(pts)-2], tip, o.HeadLength, o.HeadSpread)

	if o.Mode == HeadIntegrated {
		line.LineTo(e1.X, e1.Y)
		line.MoveTo(tip.X, tip.Y)
		line.LineTo(e2.X, e2.Y)
		return Traced{Line: line}
	}

	head := NewPath()
	head.MoveTo(e1.X, e1.Y)
	head.LineTo(tip.X, tip.Y)
	head.LineTo(e2.X, e2.Y)
	return Traced{Line: line, Head: head}
}

// blendRadius clamps the corner radius for one segment: never more
// than half of the segment's larger axis delta.
func blendRadius(radius float64, d Point) float64 {
	return math.Min(radius, math.Max(math.Abs(d.X), math.Abs(d.Y))/2)
}

// headPoints computes the chevron stroke endpoints for an arrowhead at
// tip, arriving from prev. A zero-length final segment is given
// heading 0 so coincident endpoints stay finite.
func headPoints(prev, tip Point, length, spread float64) (Point, Point) {
	heading := tip.Sub(prev).Angle()
	a1 := heading + math.Pi - spread
	a2 := heading + math.Pi + spread
	e1 := Point{X: tip.X + length*math.Cos(a1), Y: tip.Y + length*math.Sin(a1)}
	e2 := Point{X: tip.X + length*math.Cos(a2), Y: tip.Y + length*math.Sin(a2)}
	return e1, e2
}

// sign returns -1, 0, or 1.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
