package raster

import (
	"math"

	"github.com/gogpu/quiver"
)

// Stroke expansion converts a stroked polyline into a filled outline:
// the offset path on one side goes forward, the other side is appended
// reversed, and caps close the two ends. Joins bridge the segments on
// the outside of each bend.

// verb identifies an outline command.
type verb uint8

const (
	verbMove verb = iota
	verbLine
	verbCube
	verbClose
)

// outlineOp is a single outline command. Lines and moves use To only;
// cubics carry both control points.
type outlineOp struct {
	verb   verb
	c1, c2 quiver.Point
	to     quiver.Point
}

// outline accumulates fill-path commands for the rasterizer.
type outline struct {
	ops []outlineOp
}

func newOutline() *outline {
	return &outline{ops: make([]outlineOp, 0, 64)}
}

func (o *outline) isEmpty() bool {
	return len(o.ops) == 0
}

func (o *outline) moveTo(p quiver.Point) {
	o.ops = append(o.ops, outlineOp{verb: verbMove, to: p})
}

func (o *outline) lineTo(p quiver.Point) {
	o.ops = append(o.ops, outlineOp{verb: verbLine, to: p})
}

func (o *outline) cubeTo(c1, c2, p quiver.Point) {
	o.ops = append(o.ops, outlineOp{verb: verbCube, c1: c1, c2: c2, to: p})
}

func (o *outline) close() {
	o.ops = append(o.ops, outlineOp{verb: verbClose})
}

// extend appends another outline's commands.
func (o *outline) extend(other *outline) {
	o.ops = append(o.ops, other.ops...)
}

// strokeParams carries the geometry settings for one expansion.
type strokeParams struct {
	width      float64
	cap        quiver.LineCap
	join       quiver.LineJoin
	miterLimit float64
	tolerance  float64
}

// expander holds the build state for one polyline.
type expander struct {
	params strokeParams

	forward  *outline
	backward *outline
	output   *outline

	startPt   quiver.Point
	startNorm quiver.Point
	lastPt    quiver.Point
	lastTan   quiver.Point
	lastNorm  quiver.Point

	// joinThresh is the angle threshold below which a join collapses
	// to simple connecting lines.
	joinThresh float64
}

// expandStroke converts a stroked polyline into a closed fill outline.
// Polylines with fewer than two distinct points, or a non-positive
// width, produce an empty outline.
func expandStroke(poly []quiver.Point, p strokeParams) *outline {
	e := &expander{
		params:   p,
		forward:  newOutline(),
		backward: newOutline(),
		output:   newOutline(),
	}
	if p.width <= 0 || len(poly) < 2 {
		return e.output
	}
	e.joinThresh = 2 * p.tolerance / p.width

	e.startPt = poly[0]
	e.lastPt = poly[0]
	for _, pt := range poly[1:] {
		if pt == e.lastPt {
			continue
		}
		tangent := pt.Sub(e.lastPt)
		e.doJoin(tangent)
		e.lastTan = tangent
		e.doLine(tangent, pt)
	}
	e.finish()
	return e.output
}

// doJoin starts the offset paths on the first segment, or bridges from
// the previous segment otherwise.
func (e *expander) doJoin(tan quiver.Point) {
	scale := 0.5 * e.params.width / tan.Length()
	norm := tan.Perp().Mul(scale)
	p0 := e.lastPt

	if e.forward.isEmpty() {
		e.forward.moveTo(p0.Sub(norm))
		e.backward.moveTo(p0.Add(norm))
		e.startNorm = norm
		return
	}
	e.joinSegments(p0, norm, tan)
}

func (e *expander) joinSegments(p0, norm, tan quiver.Point) {
	ab := e.lastTan
	cd := tan
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Near-collinear segments skip the join shape but still connect
	// both offset paths to keep them continuous.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p0.Sub(norm))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	switch e.params.join {
	case quiver.LineJoinBevel:
		e.forward.lineTo(p0.Sub(norm))
		e.backward.lineTo(p0.Add(norm))
	case quiver.LineJoinMiter:
		e.miterJoin(p0, norm, ab, cd, cross, dot, hypot)
	case quiver.LineJoinRound:
		e.roundJoin(p0, norm, cross, dot)
	}
}

// miterJoin extends the outer edges to their intersection when the
// miter limit allows, then falls through to the bevel connection.
func (e *expander) miterJoin(p0, norm, ab, cd quiver.Point, cross, dot, hypot float64) {
	limitSq := e.params.miterLimit * e.params.miterLimit
	if cross != 0 && 2*hypot < (hypot+dot)*limitSq {
		lastScale := 0.5 * e.params.width / ab.Length()
		lastNorm := ab.Perp().Mul(lastScale)

		if cross > 0 {
			// Outer edge is on the forward path.
			fpLast := p0.Sub(lastNorm)
			fpThis := p0.Sub(norm)
			h := ab.Cross(fpThis.Sub(fpLast)) / cross
			e.forward.lineTo(fpThis.Add(cd.Mul(-h)))
			e.backward.lineTo(p0)
		} else {
			fpLast := p0.Add(lastNorm)
			fpThis := p0.Add(norm)
			h := ab.Cross(fpThis.Sub(fpLast)) / cross
			e.backward.lineTo(fpThis.Add(cd.Mul(-h)))
			e.forward.lineTo(p0)
		}
	}
	e.forward.lineTo(p0.Sub(norm))
	e.backward.lineTo(p0.Add(norm))
}

// roundJoin arcs the outer edge around the bend. The inner edge pinches
// straight to its new offset point.
func (e *expander) roundJoin(p0, norm quiver.Point, cross, dot float64) {
	lastScale := 0.5 * e.params.width / e.lastTan.Length()
	lastNorm := e.lastTan.Perp().Mul(lastScale)

	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward.lineTo(p0.Add(norm))
		e.arc(e.forward, p0, lastNorm.Mul(-1), angle)
		e.forward.lineTo(p0.Sub(norm))
	} else {
		e.forward.lineTo(p0.Sub(norm))
		e.arc(e.backward, p0, lastNorm, angle)
		e.backward.lineTo(p0.Add(norm))
	}
}

// doLine extends both offset paths along a segment.
func (e *expander) doLine(tangent quiver.Point, p1 quiver.Point) {
	scale := 0.5 * e.params.width / tangent.Length()
	norm := tangent.Perp().Mul(scale)

	e.forward.lineTo(p1.Sub(norm))
	e.backward.lineTo(p1.Add(norm))
	e.lastPt = p1
	e.lastNorm = norm
}

// finish closes the outline: forward path, end cap, reversed backward
// path, start cap.
func (e *expander) finish() {
	if e.forward.isEmpty() {
		return
	}

	e.output.extend(e.forward)

	if !e.backward.isEmpty() {
		e.applyCap(e.lastPt, e.lastNorm.Mul(-1), false)
	}

	e.appendReversed(e.backward)
	e.applyCap(e.startPt, e.startNorm, true)

	e.forward = newOutline()
	e.backward = newOutline()
}

// applyCap closes one end of the stroke. The normal points from the
// center toward the outline's current edge; closing connects to the
// opposite edge.
func (e *expander) applyCap(center, norm quiver.Point, closePath bool) {
	switch e.params.cap {
	case quiver.LineCapButt:
		if closePath {
			e.output.close()
		} else {
			e.output.lineTo(center.Sub(norm))
		}

	case quiver.LineCapRound:
		e.arc(e.output, center, norm, math.Pi)
		if closePath {
			e.output.close()
		}

	case quiver.LineCapSquare:
		e.output.lineTo(capCorner(center, norm, 1, 1))
		e.output.lineTo(capCorner(center, norm, -1, 1))
		if closePath {
			e.output.close()
		} else {
			e.output.lineTo(capCorner(center, norm, -1, 0))
		}
	}
}

// capCorner maps a unit square corner through the affine frame
// [norm.X, norm.Y; -norm.Y, norm.X] anchored at center.
func capCorner(center, norm quiver.Point, x, y float64) quiver.Point {
	return quiver.Point{
		X: norm.X*x - norm.Y*y + center.X,
		Y: norm.Y*x + norm.X*y + center.Y,
	}
}

// arc sweeps a circular arc from the direction of norm through angle,
// approximated by cubic segments of at most a quarter turn. The caller
// positions the outline at the arc's start point.
func (e *expander) arc(out *outline, center, norm quiver.Point, angle float64) {
	numSegments := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if numSegments < 1 {
		numSegments = 1
	}

	angleStep := angle / float64(numSegments)
	currentAngle := norm.Angle()
	radius := norm.Length()

	for i := 0; i < numSegments; i++ {
		e.arcSegment(out, center, radius, currentAngle, currentAngle+angleStep)
		currentAngle += angleStep
	}
}

// arcSegment emits one cubic approximating an arc of up to a quarter
// turn.
func (e *expander) arcSegment(out *outline, center quiver.Point, radius, a0, a1 float64) {
	da := a1 - a0
	alpha := math.Sin(da) * (math.Sqrt(4+3*math.Tan(da/2)*math.Tan(da/2)) - 1) / 3

	cos0, sin0 := math.Cos(a0), math.Sin(a0)
	cos1, sin1 := math.Cos(a1), math.Sin(a1)

	p1 := quiver.Point{X: center.X + radius*cos0, Y: center.Y + radius*sin0}
	p2 := quiver.Point{X: center.X + radius*cos1, Y: center.Y + radius*sin1}

	c1 := quiver.Point{X: p1.X - alpha*radius*sin0, Y: p1.Y + alpha*radius*cos0}
	c2 := quiver.Point{X: p2.X + alpha*radius*sin1, Y: p2.Y - alpha*radius*cos1}

	out.cubeTo(c1, c2, p2)
}

// appendReversed emits the backward path in reverse order, stepping
// each command to the previous command's endpoint and swapping cubic
// controls.
func (e *expander) appendReversed(o *outline) {
	ops := o.ops
	for i := len(ops) - 1; i >= 1; i-- {
		endPt := ops[i-1].to
		switch ops[i].verb {
		case verbLine:
			e.output.lineTo(endPt)
		case verbCube:
			e.output.cubeTo(ops[i].c2, ops[i].c1, endPt)
		}
	}
}
