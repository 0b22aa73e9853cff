package raster

import (
	"math"
	"testing"

	"github.com/gogpu/quiver"
)

const epsilon = 1e-9

func pointsEqual(p1, p2 quiver.Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func testParams(cap quiver.LineCap, join quiver.LineJoin) strokeParams {
	return strokeParams{
		width:      2,
		cap:        cap,
		join:       join,
		miterLimit: 4,
		tolerance:  0.25,
	}
}

func countVerb(o *outline, v verb) int {
	n := 0
	for _, op := range o.ops {
		if op.verb == v {
			n++
		}
	}
	return n
}

func containsLineTo(o *outline, p quiver.Point) bool {
	for _, op := range o.ops {
		if op.verb == verbLine && pointsEqual(op.to, p, epsilon) {
			return true
		}
	}
	return false
}

// ----------------------------------------------------------------------------
// Expansion Tests
// ----------------------------------------------------------------------------

func TestExpandStroke_ButtSegment(t *testing.T) {
	poly := []quiver.Point{quiver.Pt(0, 0), quiver.Pt(10, 0)}
	out := expandStroke(poly, testParams(quiver.LineCapButt, quiver.LineJoinBevel))

	want := []outlineOp{
		{verb: verbMove, to: quiver.Pt(0, -1)},
		{verb: verbLine, to: quiver.Pt(10, -1)},
		{verb: verbLine, to: quiver.Pt(10, 1)},
		{verb: verbLine, to: quiver.Pt(0, 1)},
		{verb: verbClose},
	}
	if len(out.ops) != len(want) {
		t.Fatalf("len(ops) = %d, want %d", len(out.ops), len(want))
	}
	for i, w := range want {
		got := out.ops[i]
		if got.verb != w.verb {
			t.Errorf("ops[%d].verb = %d, want %d", i, got.verb, w.verb)
		}
		if w.verb != verbClose && !pointsEqual(got.to, w.to, epsilon) {
			t.Errorf("ops[%d].to = %v, want %v", i, got.to, w.to)
		}
	}
}

func TestExpandStroke_Empty(t *testing.T) {
	tests := []struct {
		name  string
		poly  []quiver.Point
		width float64
	}{
		{"nil polyline", nil, 2},
		{"single point", []quiver.Point{quiver.Pt(5, 5)}, 2},
		{"coincident points", []quiver.Point{quiver.Pt(5, 5), quiver.Pt(5, 5)}, 2},
		{"zero width", []quiver.Point{quiver.Pt(0, 0), quiver.Pt(10, 0)}, 0},
		{"negative width", []quiver.Point{quiver.Pt(0, 0), quiver.Pt(10, 0)}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams(quiver.LineCapButt, quiver.LineJoinBevel)
			p.width = tt.width
			out := expandStroke(tt.poly, p)
			if !out.isEmpty() {
				t.Errorf("expandStroke produced %d ops, want empty", len(out.ops))
			}
		})
	}
}

func TestExpandStroke_SkipsZeroLengthSegments(t *testing.T) {
	poly := []quiver.Point{quiver.Pt(0, 0), quiver.Pt(0, 0), quiver.Pt(10, 0)}
	out := expandStroke(poly, testParams(quiver.LineCapButt, quiver.LineJoinBevel))

	if len(out.ops) != 5 {
		t.Fatalf("len(ops) = %d, want 5", len(out.ops))
	}
	if !containsLineTo(out, quiver.Pt(10, -1)) || !containsLineTo(out, quiver.Pt(10, 1)) {
		t.Error("outline missing the offset edges of the single real segment")
	}
}

// ----------------------------------------------------------------------------
// Join Tests
// ----------------------------------------------------------------------------

func TestExpandStroke_MiterJoin(t *testing.T) {
	poly := []quiver.Point{quiver.Pt(0, 0), quiver.Pt(10, 0), quiver.Pt(10, 10)}
	out := expandStroke(poly, testParams(quiver.LineCapButt, quiver.LineJoinMiter))

	// A right-angle bend with width 2 extends the outer edges to their
	// intersection at (11, -1).
	if !containsLineTo(out, quiver.Pt(11, -1)) {
		t.Errorf("miter join missing intersection point (11, -1); ops = %v", out.ops)
	}
	if n := countVerb(out, verbCube); n != 0 {
		t.Errorf("miter join emitted %d curves, want 0", n)
	}
}

func TestExpandStroke_MiterLimit(t *testing.T) {
	poly := []quiver.Point{quiver.Pt(0, 0), quiver.Pt(10, 0), quiver.Pt(10, 10)}
	p := testParams(quiver.LineCapButt, quiver.LineJoinMiter)
	p.miterLimit = 1

	out := expandStroke(poly, p)
	if containsLineTo(out, quiver.Pt(11, -1)) {
		t.Error("miter point emitted despite exceeding the miter limit")
	}
}

func TestExpandStroke_BevelJoin(t *testing.T) {
	poly := []quiver.Point{quiver.Pt(0, 0), quiver.Pt(10, 0), quiver.Pt(10, 10)}
	out := expandStroke(poly, testParams(quiver.LineCapButt, quiver.LineJoinBevel))

	if n := countVerb(out, verbCube); n != 0 {
		t.Errorf("bevel join emitted %d curves, want 0", n)
	}
	if containsLineTo(out, quiver.Pt(11, -1)) {
		t.Error("bevel join emitted a miter point")
	}
	// Both offset edges of both segments are present.
	for _, p := range []quiver.Point{
		quiver.Pt(10, -1), quiver.Pt(11, 0), quiver.Pt(11, 10), quiver.Pt(9, 10),
	} {
		if !containsLineTo(out, p) {
			t.Errorf("outline missing edge point %v", p)
		}
	}
}

func TestExpandStroke_RoundJoin(t *testing.T) {
	poly := []quiver.Point{quiver.Pt(0, 0), quiver.Pt(10, 0), quiver.Pt(10, 10)}
	out := expandStroke(poly, testParams(quiver.LineCapButt, quiver.LineJoinRound))

	// A quarter-turn arc needs exactly one cubic segment.
	if n := countVerb(out, verbCube); n != 1 {
		t.Errorf("round join emitted %d curves, want 1", n)
	}
}

func TestExpandStroke_RoundJoinOppositeTurn(t *testing.T) {
	poly := []quiver.Point{quiver.Pt(0, 0), quiver.Pt(10, 0), quiver.Pt(10, -10)}
	out := expandStroke(poly, testParams(quiver.LineCapButt, quiver.LineJoinRound))

	if n := countVerb(out, verbCube); n != 1 {
		t.Errorf("round join emitted %d curves, want 1", n)
	}
	// The inner edge pinches straight to the next segment's offset.
	if !containsLineTo(out, quiver.Pt(9, 0)) {
		t.Error("outline missing inner edge point (9, 0)")
	}
}

func TestExpandStroke_CollinearSkipsJoin(t *testing.T) {
	poly := []quiver.Point{quiver.Pt(0, 0), quiver.Pt(5, 0), quiver.Pt(10, 0)}
	out := expandStroke(poly, testParams(quiver.LineCapButt, quiver.LineJoinRound))

	if n := countVerb(out, verbCube); n != 0 {
		t.Errorf("collinear segments emitted %d join curves, want 0", n)
	}
	if !containsLineTo(out, quiver.Pt(5, -1)) || !containsLineTo(out, quiver.Pt(5, 1)) {
		t.Error("collinear connection points missing from outline")
	}
}

// ----------------------------------------------------------------------------
// Cap Tests
// ----------------------------------------------------------------------------

func TestExpandStroke_SquareCap(t *testing.T) {
	poly := []quiver.Point{quiver.Pt(0, 0), quiver.Pt(10, 0)}
	out := expandStroke(poly, testParams(quiver.LineCapSquare, quiver.LineJoinBevel))

	// Square caps push the corners half a width past each endpoint.
	for _, p := range []quiver.Point{
		quiver.Pt(11, -1), quiver.Pt(11, 1),
		quiver.Pt(-1, 1), quiver.Pt(-1, -1),
	} {
		if !containsLineTo(out, p) {
			t.Errorf("square cap missing corner %v", p)
		}
	}
}

func TestExpandStroke_RoundCap(t *testing.T) {
	poly := []quiver.Point{quiver.Pt(0, 0), quiver.Pt(10, 0)}
	out := expandStroke(poly, testParams(quiver.LineCapRound, quiver.LineJoinBevel))

	// Each half-circle cap takes two cubic segments.
	if n := countVerb(out, verbCube); n != 4 {
		t.Errorf("round caps emitted %d curves, want 4", n)
	}
	if out.ops[len(out.ops)-1].verb != verbClose {
		t.Error("outline does not end with a close")
	}
}

func TestExpandStroke_OutlineShape(t *testing.T) {
	poly := []quiver.Point{quiver.Pt(0, 0), quiver.Pt(40, 0), quiver.Pt(40, 30)}
	for _, cap := range []quiver.LineCap{quiver.LineCapButt, quiver.LineCapRound, quiver.LineCapSquare} {
		out := expandStroke(poly, testParams(cap, quiver.LineJoinRound))
		if out.isEmpty() {
			t.Fatalf("cap %v: empty outline", cap)
		}
		if out.ops[0].verb != verbMove {
			t.Errorf("cap %v: outline starts with verb %d, want move", cap, out.ops[0].verb)
		}
		if out.ops[len(out.ops)-1].verb != verbClose {
			t.Errorf("cap %v: outline does not close", cap)
		}
	}
}
