package quiver

import (
	"reflect"
	"testing"
)

func TestRecorder_RecordsInOrder(t *testing.T) {
	rec := NewRecorder()

	rec.SetLineWidth(3)
	rec.SetStrokeColor(Red)
	rec.MoveTo(0, 0)
	rec.LineTo(10, 0)
	rec.QuadraticTo(15, 5, 20, 0)
	if err := rec.Stroke(); err != nil {
		t.Fatalf("Stroke() = %v", err)
	}

	kinds := make([]OpKind, 0, 6)
	for _, op := range rec.Ops() {
		kinds = append(kinds, op.Kind)
	}
	want := []OpKind{OpLineWidth, OpStrokeColor, OpMoveTo, OpLineTo, OpQuadTo, OpStroke}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("op kinds = %v, want %v", kinds, want)
	}

	ops := rec.Ops()
	if ops[0].Width != 3 {
		t.Errorf("width = %v, want 3", ops[0].Width)
	}
	if ops[1].Color != Red {
		t.Errorf("color = %v, want Red", ops[1].Color)
	}
	if !pointsEqual(ops[4].Ctrl, Pt(15, 5), epsilon) || !pointsEqual(ops[4].To, Pt(20, 0), epsilon) {
		t.Errorf("quad op = ctrl %v to %v", ops[4].Ctrl, ops[4].To)
	}
}

func TestRecorder_DashAndLineStyle(t *testing.T) {
	rec := NewRecorder()

	// The recorder supports the optional canvas capabilities.
	var _ Dasher = rec
	var _ LineStyler = rec

	rec.SetDash([]float64{4, 2}, 1)
	rec.SetLineCap(LineCapRound)
	rec.SetLineJoin(LineJoinBevel)

	ops := rec.Ops()
	if len(ops) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(ops))
	}
	if !reflect.DeepEqual(ops[0].Dash, []float64{4, 2}) || ops[0].Offset != 1 {
		t.Errorf("dash op = %v offset %v", ops[0].Dash, ops[0].Offset)
	}
	if ops[1].Cap != LineCapRound {
		t.Errorf("cap = %v, want round", ops[1].Cap)
	}
	if ops[2].Join != LineJoinBevel {
		t.Errorf("join = %v, want bevel", ops[2].Join)
	}
}

func TestRecorder_DashCopied(t *testing.T) {
	rec := NewRecorder()
	pattern := []float64{4, 2}
	rec.SetDash(pattern, 0)

	pattern[0] = 99
	if rec.Ops()[0].Dash[0] != 4 {
		t.Error("recorder should copy the dash pattern")
	}
}

func TestRecorder_Strokes(t *testing.T) {
	rec := NewRecorder()
	if rec.Strokes() != 0 {
		t.Errorf("Strokes() = %d, want 0", rec.Strokes())
	}

	rec.MoveTo(0, 0)
	rec.LineTo(1, 1)
	rec.Stroke()
	rec.MoveTo(2, 2)
	rec.LineTo(3, 3)
	rec.Stroke()

	if rec.Strokes() != 2 {
		t.Errorf("Strokes() = %d, want 2", rec.Strokes())
	}
}

func TestRecorder_Reset(t *testing.T) {
	rec := NewRecorder()
	rec.MoveTo(0, 0)
	rec.Stroke()
	rec.Reset()

	if len(rec.Ops()) != 0 {
		t.Errorf("Ops() after Reset = %v, want empty", rec.Ops())
	}
	if rec.Strokes() != 0 {
		t.Errorf("Strokes() after Reset = %d, want 0", rec.Strokes())
	}
}

func TestOpKind_String(t *testing.T) {
	tests := []struct {
		kind   OpKind
		expect string
	}{
		{OpMoveTo, "MoveTo"},
		{OpQuadTo, "QuadTo"},
		{OpStroke, "Stroke"},
		{OpKind(200), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expect {
			t.Errorf("OpKind(%d).String() = %q, want %q", tt.kind, got, tt.expect)
		}
	}
}
