package quiver

import "image/color"

// OpKind identifies the type of a recorded canvas command.
type OpKind uint8

const (
	// OpMoveTo starts a new subpath.
	OpMoveTo OpKind = iota
	// OpLineTo draws a straight segment.
	OpLineTo
	// OpQuadTo draws a quadratic curve.
	OpQuadTo
	// OpLineWidth sets the stroke width.
	OpLineWidth
	// OpStrokeColor sets the stroke color.
	OpStrokeColor
	// OpDash sets the dash pattern.
	OpDash
	// OpLineCap sets the stroke cap.
	OpLineCap
	// OpLineJoin sets the stroke join.
	OpLineJoin
	// OpStroke draws and clears the pending path.
	OpStroke
)

// opKindNames maps OpKind values to their string representation.
var opKindNames = [...]string{
	OpMoveTo:      "MoveTo",
	OpLineTo:      "LineTo",
	OpQuadTo:      "QuadTo",
	OpLineWidth:   "SetLineWidth",
	OpStrokeColor: "SetStrokeColor",
	OpDash:        "SetDash",
	OpLineCap:     "SetLineCap",
	OpLineJoin:    "SetLineJoin",
	OpStroke:      "Stroke",
}

// String returns the string representation of an OpKind.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// Op is one recorded canvas command. Only the fields relevant to Kind
// are set; the rest stay zero, so recorded sequences compare cleanly
// with reflect.DeepEqual.
type Op struct {
	Kind OpKind

	// To is the endpoint of MoveTo, LineTo, and QuadTo.
	To Point
	// Ctrl is the control point of QuadTo.
	Ctrl Point

	// Width is the value of SetLineWidth.
	Width float64
	// Color is the value of SetStrokeColor.
	Color color.Color

	// Dash and Offset are the values of SetDash.
	Dash   []float64
	Offset float64

	// Cap and Join are the values of SetLineCap and SetLineJoin.
	Cap  LineCap
	Join LineJoin
}

// Recorder is a Canvas that captures commands instead of drawing. It
// backs equality tests and hosts that replay connector geometry onto
// surfaces this package does not know about.
type Recorder struct {
	ops []Op
}

var (
	_ Canvas     = (*Recorder)(nil)
	_ Dasher     = (*Recorder)(nil)
	_ LineStyler = (*Recorder)(nil)
)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{ops: make([]Op, 0, 32)}
}

// MoveTo records a subpath start.
func (r *Recorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, Op{Kind: OpMoveTo, To: Pt(x, y)})
}

// LineTo records a straight segment.
func (r *Recorder) LineTo(x, y float64) {
	r.ops = append(r.ops, Op{Kind: OpLineTo, To: Pt(x, y)})
}

// QuadraticTo records a quadratic curve.
func (r *Recorder) QuadraticTo(cx, cy, x, y float64) {
	r.ops = append(r.ops, Op{Kind: OpQuadTo, Ctrl: Pt(cx, cy), To: Pt(x, y)})
}

// SetLineWidth records a stroke width change.
func (r *Recorder) SetLineWidth(w float64) {
	r.ops = append(r.ops, Op{Kind: OpLineWidth, Width: w})
}

// SetStrokeColor records a stroke color change.
func (r *Recorder) SetStrokeColor(c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpStrokeColor, Color: c})
}

// SetDash records a dash pattern change. The pattern is copied.
func (r *Recorder) SetDash(pattern []float64, offset float64) {
	var dash []float64
	if len(pattern) > 0 {
		dash = append([]float64(nil), pattern...)
	}
	r.ops = append(r.ops, Op{Kind: OpDash, Dash: dash, Offset: offset})
}

// SetLineCap records a cap change.
func (r *Recorder) SetLineCap(c LineCap) {
	r.ops = append(r.ops, Op{Kind: OpLineCap, Cap: c})
}

// SetLineJoin records a join change.
func (r *Recorder) SetLineJoin(j LineJoin) {
	r.ops = append(r.ops, Op{Kind: OpLineJoin, Join: j})
}

// Stroke records a stroke boundary. It never fails.
func (r *Recorder) Stroke() error {
	r.ops = append(r.ops, Op{Kind: OpStroke})
	return nil
}

// Ops returns the recorded commands in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Strokes returns the number of recorded stroke boundaries.
func (r *Recorder) Strokes() int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == OpStroke {
			n++
		}
	}
	return n
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
