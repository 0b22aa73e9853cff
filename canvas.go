package quiver

import "image/color"

// Canvas is the drawing surface a connector renders onto. It is the
// complete output contract: connectors emit only moves, lines,
// quadratic curves, and stroke boundaries, configured by width and
// color. Implementations are expected to accumulate geometry commands
// into a pending path and consume it on Stroke.
//
// This package ships three implementations: Recorder (command
// capture), raster.Canvas (CPU rasterization), and pdf.Canvas (vector
// PDF). Hosts with their own surface implement Canvas directly.
type Canvas interface {
	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo extends the current subpath with a straight segment.
	LineTo(x, y float64)

	// QuadraticTo extends the current subpath with a quadratic Bezier
	// curve through control point (cx, cy) to (x, y).
	QuadraticTo(cx, cy, x, y float64)

	// SetLineWidth sets the stroke width for subsequent strokes.
	SetLineWidth(w float64)

	// SetStrokeColor sets the stroke color for subsequent strokes.
	SetStrokeColor(c color.Color)

	// Stroke draws the pending path and clears it.
	Stroke() error
}

// Dasher is implemented by canvases that support dashed strokes.
// Pattern holds alternating dash/gap lengths; nil or empty restores a
// solid line. Arrows probe for this interface and skip dashing on
// canvases that lack it.
type Dasher interface {
	SetDash(pattern []float64, offset float64)
}

// LineStyler is implemented by canvases that support stroke cap and
// join control. As with Dasher, arrows apply these only where
// available.
type LineStyler interface {
	SetLineCap(c LineCap)
	SetLineJoin(j LineJoin)
}
