package quiver

import "math"

// LineCap specifies the shape of stroke endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// lineCapNames maps LineCap values to their string representation.
var lineCapNames = [...]string{
	LineCapButt:   "butt",
	LineCapRound:  "round",
	LineCapSquare: "square",
}

// String returns the string representation of a LineCap.
func (c LineCap) String() string {
	if int(c) < len(lineCapNames) {
		return lineCapNames[c]
	}
	return "unknown"
}

// LineJoin specifies the shape of stroke joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// lineJoinNames maps LineJoin values to their string representation.
var lineJoinNames = [...]string{
	LineJoinMiter: "miter",
	LineJoinRound: "round",
	LineJoinBevel: "bevel",
}

// String returns the string representation of a LineJoin.
func (j LineJoin) String() string {
	if int(j) < len(lineJoinNames) {
		return lineJoinNames[j]
	}
	return "unknown"
}

// Style bundles everything about how a connector is drawn. The zero
// value is not useful; start from DefaultStyle.
type Style struct {
	// Width is the stroke width when the pointer is elsewhere.
	Width float64

	// HoverWidth is the stroke width while the pointer is over the
	// connector. Hovering changes nothing else.
	HoverWidth float64

	// Color is the stroke color for both the line and the head.
	Color RGBA

	// CornerRadius is the nominal rounding radius at route bends.
	CornerRadius float64

	// HeadLength is the length of each chevron stroke.
	HeadLength float64

	// HeadSpread is the chevron half-angle in radians.
	HeadSpread float64

	// Mode selects composite or integrated arrowheads.
	Mode HeadMode

	// Cap is the stroke endpoint shape, honored by backends that
	// support it.
	Cap LineCap

	// Join is the stroke join shape, honored by backends that
	// support it.
	Join LineJoin

	// Dash is the dash pattern as alternating dash/gap lengths.
	// Nil or empty means a solid line. In HeadComposite mode the head
	// is always stroked solid; in HeadIntegrated mode the pattern runs
	// through the head strokes as well.
	Dash []float64

	// DashOffset is the starting offset into the dash pattern.
	DashOffset float64
}

// DefaultStyle returns the standard connector style: a 2-unit black
// stroke that doubles on hover, 40-unit corner rounding, and a
// composite 10-unit chevron at 30 degrees.
func DefaultStyle() Style {
	return Style{
		Width:        2,
		HoverWidth:   4,
		Color:        Black,
		CornerRadius: 40,
		HeadLength:   10,
		HeadSpread:   math.Pi / 6,
		Mode:         HeadComposite,
		Cap:          LineCapButt,
		Join:         LineJoinRound,
	}
}

// WithWidth returns a copy of the Style with the given stroke width.
func (s Style) WithWidth(w float64) Style {
	s.Width = w
	return s
}

// WithHoverWidth returns a copy of the Style with the given hover width.
func (s Style) WithHoverWidth(w float64) Style {
	s.HoverWidth = w
	return s
}

// WithColor returns a copy of the Style with the given stroke color.
func (s Style) WithColor(c RGBA) Style {
	s.Color = c
	return s
}

// WithCornerRadius returns a copy of the Style with the given radius.
func (s Style) WithCornerRadius(r float64) Style {
	s.CornerRadius = r
	return s
}

// WithHead returns a copy of the Style with the given chevron length
// and spread angle.
func (s Style) WithHead(length, spread float64) Style {
	s.HeadLength = length
	s.HeadSpread = spread
	return s
}

// WithMode returns a copy of the Style with the given head mode.
func (s Style) WithMode(m HeadMode) Style {
	s.Mode = m
	return s
}

// WithCap returns a copy of the Style with the given line cap.
func (s Style) WithCap(c LineCap) Style {
	s.Cap = c
	return s
}

// WithJoin returns a copy of the Style with the given line join.
func (s Style) WithJoin(j LineJoin) Style {
	s.Join = j
	return s
}

// WithDash returns a copy of the Style with a dash pattern built from
// alternating dash/gap lengths. No lengths means solid.
func (s Style) WithDash(lengths ...float64) Style {
	if len(lengths) == 0 {
		s.Dash = nil
		return s
	}
	s.Dash = append([]float64(nil), lengths...)
	return s
}

// WithDashOffset returns a copy of the Style with the dash offset set.
func (s Style) WithDashOffset(offset float64) Style {
	s.DashOffset = offset
	return s
}

// IsDashed returns true if the style has a dash pattern with at least
// one positive length.
func (s Style) IsDashed() bool {
	for _, l := range s.Dash {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the Style.
func (s Style) Clone() Style {
	result := s
	if s.Dash != nil {
		result.Dash = append([]float64(nil), s.Dash...)
	}
	return result
}

// traceOptions extracts the geometry-relevant subset.
func (s Style) traceOptions() TraceOptions {
	return TraceOptions{
		CornerRadius: s.CornerRadius,
		HeadLength:   s.HeadLength,
		HeadSpread:   s.HeadSpread,
		Mode:         s.Mode,
	}
}
