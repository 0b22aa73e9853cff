// Package raster renders connector arrows onto an in-memory RGBA image.
// It implements quiver.Canvas with CPU stroke expansion: pending paths
// are flattened to polylines, dashed if a pattern is set, expanded into
// fill outlines, and rasterized with golang.org/x/image/vector.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/quiver"
)

const (
	// defaultTolerance bounds the flattening error in pixels.
	defaultTolerance = 0.25

	// defaultMiterLimit matches the PDF and SVG default.
	defaultMiterLimit = 4.0
)

// Canvas is a CPU-rasterized drawing surface backed by an
// image.RGBA. It satisfies quiver.Canvas, quiver.Dasher, and
// quiver.LineStyler. Canvas is not safe for concurrent use.
type Canvas struct {
	w, h int
	img  *image.RGBA
	ras  *vector.Rasterizer

	path *quiver.Path

	lineWidth  float64
	color      color.Color
	capStyle   quiver.LineCap
	joinStyle  quiver.LineJoin
	dash       []float64
	dashOff    float64
	tolerance  float64
	miterLimit float64
	background color.Color
}

var (
	_ quiver.Canvas     = (*Canvas)(nil)
	_ quiver.Dasher     = (*Canvas)(nil)
	_ quiver.LineStyler = (*Canvas)(nil)
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithBackground fills the canvas with col before any drawing. The
// default background is fully transparent.
func WithBackground(col color.Color) Option {
	return func(c *Canvas) {
		c.background = col
	}
}

// WithTolerance sets the curve flattening tolerance in pixels.
// Non-positive values are ignored.
func WithTolerance(t float64) Option {
	return func(c *Canvas) {
		if t > 0 {
			c.tolerance = t
		}
	}
}

// New creates a canvas of the given pixel size.
func New(width, height int, opts ...Option) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		w:          width,
		h:          height,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:        vector.NewRasterizer(width, height),
		path:       quiver.NewPath(),
		lineWidth:  1,
		color:      color.Black,
		capStyle:   quiver.LineCapButt,
		joinStyle:  quiver.LineJoinRound,
		tolerance:  defaultTolerance,
		miterLimit: defaultMiterLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.background != nil {
		c.Clear(c.background)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.h }

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.path.MoveTo(x, y)
}

// LineTo extends the pending path with a straight segment.
func (c *Canvas) LineTo(x, y float64) {
	c.path.LineTo(x, y)
}

// QuadraticTo extends the pending path with a quadratic curve.
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	c.path.QuadraticTo(cx, cy, x, y)
}

// SetLineWidth sets the stroke width for subsequent strokes.
func (c *Canvas) SetLineWidth(w float64) {
	c.lineWidth = w
}

// SetStrokeColor sets the stroke color for subsequent strokes.
func (c *Canvas) SetStrokeColor(col color.Color) {
	c.color = col
}

// SetDash sets the dash pattern for subsequent strokes. A nil or empty
// pattern restores a solid line.
func (c *Canvas) SetDash(pattern []float64, offset float64) {
	if len(pattern) == 0 {
		c.dash = nil
		c.dashOff = 0
		return
	}
	c.dash = append([]float64(nil), pattern...)
	c.dashOff = offset
}

// SetLineCap sets the stroke cap for subsequent strokes.
func (c *Canvas) SetLineCap(cap quiver.LineCap) {
	c.capStyle = cap
}

// SetLineJoin sets the stroke join for subsequent strokes.
func (c *Canvas) SetLineJoin(join quiver.LineJoin) {
	c.joinStyle = join
}

// Stroke rasterizes the pending path with the current stroke settings
// and clears it. Stroking an empty path is a no-op.
func (c *Canvas) Stroke() error {
	polys := c.path.Flatten(c.tolerance)
	c.path.Clear()

	params := strokeParams{
		width:      c.lineWidth,
		cap:        c.capStyle,
		join:       c.joinStyle,
		miterLimit: c.miterLimit,
		tolerance:  c.tolerance,
	}

	out := newOutline()
	for _, poly := range polys {
		if len(poly) < 2 {
			continue
		}
		for _, run := range splitDash(poly, c.dash, c.dashOff) {
			if len(run) < 2 {
				continue
			}
			out.extend(expandStroke(run, params))
		}
	}
	if out.isEmpty() {
		return nil
	}

	c.fill(out, c.color)
	quiver.Logger().Debug("stroke rasterized",
		"polylines", len(polys), "outlineOps", len(out.ops))
	return nil
}

// Clear fills the whole canvas with col, replacing existing pixels.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect fills an axis-aligned rectangle with col.
func (c *Canvas) FillRect(r quiver.Rect, col color.Color) {
	o := newOutline()
	o.moveTo(r.Min)
	o.lineTo(quiver.Pt(r.Max.X, r.Min.Y))
	o.lineTo(r.Max)
	o.lineTo(quiver.Pt(r.Min.X, r.Max.Y))
	o.close()
	c.fill(o, col)
}

// StrokeRect outlines an axis-aligned rectangle with the given stroke
// width, independent of the pending path and stroke settings.
func (c *Canvas) StrokeRect(r quiver.Rect, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	outer := r.Expand(width / 2)
	inner := r.Expand(-width / 2)

	o := newOutline()
	o.moveTo(outer.Min)
	o.lineTo(quiver.Pt(outer.Max.X, outer.Min.Y))
	o.lineTo(outer.Max)
	o.lineTo(quiver.Pt(outer.Min.X, outer.Max.Y))
	o.close()

	// The inner ring winds the opposite way so the middle stays empty.
	if inner.Width() > 0 && inner.Height() > 0 {
		o.moveTo(inner.Min)
		o.lineTo(quiver.Pt(inner.Min.X, inner.Max.Y))
		o.lineTo(inner.Max)
		o.lineTo(quiver.Pt(inner.Max.X, inner.Min.Y))
		o.close()
	}
	c.fill(o, col)
}

// fill rasterizes one outline onto the image with col.
func (c *Canvas) fill(o *outline, col color.Color) {
	c.ras.Reset(c.w, c.h)
	c.ras.DrawOp = draw.Over
	for _, op := range o.ops {
		switch op.verb {
		case verbMove:
			c.ras.MoveTo(float32(op.to.X), float32(op.to.Y))
		case verbLine:
			c.ras.LineTo(float32(op.to.X), float32(op.to.Y))
		case verbCube:
			c.ras.CubeTo(
				float32(op.c1.X), float32(op.c1.Y),
				float32(op.c2.X), float32(op.c2.Y),
				float32(op.to.X), float32(op.to.Y),
			)
		case verbClose:
			c.ras.ClosePath()
		}
	}
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Image returns the backing image. The canvas keeps drawing into it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
