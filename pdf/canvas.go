// Package pdf renders connector arrows into PDF documents. It
// implements quiver.Canvas on a gofpdf page, mapping path commands to
// PDF path operators, so arrows draw into vector output the same way
// they draw onto a raster canvas.
package pdf

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/quiver"
)

// Canvas is a PDF drawing surface. Coordinates are PDF points with the
// origin at the top-left corner, matching the connector coordinate
// space. Errors inside gofpdf are sticky; Stroke and the output
// methods surface them.
type Canvas struct {
	doc    *gofpdf.Fpdf
	width  float64
	height float64
}

var (
	_ quiver.Canvas     = (*Canvas)(nil)
	_ quiver.Dasher     = (*Canvas)(nil)
	_ quiver.LineStyler = (*Canvas)(nil)
)

// New creates a single-page PDF canvas of the given size in points.
func New(width, height float64) *Canvas {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
		OrientationStr: "",
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineCapStyle("butt")
	doc.SetLineJoinStyle("round")
	return &Canvas{doc: doc, width: width, height: height}
}

// Width returns the page width in points.
func (c *Canvas) Width() float64 { return c.width }

// Height returns the page height in points.
func (c *Canvas) Height() float64 { return c.height }

// AddPage starts a new page of the same size. Subsequent drawing lands
// on the new page.
func (c *Canvas) AddPage() {
	c.doc.AddPage()
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.doc.MoveTo(x, y)
}

// LineTo extends the pending path with a straight segment.
func (c *Canvas) LineTo(x, y float64) {
	c.doc.LineTo(x, y)
}

// QuadraticTo extends the pending path with a quadratic curve.
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	c.doc.CurveTo(cx, cy, x, y)
}

// SetLineWidth sets the stroke width in points.
func (c *Canvas) SetLineWidth(w float64) {
	c.doc.SetLineWidth(w)
}

// SetStrokeColor sets the stroke color. Alpha maps to a PDF blend
// setting.
func (c *Canvas) SetStrokeColor(col color.Color) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.doc.SetDrawColor(int(n.R), int(n.G), int(n.B))
	c.doc.SetAlpha(float64(n.A)/255, "Normal")
}

// SetDash sets the dash pattern in points. A nil or empty pattern
// restores a solid line.
func (c *Canvas) SetDash(pattern []float64, offset float64) {
	if len(pattern) == 0 {
		c.doc.SetDashPattern([]float64{}, 0)
		return
	}
	c.doc.SetDashPattern(append([]float64(nil), pattern...), offset)
}

// SetLineCap sets the stroke cap style.
func (c *Canvas) SetLineCap(cap quiver.LineCap) {
	switch cap {
	case quiver.LineCapRound:
		c.doc.SetLineCapStyle("round")
	case quiver.LineCapSquare:
		c.doc.SetLineCapStyle("square")
	default:
		c.doc.SetLineCapStyle("butt")
	}
}

// SetLineJoin sets the stroke join style.
func (c *Canvas) SetLineJoin(join quiver.LineJoin) {
	switch join {
	case quiver.LineJoinMiter:
		c.doc.SetLineJoinStyle("miter")
	case quiver.LineJoinBevel:
		c.doc.SetLineJoinStyle("bevel")
	default:
		c.doc.SetLineJoinStyle("round")
	}
}

// Stroke draws the pending path outline and clears it.
func (c *Canvas) Stroke() error {
	c.doc.DrawPath("D")
	return c.doc.Error()
}

// Error reports the document's sticky error state.
func (c *Canvas) Error() error {
	return c.doc.Error()
}

// Output writes the finished PDF to w.
func (c *Canvas) Output(w io.Writer) error {
	if err := c.doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WriteFile writes the finished PDF to path and closes the document.
func (c *Canvas) WriteFile(path string) error {
	if err := c.doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	quiver.Logger().Debug("pdf written", "path", path)
	return nil
}
