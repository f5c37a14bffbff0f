package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Surface is the drawing target of a [Renderer].
type Surface interface {
	// Polygon fills the closed polygon pts and strokes it with outline.
	Polygon(pts []Point, fill, outline color.Color)
	// Line draws a straight line of the given pixel width.
	Line(from, to Point, c color.Color, width float64)
	// Text draws s with its top-left corner at at.
	Text(s string, at Point, face font.Face, c color.Color)
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
}

// Canvas is a white RGB raster Surface.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas returns a white canvas of w by h pixels.
func NewCanvas(w, h int) *Canvas {
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	return &Canvas{dc: dc}
}

func (c *Canvas) Polygon(pts []Point, fill, outline color.Color) {
	if len(pts) == 0 {
		return
	}
	c.dc.NewSubPath()
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.dc.SetColor(fill)
	c.dc.FillPreserve()
	c.dc.SetColor(outline)
	c.dc.SetLineWidth(1)
	c.dc.Stroke()
}

func (c *Canvas) Line(from, to Point, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	c.dc.Stroke()
}

func (c *Canvas) Text(s string, at Point, face font.Face, col color.Color) {
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, at.X, at.Y, 0, 1)
}

func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Image returns the underlying raster.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}
