package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/matzehuels/locusmap/pkg/fonts"
	"github.com/matzehuels/locusmap/pkg/layout"
)

// GridStep is the genomic distance between grid lines.
const GridStep = 1000

var (
	colorText    = color.RGBA{0, 0, 0, 255}
	colorGrid    = color.RGBA{150, 150, 150, 255}
	colorTick    = color.RGBA{100, 100, 100, 255}
	colorOutline = color.RGBA{255, 255, 255, 255}
	colorOrigin  = color.RGBA{0, 0, 0, 255}
)

// CanvasSize returns the pixel dimensions for a layout of the given genomic
// width and row count.
func CanvasSize(width, rows int, scale float64) (w, h int) {
	w = int(math.RoundToEven(scale/50*float64(width) + scale*10))
	h = int(math.RoundToEven(float64(rows+1) * 20 * scale))
	return w, h
}

// Renderer draws layout rows onto a Surface.
type Renderer struct {
	s     Surface
	faces *fonts.Set
	scale float64
}

// New returns a Renderer drawing on s.
func New(s Surface, faces *fonts.Set, scale float64) *Renderer {
	return &Renderer{s: s, faces: faces, scale: scale}
}

// X maps a local coordinate to a pixel column.
func (r *Renderer) X(local int) float64 {
	return r.scale / 50 * float64(local)
}

// top returns the pixel row of the top edge of row n.
func (r *Renderer) top(n int) float64 {
	return float64(n) * 20 * r.scale
}

func (r *Renderer) thin() float64 {
	return max(1, math.Floor(r.scale/20))
}

// DrawGrid draws a vertical line with a distance label every GridStep
// genomic units across the whole surface.
func (r *Renderer) DrawGrid() {
	step := int(math.RoundToEven(GridStep * r.scale / 50))
	if step <= 0 {
		return
	}
	w, h := r.s.Size()
	for x := step; x < w; x += step {
		fx := float64(x)
		r.s.Line(Point{fx, 8 * r.scale}, Point{fx, float64(h)}, colorGrid, r.thin())
		label := strconv.Itoa(int(fx / (r.scale / 50)))
		r.s.Text(label, Point{fx - 4*r.scale, 5 * r.scale}, r.faces.Tick, colorTick)
	}
}

// DrawRow draws the header, elements and origin marker of row.
func (r *Renderer) DrawRow(row layout.Row) {
	for i, el := range row.Elements {
		switch el.Kind {
		case layout.KindGene:
			r.DrawGene(el, row.Index, i+1)
		case layout.KindArray:
			r.DrawArray(el, row.Index)
		}
	}
	r.DrawHeader(row)
	if row.Origin != nil {
		r.DrawOrigin(*row.Origin, row.Index)
	}
}

// DrawGene draws el as an arrow on row n. z is the element's 1-based
// position in the row; odd elements are labelled above the arrow and even
// ones below, so neighbouring labels do not collide.
func (r *Renderer) DrawGene(el layout.Element, n, z int) {
	r.s.Polygon(r.arrow(el, n), el.Color, colorOutline)

	at := Point{X: r.X(el.Start) + 5, Y: r.top(n) + 5*r.scale}
	if z%2 == 1 {
		at.Y = r.top(n) - 3*r.scale
	}
	r.s.Text(TitleCase(CleanLabel(el.Label)), at, r.faces.Label, colorText)
}

func (r *Renderer) arrow(el layout.Element, n int) []Point {
	s, e := r.X(el.Start), r.X(el.End)
	y := r.top(n)
	head := 5 * r.scale
	if el.Strand.IsForward() {
		return []Point{
			{s, y},
			{e - head, y},
			{e, y + 2.5*r.scale},
			{e - head, y + 5*r.scale},
			{s, y + 5*r.scale},
		}
	}
	return []Point{
		{s + head, y},
		{e, y},
		{e, y + 5*r.scale},
		{s + head, y + 5*r.scale},
		{s, y + 2.5*r.scale},
	}
}

// DrawArray draws el as a box on row n with its prediction above.
func (r *Renderer) DrawArray(el layout.Element, n int) {
	s, e := r.X(el.Start), r.X(el.End)
	y := r.top(n)
	r.s.Polygon([]Point{
		{s, y},
		{e, y},
		{e, y + 5*r.scale},
		{s, y + 5*r.scale},
	}, el.Color, colorOutline)
	r.s.Text(el.Label, Point{s + r.scale/10, y - 3*r.scale}, r.faces.Label, colorText)
}

// DrawHeader writes the row title above the row.
func (r *Renderer) DrawHeader(row layout.Row) {
	r.s.Text(Header(row), Point{r.scale / 10, r.top(row.Index) - 10*r.scale}, r.faces.Header, colorText)
}

// DrawOrigin draws the contig origin marker at local coordinate x on row n.
func (r *Renderer) DrawOrigin(x, n int) {
	px := r.X(x)
	r.s.Line(
		Point{px, r.top(n) - 5*r.scale},
		Point{px, r.top(n) + 10*r.scale},
		colorOrigin, max(1, math.Floor(r.scale/2)),
	)
}

// Header formats the title of row.
func Header(row layout.Row) string {
	return fmt.Sprintf("%s: %s, %s(%d-%d)", row.Prediction, row.ID, row.Contig, row.HeaderStart, row.HeaderEnd)
}
