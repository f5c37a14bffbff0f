// Package render draws a [layout.Layout] as a raster locus map.
//
// # Overview
//
// Every row of the layout becomes one horizontal track: genes are arrows
// pointing in their coding direction, CRISPR arrays are blue boxes, and a
// header line names the locus. Rows whose locus wraps the origin of a
// circular contig get a black vertical marker where position 0 falls.
//
// Local layout coordinates map to pixels as
//
//	px = scale/50 * local
//
// Row n (1-based) has its top edge at n*20*scale and elements are 5*scale
// high. An optional grid draws a vertical line every 1000 genomic units.
//
// # Drawing
//
// Drawing goes through the [Surface] interface. [Canvas] implements it on
// top of fogleman/gg and encodes the result as PNG:
//
//	w, h := render.CanvasSize(l.Width, len(l.Rows), scale)
//	c := render.NewCanvas(w, h)
//	r := render.New(c, faces, scale)
//	r.DrawGrid()
//	for _, row := range l.Rows {
//	    r.DrawRow(row)
//	}
//	err := c.EncodePNG(buf)
//
// Tests substitute a recording Surface to assert on geometry without
// rasterising.
//
// [layout.Layout]: github.com/matzehuels/locusmap/pkg/layout.Layout
package render
