// Package flatten decomposes quadratic and cubic Bezier splines into
// line segments via recursive de Casteljau midpoint subdivision,
// terminating once the curve's midpoint falls within a tolerance of the
// midpoint of its straight chord. Pen width, carried alongside each
// point, is interpolated the same way the geometry is.
package flatten

import "github.com/gogpu/raster2d/geom"

// Sink receives the line segments a spline flattens into.
type Sink interface {
	LineTo(p geom.WidePoint)
}

// Flattener recursively subdivides splines down to tol (in the same
// units as the points passed to Quad/Cubic) and emits line-to points to
// a Sink.
type Flattener struct {
	tolSq float32
	sink  Sink
}

// New creates a Flattener with the given flatness tolerance.
func New(tol float32, sink Sink) *Flattener {
	return &Flattener{tolSq: tol * tol, sink: sink}
}

func (f *Flattener) withinTolerance(a, b geom.WidePoint) bool {
	return a.Point.DistSq(b.Point) <= f.tolSq
}

// Quad flattens the quadratic spline with start point a, control point
// b, and end point c.
func (f *Flattener) Quad(a, b, c geom.WidePoint) {
	ab := a.Midpoint(b)
	bc := b.Midpoint(c)
	abBc := ab.Midpoint(bc)
	ac := a.Midpoint(c)
	if f.withinTolerance(abBc, ac) {
		f.sink.LineTo(c)
	} else {
		f.Quad(a, ab, abBc)
		f.Quad(abBc, bc, c)
	}
}

// Cubic flattens the cubic spline with start point a, control points b
// and c, and end point d.
func (f *Flattener) Cubic(a, b, c, d geom.WidePoint) {
	ab := a.Midpoint(b)
	bc := b.Midpoint(c)
	cd := c.Midpoint(d)
	abBc := ab.Midpoint(bc)
	bcCd := bc.Midpoint(cd)
	e := abBc.Midpoint(bcCd)
	ad := a.Midpoint(d)
	if f.withinTolerance(e, ad) {
		f.sink.LineTo(d)
	} else {
		f.Cubic(a, ab, abBc, e)
		f.Cubic(e, bcCd, cd, d)
	}
}
