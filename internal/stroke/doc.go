// Package stroke provides stroke expansion: converting a width-tagged
// source polyline into the filled outline of a stroked path.
//
// # Algorithm overview
//
// Each sub-path is walked twice: once forward, once in reverse. On each
// pass every segment is offset to the right by half the pen width at
// each endpoint (so variable-width strokes taper smoothly), and a join
// is inserted between consecutive offset segments at shared vertices.
// A joined (closed) sub-path treats its wraparound segment the same as
// any other; an open sub-path's two sides meet end-to-end with no
// additional cap shape.
//
// # Joins
//
//   - Miter: extends both offset segments until they meet, falling back
//     to Bevel once the turn angle makes the miter length exceed the
//     join's length limit.
//   - Bevel: connects the two offset segment endpoints directly.
//   - Round: fills the gap with an arc, recursively bisected down to a
//     flatness tolerance, falling back to Bevel on a concave turn.
//
// # Usage
//
//	e := stroke.New(stroke.MiterJoin(4), 0.1)
//	e.AddPoint(geom.WPt(geom.Pt(0, 0), 2))
//	e.AddPoint(geom.WPt(geom.Pt(100, 0), 2))
//	e.AddPoint(geom.WPt(geom.Pt(100, 100), 2))
//	e.Close(false)
//	e.Expand(sink)
package stroke
