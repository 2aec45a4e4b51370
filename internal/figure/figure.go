// Package figure implements the append-only point/sub-figure model that
// the scanner sweeps over: a figure is a sequence of points partitioned
// into closed sub-figures, with coincident-point elision and lazy
// sub-figure reopening.
package figure

import (
	"sort"

	"github.com/gogpu/raster2d/geom"
	"github.com/gogpu/raster2d/internal/fixed"
	"github.com/gogpu/raster2d/internal/vid"
)

// Dir is the direction a figure's outline is traversed at a given
// vertex, relative to the figure's global winding direction.
type Dir int

const (
	// Forward walks the sub-figure's points in increasing vertex order.
	Forward Dir = iota
	// Reverse walks the sub-figure's points in decreasing vertex order.
	Reverse
)

// Opposite returns the other direction.
func (d Dir) Opposite() Dir {
	if d == Forward {
		return Reverse
	}
	return Forward
}

// Point is a vertex stored at fixed-point precision.
type Point struct {
	X, Y fixed.Fixed
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Widdershins reports whether p and q, as vectors pointing toward a
// common vertex, are wound counter-clockwise.
func (p Point) Widdershins(q Point) bool {
	return p.X.Mul(q.Y) > q.X.Mul(p.Y)
}

func fromGeom(p geom.Point) Point {
	return Point{X: fixed.FromFloat32(p.X), Y: fixed.FromFloat32(p.Y)}
}

// subFig is one closed (or not-yet-closed) contour within a figure.
type subFig struct {
	start   vid.Vid
	nPoints int
	done    bool
}

func (s subFig) next(v vid.Vid, dir Dir) vid.Vid {
	switch dir {
	case Forward:
		n := v + 1
		if n < s.start+vid.Vid(s.nPoints) {
			return n
		}
		return s.start
	default: // Reverse
		if v > s.start {
			return v - 1
		}
		if s.nPoints > 0 {
			return s.start + vid.Vid(s.nPoints) - 1
		}
		return s.start
	}
}

// Fig is a series of 2D points, partitioned into sub-figures, that can
// be swept by a scanner into a destination raster.
type Fig struct {
	points []Point
	subs   []subFig
}

// New creates an empty figure with one not-yet-closed sub-figure.
func New() *Fig {
	return &Fig{
		points: make([]Point, 0, 1024),
		subs:   []subFig{{start: 0}},
	}
}

// Reset empties the figure back to its initial state.
func (f *Fig) Reset() {
	f.points = f.points[:0]
	f.subs = f.subs[:1]
	f.subs[0] = subFig{start: 0}
}

func (f *Fig) subCurrent() *subFig { return &f.subs[len(f.subs)-1] }

func (f *Fig) subAdd() {
	f.subs = append(f.subs, subFig{start: vid.FromInt(len(f.points))})
}

func (f *Fig) subAddPoint() { f.subCurrent().nPoints++ }

func (f *Fig) subIsDone() bool { return f.subs[len(f.subs)-1].done }

func (f *Fig) subSetDone() {
	cur := f.subCurrent()
	if cur.nPoints > 0 {
		pt := f.Point(cur.start)
		if f.isCoincident(pt) {
			f.points = f.points[:len(f.points)-1]
			cur.nPoints--
		}
		cur.done = true
	}
}

func (f *Fig) subAt(v vid.Vid) *subFig {
	for i := range f.subs {
		if v < f.subs[i].start+vid.Vid(f.subs[i].nPoints) {
			return &f.subs[i]
		}
	}
	panic("figure: vid out of range")
}

// Next returns the neighboring vertex of v within its sub-figure, in
// the given direction, wrapping around the sub-figure's extent.
func (f *Fig) Next(v vid.Vid, dir Dir) vid.Vid {
	return f.subAt(v).next(v, dir)
}

// GetDir determines the figure's global winding direction as observed
// from vertex v (expected to be the topmost, leftmost vertex): Forward
// when the forward/reverse neighbors are wound counter-clockwise,
// Reverse otherwise.
func (f *Fig) GetDir(v vid.Vid) Dir {
	p := f.Point(v)
	p0 := f.Point(f.Next(v, Forward))
	p1 := f.Point(f.Next(v, Reverse))
	if p1.Sub(p).Widdershins(p0.Sub(p)) {
		return Forward
	}
	return Reverse
}

// Point returns the vertex at v.
func (f *Fig) Point(v vid.Vid) Point { return f.points[v] }

// GetY returns the Y coordinate of vertex v.
func (f *Fig) GetY(v vid.Vid) fixed.Fixed { return f.points[v].Y }

// NumPoints returns the total number of stored points across all
// sub-figures.
func (f *Fig) NumPoints() int { return len(f.points) }

// AddPoint appends a point to the current sub-figure, converting it to
// fixed-point. Points beyond the 16-bit vertex capacity are silently
// dropped. If the current sub-figure is done, a new one is opened
// first. Coincident points (equal to the immediately preceding point)
// are dropped, except for the first point of a freshly opened
// sub-figure.
func (f *Fig) AddPoint(p geom.Point) {
	if len(f.points) >= int(vid.Max) {
		return
	}
	done := f.subIsDone()
	if done {
		f.subAdd()
	}
	fp := fromGeom(p)
	if done || !f.isCoincident(fp) {
		f.points = append(f.points, fp)
		f.subAddPoint()
	}
}

func (f *Fig) isCoincident(p Point) bool {
	if len(f.points) == 0 {
		return false
	}
	return p == f.points[len(f.points)-1]
}

// Close finalizes the current sub-figure: if its last point coincides
// with its starting point, that duplicate is dropped; the sub-figure is
// then marked done so the next AddPoint opens a fresh one.
func (f *Fig) Close() {
	if len(f.points) > 0 {
		f.subSetDone()
	}
}

// SubIsDone reports whether the current (most recently opened)
// sub-figure has been closed.
func (f *Fig) SubIsDone() bool { return f.subIsDone() }

func (f *Fig) compareVids(a, b vid.Vid) bool {
	pa, pb := f.Point(a), f.Point(b)
	if pa.Y != pb.Y {
		return pa.Y < pb.Y
	}
	return pa.X < pb.X
}

// SortedVids returns every vertex id in the figure, ordered by
// (Y, X) ascending — the order the scanner sweeps vertices in.
func (f *Fig) SortedVids() []vid.Vid {
	vids := make([]vid.Vid, len(f.points))
	for i := range vids {
		vids[i] = vid.Vid(i)
	}
	sort.Slice(vids, func(i, j int) bool { return f.compareVids(vids[i], vids[j]) })
	return vids
}
