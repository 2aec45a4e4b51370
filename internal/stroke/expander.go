// Package stroke expands a width-tagged polyline into the filled
// outline of a stroked path: the path is walked once forward offsetting
// each segment to the right by half its local pen width, and once
// backward offsetting to the right again (which is the opposite side of
// the original line), with a join inserted between consecutive offset
// segments at each vertex.
package stroke

import (
	"math"

	"github.com/gogpu/raster2d/geom"
	"github.com/gogpu/raster2d/internal/vid"
)

// JoinKind selects how two offset segments meet at a vertex.
type JoinKind int

const (
	// Miter extends both offset segments until they meet, falling back
	// to Bevel when the turn is too sharp relative to Limit.
	Miter JoinKind = iota
	// Bevel connects the two offset segment endpoints directly.
	Bevel
	// Round fills the gap with a recursively bisected arc.
	Round
)

// JoinStyle is a join kind plus the miter-length-to-stroke-width ratio
// used only when Kind is Miter.
type JoinStyle struct {
	Kind  JoinKind
	Limit float32
}

// MiterJoin returns a miter join style with the given length limit.
func MiterJoin(limit float32) JoinStyle { return JoinStyle{Kind: Miter, Limit: limit} }

// BevelJoin returns a bevel join style.
func BevelJoin() JoinStyle { return JoinStyle{Kind: Bevel} }

// RoundJoin returns a round join style.
func RoundJoin() JoinStyle { return JoinStyle{Kind: Round} }

// Sink receives the outline a stroke expansion produces.
type Sink interface {
	LineTo(p geom.Point)
	Close()
}

type dir int

const (
	fwd dir = iota
	rev
)

// subPath is one contour of the source polyline being stroked.
type subPath struct {
	start   vid.Vid
	nPoints vid.Vid
	joined  bool
	done    bool
}

func (s *subPath) next(v vid.Vid, d dir) vid.Vid {
	switch d {
	case fwd:
		n := v.Add(1)
		if n < s.start.Add(s.nPoints) {
			return n
		}
		return s.start
	default:
		if v > s.start {
			return v.Sub(1)
		}
		if s.nPoints > 0 {
			return s.start.Add(s.nPoints).Sub(1)
		}
		return s.start
	}
}

// len is the number of segments strokeSide walks for this sub-path: one
// fewer than the point count for an open contour (the last point
// closes it, not starting a new segment), one more than the point count
// for a joined (closed) contour, which has as many segments as points
// and walks its first segment a second time so that the join at the
// starting vertex is emitted.
func (s *subPath) len() vid.Vid {
	switch {
	case s.joined:
		return s.nPoints.Add(1)
	case s.nPoints > 0:
		return s.nPoints.Sub(1)
	default:
		return 0
	}
}

// Expander accumulates a width-tagged source polyline and expands it
// into a filled outline on demand.
type Expander struct {
	join  JoinStyle
	tolSq float32

	points []geom.WidePoint
	subs   []subPath
}

// New creates an Expander with the given join style and flatness
// tolerance (used only for round-join arc subdivision).
func New(join JoinStyle, tol float32) *Expander {
	return &Expander{
		join:   join,
		tolSq:  tol * tol,
		points: make([]geom.WidePoint, 0, 1024),
		subs:   []subPath{{}},
	}
}

// Reset empties the expander back to its initial state.
func (e *Expander) Reset() {
	e.points = e.points[:0]
	e.subs = e.subs[:1]
	e.subs[0] = subPath{}
}

func (e *Expander) current() *subPath { return &e.subs[len(e.subs)-1] }

func (e *Expander) addSub() {
	e.subs = append(e.subs, subPath{start: vid.FromInt(len(e.points))})
}

// AddPoint appends a width-tagged point to the current sub-path,
// eliding points coincident with the immediately preceding one.
func (e *Expander) AddPoint(p geom.WidePoint) {
	if len(e.points) >= int(vid.Max) {
		return
	}
	done := e.current().done
	if done {
		e.addSub()
	}
	if done || !e.coincident(p) {
		e.points = append(e.points, p)
		e.current().nPoints++
	}
}

func (e *Expander) coincident(p geom.WidePoint) bool {
	if len(e.points) == 0 {
		return false
	}
	return p.Point == e.points[len(e.points)-1].Point
}

// Close finalizes the current sub-path. When joined is true, the
// sub-path's ends are treated as connected by one more offset segment
// (a closed stroked contour); otherwise the two offset sides are capped
// at the path's literal endpoints.
func (e *Expander) Close(joined bool) {
	if len(e.points) > 0 {
		sub := e.current()
		sub.joined = joined
		sub.done = true
	}
}

func (e *Expander) subAt(v vid.Vid) *subPath {
	for i := range e.subs {
		if v < e.subs[i].start.Add(e.subs[i].nPoints) {
			return &e.subs[i]
		}
	}
	panic("stroke: vid out of range")
}

func (e *Expander) next(v vid.Vid, d dir) vid.Vid { return e.subAt(v).next(v, d) }

func (e *Expander) point(v vid.Vid) geom.WidePoint { return e.points[v] }

// Expand emits the filled outline of every sub-path into sink.
func (e *Expander) Expand(sink Sink) {
	for i := range e.subs {
		e.expandSub(sink, i)
	}
}

func (e *Expander) expandSub(sink Sink, i int) {
	sub := &e.subs[i]
	if sub.len() == 0 {
		return
	}
	start := sub.start
	end := sub.next(sub.start, rev)
	e.strokeSide(sink, i, start, fwd)
	if sub.joined {
		sink.Close()
	}
	e.strokeSide(sink, i, end, rev)
	sink.Close()
}

// strokeSide walks one side (direction) of a sub-path, offsetting each
// segment by half its local width and inserting a join between
// consecutive segments.
func (e *Expander) strokeSide(sink Sink, i int, start vid.Vid, d dir) {
	sub := &e.subs[i]
	var haveEdge bool
	var xr0, xr1 geom.Point
	v0 := start
	v1 := sub.next(v0, d)
	n := int(sub.len())
	for j := 0; j < n; j++ {
		p0 := e.point(v0)
		p1 := e.point(v1)
		pr0, pr1 := strokeOffset(p0, p1)
		if haveEdge {
			e.strokeJoin(sink, p0, xr0, xr1, pr0, pr1)
		} else if !sub.joined {
			sink.LineTo(pr0)
		}
		xr0, xr1 = pr0, pr1
		haveEdge = true
		v0 = v1
		v1 = sub.next(v1, d)
	}
	if !sub.joined && haveEdge {
		sink.LineTo(xr1)
	}
}

// strokeOffset offsets the segment p0->p1 to the right by half of each
// endpoint's own pen width.
func strokeOffset(p0, p1 geom.WidePoint) (geom.Point, geom.Point) {
	vr := p1.Point.Sub(p0.Point).Right().Normalize()
	pr0 := p0.Point.Add(vr.Scale(p0.W / 2))
	pr1 := p1.Point.Add(vr.Scale(p1.W / 2))
	return pr0, pr1
}

func (e *Expander) strokeJoin(sink Sink, p geom.WidePoint, a0, a1, b0, b1 geom.Point) {
	switch e.join.Kind {
	case Miter:
		e.strokeMiter(sink, a0, a1, b0, b1)
	case Round:
		e.strokeRound(sink, p, a0, a1, b0, b1)
	default:
		strokeBevel(sink, a1, b0)
	}
}

// strokeMiter extends both offset segments until they intersect,
// provided the turn angle isn't sharper than the join's length limit
// allows (miter_length / width = 1 / sin(theta/2), so width / length =
// sin(theta/2)); otherwise falls back to a bevel.
func (e *Expander) strokeMiter(sink Sink, a0, a1, b0, b1 geom.Point) {
	if e.join.Limit > 0 {
		smMin := 1 / e.join.Limit
		th := a1.Sub(a0).AngleRel(b0.Sub(b1))
		sm := float32(math.Abs(math.Sin(float64(th) / 2)))
		if sm >= smMin && sm < 1 {
			if xp, ok := geom.Intersection(a0, a1, b0, b1); ok {
				sink.LineTo(xp)
				return
			}
		}
	}
	strokeBevel(sink, a1, b0)
}

func strokeBevel(sink Sink, a1, b0 geom.Point) {
	sink.LineTo(a1)
	sink.LineTo(b0)
}

// strokeRound fills the turn with an arc when the turn is convex
// (widdershins), otherwise it degenerates to a bevel the same way a
// concave corner does for Miter and Bevel joins.
func (e *Expander) strokeRound(sink Sink, p geom.WidePoint, a0, a1, b0, b1 geom.Point) {
	th := a1.Sub(a0).AngleRel(b0.Sub(b1))
	if th <= 0 {
		strokeBevel(sink, a1, b0)
		return
	}
	sink.LineTo(a1)
	e.strokeArc(sink, p, a1, b0)
}

// strokeArc recursively bisects the arc between a and b (both offset by
// half the join point's width from center p) until the midpoint falls
// within tolerance of the straight chord.
func (e *Expander) strokeArc(sink Sink, p geom.WidePoint, a, b geom.Point) {
	vr := b.Sub(a).Right().Normalize()
	c := p.Point.Add(vr.Scale(p.W / 2))
	ab := a.Midpoint(b)
	if c.DistSq(ab) <= e.tolSq {
		sink.LineTo(b)
		return
	}
	e.strokeArc(sink, p, a, c)
	e.strokeArc(sink, p, c, b)
}
