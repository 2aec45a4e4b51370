package raster2d

import (
	"github.com/gogpu/raster2d/geom"
	"github.com/gogpu/raster2d/internal/accum"
	"github.com/gogpu/raster2d/internal/figure"
	"github.com/gogpu/raster2d/internal/flatten"
	"github.com/gogpu/raster2d/internal/scan"
	"github.com/gogpu/raster2d/internal/stroke"
	"github.com/gogpu/raster2d/pixmap"
)

// FillRule selects how overlapping sub-paths combine into a filled
// region.
type FillRule = accum.Rule

const (
	// NonZero fills a pixel when the signed sum of sub-path windings
	// covering it is non-zero.
	NonZero = accum.NonZero
	// EvenOdd fills a pixel when the count of sub-paths covering it is
	// odd.
	EvenOdd = accum.EvenOdd
)

// target is the destination raster a Plotter is constructed against,
// such as a *pixmap.Pixmap or a *Mask. Fill and Stroke always write
// RGBA8 source-over rows into it, so they need a *pixmap.Pixmap;
// coverage is written into a *Mask only through FillMask/StrokeMask.
type target = scan.Target

// subpath is one contour of the path currently recorded on a Plotter,
// in destination (post-transform) space.
type subpath struct {
	pts    []geom.WidePoint
	joined bool
	done   bool
}

// Plotter records a path operation stream and rasterizes it by
// filling or stroking onto a destination raster.
type Plotter struct {
	width, height int
	dst           target

	xform geom.Transform
	join  JoinStyle
	tol   float32
	penW  float32

	subs    []subpath
	haveCur bool
	cur     geom.WidePoint

	flt     *flatten.Flattener
	fig     *figure.Fig
	sgnArea []int16
}

// NewPlotter creates a Plotter targeting a fresh, fully transparent
// pixmap.Pixmap of the given dimensions, ready for Fill/Stroke calls
// that composite color. Use NewPlotterFor to target a caller-supplied
// destination (a *pixmap.Pixmap or a *Mask), or FillMask/StrokeMask to
// rasterize coverage into a separate *Mask regardless of the Plotter's
// own destination.
func NewPlotter(width, height int, opts ...PlotterOption) *Plotter {
	return NewPlotterFor(pixmap.New(width, height), opts...)
}

// NewPlotterFor creates a Plotter that composites into dst.
func NewPlotterFor(dst target, opts ...PlotterOption) *Plotter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Plotter{
		width:  dst.Width(),
		height: dst.Height(),
		dst:    dst,
		xform:  geom.Identity,
		join:   o.join,
		tol:    o.tolerance,
		penW:   o.penWidth,
		subs:   []subpath{{}},
		fig:    figure.New(),
	}
	p.flt = flatten.New(o.tolerance, pathSink{p})
	p.sgnArea = make([]int16, p.width)
	return p
}

// Width returns the destination raster width.
func (p *Plotter) Width() int { return p.width }

// Height returns the destination raster height.
func (p *Plotter) Height() int { return p.height }

// Mask returns the destination as a *Mask, or nil if the Plotter was
// constructed against a different destination type.
func (p *Plotter) Mask() *Mask {
	m, _ := p.dst.(*Mask)
	return m
}

// Pixmap returns the destination as a *pixmap.Pixmap, or nil if the
// Plotter was constructed against a different destination type.
func (p *Plotter) Pixmap() *pixmap.Pixmap {
	m, _ := p.dst.(*pixmap.Pixmap)
	return m
}

// SetTransform replaces the affine transform applied to every
// subsequently recorded point. It does not affect points already
// recorded.
func (p *Plotter) SetTransform(t geom.Transform) { p.xform = t }

// Transform returns the Plotter's current transform.
func (p *Plotter) Transform() geom.Transform { return p.xform }

// SetJoinStyle sets the join style used by the next Stroke call.
func (p *Plotter) SetJoinStyle(j JoinStyle) { p.join = j }

// SetPenWidth sets the stroke width applied to subsequently recorded
// points. Changing it partway through a sub-path produces a tapered
// stroke, since width interpolates linearly between recorded points.
func (p *Plotter) SetPenWidth(w float32) { p.penW = w }

// curSub returns the sub-path currently being recorded into.
func (p *Plotter) curSub() *subpath { return &p.subs[len(p.subs)-1] }

func (p *Plotter) addSub() { p.subs = append(p.subs, subpath{}) }

func (p *Plotter) record(pt geom.Point) {
	wp := geom.WidePoint{Point: pt, W: p.penW}
	s := p.curSub()
	if s.done {
		p.addSub()
		s = p.curSub()
	}
	s.pts = append(s.pts, wp)
	p.cur = wp
	p.haveCur = true
}

// MoveTo begins a new sub-path at (x, y), implicitly ending any
// currently open sub-path as unjoined.
func (p *Plotter) MoveTo(x, y float32) {
	s := p.curSub()
	if len(s.pts) > 0 && !s.done {
		s.joined = false
		s.done = true
	}
	p.record(p.xform.Apply(geom.Pt(x, y)))
}

// LineTo appends a straight segment to (x, y).
func (p *Plotter) LineTo(x, y float32) {
	if !p.haveCur {
		p.MoveTo(x, y)
		return
	}
	p.record(p.xform.Apply(geom.Pt(x, y)))
}

// pathSink adapts flatten.Sink to feed emitted points back into the
// Plotter's current sub-path.
type pathSink struct{ p *Plotter }

func (s pathSink) LineTo(wp geom.WidePoint) { s.p.record(wp.Point) }

// QuadTo appends a quadratic Bezier curve through control point (cx,
// cy) to (x, y), flattened to line segments. The stroke width carried
// by the control point interpolates between the pen's current width
// and the new pen width, so a width change lands smoothly across the
// curve rather than jumping at its end.
func (p *Plotter) QuadTo(cx, cy, x, y float32) {
	if !p.haveCur {
		p.MoveTo(x, y)
		return
	}
	a := p.cur
	b := geom.WidePoint{Point: p.xform.Apply(geom.Pt(cx, cy)), W: (a.W + p.penW) / 2}
	c := geom.WidePoint{Point: p.xform.Apply(geom.Pt(x, y)), W: p.penW}
	p.flt.Quad(a, b, c)
}

// CubicTo appends a cubic Bezier curve through control points (c1x,
// c1y) and (c2x, c2y) to (x, y), flattened to line segments. The
// control points' stroke widths interpolate linearly between the
// pen's current width and the new pen width, at 1/3 and 2/3.
func (p *Plotter) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	if !p.haveCur {
		p.MoveTo(x, y)
		return
	}
	a := p.cur
	b := geom.WidePoint{Point: p.xform.Apply(geom.Pt(c1x, c1y)), W: lerpW(a.W, p.penW, 1.0/3)}
	c := geom.WidePoint{Point: p.xform.Apply(geom.Pt(c2x, c2y)), W: lerpW(a.W, p.penW, 2.0/3)}
	d := geom.WidePoint{Point: p.xform.Apply(geom.Pt(x, y)), W: p.penW}
	p.flt.Cubic(a, b, c, d)
}

// lerpW linearly interpolates a stroke width from a to b at t.
func lerpW(a, b, t float32) float32 { return a + (b-a)*t }

// Close finalizes the current sub-path as a joined loop back to its
// starting point.
func (p *Plotter) Close() {
	s := p.curSub()
	if len(s.pts) > 0 {
		s.joined = true
		s.done = true
	}
	p.haveCur = false
}

// Reset discards the recorded path, keeping the Plotter's transform,
// join style and pen width.
func (p *Plotter) Reset() {
	p.subs = []subpath{{}}
	p.haveCur = false
	p.cur = geom.WidePoint{}
}

// ClearMask resets the destination raster to fully transparent.
func (p *Plotter) ClearMask() {
	if d, ok := p.dst.(interface{ Clear() }); ok {
		d.Clear()
	}
}

// Fill rasterizes the recorded path using the given fill rule and
// composites it with color onto the destination raster, then resets
// the recorded path the way a following MoveTo would expect: as if
// nothing had been drawn. The Plotter must have been constructed
// against a *pixmap.Pixmap destination (the NewPlotter default); use
// FillMask to rasterize coverage directly into a *Mask instead.
func (p *Plotter) Fill(rule FillRule, c RGBA) {
	p.buildFillFigure()
	r, g, b, a := c.PremultipliedBytes()
	scan.Fill(p.fig, p.dst, accum.ColorFiller{Rule: rule, R: r, G: g, B: b, A: a}, p.sgnArea)
	p.Reset()
}

// FillMask rasterizes the recorded path directly as coverage bytes
// into dst, bypassing color compositing, then resets the recorded
// path.
func (p *Plotter) FillMask(dst *Mask, rule FillRule) {
	p.buildFillFigure()
	sgnArea := p.sgnArea
	if dst.Width() != p.width {
		sgnArea = make([]int16, dst.Width())
	}
	scan.Fill(p.fig, dst, accum.MatteFiller{Rule: rule}, sgnArea)
	p.Reset()
}

func (p *Plotter) buildFillFigure() {
	p.fig.Reset()
	nPoints := 0
	for i := range p.subs {
		s := &p.subs[i]
		for _, wp := range s.pts {
			p.fig.AddPoint(wp.Point)
		}
		if len(s.pts) > 0 {
			if !s.done {
				Logger().Warn("raster2d: Fill called on an unclosed sub-path, closing implicitly")
			}
			p.fig.Close()
			nPoints += len(s.pts)
		}
	}
	Logger().Debug("raster2d: fill figure built", "subpaths", len(p.subs), "points", nPoints)
}

// Stroke expands the recorded path into its stroked outline and fills
// that outline (always with the NonZero rule, since adjacent offset
// segments can overlap at sharp joins) with color, then resets the
// recorded path. Like Fill, this requires a *pixmap.Pixmap
// destination; use StrokeMask for coverage output into a *Mask.
func (p *Plotter) Stroke(c RGBA) {
	p.buildStrokeFigure()
	r, g, b, a := c.PremultipliedBytes()
	scan.Fill(p.fig, p.dst, accum.ColorFiller{Rule: NonZero, R: r, G: g, B: b, A: a}, p.sgnArea)
	p.Reset()
}

// StrokeMask expands and fills the stroked outline directly as
// coverage bytes into dst, then resets the recorded path.
func (p *Plotter) StrokeMask(dst *Mask) {
	p.buildStrokeFigure()
	sgnArea := p.sgnArea
	if dst.Width() != p.width {
		sgnArea = make([]int16, dst.Width())
	}
	scan.Fill(p.fig, dst, accum.MatteFiller{Rule: NonZero}, sgnArea)
	p.Reset()
}

func (p *Plotter) buildStrokeFigure() {
	exp := stroke.New(p.join, p.tol)
	nPoints := 0
	for i := range p.subs {
		s := &p.subs[i]
		for _, wp := range s.pts {
			exp.AddPoint(wp)
		}
		if len(s.pts) > 0 {
			if !s.done {
				Logger().Warn("raster2d: Stroke called on an unclosed sub-path, closing implicitly")
			}
			exp.Close(s.joined)
			nPoints += len(s.pts)
		}
	}
	Logger().Debug("raster2d: stroke outline built", "subpaths", len(p.subs), "points", nPoints)
	p.fig.Reset()
	exp.Expand(figSink{p.fig})
}

// figSink adapts stroke.Sink to feed the expander's output outline
// into a figure for filling.
type figSink struct{ fig *figure.Fig }

func (s figSink) LineTo(pt geom.Point) { s.fig.AddPoint(pt) }
func (s figSink) Close()               { s.fig.Close() }
