package raster2d

import (
	"math"

	"github.com/gogpu/raster2d/geom"
)

// opKind tags which fields of a PathOp are meaningful.
type opKind int

const (
	opClose opKind = iota
	opMove
	opLine
	opQuad
	opCubic
	opPenWidth
	opTransform
)

// TransformKind selects the affine operation a PathOp carries.
type TransformKind int

const (
	// TransformNone resets the path's transform to identity.
	TransformNone TransformKind = iota
	TransformTranslate
	TransformScale
	TransformRotate
	TransformSkew
)

// PathOp is one recorded path-building operation. Zero value is a
// meaningless Close; PathOps are normally produced via Path2D's
// builder methods, not constructed directly.
type PathOp struct {
	kind opKind
	a, b float32 // Line/PenWidth/Transform args; Quad/Cubic control point b
	c, d float32 // Quad end point c; Cubic control point c
	e, f float32 // Cubic end point d
	xform TransformKind
}

// Path2D is a recorder for a stream of path operations that can be
// replayed against any Plotter. It mirrors the low-level MoveTo/
// LineTo/QuadTo/CubicTo/Close/PenWidth vocabulary one operation at a
// time, so the same recorded path can be filled and stroked, or
// replayed at several transforms, without re-issuing caller code.
type Path2D struct {
	ops      []PathOp
	absolute bool
	penX     float32
	penY     float32
}

// NewPath2D creates an empty Path2D using relative coordinates (the
// default): each coordinate argument is an offset from the current
// pen position rather than an absolute destination.
func NewPath2D() *Path2D {
	return &Path2D{ops: make([]PathOp, 0, 32)}
}

// Absolute switches subsequent coordinate arguments to absolute
// positions and returns the receiver for chaining.
func (b *Path2D) Absolute() *Path2D {
	b.absolute = true
	return b
}

// Relative switches subsequent coordinate arguments back to pen-
// relative offsets (the default) and returns the receiver for
// chaining.
func (b *Path2D) Relative() *Path2D {
	b.absolute = false
	return b
}

func (b *Path2D) pt(x, y float32) (float32, float32) {
	if b.absolute {
		return x, y
	}
	return b.penX + x, b.penY + y
}

// Close ends the current sub-path and resets the pen to the origin.
func (b *Path2D) Close() *Path2D {
	b.ops = append(b.ops, PathOp{kind: opClose})
	b.penX, b.penY = 0, 0
	return b
}

// MoveTo begins a new sub-path at (x, y).
func (b *Path2D) MoveTo(x, y float32) *Path2D {
	px, py := b.pt(x, y)
	b.ops = append(b.ops, PathOp{kind: opMove, a: px, b: py})
	b.penX, b.penY = px, py
	return b
}

// LineTo appends a straight segment to (x, y).
func (b *Path2D) LineTo(x, y float32) *Path2D {
	px, py := b.pt(x, y)
	b.ops = append(b.ops, PathOp{kind: opLine, a: px, b: py})
	b.penX, b.penY = px, py
	return b
}

// QuadTo appends a quadratic Bezier curve through control point
// (bx, by) to (cx, cy).
func (b *Path2D) QuadTo(bx, by, cx, cy float32) *Path2D {
	pbx, pby := b.pt(bx, by)
	pcx, pcy := b.pt(cx, cy)
	b.ops = append(b.ops, PathOp{kind: opQuad, a: pbx, b: pby, c: pcx, d: pcy})
	b.penX, b.penY = pcx, pcy
	return b
}

// CubicTo appends a cubic Bezier curve through control points
// (bx, by) and (cx, cy) to (dx, dy).
func (b *Path2D) CubicTo(bx, by, cx, cy, dx, dy float32) *Path2D {
	pbx, pby := b.pt(bx, by)
	pcx, pcy := b.pt(cx, cy)
	pdx, pdy := b.pt(dx, dy)
	b.ops = append(b.ops, PathOp{kind: opCubic, a: pbx, b: pby, c: pcx, d: pcy, e: pdx, f: pdy})
	b.penX, b.penY = pdx, pdy
	return b
}

// PenWidth records a change of stroke width, affecting every point
// recorded after it until the next PenWidth call.
func (b *Path2D) PenWidth(w float32) *Path2D {
	b.ops = append(b.ops, PathOp{kind: opPenWidth, a: w})
	return b
}

// Translate records a translation by (tx, ty).
func (b *Path2D) Translate(tx, ty float32) *Path2D {
	b.ops = append(b.ops, PathOp{kind: opTransform, xform: TransformTranslate, a: tx, b: ty})
	return b
}

// Scale records a scale by (sx, sy).
func (b *Path2D) Scale(sx, sy float32) *Path2D {
	b.ops = append(b.ops, PathOp{kind: opTransform, xform: TransformScale, a: sx, b: sy})
	return b
}

// Rotate records a rotation by th radians.
func (b *Path2D) Rotate(th float32) *Path2D {
	b.ops = append(b.ops, PathOp{kind: opTransform, xform: TransformRotate, a: th})
	return b
}

// Skew records a skew by (ax, ay) radians.
func (b *Path2D) Skew(ax, ay float32) *Path2D {
	b.ops = append(b.ops, PathOp{kind: opTransform, xform: TransformSkew, a: ax, b: ay})
	return b
}

// ResetTransform records a reset of the transform to identity.
func (b *Path2D) ResetTransform() *Path2D {
	b.ops = append(b.ops, PathOp{kind: opTransform, xform: TransformNone})
	return b
}

// Ops returns the recorded operations.
func (b *Path2D) Ops() []PathOp { return b.ops }

// Reset discards all recorded operations and the pen position,
// keeping the absolute/relative coordinate mode.
func (b *Path2D) Reset() *Path2D {
	b.ops = b.ops[:0]
	b.penX, b.penY = 0, 0
	return b
}

// Replay issues every recorded operation against p in order,
// composing transform ops onto p's transform as they are applied.
func (b *Path2D) Replay(p *Plotter) {
	xform := p.Transform()
	for _, op := range b.ops {
		switch op.kind {
		case opClose:
			p.Close()
		case opMove:
			p.MoveTo(op.a, op.b)
		case opLine:
			p.LineTo(op.a, op.b)
		case opQuad:
			p.QuadTo(op.a, op.b, op.c, op.d)
		case opCubic:
			p.CubicTo(op.a, op.b, op.c, op.d, op.e, op.f)
		case opPenWidth:
			p.SetPenWidth(op.a)
		case opTransform:
			switch op.xform {
			case TransformNone:
				xform = geom.Identity
			case TransformTranslate:
				xform = xform.Translate(op.a, op.b)
			case TransformScale:
				xform = xform.Scale(op.a, op.b)
			case TransformRotate:
				xform = xform.Rotate(op.a)
			case TransformSkew:
				xform = xform.Skew(op.a, op.b)
			}
			p.SetTransform(xform)
		}
	}
}

// Rect appends a closed rectangular sub-path with corners (x, y) and
// (x+w, y+h). Like the other convenience shapes, it switches the
// builder to absolute coordinate mode.
func (b *Path2D) Rect(x, y, w, h float32) *Path2D {
	return b.Absolute().
		MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// RoundRect appends a closed rectangular sub-path with corners
// (x, y) and (x+w, y+h) rounded to radius r, approximated with
// quadratic Bezier corners.
func (b *Path2D) RoundRect(x, y, w, h, r float32) *Path2D {
	if r <= 0 {
		return b.Rect(x, y, w, h)
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	b.Absolute()
	b.MoveTo(x+r, y)
	b.LineTo(x+w-r, y)
	b.QuadTo(x+w, y, x+w, y+r)
	b.LineTo(x+w, y+h-r)
	b.QuadTo(x+w, y+h, x+w-r, y+h)
	b.LineTo(x+r, y+h)
	b.QuadTo(x, y+h, x, y+h-r)
	b.LineTo(x, y+r)
	b.QuadTo(x, y, x+r, y)
	return b.Close()
}

// Circle appends a closed circular sub-path centered at (cx, cy)
// with the given radius, approximated with four cubic Bezier arcs.
func (b *Path2D) Circle(cx, cy, radius float32) *Path2D {
	return b.Ellipse(cx, cy, radius, radius)
}

// Ellipse appends a closed elliptical sub-path centered at (cx, cy)
// with the given radii, approximated with four cubic Bezier arcs.
func (b *Path2D) Ellipse(cx, cy, rx, ry float32) *Path2D {
	const k = 0.5522847498 // 4/3 * (sqrt(2) - 1), cubic circular-arc constant
	b.Absolute()
	b.MoveTo(cx+rx, cy)
	b.CubicTo(cx+rx, cy+ry*k, cx+rx*k, cy+ry, cx, cy+ry)
	b.CubicTo(cx-rx*k, cy+ry, cx-rx, cy+ry*k, cx-rx, cy)
	b.CubicTo(cx-rx, cy-ry*k, cx-rx*k, cy-ry, cx, cy-ry)
	b.CubicTo(cx+rx*k, cy-ry, cx+rx, cy-ry*k, cx+rx, cy)
	return b.Close()
}

// Polygon appends a closed sub-path through the given vertices.
func (b *Path2D) Polygon(pts []geom.Point) *Path2D {
	if len(pts) == 0 {
		return b
	}
	b.Absolute()
	b.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		b.LineTo(pt.X, pt.Y)
	}
	return b.Close()
}

// Star appends a closed sub-path alternating between outerRadius and
// innerRadius across the given number of points, centered at (cx, cy).
func (b *Path2D) Star(cx, cy float32, points int, outerRadius, innerRadius float32) *Path2D {
	if points < 2 {
		return b
	}
	b.Absolute()
	n := points * 2
	step := math.Pi / float64(points)
	for i := 0; i < n; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		th := float64(i)*step - math.Pi/2
		x := cx + r*float32(math.Cos(th))
		y := cy + r*float32(math.Sin(th))
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	return b.Close()
}
