package geom

import "math"

// Transform is an affine transform: a 2x3 matrix with an implicit
// [0 0 1] third row, stored row-major as [a b c d e f] such that
// x' = a*x + b*y + c, y' = d*x + e*y + f.
type Transform struct {
	e [6]float32
}

// Identity is the identity transform.
var Identity = Transform{e: [6]float32{1, 0, 0, 0, 1, 0}}

// NewTranslate creates a translation transform.
func NewTranslate(tx, ty float32) Transform {
	return Transform{e: [6]float32{1, 0, tx, 0, 1, ty}}
}

// NewScale creates a scaling transform.
func NewScale(sx, sy float32) Transform {
	return Transform{e: [6]float32{sx, 0, 0, 0, sy, 0}}
}

// NewRotate creates a rotation transform for angle th (radians).
func NewRotate(th float32) Transform {
	sn, cs := sincos(th)
	return Transform{e: [6]float32{cs, -sn, 0, sn, cs, 0}}
}

// NewSkew creates a skew transform with X/Y angles (radians).
func NewSkew(ax, ay float32) Transform {
	tnx := float32(math.Tan(float64(ax)))
	tny := float32(math.Tan(float64(ay)))
	return Transform{e: [6]float32{1, tnx, 0, tny, 1, 0}}
}

func sincos(th float32) (sin, cos float32) {
	s, c := math.Sincos(float64(th))
	return float32(s), float32(c)
}

// mulE composes t followed by rhs (t is applied first, in matrix terms
// rhs * t), matching the original's row-major 3x3 multiply truncated to
// the top two rows.
func (t Transform) mulE(rhs Transform) [6]float32 {
	var e [6]float32
	e[0] = t.e[0]*rhs.e[0] + t.e[3]*rhs.e[1]
	e[1] = t.e[1]*rhs.e[0] + t.e[4]*rhs.e[1]
	e[2] = t.e[2]*rhs.e[0] + t.e[5]*rhs.e[1] + rhs.e[2]
	e[3] = t.e[0]*rhs.e[3] + t.e[3]*rhs.e[4]
	e[4] = t.e[1]*rhs.e[3] + t.e[4]*rhs.e[4]
	e[5] = t.e[2]*rhs.e[3] + t.e[5]*rhs.e[4] + rhs.e[5]
	return e
}

// Compose returns the transform that applies t, then rhs.
func (t Transform) Compose(rhs Transform) Transform {
	return Transform{e: t.mulE(rhs)}
}

// Translate applies a translation after t.
func (t Transform) Translate(tx, ty float32) Transform { return t.Compose(NewTranslate(tx, ty)) }

// Scale applies a scale after t.
func (t Transform) Scale(sx, sy float32) Transform { return t.Compose(NewScale(sx, sy)) }

// Rotate applies a rotation after t.
func (t Transform) Rotate(th float32) Transform { return t.Compose(NewRotate(th)) }

// Skew applies a skew after t.
func (t Transform) Skew(ax, ay float32) Transform { return t.Compose(NewSkew(ax, ay)) }

// Apply transforms a point by t.
func (t Transform) Apply(p Point) Point {
	x := t.e[0]*p.X + t.e[1]*p.Y + t.e[2]
	y := t.e[3]*p.X + t.e[4]*p.Y + t.e[5]
	return Point{x, y}
}
