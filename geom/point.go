// Package geom provides the floating-point point, wide-point and affine
// transform types shared by the figure builder, curve flattener and
// stroke expander. Coordinates are float32, matching the 32-bit user
// units path operations are expressed in.
package geom

import "math"

// Point is a 2D point or vector in user space.
type Point struct {
	X, Y float32
}

// Pt is a convenience constructor for Point.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float32) Point { return Point{p.X * s, p.Y * s} }

// Div returns p divided by s.
func (p Point) Div(s float32) Point { return Point{p.X / s, p.Y / s} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Cross returns the 2D cross product p.X*q.Y - p.Y*q.X, used both as a
// pseudo-determinant and as the widdershins (winding) test.
func (p Point) Cross(q Point) float32 { return p.X*q.Y - p.Y*q.X }

// Mag returns the magnitude (length) of p, computed via hypot for
// numerical stability.
func (p Point) Mag() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// Normalize returns a unit vector in the same direction as p, or the
// zero vector if p has zero magnitude.
func (p Point) Normalize() Point {
	m := p.Mag()
	if m > 0 {
		return p.Div(m)
	}
	return Point{}
}

// DistSq returns the squared distance between p and q.
func (p Point) DistSq(q Point) float32 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float32 {
	return float32(math.Sqrt(float64(p.DistSq(q))))
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Left returns the left-hand perpendicular of p.
func (p Point) Left() Point { return Point{-p.Y, p.X} }

// Right returns the right-hand perpendicular of p.
func (p Point) Right() Point { return Point{p.Y, -p.X} }

// Widdershins reports whether p and q, treated as edges pointing toward
// a common vertex, are wound counter-clockwise.
func (p Point) Widdershins(q Point) bool {
	return p.X*q.Y > q.X*p.Y
}

// Lerp linearly interpolates between p and q; t=0 yields p, t=1 yields q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{Lerp(p.X, q.X, t), Lerp(p.Y, q.Y, t)}
}

// Lerp linearly interpolates between two scalars; t=0 yields a, t=1
// yields b.
func Lerp(a, b, t float32) float32 { return a + (b-a)*t }

// AngleRel returns the signed angle from q to p, normalized to
// [-π, π].
func (p Point) AngleRel(q Point) float32 {
	const pi = math.Pi
	th := math.Atan2(float64(p.Y), float64(p.X)) - math.Atan2(float64(q.Y), float64(q.X))
	switch {
	case th < -pi:
		th += 2 * pi
	case th > pi:
		th -= 2 * pi
	}
	return float32(th)
}

// Intersection computes the intersection of line a0-a1 with line b0-b1
// using the classic determinant formula. The second return value is
// false when the lines are colinear (zero denominator).
func Intersection(a0, a1, b0, b1 Point) (Point, bool) {
	av := a0.Sub(a1)
	bv := b0.Sub(b1)
	den := av.Cross(bv)
	if den == 0 {
		return Point{}, false
	}
	ca := a0.Cross(a1)
	cb := b0.Cross(b1)
	xn := bv.X*ca - av.X*cb
	yn := bv.Y*ca - av.Y*cb
	return Point{xn / den, yn / den}, true
}

// WidePoint is a point with an associated stroke width.
type WidePoint struct {
	Point
	W float32
}

// WPt is a convenience constructor for WidePoint.
func WPt(p Point, w float32) WidePoint { return WidePoint{Point: p, W: w} }

// Midpoint returns the point and width both averaged between p and q.
func (p WidePoint) Midpoint(q WidePoint) WidePoint {
	return WidePoint{Point: p.Point.Midpoint(q.Point), W: (p.W + q.W) / 2}
}
