// Package fixed implements a deterministic 16.16 fixed-point scalar used
// throughout the rasterizer's hot path, where floating-point rounding
// would make edge geometry and coverage accumulation non-reproducible
// across platforms.
package fixed

// Fixed is a signed 16.16 fixed-point number: the low 16 bits are the
// fractional part, the remaining bits are the integer part.
type Fixed int32

const (
	fractBits = 16
	fractMask = 1<<fractBits - 1

	// Zero is the additive identity.
	Zero Fixed = 0
	// Epsilon is the smallest representable positive value.
	Epsilon Fixed = 1
	// Half is exactly 0.5.
	Half Fixed = 1 << (fractBits - 1)
	// One is exactly 1.0.
	One Fixed = 1 << fractBits
	// Min is the smallest representable value.
	Min Fixed = -1 << 31
	// Max is the largest representable value.
	Max Fixed = 1<<31 - 1
)

// FromInt converts an integer to a fixed-point value.
func FromInt(v int32) Fixed { return Fixed(v) << fractBits }

// FromFloat32 converts a float32 to a fixed-point value, scaling by 2^16.
func FromFloat32(v float32) Fixed { return Fixed(v * float32(One)) }

// Int truncates the fixed-point value to its integer part via an
// arithmetic right shift (i.e. it rounds toward negative infinity, not
// toward zero).
func (f Fixed) Int() int32 { return int32(f) >> fractBits }

// Float32 converts back to a float32.
func (f Fixed) Float32() float32 { return float32(f) / float32(One) }

// Add returns f + g.
func (f Fixed) Add(g Fixed) Fixed { return f + g }

// Sub returns f - g.
func (f Fixed) Sub(g Fixed) Fixed { return f - g }

// Mul returns f * g, widening to 64 bits to avoid overflow before
// shifting back down.
func (f Fixed) Mul(g Fixed) Fixed {
	return Fixed((int64(f) * int64(g)) >> fractBits)
}

// Div returns f / g, widening the dividend to 64 bits first so the
// shifted-left numerator does not overflow.
func (f Fixed) Div(g Fixed) Fixed {
	return Fixed((int64(f) << fractBits) / int64(g))
}

// Shl returns f shifted left by n bits.
func (f Fixed) Shl(n uint) Fixed { return f << n }

// Shr returns f shifted right by n bits (arithmetic).
func (f Fixed) Shr(n uint) Fixed { return f >> n }

// Abs returns the absolute value of f.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Floor rounds toward negative infinity by masking off the fractional
// bits of the raw two's-complement representation.
func (f Fixed) Floor() Fixed { return f &^ fractMask }

// Ceil rounds toward positive infinity. Computed as floor(x + One -
// Epsilon) to match half-open-interval rounding at exact integers.
func (f Fixed) Ceil() Fixed { return (f + One - Epsilon).Floor() }

// Round rounds to the nearest integer, ties rounding up (add Half then
// floor).
func (f Fixed) Round() Fixed { return (f + Half).Floor() }

// Trunc rounds toward zero.
func (f Fixed) Trunc() Fixed {
	if f < 0 {
		return f.Ceil()
	}
	return f.Floor()
}

// Fract returns the fractional part of f. For the raw two's-complement
// representation this is always in [0, 1): Fract(-2.5) == 0.5, not
// -0.5. Floor is defined consistently, so f.Floor() + f.Fract() == f.
func (f Fixed) Fract() Fixed { return f & fractMask }

// Avg returns the average of f and g, computed as (f+g) with an
// arithmetic right shift of 1 (not a divide) so the result stays exact
// for the common case of averaging two already-fixed values.
func (f Fixed) Avg(g Fixed) Fixed { return (f + g) >> 1 }
