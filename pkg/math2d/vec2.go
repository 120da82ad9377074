// Package math2d provides 2D vector and affine matrix math for planar.
//
// The package-level functions use out-parameter style: the caller passes the
// destination, which is written and returned. out may alias any input, so
// math2d.Add(v, v, w) is the in-place form. Nothing allocates except Create
// and Clone, which makes these safe to call from per-frame loops.
//
// Vec2 also has value-receiver methods (v.Add(w)) returning new values for
// code where allocation is not a concern.
package math2d

import (
	"fmt"
	"math"
)

// Vec2 represents a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Zero2 returns the zero vector.
func Zero2() Vec2 {
	return Vec2{}
}

// Create allocates a vector. Missing components default to 0; components
// past the second are ignored.
func Create(xy ...float64) *Vec2 {
	out := new(Vec2)
	if len(xy) > 0 {
		out.X = xy[0]
	}
	if len(xy) > 1 {
		out.Y = xy[1]
	}
	return out
}

// Copy writes v into out.
func Copy(out, v *Vec2) *Vec2 {
	out.X = v.X
	out.Y = v.Y
	return out
}

// Clone allocates a copy of v.
func Clone(v *Vec2) *Vec2 {
	return &Vec2{v.X, v.Y}
}

// Set writes (a, b) into out.
func Set(out *Vec2, a, b float64) *Vec2 {
	out.X = a
	out.Y = b
	return out
}

// Add writes v1 + v2 into out.
func Add(out, v1, v2 *Vec2) *Vec2 {
	x, y := v1.X+v2.X, v1.Y+v2.Y
	out.X, out.Y = x, y
	return out
}

// Sub writes v1 - v2 into out.
func Sub(out, v1, v2 *Vec2) *Vec2 {
	x, y := v1.X-v2.X, v1.Y-v2.Y
	out.X, out.Y = x, y
	return out
}

// Mul writes the component-wise product of v1 and v2 into out.
func Mul(out, v1, v2 *Vec2) *Vec2 {
	x, y := v1.X*v2.X, v1.Y*v2.Y
	out.X, out.Y = x, y
	return out
}

// Div writes the component-wise quotient v1 / v2 into out.
// Zero components in v2 give ±Inf or NaN; callers that care must check first.
func Div(out, v1, v2 *Vec2) *Vec2 {
	x, y := v1.X/v2.X, v1.Y/v2.Y
	out.X, out.Y = x, y
	return out
}

// Scale writes v * s into out.
func Scale(out, v *Vec2, s float64) *Vec2 {
	x, y := v.X*s, v.Y*s
	out.X, out.Y = x, y
	return out
}

// ScaleAndAdd writes v1 + v2*a into out.
func ScaleAndAdd(out, v1, v2 *Vec2, a float64) *Vec2 {
	x, y := v1.X+v2.X*a, v1.Y+v2.Y*a
	out.X, out.Y = x, y
	return out
}

// Negate writes -v into out.
func Negate(out, v *Vec2) *Vec2 {
	x, y := -v.X, -v.Y
	out.X, out.Y = x, y
	return out
}

// Lerp writes v1 + t*(v2-v1) into out. t is not clamped.
func Lerp(out, v1, v2 *Vec2, t float64) *Vec2 {
	x := v1.X + t*(v2.X-v1.X)
	y := v1.Y + t*(v2.Y-v1.Y)
	out.X, out.Y = x, y
	return out
}

// Min writes the component-wise minimum of v1 and v2 into out.
func Min(out, v1, v2 *Vec2) *Vec2 {
	x, y := math.Min(v1.X, v2.X), math.Min(v1.Y, v2.Y)
	out.X, out.Y = x, y
	return out
}

// Max writes the component-wise maximum of v1 and v2 into out.
func Max(out, v1, v2 *Vec2) *Vec2 {
	x, y := math.Max(v1.X, v2.X), math.Max(v1.Y, v2.Y)
	out.X, out.Y = x, y
	return out
}

// Dot returns the dot product v1 · v2.
func Dot(v1, v2 *Vec2) float64 {
	return v1.X*v2.X + v1.Y*v2.Y
}

// LenSquare returns the squared length of v (no sqrt).
func LenSquare(v *Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// LengthSquare is an alias for LenSquare.
func LengthSquare(v *Vec2) float64 {
	return LenSquare(v)
}

// Len returns the length of v.
func Len(v *Vec2) float64 {
	return math.Sqrt(LenSquare(v))
}

// Length is an alias for Len.
func Length(v *Vec2) float64 {
	return Len(v)
}

// DistanceSquare returns the squared distance between two points.
func DistanceSquare(v1, v2 *Vec2) float64 {
	dx, dy := v1.X-v2.X, v1.Y-v2.Y
	return dx*dx + dy*dy
}

// DistSquare is an alias for DistanceSquare.
func DistSquare(v1, v2 *Vec2) float64 {
	return DistanceSquare(v1, v2)
}

// Distance returns the distance between two points.
func Distance(v1, v2 *Vec2) float64 {
	return math.Sqrt(DistanceSquare(v1, v2))
}

// Dist is an alias for Distance.
func Dist(v1, v2 *Vec2) float64 {
	return Distance(v1, v2)
}

// Normalize writes the unit vector of v into out, or (0, 0) when v has
// zero length.
func Normalize(out, v *Vec2) *Vec2 {
	d := Len(v)
	if d == 0 {
		out.X, out.Y = 0, 0
		return out
	}
	x, y := v.X/d, v.Y/d
	out.X, out.Y = x, y
	return out
}

// ApplyTransform writes m applied to the point v into out.
func ApplyTransform(out, v *Vec2, m *Matrix) *Vec2 {
	x, y := v.X, v.Y
	out.X = m[0]*x + m[2]*y + m[4]
	out.Y = m[1]*x + m[3]*y + m[5]
	return out
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return *Add(&a, &a, &b)
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return *Sub(&a, &a, &b)
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return *Mul(&a, &a, &b)
}

// Div returns the component-wise quotient a / b.
func (a Vec2) Div(b Vec2) Vec2 {
	return *Div(&a, &a, &b)
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return *Scale(&a, &a, s)
}

// ScaleAndAdd returns a + b*s.
func (a Vec2) ScaleAndAdd(b Vec2, s float64) Vec2 {
	return *ScaleAndAdd(&a, &a, &b, s)
}

// Negate returns the negated vector.
func (a Vec2) Negate() Vec2 {
	return *Negate(&a, &a)
}

// Lerp returns linear interpolation between a and b.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return *Lerp(&a, &a, &b, t)
}

// Min returns the component-wise minimum.
func (a Vec2) Min(b Vec2) Vec2 {
	return *Min(&a, &a, &b)
}

// Max returns the component-wise maximum.
func (a Vec2) Max(b Vec2) Vec2 {
	return *Max(&a, &a, &b)
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return Dot(&a, &b)
}

// Len returns the length of the vector.
func (a Vec2) Len() float64 {
	return Len(&a)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec2) LenSq() float64 {
	return LenSquare(&a)
}

// Normalize returns the unit vector.
func (a Vec2) Normalize() Vec2 {
	return *Normalize(&a, &a)
}

// Distance returns the distance between two points.
func (a Vec2) Distance(b Vec2) float64 {
	return Distance(&a, &b)
}

// DistanceSq returns the squared distance between two points.
func (a Vec2) DistanceSq(b Vec2) float64 {
	return DistanceSquare(&a, &b)
}

// Transform returns a with m applied.
func (a Vec2) Transform(m Matrix) Vec2 {
	return *ApplyTransform(&a, &a, &m)
}

// Rotate rotates the vector by angle (radians).
func (a Vec2) Rotate(angle float64) Vec2 {
	return a.Transform(Rotation(angle))
}

// Perpendicular returns a perpendicular vector (90° counter-clockwise).
func (a Vec2) Perpendicular() Vec2 {
	return Vec2{-a.Y, a.X}
}

// Angle returns the angle of the vector in radians.
func (a Vec2) Angle() float64 {
	return math.Atan2(a.Y, a.X)
}

func (a Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", a.X, a.Y)
}
