// Package math provides the vector, matrix and geometry types used by the deformer.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSq returns the squared magnitude.
func (v Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// Normalize returns a unit vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Lerp linearly interpolates from v to other.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		v.X + t*(other.X-v.X),
		v.Y + t*(other.Y-v.Y),
		v.Z + t*(other.Z-v.Z),
	}
}

// Slerp spherically interpolates from v to other, treating both as vectors
// from the origin: the direction is rotated by t of the angle between them
// and the magnitude is blended linearly. Zero-length or (anti)parallel inputs
// fall back to Lerp.
func (v Vec3) Slerp(other Vec3, t float32) Vec3 {
	la := v.Length()
	lb := other.Length()
	if la < 1e-6 || lb < 1e-6 {
		return v.Lerp(other, t)
	}

	na := v.Scale(1 / la)
	nb := other.Scale(1 / lb)
	dot := float64(na.Dot(nb))
	if dot > 0.9995 || dot < -0.9995 {
		return v.Lerp(other, t)
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	wa := float32(math.Sin((1-float64(t))*theta) / sinTheta)
	wb := float32(math.Sin(float64(t)*theta) / sinTheta)

	dir := na.Scale(wa).Add(nb.Scale(wb))
	return dir.Scale(la + (lb-la)*t)
}

// OptVec3 is a point that may be absent.
type OptVec3 struct {
	V     Vec3
	Valid bool
}

// Some wraps v as a present OptVec3.
func Some(v Vec3) OptVec3 {
	return OptVec3{V: v, Valid: true}
}

// None returns an absent OptVec3.
func None() OptVec3 {
	return OptVec3{}
}

// Get returns the point and whether it is present.
func (o OptVec3) Get() (Vec3, bool) {
	return o.V, o.Valid
}
