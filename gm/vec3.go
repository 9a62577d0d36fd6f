package gm

import (
	"fmt"
	"math"
)

type ScalarTypes interface {
	float32 | float64
}

type Vec3F32 = vec3[float32]
type Vec3F64 = vec3[float64]

type Vec3 = Vec3F64

var (
	Vec3Zero = Vec3{}
	Vec3One  = Vec3{X: 1, Y: 1, Z: 1}
	Vec3X    = Vec3{X: 1}
	Vec3Y    = Vec3{Y: 1}
	Vec3Z    = Vec3{Z: 1}
)

func Vec3Of[S ScalarTypes](x, y, z S) vec3[S] {
	return vec3[S]{X: x, Y: y, Z: z}
}

func Vec3Splat[S ScalarTypes](value S) vec3[S] {
	return vec3[S]{X: value, Y: value, Z: value}
}

type vec3[S ScalarTypes] struct {
	X, Y, Z S
}

func (v vec3[S]) Add(other vec3[S]) vec3[S] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v vec3[S]) Sub(other vec3[S]) vec3[S] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v vec3[S]) Mul(scalar S) vec3[S] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v vec3[S]) MulEach(other vec3[S]) vec3[S] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

func (v vec3[S]) Neg() vec3[S] {
	return vec3[S]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v vec3[S]) Dot(other vec3[S]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product v × other.
func (v vec3[S]) Cross(other vec3[S]) vec3[S] {
	return vec3[S]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v vec3[S]) LengthSqr() S {
	return v.Dot(v)
}

func (v vec3[S]) Length() S {
	return S(math.Sqrt(float64(v.LengthSqr())))
}

func (v vec3[S]) DistanceTo(other vec3[S]) S {
	return other.Sub(v).Length()
}

// Normalized returns the vector scaled to unit length.
// The zero vector is returned unchanged.
func (v vec3[S]) Normalized() vec3[S] {
	length := v.Length()
	if length == 0 {
		return v
	}

	v.X /= length
	v.Y /= length
	v.Z /= length
	return v
}

func (v vec3[S]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v vec3[S]) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}
