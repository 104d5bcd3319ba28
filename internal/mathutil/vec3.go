package mathutil

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
// Every method returns a new value; none mutate the receiver.
type Vec3 [3]float64

// Basis vectors and the origin.
var (
	I    = Vec3{1, 0, 0}
	J    = Vec3{0, 1, 0}
	K    = Vec3{0, 0, 1}
	Zero = Vec3{}
)

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div divides every component by s. s == 0 yields Inf/NaN components.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the right-handed cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Unit returns v scaled to length 1.
// The zero vector has no direction: the result is NaN in every component.
func (v Vec3) Unit() Vec3 {
	return v.Div(v.Len())
}

// ParallelNormal splits v into the part parallel to ref and the part
// perpendicular to it. par + perp == v up to rounding.
func (v Vec3) ParallelNormal(ref Vec3) (par, perp Vec3) {
	u := ref.Unit()
	par = u.Scale(v.Dot(u))
	return par, v.Sub(par)
}

// Perpendicular returns the component of v orthogonal to ref, computed as
// û × (v × û).
func (v Vec3) Perpendicular(ref Vec3) Vec3 {
	u := ref.Unit()
	return u.Cross(v.Cross(u))
}

// IsNaN reports whether any component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (v Vec3) String() string {
	return fmt.Sprintf("〈%g, %g, %g〉", v[0], v[1], v[2])
}
