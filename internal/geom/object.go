package geom

import (
	"fmt"
	"math"

	"sky-raytracer/internal/mathutil"
)

// Object is a renderable primitive. The set of implementations is closed to
// this package.
type Object interface {
	// Intersections returns the ray parameters t, ascending, at which
	// r.At(t) lies on the surface. Hits behind the origin (t < 0) are
	// included.
	Intersections(r Ray) []float64

	object()
}

// Sphere is a ball surface. A zero radius is a single point.
type Sphere struct {
	Center mathutil.Vec3
	Radius float64
}

func (Sphere) object() {}

// Intersections solves |r.At(t) - Center|² = Radius² for t.
// The midpoint of the two roots is found first and the roots are placed
// symmetrically around it, which keeps the near root accurate when the
// sphere is small relative to its distance.
func (s Sphere) Intersections(r Ray) []float64 {
	toCenter := s.Center.Sub(r.Origin)
	a := r.Dir.LenSq()
	c := toCenter.LenSq() - s.Radius*s.Radius

	midpoint := r.Dir.Dot(toCenter) / a
	offsetSq := midpoint*midpoint - c/a

	switch {
	case offsetSq < 0, math.IsNaN(offsetSq):
		return nil
	case offsetSq == 0:
		return []float64{midpoint}
	}
	offset := math.Sqrt(offsetSq)
	return []float64{midpoint - offset, midpoint + offset}
}

func (s Sphere) String() string {
	return fmt.Sprintf("sphere(%v, r=%g)", s.Center, s.Radius)
}
