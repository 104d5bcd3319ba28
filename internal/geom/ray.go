// Package geom holds rays and the primitives they can hit.
package geom

import "sky-raytracer/internal/mathutil"

// Ray is a half-line from Origin along Dir. Dir need not be unit length.
type Ray struct {
	Origin mathutil.Vec3
	Dir    mathutil.Vec3
}

// At returns the point Origin + Dir*t. t is not bounded.
func (r Ray) At(t float64) mathutil.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}
