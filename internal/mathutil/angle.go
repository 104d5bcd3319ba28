package mathutil

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// Direction returns the unit look direction for a yaw theta and pitch phi
// (radians). theta = phi = 0 looks down -Z; positive theta turns toward +X,
// positive phi tilts toward +Y.
func Direction(theta, phi float64) Vec3 {
	return Vec3{
		math.Sin(theta) * math.Cos(phi),
		math.Sin(phi),
		-math.Cos(theta) * math.Cos(phi),
	}
}
