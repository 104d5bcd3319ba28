// Package view implements the pinhole camera that turns normalized pixel
// coordinates into world-space rays.
package view

import (
	"sky-raytracer/internal/geom"
	"sky-raytracer/internal/mathutil"
)

// UpHint is the world direction the top image row should face. Rows are
// stored top to bottom, so +y on the viewport has to point at row 0.
var UpHint = mathutil.Vec3{0, -1, 0}

// View is a pinhole camera with a rectangular viewport.
type View struct {
	Center mathutil.Vec3
	// Focus is the look direction; its length is the distance from Center
	// to the viewport plane.
	Focus mathutil.Vec3
	// PortW and PortH span half the viewport each, so that
	// Center+Focus±PortW±PortH are its corners.
	PortW mathutil.Vec3
	PortH mathutil.Vec3
}

// New builds a camera at center looking along focus, with a viewport scaled
// to width × height.
//
// If focus is parallel to UpHint the basis collapses and every ray carries
// NaN components; see Degenerate.
func New(center, focus mathutil.Vec3, width, height float64) View {
	_, perp := UpHint.ParallelNormal(focus)
	h := perp.Unit()
	w := focus.Cross(h).Unit()
	return View{
		Center: center,
		Focus:  focus,
		PortW:  w.Scale(width),
		PortH:  h.Scale(height),
	}
}

// ViewportWidth is the fixed horizontal extent passed to New by FromAngles.
const ViewportWidth = 2.0

// FromAngles builds the camera used for an imgW × imgH render: centered at
// the origin, looking in the direction given by theta (yaw) and phi (pitch)
// in radians, with a unit focal length. The viewport keeps the image aspect
// ratio.
func FromAngles(imgW, imgH int, theta, phi float64) View {
	ratio := float64(imgW) / float64(imgH)
	return New(mathutil.Zero, mathutil.Direction(theta, phi), ViewportWidth, ViewportWidth/ratio)
}

// Pixel returns the point on the viewport for normalized x, y in [0, 1].
// Values outside that range extrapolate past the viewport edge.
func (v View) Pixel(x, y float64) mathutil.Vec3 {
	return v.Center.
		Add(v.Focus).
		Add(v.PortW.Scale(2*x - 1)).
		Add(v.PortH.Scale(2*y - 1))
}

// PixelRay returns the primary ray through Pixel(x, y). The direction is not
// normalized.
func (v View) PixelRay(x, y float64) geom.Ray {
	return geom.Ray{
		Origin: v.Center,
		Dir:    v.Pixel(x, y).Sub(v.Center),
	}
}

// Degenerate reports whether the viewport basis could not be built, which
// happens when the look direction is parallel to UpHint or zero.
func (v View) Degenerate() bool {
	return v.PortW.IsNaN() || v.PortH.IsNaN()
}
