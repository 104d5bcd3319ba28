package scene

import (
	"image/color"

	"sky-raytracer/internal/geom"
	"sky-raytracer/internal/mathutil"
)

// byteScale maps [0, 2) onto [0, 256) so that a truncated result never
// exceeds 255.
const byteScale = 127.999

var (
	hitColor = color.RGBA{255, 0, 0, 255}
	ones     = mathutil.I.Add(mathutil.J).Add(mathutil.K)
)

// Set decides the color seen along a ray. Implementations are Gradient, Sky
// and Japan.
type Set interface {
	ColorRay(r geom.Ray) color.RGBA

	set()
}

// Gradient colors a ray by its direction alone: each unit component in
// [-1, 1] becomes one channel.
type Gradient struct{}

// Sky is a vertical blue gradient, white looking down and blue looking up.
type Sky struct{}

// Japan paints Object solid red over the Sky backdrop.
type Japan struct {
	Object geom.Object
}

func (Gradient) set() {}
func (Sky) set()      {}
func (Japan) set()    {}

func (Gradient) ColorRay(r geom.Ray) color.RGBA {
	c := r.Dir.Unit().Add(ones).Scale(byteScale)
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}

func (Sky) ColorRay(r geom.Ray) color.RGBA {
	y := 1 - r.Dir.Unit().Y()
	v := uint8(y * byteScale)
	return color.RGBA{v, v, 255, 255}
}

// ColorRay is flat red whenever the ray line meets Object, in front of the
// camera or behind it.
func (j Japan) ColorRay(r geom.Ray) color.RGBA {
	if len(j.Object.Intersections(r)) > 0 {
		return hitColor
	}
	return Sky{}.ColorRay(r)
}
