// Package scene combines a camera with a set of things to look at and answers
// the per-pixel color query used by the raster driver.
package scene

import (
	"fmt"
	"image/color"

	"sky-raytracer/internal/geom"
	"sky-raytracer/internal/mathutil"
	"sky-raytracer/internal/view"
)

// Shader is the per-pixel query. x and y are normalized to [0, 1] with
// (0, 0) at the top-left pixel.
type Shader interface {
	Color(x, y float64) color.RGBA
}

// Params carries the resolved render parameters a scene is built from.
type Params struct {
	Width, Height int
	// Theta and Phi are the camera yaw and pitch in radians.
	Theta, Phi float64
	// Distance and Radius place the Japan sphere on the -Z axis.
	Distance float64
	Radius   float64
}

// DefaultParams matches the command line defaults.
func DefaultParams() Params {
	return Params{
		Width:    1080,
		Height:   720,
		Distance: 5,
		Radius:   1,
	}
}

// Scene is a camera and the set it looks at. It is never modified after New
// and may be shared by any number of goroutines.
type Scene struct {
	View view.View
	Set  Set
}

// New builds the scene for a traced goal.
func New(p Params, g Goal) (*Scene, error) {
	set, err := newSet(p, g)
	if err != nil {
		return nil, err
	}
	return &Scene{
		View: view.FromAngles(p.Width, p.Height, p.Theta, p.Phi),
		Set:  set,
	}, nil
}

func newSet(p Params, g Goal) (Set, error) {
	switch g {
	case GoalGradient:
		return Gradient{}, nil
	case GoalSky:
		return Sky{}, nil
	case GoalJapan:
		return Japan{Object: geom.Sphere{
			Center: mathutil.Vec3{0, 0, -p.Distance},
			Radius: p.Radius,
		}}, nil
	}
	if _, err := ParseGoal(string(g)); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("scene: %w: %s", ErrNotTraced, g)
}

// Color returns the color of the pixel at normalized (x, y).
func (s *Scene) Color(x, y float64) color.RGBA {
	return s.Set.ColorRay(s.View.PixelRay(x, y))
}

// ForGoal returns the shader for any goal: a Scene for traced goals, a
// Procedural gradient otherwise.
func ForGoal(p Params, g Goal) (Shader, error) {
	if g.Traced() {
		s, err := New(p, g)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return NewProcedural(g)
}
