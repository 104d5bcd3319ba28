package scene

import (
	"fmt"
	"image/color"
)

// pixelScale maps [0, 1] onto [0, 256) for truncation to a byte.
const pixelScale = 255.999

// Procedural paints a two-channel gradient straight from pixel coordinates,
// with no camera: x drives one channel and y the other.
type Procedural struct {
	goal Goal
}

// NewProcedural returns the gradient for a camera-less goal.
func NewProcedural(g Goal) (Procedural, error) {
	switch g {
	case GoalRedGreen, GoalRedBlue, GoalBlueGreen:
		return Procedural{goal: g}, nil
	}
	if _, err := ParseGoal(string(g)); err != nil {
		return Procedural{}, err
	}
	return Procedural{}, fmt.Errorf("scene: %w: %s", ErrNotProcedural, g)
}

func (p Procedural) Color(x, y float64) color.RGBA {
	a := uint8(x * pixelScale)
	b := uint8(y * pixelScale)
	switch p.goal {
	case GoalRedBlue:
		return color.RGBA{a, 0, b, 255}
	case GoalBlueGreen:
		return color.RGBA{0, b, a, 255}
	default:
		return color.RGBA{a, b, 0, 255}
	}
}

// Goal returns the goal the gradient was built for.
func (p Procedural) Goal() Goal {
	return p.goal
}
