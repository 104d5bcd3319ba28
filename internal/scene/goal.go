package scene

import (
	"errors"
	"fmt"
	"strings"
)

// Goal selects what a render draws.
type Goal string

const (
	GoalGradient Goal = "gradient"
	GoalSky      Goal = "sky"
	GoalJapan    Goal = "japan"

	GoalRedGreen  Goal = "red-green"
	GoalRedBlue   Goal = "red-blue"
	GoalBlueGreen Goal = "blue-green"
)

var (
	// ErrUnknownGoal is returned by ParseGoal for names outside Goals.
	ErrUnknownGoal = errors.New("unknown goal")
	// ErrNotTraced is returned when a camera-less goal is given to New.
	ErrNotTraced = errors.New("goal does not use a camera")
	// ErrNotProcedural is returned when a traced goal is given to NewProcedural.
	ErrNotProcedural = errors.New("goal is not procedural")
)

// Goals lists every supported goal in display order.
var Goals = []Goal{
	GoalGradient, GoalSky, GoalJapan,
	GoalRedGreen, GoalRedBlue, GoalBlueGreen,
}

// ParseGoal accepts a goal name, case-insensitively.
func ParseGoal(s string) (Goal, error) {
	g := Goal(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Goals {
		if g == known {
			return g, nil
		}
	}
	return "", fmt.Errorf("scene: %w %q (want one of %s)", ErrUnknownGoal, s, GoalNames())
}

// GoalNames returns the goal names joined for help text.
func GoalNames() string {
	names := make([]string, len(Goals))
	for i, g := range Goals {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

// Traced reports whether the goal casts camera rays.
func (g Goal) Traced() bool {
	switch g {
	case GoalGradient, GoalSky, GoalJapan:
		return true
	}
	return false
}

func (g Goal) String() string {
	return string(g)
}
