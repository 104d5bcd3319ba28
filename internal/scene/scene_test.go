package scene

import (
	"errors"
	"image/color"
	"testing"

	"sky-raytracer/internal/geom"
	"sky-raytracer/internal/mathutil"
)

func TestParseGoal(t *testing.T) {
	for _, g := range Goals {
		got, err := ParseGoal(string(g))
		if err != nil || got != g {
			t.Errorf("ParseGoal(%q) = %q, %v", g, got, err)
		}
	}
	if got, err := ParseGoal("  Japan "); err != nil || got != GoalJapan {
		t.Errorf("ParseGoal(\"  Japan \") = %q, %v", got, err)
	}
	if _, err := ParseGoal("mandelbrot"); !errors.Is(err, ErrUnknownGoal) {
		t.Errorf("ParseGoal(mandelbrot) error = %v, want ErrUnknownGoal", err)
	}
}

func TestNewSelectsSet(t *testing.T) {
	p := DefaultParams()

	s, err := New(p, GoalGradient)
	if err != nil {
		t.Fatalf("New(gradient): %v", err)
	}
	if _, ok := s.Set.(Gradient); !ok {
		t.Errorf("gradient set = %T", s.Set)
	}

	s, err = New(p, GoalSky)
	if err != nil {
		t.Fatalf("New(sky): %v", err)
	}
	if _, ok := s.Set.(Sky); !ok {
		t.Errorf("sky set = %T", s.Set)
	}

	p.Distance, p.Radius = 7, 0.5
	s, err = New(p, GoalJapan)
	if err != nil {
		t.Fatalf("New(japan): %v", err)
	}
	j, ok := s.Set.(Japan)
	if !ok {
		t.Fatalf("japan set = %T", s.Set)
	}
	want := geom.Sphere{Center: mathutil.Vec3{0, 0, -7}, Radius: 0.5}
	if j.Object != want {
		t.Errorf("japan object = %v, want %v", j.Object, want)
	}
}

func TestNewRejectsProceduralGoal(t *testing.T) {
	if _, err := New(DefaultParams(), GoalRedGreen); !errors.Is(err, ErrNotTraced) {
		t.Errorf("New(red-green) error = %v, want ErrNotTraced", err)
	}
	if _, err := New(DefaultParams(), Goal("nope")); !errors.Is(err, ErrUnknownGoal) {
		t.Errorf("New(nope) error = %v, want ErrUnknownGoal", err)
	}
}

func TestSceneColor(t *testing.T) {
	s, err := New(DefaultParams(), GoalJapan)
	if err != nil {
		t.Fatal(err)
	}

	// Image center looks straight at the sphere.
	if got := s.Color(0.5, 0.5); got != hitColor {
		t.Errorf("Color(0.5, 0.5) = %v, want %v", got, hitColor)
	}
	// The top-left corner is above the sphere and sees sky.
	want := (Sky{}).ColorRay(s.View.PixelRay(0, 0))
	if got := s.Color(0, 0); got != want || got == hitColor {
		t.Errorf("Color(0, 0) = %v, want sky %v", got, want)
	}
	// Top rows face up and are bluer than bottom rows.
	top, bottom := s.Color(0.1, 0), s.Color(0.1, 1)
	if top.R >= bottom.R {
		t.Errorf("top %v should be bluer than bottom %v", top, bottom)
	}
}

func TestSceneColorIsPure(t *testing.T) {
	for _, g := range []Goal{GoalGradient, GoalSky, GoalJapan} {
		s, err := New(Params{Width: 64, Height: 48, Theta: 0.3, Phi: -0.2, Distance: 3, Radius: 1}, g)
		if err != nil {
			t.Fatal(err)
		}
		for _, xy := range [][2]float64{{0, 0}, {0.37, 0.61}, {1, 1}} {
			a := s.Color(xy[0], xy[1])
			b := s.Color(xy[0], xy[1])
			if a != b {
				t.Errorf("%s: Color(%v) not repeatable: %v vs %v", g, xy, a, b)
			}
		}
	}
}

func TestProcedural(t *testing.T) {
	tests := []struct {
		goal Goal
		x, y float64
		want color.RGBA
	}{
		{GoalRedGreen, 0, 0, color.RGBA{0, 0, 0, 255}},
		{GoalRedGreen, 1, 1, color.RGBA{255, 255, 0, 255}},
		{GoalRedGreen, 0.5, 0, color.RGBA{127, 0, 0, 255}},
		{GoalRedBlue, 1, 0.5, color.RGBA{255, 0, 127, 255}},
		{GoalBlueGreen, 1, 0, color.RGBA{0, 0, 255, 255}},
		{GoalBlueGreen, 0, 1, color.RGBA{0, 255, 0, 255}},
	}
	for _, tt := range tests {
		p, err := NewProcedural(tt.goal)
		if err != nil {
			t.Fatalf("NewProcedural(%s): %v", tt.goal, err)
		}
		if got := p.Color(tt.x, tt.y); got != tt.want {
			t.Errorf("%s.Color(%v, %v) = %v, want %v", tt.goal, tt.x, tt.y, got, tt.want)
		}
	}

	if _, err := NewProcedural(GoalSky); !errors.Is(err, ErrNotProcedural) {
		t.Errorf("NewProcedural(sky) error = %v, want ErrNotProcedural", err)
	}
}

func TestForGoal(t *testing.T) {
	for _, g := range Goals {
		sh, err := ForGoal(DefaultParams(), g)
		if err != nil {
			t.Fatalf("ForGoal(%s): %v", g, err)
		}
		switch sh.(type) {
		case *Scene:
			if !g.Traced() {
				t.Errorf("ForGoal(%s) = *Scene for a procedural goal", g)
			}
		case Procedural:
			if g.Traced() {
				t.Errorf("ForGoal(%s) = Procedural for a traced goal", g)
			}
		default:
			t.Errorf("ForGoal(%s) = %T", g, sh)
		}
	}
}
