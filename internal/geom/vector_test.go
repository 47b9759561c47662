package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestAddSubScale(t *testing.T) {
	a := Vector2{X: 3, Y: -1}
	b := Vector2{X: 0.5, Y: 2}

	sum := a.Add(b)
	if !almostEqual(sum.X, 3.5) || !almostEqual(sum.Y, 1) {
		t.Errorf("Add: expected (3.5, 1), got (%v, %v)", sum.X, sum.Y)
	}

	diff := a.Sub(b)
	if !almostEqual(diff.X, 2.5) || !almostEqual(diff.Y, -3) {
		t.Errorf("Sub: expected (2.5, -3), got (%v, %v)", diff.X, diff.Y)
	}

	scaled := a.Scale(-2)
	if !almostEqual(scaled.X, -6) || !almostEqual(scaled.Y, 2) {
		t.Errorf("Scale: expected (-6, 2), got (%v, %v)", scaled.X, scaled.Y)
	}
}

func TestMagnitudeAndDot(t *testing.T) {
	v := Vector2{X: 3, Y: 4}
	if !almostEqual(v.Magnitude(), 5) {
		t.Errorf("Magnitude: expected 5, got %v", v.Magnitude())
	}

	if d := v.Dot(Vector2{X: -4, Y: 3}); !almostEqual(d, 0) {
		t.Errorf("Dot of perpendicular vectors: expected 0, got %v", d)
	}

	if d := v.Dot(v); !almostEqual(d, 25) {
		t.Errorf("Dot with self: expected 25, got %v", d)
	}
}

func TestAngleConvention(t *testing.T) {
	cases := []struct {
		v    Vector2
		want float64
	}{
		{Vector2{X: 1, Y: 0}, 0},
		{Vector2{X: 0, Y: 1}, 90},
		{Vector2{X: -1, Y: 0}, 180},
		{Vector2{X: 0, Y: -1}, -90},
		{Vector2{X: 1, Y: 1}, 45},
	}
	for _, c := range cases {
		if got := c.v.Angle(); !almostEqual(got, c.want) {
			t.Errorf("Angle of (%v, %v): expected %v, got %v", c.v.X, c.v.Y, c.want, got)
		}
	}
}

func TestRotateScreenConvention(t *testing.T) {
	// +Y is down on screen, so a positive rotation must decrease the
	// atan2 angle (turn the view left).
	v := Vector2{X: 0, Y: -1}
	v.Rotate(10)
	if got := v.Angle(); !almostEqual(got, -100) {
		t.Errorf("Rotate(10) from -90: expected -100, got %v", got)
	}

	v = Vector2{X: 0, Y: -1}
	v.Rotate(-10)
	if got := v.Angle(); !almostEqual(got, -80) {
		t.Errorf("Rotate(-10) from -90: expected -80, got %v", got)
	}
}

func TestRotatePreservesMagnitude(t *testing.T) {
	v := Vector2{X: 2.5, Y: -1.5}
	before := v.Magnitude()
	for i := 0; i < 36; i++ {
		v.Rotate(10)
	}
	if !almostEqual(v.Magnitude(), before) {
		t.Errorf("magnitude drifted after full turn: %v != %v", v.Magnitude(), before)
	}
	// A full 360 degrees should return to the start.
	if !almostEqual(v.X, 2.5) || !almostEqual(v.Y, -1.5) {
		t.Errorf("full turn did not return to start: got (%v, %v)", v.X, v.Y)
	}
}
