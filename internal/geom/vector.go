// Package geom provides the 2D vector math used by the view and
// projection systems.
package geom

import "math"

// Vector2 is a 2D vector in world or screen space.
type Vector2 struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Magnitude returns the Euclidean length of v.
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns the direction of v in degrees, following the atan2
// convention: range (-180, 180], zero along +X.
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// Rotate rotates v in place by deg degrees. Screen coordinates put +Y
// downward, so the matrix is applied to the negated angle: a positive
// input turns the vector counterclockwise on screen (view left).
func (v *Vector2) Rotate(deg float64) {
	rad := -deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	x := v.X*cos - v.Y*sin
	y := v.X*sin + v.Y*cos
	v.X = x
	v.Y = y
}
