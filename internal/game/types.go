package game

import "chosenoffset.com/lightkeeper/internal/raycast"

// Outcome is the terminal state of a round.
type Outcome int

// Round outcomes.
const (
	Ongoing Outcome = iota
	Lost
	Won
)

// String returns a readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "ongoing"
	}
}

// RotateDirection selects which way a rotate input turns the view.
type RotateDirection int

// Rotate directions.
const (
	RotateLeft RotateDirection = iota
	RotateRight
)

// HitBox is the screen-space square the player must click to douse the
// light. X and Y are the center; the box extends Size/2 in each
// direction. Its size is fixed at twice the fatal radius for the whole
// life of the light, regardless of the light's current rendered size.
type HitBox struct {
	X    float64
	Y    float64
	Size float64
}

// Contains reports whether the pointer coordinates fall inside the
// box, bounds inclusive.
func (b HitBox) Contains(x, y float64) bool {
	half := b.Size / 2
	return x >= b.X-half && x <= b.X+half &&
		y >= b.Y-half && y <= b.Y+half
}

// LightView is the light's live screen-space placement, recomputed per
// frame from the current view direction.
type LightView struct {
	X      float64
	Y      float64
	Radius float64
}

// Snapshot is a pure view of one frame for the presentation layer.
type Snapshot struct {
	Rays         []raycast.Sample
	HitBox       *HitBox    // nil when no box is active
	Light        *LightView // nil when the light is dormant or out of view
	ClockDisplay string
	Outcome      Outcome
	CameraTilt   int
	PlayerAngle  float64
	FOV          float64
}
