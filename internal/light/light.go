// Package light owns the rogue light lifecycle: dormant until a minute
// tick arms it at a random horizon angle, then growing every tick until
// the player douses it or it breaches the fatal radius.
package light

import "chosenoffset.com/lightkeeper/internal/dice"

// Params are the lifecycle constants, fixed at construction.
type Params struct {
	// SpawnProbability is the per-tick chance a dormant light arms.
	SpawnProbability float64
	// SpawnAngleMin/Max bound the uniform draw, in positive degrees;
	// the drawn value is negated into screen-angle space. The range
	// must lie inside the span the player can rotate the view cone
	// over, or an armed light could be structurally unhittable.
	SpawnAngleMin int
	SpawnAngleMax int
	// InitialRadius and growth rates per minute tick.
	InitialRadius float64
	GrowthRadius  float64
	GrowthOffset  float64
	// EndRadius is the threshold that loses the game.
	EndRadius float64
}

// Controller mutates a single light through its lifecycle. It performs
// no I/O; randomness comes in through the roller.
type Controller struct {
	params Params

	armed          bool
	angle          float64
	radius         float64
	verticalOffset float64
}

// NewController creates a dormant controller with the given constants.
func NewController(params Params) *Controller {
	c := &Controller{params: params}
	c.Reset()
	return c
}

// OnMinuteTick advances the lifecycle by one in-game minute: a dormant
// light may arm; an armed light grows. At most one light exists at a
// time, so arming and growing never happen on the same tick.
func (c *Controller) OnMinuteTick(roller *dice.Roller) {
	if c.armed {
		c.radius += c.params.GrowthRadius
		c.verticalOffset += c.params.GrowthOffset
		return
	}
	if roller.Chance(c.params.SpawnProbability) {
		deg := roller.IntBetween(c.params.SpawnAngleMin, c.params.SpawnAngleMax)
		c.armed = true
		c.angle = -float64(deg)
	}
}

// Reset returns the light to dormant with its initial constants. It is
// called both on a successful hit and on a full game reset, and is
// idempotent.
func (c *Controller) Reset() {
	c.armed = false
	c.angle = 0
	c.radius = c.params.InitialRadius
	c.verticalOffset = 0
}

// Breached reports whether the radius has reached the fatal threshold.
func (c *Controller) Breached() bool {
	return c.radius >= c.params.EndRadius
}

// Armed reports whether a light is currently alive.
func (c *Controller) Armed() bool { return c.armed }

// Angle returns the light's screen angle in degrees. Only meaningful
// while armed.
func (c *Controller) Angle() float64 { return c.angle }

// Radius returns the current rendered radius.
func (c *Controller) Radius() float64 { return c.radius }

// VerticalOffset returns how far the light has sunk below the water
// line since arming.
func (c *Controller) VerticalOffset() float64 { return c.verticalOffset }

// EndRadius returns the fatal radius constant.
func (c *Controller) EndRadius() float64 { return c.params.EndRadius }
