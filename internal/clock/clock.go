// Package clock implements the countdown game clock. The clock counts
// in-game minutes down from a starting value; each Advance consumes a
// fixed slice of the current minute, so minute boundaries fire at a
// rate decoupled from the render frame rate.
package clock

import (
	"fmt"

	"chosenoffset.com/lightkeeper/internal/config"
)

// Clock is a countdown timer over whole minutes, subdivided into 100
// subunits per minute.
type Clock struct {
	minutes        int
	subunits       int
	ticksPerMinute int
	startMinutes   int
}

// New builds a clock holding the given number of minutes, consumed in
// ticksPerMinute steps per minute.
func New(minutes, ticksPerMinute int) (*Clock, error) {
	if minutes < 0 {
		return nil, fmt.Errorf("%w: clock minutes must be >= 0, got %d", config.ErrInvalidConfig, minutes)
	}
	if ticksPerMinute <= 0 {
		return nil, fmt.Errorf("%w: ticks per minute must be > 0, got %d", config.ErrInvalidConfig, ticksPerMinute)
	}
	return &Clock{minutes: minutes, ticksPerMinute: ticksPerMinute, startMinutes: minutes}, nil
}

// Reset restores the clock to its construction state.
func (c *Clock) Reset() {
	c.minutes = c.startMinutes
	c.subunits = 0
}

// Advance consumes one tick's worth of subunits and reports whether a
// minute boundary was just crossed. Crossing a boundary resets the
// subunits to a full minute minus one tick, so exactly ticksPerMinute
// calls separate consecutive boundaries.
func (c *Clock) Advance() bool {
	c.subunits -= 100 / c.ticksPerMinute
	if c.subunits < 0 {
		if c.minutes == 0 {
			// Terminal; hold at zero so Expired stays true.
			c.subunits = 0
			return false
		}
		c.minutes--
		c.subunits = (100 / c.ticksPerMinute) * (c.ticksPerMinute - 1)
		return true
	}
	return false
}

// Expired reports whether the clock has fully run out.
func (c *Clock) Expired() bool {
	return c.minutes == 0 && c.subunits == 0
}

// Minutes returns the whole minutes remaining.
func (c *Clock) Minutes() int { return c.minutes }

// Subunits returns the subunits remaining within the current minute.
func (c *Clock) Subunits() int { return c.subunits }

// String renders the clock as "M.SS" for the HUD.
func (c *Clock) String() string {
	return fmt.Sprintf("%d.%02d", c.minutes, c.subunits)
}
