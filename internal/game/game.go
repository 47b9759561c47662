// Package game composes the clock, the light lifecycle, the view state
// and the projection engine into the frame-driven round state machine.
// The package defines no loop and performs no I/O; an external driver
// calls Step once per frame and feeds input events between steps.
package game

import (
	"chosenoffset.com/lightkeeper/internal/clock"
	"chosenoffset.com/lightkeeper/internal/config"
	"chosenoffset.com/lightkeeper/internal/dice"
	"chosenoffset.com/lightkeeper/internal/geom"
	"chosenoffset.com/lightkeeper/internal/light"
	"chosenoffset.com/lightkeeper/internal/raycast"
	"chosenoffset.com/lightkeeper/internal/world"
)

// State owns the full round state: clock, light, player orientation,
// wave oscillator and the current hit box. The player's position is
// fixed; only the view direction changes.
type State struct {
	cfg    *config.Config
	grid   *world.Grid
	engine *raycast.Engine
	clock  *clock.Clock
	light  *light.Controller
	roller *dice.Roller

	pos geom.Vector2
	dir geom.Vector2
	fov float64

	wave    waveOscillator
	hitBox  *HitBox
	outcome Outcome
}

// New builds a round from validated configuration. The roller is the
// only source of randomness, so a seeded roller makes rounds
// reproducible.
func New(cfg *config.Config, grid *world.Grid, roller *dice.Roller) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gameClock, err := clock.New(cfg.ClockStartMinutes, cfg.ClockTicksPerMinute)
	if err != nil {
		return nil, err
	}

	dir := geom.Vector2{X: cfg.FacingX, Y: cfg.FacingY}
	fov := cfg.FOVDegrees()

	return &State{
		cfg:    cfg,
		grid:   grid,
		engine: raycast.New(grid, cfg.AngularResolution),
		clock:  gameClock,
		light: light.NewController(light.Params{
			SpawnProbability: cfg.LightSpawnProbability,
			SpawnAngleMin:    cfg.SpawnAngleMin,
			SpawnAngleMax:    cfg.SpawnAngleMax,
			InitialRadius:    cfg.LightInitialRadius,
			GrowthRadius:     cfg.LightGrowthRadius,
			GrowthOffset:     cfg.LightGrowthOffset,
			EndRadius:        cfg.LightEndRadius,
		}),
		roller: roller,
		pos:    geom.Vector2{X: cfg.PlayerX, Y: cfg.PlayerY},
		dir:    dir,
		fov:    fov,
		wave: waveOscillator{
			tilt: cfg.CameraTiltStart,
			up:   true,
			min:  cfg.WaveMin,
			max:  cfg.WaveMax,
			step: cfg.WaveStep,
		},
	}, nil
}

// Step advances one frame. Terminal outcomes are sticky; only Reset
// leaves them.
func (s *State) Step() {
	if s.outcome != Ongoing {
		return
	}
	if s.clock.Expired() {
		s.outcome = Won
		return
	}
	if s.light.Breached() {
		s.outcome = Lost
		return
	}

	s.wave.advance()
	if s.clock.Advance() {
		s.light.OnMinuteTick(s.roller)
		s.recomputeHitBox()
	}
}

// OnRotateInput turns the view by one step, unless the current facing
// angle already sits at the configured limit. The check uses the
// pre-rotation angle, so the effective bound overshoots by at most one
// press; tightening this would change input responsiveness.
func (s *State) OnRotateInput(d RotateDirection) {
	switch d {
	case RotateLeft:
		if s.dir.Angle() > s.cfg.RotateLeftLimit {
			s.dir.Rotate(s.cfg.RotateStepDegrees)
		}
	case RotateRight:
		if s.dir.Angle() < s.cfg.RotateRightLimit {
			s.dir.Rotate(-s.cfg.RotateStepDegrees)
		}
	}
}

// OnPointerPress tests a pointer press against the live hit box. A hit
// douses the light and clears the box; this is the only way to avoid an
// eventual loss. Presses with no active box are no-ops.
func (s *State) OnPointerPress(x, y float64) {
	if s.outcome != Ongoing || s.hitBox == nil {
		return
	}
	if s.hitBox.Contains(x, y) {
		s.light.Reset()
		s.hitBox = nil
	}
}

// Reset starts a fresh round on the same configuration: clock, light,
// facing and outcome are restored; the wave oscillator keeps bobbing
// from wherever it was.
func (s *State) Reset() {
	s.clock.Reset()
	s.light.Reset()
	s.dir = geom.Vector2{X: s.cfg.FacingX, Y: s.cfg.FacingY}
	s.hitBox = nil
	s.outcome = Ongoing
}

// ForceWin ends the round as won. Debug input only.
func (s *State) ForceWin() {
	s.outcome = Won
}

// ForceLoss ends the round as lost. Debug input only.
func (s *State) ForceLoss() {
	s.outcome = Lost
}

// Outcome returns the current round outcome.
func (s *State) Outcome() Outcome { return s.outcome }

// FOV returns the derived field of view in degrees.
func (s *State) FOV() float64 { return s.fov }

// Facing returns the current view angle in degrees.
func (s *State) Facing() float64 { return s.dir.Angle() }

// Snapshot assembles the pure per-frame view for the presentation
// layer. Calling it twice without an intervening Step or input event
// yields equal snapshots.
func (s *State) Snapshot() Snapshot {
	var box *HitBox
	if s.hitBox != nil {
		b := *s.hitBox
		box = &b
	}
	return Snapshot{
		Rays:         s.engine.Sweep(s.pos, s.dir.Angle(), s.fov),
		HitBox:       box,
		Light:        s.lightView(),
		ClockDisplay: s.clock.String(),
		Outcome:      s.outcome,
		CameraTilt:   s.wave.tilt,
		PlayerAngle:  s.dir.Angle(),
		FOV:          s.fov,
	}
}

// lightView maps the armed light into live screen space, unlike the
// hit box, which is frozen between minute ticks.
func (s *State) lightView() *LightView {
	if !s.light.Armed() {
		return nil
	}
	left := s.dir.Angle() - s.fov/2
	right := s.dir.Angle() + s.fov/2
	angle := s.light.Angle()
	if angle < left || angle > right {
		return nil
	}
	return &LightView{
		X:      (angle - left) / s.fov * float64(s.cfg.ScreenWidth),
		Y:      float64(s.cfg.WaterLevel()) + s.light.VerticalOffset(),
		Radius: s.light.Radius(),
	}
}

// recomputeHitBox rebuilds the interaction box from the light and the
// view cone. It runs on minute ticks only, so between ticks the box
// keeps the position it had even if the player rotates away.
func (s *State) recomputeHitBox() {
	left := s.dir.Angle() - s.fov/2
	right := s.dir.Angle() + s.fov/2
	if !s.light.Armed() || s.light.Angle() < left || s.light.Angle() > right {
		s.hitBox = nil
		return
	}
	s.hitBox = &HitBox{
		X:    (s.light.Angle() - left) / s.fov * float64(s.cfg.ScreenWidth),
		Y:    float64(s.cfg.WaterLevel()) + s.light.VerticalOffset(),
		Size: 2 * s.light.EndRadius(),
	}
}
