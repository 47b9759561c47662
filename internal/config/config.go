// Package config holds the construction-time configuration for the
// game. Values come from DefaultConfig and may be overridden by a JSON
// file; everything is validated once, before the game is built.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrInvalidConfig marks configuration that cannot produce a runnable
// game. It is returned wrapped, never corrected silently.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full set of recognized options. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`

	// Player view. The field of view is derived from the camera plane
	// and facing vectors as 2*atan(|camera|/|facing|), in degrees.
	PlayerX      float64 `json:"player_x"`
	PlayerY      float64 `json:"player_y"`
	FacingX      float64 `json:"facing_x"`
	FacingY      float64 `json:"facing_y"`
	CameraPlaneX float64 `json:"camera_plane_x"`
	CameraPlaneY float64 `json:"camera_plane_y"`

	// AngularResolution is the sweep step in degrees between rays.
	AngularResolution float64 `json:"angular_resolution"`

	// Rotation limits, applied to the pre-rotation facing angle.
	RotateStepDegrees float64 `json:"rotate_step_degrees"`
	RotateLeftLimit   float64 `json:"rotate_left_limit"`
	RotateRightLimit  float64 `json:"rotate_right_limit"`

	// Game clock.
	ClockStartMinutes   int `json:"clock_start_minutes"`
	ClockTicksPerMinute int `json:"clock_ticks_per_minute"`

	// Light lifecycle.
	LightSpawnProbability float64 `json:"light_spawn_probability"`
	LightInitialRadius    float64 `json:"light_initial_radius"`
	LightGrowthRadius     float64 `json:"light_growth_radius"`
	LightGrowthOffset     float64 `json:"light_growth_offset"`
	LightEndRadius        float64 `json:"light_end_radius"`

	// Spawn angles are drawn uniformly from [SpawnAngleMin, SpawnAngleMax]
	// and negated into screen-angle space. Validate rejects ranges that
	// extend past the span the player can rotate the view cone over,
	// since a light armed there could never be hit.
	SpawnAngleMin int `json:"spawn_angle_min"`
	SpawnAngleMax int `json:"spawn_angle_max"`

	// Wave oscillator (presentational screen bob).
	WaveMin         int `json:"wave_min"`
	WaveMax         int `json:"wave_max"`
	WaveStep        int `json:"wave_step"`
	CameraTiltStart int `json:"camera_tilt_start"`

	// Wall projection.
	WallModelHeight   float64 `json:"wall_model_height"`
	WindowBorderWidth int     `json:"window_border_width"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:  400,
		ScreenHeight: 400,

		PlayerX:      3.0,
		PlayerY:      5.0,
		FacingX:      0.0,
		FacingY:      -1.0,
		CameraPlaneX: 0.0,
		CameraPlaneY: 0.66,

		AngularResolution: 0.2,

		RotateStepDegrees: 10,
		RotateLeftLimit:   -113,
		RotateRightLimit:  -70,

		ClockStartMinutes:   100,
		ClockTicksPerMinute: 10,

		LightSpawnProbability: 0.1,
		LightInitialRadius:    8,
		LightGrowthRadius:     5,
		LightGrowthOffset:     2,
		LightEndRadius:        40,

		SpawnAngleMin: 40,
		SpawnAngleMax: 150,

		WaveMin:         5,
		WaveMax:         30,
		WaveStep:        1,
		CameraTiltStart: 30,

		WallModelHeight:   900,
		WindowBorderWidth: 30,
	}
}

// Load reads a JSON file and applies it over DefaultConfig. The result
// is validated before it is returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every domain constraint the representation cannot.
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen dimensions %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.AngularResolution <= 0 {
		return fmt.Errorf("%w: angular resolution must be positive, got %v", ErrInvalidConfig, c.AngularResolution)
	}
	if c.FacingX == 0 && c.FacingY == 0 {
		return fmt.Errorf("%w: facing vector must be non-zero", ErrInvalidConfig)
	}
	if c.RotateStepDegrees <= 0 {
		return fmt.Errorf("%w: rotate step must be positive, got %v", ErrInvalidConfig, c.RotateStepDegrees)
	}
	if c.RotateLeftLimit >= c.RotateRightLimit {
		return fmt.Errorf("%w: rotate limits [%v, %v] are inverted", ErrInvalidConfig, c.RotateLeftLimit, c.RotateRightLimit)
	}
	if c.ClockStartMinutes < 0 {
		return fmt.Errorf("%w: clock start minutes must be >= 0, got %d", ErrInvalidConfig, c.ClockStartMinutes)
	}
	if c.ClockTicksPerMinute <= 0 {
		return fmt.Errorf("%w: clock ticks per minute must be > 0, got %d", ErrInvalidConfig, c.ClockTicksPerMinute)
	}
	if c.LightSpawnProbability < 0 || c.LightSpawnProbability > 1 {
		return fmt.Errorf("%w: light spawn probability %v outside [0, 1]", ErrInvalidConfig, c.LightSpawnProbability)
	}
	if c.LightEndRadius <= 0 {
		return fmt.Errorf("%w: light end radius must be positive, got %v", ErrInvalidConfig, c.LightEndRadius)
	}
	if c.LightInitialRadius < 0 || c.LightInitialRadius >= c.LightEndRadius {
		return fmt.Errorf("%w: light initial radius %v outside [0, end radius)", ErrInvalidConfig, c.LightInitialRadius)
	}
	if c.LightGrowthRadius <= 0 {
		return fmt.Errorf("%w: light radius growth must be positive, got %v", ErrInvalidConfig, c.LightGrowthRadius)
	}
	if c.SpawnAngleMin > c.SpawnAngleMax {
		return fmt.Errorf("%w: spawn angle range [%d, %d] is inverted", ErrInvalidConfig, c.SpawnAngleMin, c.SpawnAngleMax)
	}
	// The spawn range must stay inside the span the view cone can reach:
	// a light armed past it would never get a hit box. The rotation
	// clamp checks the pre-rotation angle, so the facing can overshoot
	// the left limit by up to one step.
	leftReach := c.RotateLeftLimit - c.RotateStepDegrees - c.FOVDegrees()/2
	rightReach := c.RotateRightLimit + c.FOVDegrees()/2
	if float64(-c.SpawnAngleMax) < leftReach || float64(-c.SpawnAngleMin) > rightReach {
		return fmt.Errorf("%w: spawn angles [%d, %d] negate to outside the reachable view span [%.2f, %.2f]",
			ErrInvalidConfig, c.SpawnAngleMin, c.SpawnAngleMax, leftReach, rightReach)
	}
	if c.WaveMin > c.WaveMax {
		return fmt.Errorf("%w: wave bounds [%d, %d] are inverted", ErrInvalidConfig, c.WaveMin, c.WaveMax)
	}
	if c.WaveStep <= 0 {
		return fmt.Errorf("%w: wave step must be positive, got %d", ErrInvalidConfig, c.WaveStep)
	}
	if c.WallModelHeight <= 0 {
		return fmt.Errorf("%w: wall model height must be positive, got %v", ErrInvalidConfig, c.WallModelHeight)
	}
	return nil
}

// FOVDegrees returns the field of view derived from the camera plane
// and facing vectors as 2*atan(|camera|/|facing|), in degrees.
func (c *Config) FOVDegrees() float64 {
	facing := math.Hypot(c.FacingX, c.FacingY)
	camera := math.Hypot(c.CameraPlaneX, c.CameraPlaneY)
	return 2 * math.Atan(camera/facing) * 180 / math.Pi
}

// WaterLevel returns the screen Y of the water line, derived from the
// screen height the same way the HUD layout is.
func (c *Config) WaterLevel() int {
	return c.ScreenHeight / 7 * 3
}
