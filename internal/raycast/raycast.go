// Package raycast projects the first-person view: it sweeps a fan of
// rays across the field of view and walks each one through the
// occupancy grid with the Amanatides–Woo fast voxel traversal,
// reporting the perpendicular distance to the first wall.
package raycast

import (
	"math"

	"chosenoffset.com/lightkeeper/internal/geom"
	"chosenoffset.com/lightkeeper/internal/world"
)

// Side identifies which axis the final grid-line crossing occurred on.
// The presentation layer uses it to shade walls by orientation.
type Side int

const (
	// SideX means the ray last crossed a vertical grid line.
	SideX Side = iota
	// SideY means the ray last crossed a horizontal grid line.
	SideY
)

// infDist substitutes for 1/0 when a ray runs parallel to an axis; the
// traversal then only ever steps along the other axis.
const infDist = 1e30

// Sample is the result of casting a single ray.
type Sample struct {
	// Angle is the ray's absolute direction in degrees.
	Angle float64
	// Distance is the perpendicular distance to the wall. Only valid
	// when Hit is true.
	Distance float64
	// Side is the axis of the final grid-line crossing.
	Side Side
	// Hit is false when the ray left the grid without striking a wall.
	Hit bool
}

// Engine casts rays through a fixed grid.
type Engine struct {
	grid   *world.Grid
	dAngle float64
}

// New creates an engine over the given grid with the given angular
// resolution in degrees between adjacent rays.
func New(grid *world.Grid, dAngle float64) *Engine {
	return &Engine{grid: grid, dAngle: dAngle}
}

// Sweep casts one ray per angular step across the view cone, ordered
// from the left edge (facing - fov/2) to the right. Sample i lands on
// screen column i * dAngle/fov * screenWidth.
func (e *Engine) Sweep(pos geom.Vector2, facingDeg, fovDeg float64) []Sample {
	count := int(fovDeg / e.dAngle)
	samples := make([]Sample, 0, count)
	start := facingDeg - fovDeg/2
	for i := 0; i < count; i++ {
		samples = append(samples, e.Cast(pos, start+float64(i)*e.dAngle))
	}
	return samples
}

// Cast walks a single ray from pos at angleDeg until it strikes a wall
// or leaves the grid. Leaving the grid is a normal outcome reported as
// Hit=false, not an error and not distance zero.
func (e *Engine) Cast(pos geom.Vector2, angleDeg float64) Sample {
	rad := angleDeg * math.Pi / 180
	dirX := math.Cos(rad)
	dirY := math.Sin(rad)

	mapX := int(math.Floor(pos.X))
	mapY := int(math.Floor(pos.Y))

	deltaDistX := infDist
	if dirX != 0 {
		deltaDistX = math.Abs(1 / dirX)
	}
	deltaDistY := infDist
	if dirY != 0 {
		deltaDistY = math.Abs(1 / dirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if dirX < 0 {
		stepX = -1
		sideDistX = (pos.X - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - pos.X) * deltaDistX
	}
	if dirY < 0 {
		stepY = -1
		sideDistY = (pos.Y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - pos.Y) * deltaDistY
	}

	side := SideX
	for e.grid.InBounds(mapX, mapY) && !e.grid.Solid(mapX, mapY) {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = SideX
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = SideY
		}
	}

	// The winning side distance includes one increment past the hit
	// boundary; subtracting its delta yields the perpendicular distance.
	var distance float64
	if side == SideX {
		distance = sideDistX - deltaDistX
	} else {
		distance = sideDistY - deltaDistY
	}

	return Sample{
		Angle:    angleDeg,
		Distance: distance,
		Side:     side,
		Hit:      e.grid.InBounds(mapX, mapY),
	}
}

// CastSlow marches the ray in fixed world-space increments instead of
// cell boundaries. It is kept as a cross-check oracle for the DDA: the
// two must agree within the march step.
func (e *Engine) CastSlow(pos geom.Vector2, angleDeg, step float64) Sample {
	rad := angleDeg * math.Pi / 180
	dirX := math.Cos(rad)
	dirY := math.Sin(rad)

	curX, curY := pos.X, pos.Y
	mapX := int(math.Floor(curX))
	mapY := int(math.Floor(curY))

	for e.grid.InBounds(mapX, mapY) && !e.grid.Solid(mapX, mapY) {
		curX += dirX * step
		curY += dirY * step
		mapX = int(math.Floor(curX))
		mapY = int(math.Floor(curY))
	}

	dx := curX - pos.X
	dy := curY - pos.Y
	return Sample{
		Angle:    angleDeg,
		Distance: math.Sqrt(dx*dx + dy*dy),
		Hit:      e.grid.InBounds(mapX, mapY),
	}
}
