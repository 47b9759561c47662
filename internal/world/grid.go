// Package world provides the occupancy grid the view is projected
// against, plus a JSON loader for map files.
package world

import (
	"fmt"

	"chosenoffset.com/lightkeeper/internal/config"
)

// Grid is a fixed-size 2D occupancy map. Cell code 0 is open; any
// positive value is a wall. Grids are immutable after construction.
type Grid struct {
	cells [][]int
	rows  int
	cols  int
}

// NewGrid validates and wraps a 2D cell array. Every row must have the
// same number of columns and both dimensions must be at least 1.
func NewGrid(cells [][]int) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and column", config.ErrInvalidConfig)
	}
	cols := len(cells[0])
	for y, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: grid row %d has %d columns, expected %d",
				config.ErrInvalidConfig, y, len(row), cols)
		}
	}

	// Copy so later mutation of the caller's slice cannot reach us.
	copied := make([][]int, len(cells))
	for y, row := range cells {
		copied[y] = append([]int(nil), row...)
	}
	return &Grid{cells: copied, rows: len(copied), cols: cols}, nil
}

// DefaultGrid returns the built-in bridge map: a 6-wide, 8-deep room
// fully enclosed by walls.
func DefaultGrid() *Grid {
	g, err := NewGrid([][]int{
		{1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1},
	})
	if err != nil {
		// The built-in map is rectangular by construction.
		panic(err)
	}
	return g
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether the cell coordinates lie inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Solid reports whether the cell at (x, y) is a wall. Out-of-bounds
// cells are not solid; ray traversal treats leaving the grid as a miss.
func (g *Grid) Solid(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x] != 0
}
