package world

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/lightkeeper/internal/config"
)

// MapData is the on-disk map format: a named grid of cell codes.
type MapData struct {
	Name  string  `json:"name"`
	Cells [][]int `json:"cells"` // [y][x], 0 = open, >0 = wall
}

// LoadGrid reads a map file and builds a validated Grid from it.
func LoadGrid(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}

	grid, err := NewGrid(mapData.Cells)
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}

	if err := validatePlayable(grid); err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}
	return grid, nil
}

// validatePlayable rejects maps with no open cell: every ray would hit
// immediately and no view could be rendered.
func validatePlayable(g *Grid) error {
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if !g.Solid(x, y) {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: map has no open cells", config.ErrInvalidConfig)
}
