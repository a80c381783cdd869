package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const DefaultTileSize = 32

// Spec is a maze level as stored in YAML. Rows is an ASCII picture of
// the maze, one string per row, all the same length:
//
//	'#' wall, '.' floor, 'P' player spawn, 'E' enemy spawn, 'X' exit
//
// Costs is an optional grid of per-tile digit costs with the same
// dimensions as Rows.
type Spec struct {
	Name     string   `yaml:"name"`
	TileSize int      `yaml:"tile_size"`
	Rows     []string `yaml:"rows"`
	Costs    []string `yaml:"costs,omitempty"`
}

const (
	CellWall       = '#'
	CellFloor      = '.'
	CellSpawn      = 'P'
	CellEnemySpawn = 'E'
	CellExit       = 'X'
)

// Parse unmarshals and validates a level spec.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("levels: unmarshal spec: %w", err)
	}
	if spec.TileSize == 0 {
		spec.TileSize = DefaultTileSize
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("levels: invalid spec %q: %w", spec.Name, err)
	}
	return &spec, nil
}

func (s *Spec) validate() error {
	if s.TileSize <= 0 {
		return fmt.Errorf("tile_size %d must be positive", s.TileSize)
	}
	if len(s.Rows) == 0 {
		return fmt.Errorf("no rows")
	}
	width := len(s.Rows[0])
	if width == 0 {
		return fmt.Errorf("empty first row")
	}

	spawns := 0
	for y, row := range s.Rows {
		if len(row) != width {
			return fmt.Errorf("row %d has length %d, want %d", y, len(row), width)
		}
		for x, c := range row {
			switch c {
			case CellWall, CellFloor, CellEnemySpawn, CellExit:
			case CellSpawn:
				spawns++
			default:
				return fmt.Errorf("unknown cell %q at %d,%d", c, x, y)
			}
		}
	}
	if spawns != 1 {
		return fmt.Errorf("want exactly one %q spawn, got %d", CellSpawn, spawns)
	}

	if len(s.Costs) > 0 {
		if len(s.Costs) != len(s.Rows) {
			return fmt.Errorf("costs has %d rows, want %d", len(s.Costs), len(s.Rows))
		}
		for y, row := range s.Costs {
			if len(row) != width {
				return fmt.Errorf("costs row %d has length %d, want %d", y, len(row), width)
			}
			for x, c := range row {
				if c < '0' || c > '9' {
					return fmt.Errorf("costs cell %q at %d,%d is not a digit", c, x, y)
				}
			}
		}
	}
	return nil
}

// Width returns the level width in tiles.
func (s *Spec) Width() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows[0])
}

// Height returns the level height in tiles.
func (s *Spec) Height() int {
	return len(s.Rows)
}
