package maze

import (
	"fmt"
	"math"

	"github.com/milk9111/mazewalker/levels"
)

// Tile is a discrete grid cell coordinate. Tiles are comparable and
// usable as map keys.
type Tile struct {
	X int
	Y int
}

// Map is a tile grid with per-tile passability and a per-tile cost grid.
// Costs are carried as data for tooling and debug display; movement and
// pathfinding treat every step as one hop.
type Map struct {
	Width    int
	Height   int
	TileSize int

	walls []bool // row-major
	costs []int  // row-major

	Name       string
	Spawn      Tile
	Exit       Tile
	HasExit    bool
	EnemySpawn Tile
	HasEnemy   bool
}

// neighborOffsets fixes the adjacency enumeration order to up, right,
// down, left so equal-length path tie-breaks are reproducible.
var neighborOffsets = [4]Tile{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// FromSpec builds a Map from a parsed level spec.
func FromSpec(spec *levels.Spec) (*Map, error) {
	if spec == nil {
		return nil, fmt.Errorf("maze: nil spec")
	}

	w, h := spec.Width(), spec.Height()
	m := &Map{
		Width:    w,
		Height:   h,
		TileSize: spec.TileSize,
		walls:    make([]bool, w*h),
		costs:    make([]int, w*h),
		Name:     spec.Name,
	}
	for i := range m.costs {
		m.costs[i] = 1
	}

	for y, row := range spec.Rows {
		for x, c := range row {
			idx := y*w + x
			switch c {
			case levels.CellWall:
				m.walls[idx] = true
			case levels.CellFloor:
			case levels.CellSpawn:
				m.Spawn = Tile{X: x, Y: y}
			case levels.CellExit:
				m.Exit = Tile{X: x, Y: y}
				m.HasExit = true
			case levels.CellEnemySpawn:
				m.EnemySpawn = Tile{X: x, Y: y}
				m.HasEnemy = true
			default:
				return nil, fmt.Errorf("maze: unknown cell %q at %d,%d", c, x, y)
			}
		}
	}

	for y, row := range spec.Costs {
		for x, c := range row {
			m.costs[y*w+x] = int(c - '0')
		}
	}

	return m, nil
}

// Contains reports whether t lies inside the grid.
func (m *Map) Contains(t Tile) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < m.Width && t.Y < m.Height
}

// IsTilePassable reports whether an agent may occupy t. Tiles outside
// the grid are impassable.
func (m *Map) IsTilePassable(t Tile) bool {
	if !m.Contains(t) {
		return false
	}
	return !m.walls[t.Y*m.Width+t.X]
}

// Neighbors returns the passable 4-way neighbors of t in up, right,
// down, left order. Impassable and out-of-bounds tiles are excluded, so
// a search over Neighbors only ever visits walkable tiles.
func (m *Map) Neighbors(t Tile) []Tile {
	out := make([]Tile, 0, 4)
	for _, d := range neighborOffsets {
		n := Tile{X: t.X + d.X, Y: t.Y + d.Y}
		if m.IsTilePassable(n) {
			out = append(out, n)
		}
	}
	return out
}

// CostAt returns the movement cost stored for t, or 0 outside the grid.
// Nothing in navigation consumes this yet; it mirrors the level data.
func (m *Map) CostAt(t Tile) int {
	if !m.Contains(t) {
		return 0
	}
	return m.costs[t.Y*m.Width+t.X]
}

// SetPassable overrides passability for t, for runtime obstructions.
func (m *Map) SetPassable(t Tile, passable bool) {
	if !m.Contains(t) {
		return
	}
	m.walls[t.Y*m.Width+t.X] = !passable
}

// TileAt converts a world position in pixels to the tile containing it.
// Positions outside the grid map to out-of-bounds (impassable) tiles.
func (m *Map) TileAt(x, y float64) Tile {
	ts := float64(m.TileSize)
	return Tile{
		X: int(math.Floor(x / ts)),
		Y: int(math.Floor(y / ts)),
	}
}

// WorldAt converts a tile to the world position of its center, the
// inverse of TileAt for in-bounds tiles.
func (m *Map) WorldAt(t Tile) (float64, float64) {
	ts := float64(m.TileSize)
	return (float64(t.X) + 0.5) * ts, (float64(t.Y) + 0.5) * ts
}

// PixelSize returns the world dimensions of the maze in pixels.
func (m *Map) PixelSize() (int, int) {
	return m.Width * m.TileSize, m.Height * m.TileSize
}
