package nav

import "github.com/milk9111/mazewalker/maze"

// Grid is the map query surface navigation needs. *maze.Map implements
// it; tests substitute small fakes.
type Grid interface {
	// Neighbors returns the walkable tiles adjacent to t in a fixed,
	// deterministic order.
	Neighbors(t maze.Tile) []maze.Tile
	// IsTilePassable reports whether an agent may occupy t right now.
	IsTilePassable(t maze.Tile) bool
	// TileAt converts a world position to the tile containing it.
	TileAt(x, y float64) maze.Tile
	// WorldAt converts a tile to its world position. It inverts TileAt
	// for in-bounds tiles.
	WorldAt(t maze.Tile) (float64, float64)
}

// Agent is anything navigation can walk through the world. The follower
// is the only caller of MoveTo.
type Agent interface {
	Position() (x, y float64)
	MoveTo(x, y float64)
}
