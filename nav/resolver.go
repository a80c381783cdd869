package nav

// DefaultMaxSearchNodes bounds one search on any sane maze size while
// still stopping a runaway frontier on a malformed grid.
const DefaultMaxSearchNodes = 1 << 16

// Resolver turns pointer presses into new active paths.
type Resolver struct {
	// MaxSearchNodes caps BFS expansion per search; <= 0 disables the cap.
	MaxSearchNodes int
}

// PointerPress resolves a world-space press to a target tile and, when
// it is accepted, installs a freshly searched path on f.
//
// Three silent rejections, in order: the target tile is impassable; f is
// already following a path (new targets are ignored mid-walk, there is
// no interrupt-and-replan); the search finds no route. In every case
// the agent simply does not move — nothing is surfaced to the player.
func (r *Resolver) PointerPress(g Grid, f *Follower, a Agent, worldX, worldY float64) {
	target := g.TileAt(worldX, worldY)
	if !g.IsTilePassable(target) {
		return
	}
	if f.Active() {
		return
	}

	ax, ay := a.Position()
	start := g.TileAt(ax, ay)
	if path := FindPath(g, start, target, r.MaxSearchNodes); path != nil {
		f.Follow(path)
	}
}
