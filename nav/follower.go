package nav

// Follower walks an agent along at most one active path, one tile per
// tick. It is the only mutator of the agent's world position.
//
// The follower is a two-state machine: Idle (no path) and Following.
// Follow moves it to Following; it returns to Idle when the path is
// fully consumed, cancelled, or the next tile has become impassable.
type Follower struct {
	path Path
}

// Active reports whether a path is currently being followed.
func (f *Follower) Active() bool {
	return len(f.path) > 0
}

// Follow installs p as the active path. An empty p leaves the follower
// Idle. Callers that must not interrupt an in-progress path gate on
// Active before calling.
func (f *Follower) Follow(p Path) {
	f.path = p
}

// Cancel drops the active path, leaving the agent where it stands.
func (f *Follower) Cancel() {
	f.path = nil
}

// Remaining returns the number of tiles left to walk.
func (f *Follower) Remaining() int {
	return len(f.path)
}

// Pending returns a copy of the remaining tiles, for debug rendering.
func (f *Follower) Pending() Path {
	if len(f.path) == 0 {
		return nil
	}
	return append(Path(nil), f.path...)
}

// Tick advances one step while Following. Only the head tile is
// re-checked for passability; if it has become blocked the whole
// remaining path is dropped and the agent stays put — no replanning.
// Otherwise the agent snaps to the head tile's world position and the
// head is popped. Movement is one tile per call, never time-scaled.
func (f *Follower) Tick(g Grid, a Agent) {
	if len(f.path) == 0 {
		return
	}

	next := f.path[0]
	if !g.IsTilePassable(next) {
		f.path = nil
		return
	}

	x, y := g.WorldAt(next)
	a.MoveTo(x, y)
	f.path = f.path[1:]
}
