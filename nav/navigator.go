package nav

// Navigator ties one agent's click-to-move state together: the resolver
// that accepts targets and the follower that owns the active path.
//
// All methods must be called from the goroutine running the game loop.
// HandleClick reads the active path and Tick mutates it; a second
// goroutine could install a path mid-pop and corrupt the walk order.
type Navigator struct {
	grid     Grid
	agent    Agent
	follower Follower
	resolver Resolver
}

// NewNavigator creates a navigator for an agent on the given grid.
func NewNavigator(g Grid, a Agent) *Navigator {
	return &Navigator{
		grid:     g,
		agent:    a,
		resolver: Resolver{MaxSearchNodes: DefaultMaxSearchNodes},
	}
}

// HandleClick implements Handler. Only left presses select a target.
func (n *Navigator) HandleClick(ev ClickEvent) {
	if ev.Button != ButtonLeft {
		return
	}
	n.resolver.PointerPress(n.grid, &n.follower, n.agent, ev.X, ev.Y)
}

// HandleMove implements Handler. Pointer movement does not steer.
func (n *Navigator) HandleMove(MoveEvent) {}

// HandleKey implements Handler. Keys do not steer.
func (n *Navigator) HandleKey(KeyEvent) {}

// Tick advances the agent one tile along the active path, if any.
func (n *Navigator) Tick() {
	n.follower.Tick(n.grid, n.agent)
}

// Active reports whether a path is currently installed.
func (n *Navigator) Active() bool {
	return n.follower.Active()
}

// Pending returns a copy of the remaining path tiles, for debug drawing.
func (n *Navigator) Pending() Path {
	return n.follower.Pending()
}

// Cancel drops any active path, e.g. when the level reloads.
func (n *Navigator) Cancel() {
	n.follower.Cancel()
}
