package enemy

import (
	"log"

	"github.com/milk9111/mazewalker/nav"
)

// Brain states. The chaser script chooses between them.
const (
	StateIdle  = "idle"
	StateChase = "chase"
)

// repathTicks is how many ticks a computed chase path is walked before
// the enemy searches again toward the player's latest tile.
const repathTicks = 4

// Enemy is an independent chaser. It navigates with the same
// breadth-first paths the player walks: while its brain says chase, it
// re-searches toward the player every few ticks and follows the result
// one tile per tick. There is no coordination with other agents.
type Enemy struct {
	X float64
	Y float64

	brain    *Brain
	follower nav.Follower
	state    string
	cooldown int
}

// New places an enemy at the given world position.
func New(brain *Brain, x, y float64) *Enemy {
	return &Enemy{X: x, Y: y, brain: brain, state: StateIdle}
}

// Position implements nav.Agent.
func (e *Enemy) Position() (float64, float64) {
	return e.X, e.Y
}

// MoveTo implements nav.Agent.
func (e *Enemy) MoveTo(x, y float64) {
	e.X, e.Y = x, y
}

// State returns the current brain state, for the HUD.
func (e *Enemy) State() string {
	return e.state
}

// Tick advances the enemy one simulation step toward the player at
// px, py. A failing brain keeps the previous state; the enemy keeps
// walking whatever path it already has.
func (e *Enemy) Tick(g nav.Grid, px, py float64) {
	self := g.TileAt(e.X, e.Y)
	player := g.TileAt(px, py)
	dist := absInt(self.X-player.X) + absInt(self.Y-player.Y)

	next, err := e.brain.Next(e.state, dist)
	if err != nil {
		log.Printf("enemy: %v", err)
	} else if next != e.state {
		e.state = next
		if e.state == StateIdle {
			e.follower.Cancel()
		}
	}

	if e.state != StateChase {
		return
	}

	if e.cooldown > 0 {
		e.cooldown--
	}
	if e.cooldown == 0 && self != player {
		// Unlike the player's resolver, the chase replaces any path it
		// is already walking: the target keeps moving.
		if path := nav.FindPath(g, self, player, nav.DefaultMaxSearchNodes); path != nil {
			e.follower.Follow(path)
		}
		e.cooldown = repathTicks
	}

	e.follower.Tick(g, e)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
