package nav

import (
	"testing"

	"github.com/milk9111/mazewalker/maze"
)

func TestResolverInstallsPathOnValidClick(t *testing.T) {
	g := gridFrom(t,
		".....",
		".###.",
		".....",
	)
	agent := &fakeAgent{}
	agent.x, agent.y = g.WorldAt(maze.Tile{X: 0, Y: 0})

	var f Follower
	var r Resolver
	wx, wy := g.WorldAt(maze.Tile{X: 4, Y: 2})
	r.PointerPress(g, &f, agent, wx, wy)

	if !f.Active() {
		t.Fatal("expected a path to be installed")
	}
	pending := f.Pending()
	if got := pending[len(pending)-1]; got != (maze.Tile{X: 4, Y: 2}) {
		t.Fatalf("path ends at %v, want the clicked tile", got)
	}
}

func TestResolverRejectsImpassableTarget(t *testing.T) {
	g := gridFrom(t,
		"..#",
	)
	agent := &fakeAgent{}
	agent.x, agent.y = g.WorldAt(maze.Tile{X: 0, Y: 0})

	var f Follower
	var r Resolver
	wx, wy := g.WorldAt(maze.Tile{X: 2, Y: 0})
	r.PointerPress(g, &f, agent, wx, wy)

	if f.Active() {
		t.Fatal("click on a wall must not install a path")
	}
}

func TestResolverRejectsOutOfBoundsTarget(t *testing.T) {
	g := gridFrom(t, "...")
	agent := &fakeAgent{}
	agent.x, agent.y = g.WorldAt(maze.Tile{X: 0, Y: 0})

	var f Follower
	var r Resolver
	r.PointerPress(g, &f, agent, -100, -100)

	if f.Active() {
		t.Fatal("click outside the maze must not install a path")
	}
}

func TestResolverIgnoresClickWhileFollowing(t *testing.T) {
	g := gridFrom(t, ".....")
	agent := &fakeAgent{}
	agent.x, agent.y = g.WorldAt(maze.Tile{X: 0, Y: 0})

	var f Follower
	var r Resolver

	wx, wy := g.WorldAt(maze.Tile{X: 4, Y: 0})
	r.PointerPress(g, &f, agent, wx, wy)
	if !f.Active() {
		t.Fatal("expected first click to install a path")
	}
	before := f.Pending()

	// second click goes elsewhere and must be ignored
	wx2, wy2 := g.WorldAt(maze.Tile{X: 2, Y: 0})
	r.PointerPress(g, &f, agent, wx2, wy2)

	after := f.Pending()
	if len(before) != len(after) {
		t.Fatalf("active path changed: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("active path changed at %d: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestResolverUnreachableTargetLeavesIdle(t *testing.T) {
	g := gridFrom(t,
		".#.",
	)
	agent := &fakeAgent{}
	agent.x, agent.y = g.WorldAt(maze.Tile{X: 0, Y: 0})

	var f Follower
	var r Resolver
	wx, wy := g.WorldAt(maze.Tile{X: 2, Y: 0})
	r.PointerPress(g, &f, agent, wx, wy)

	if f.Active() {
		t.Fatal("unreachable target must leave the follower idle")
	}
}

func TestNavigatorClickDispatch(t *testing.T) {
	g := gridFrom(t, ".....")
	agent := &fakeAgent{}
	agent.x, agent.y = g.WorldAt(maze.Tile{X: 0, Y: 0})

	n := NewNavigator(g, agent)
	wx, wy := g.WorldAt(maze.Tile{X: 3, Y: 0})

	// right click does not steer
	n.HandleClick(ClickEvent{X: wx, Y: wy, Button: ButtonRight})
	if n.Active() {
		t.Fatal("right click must not install a path")
	}

	n.HandleClick(ClickEvent{X: wx, Y: wy, Button: ButtonLeft})
	if !n.Active() {
		t.Fatal("left click should install a path")
	}

	// walk it out: 4 tiles including the start tile
	for i := 0; i < 4; i++ {
		n.Tick()
	}
	if n.Active() {
		t.Fatal("path should be fully consumed")
	}
	at(t, g, maze.Tile{X: 3, Y: 0}, agent)

	n.HandleMove(MoveEvent{X: wx, Y: wy})
	n.HandleKey(KeyEvent{Key: 1, Pressed: true})
	if n.Active() {
		t.Fatal("move and key events must not install paths")
	}
}
