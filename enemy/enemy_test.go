package enemy

import (
	"testing"

	"github.com/milk9111/mazewalker/levels"
	"github.com/milk9111/mazewalker/maze"
)

func testBrain(t *testing.T) *Brain {
	t.Helper()
	b, err := NewBrain()
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	return b
}

func gridFrom(t *testing.T, rows ...string) *maze.Map {
	t.Helper()
	m, err := maze.FromSpec(&levels.Spec{Name: "test", TileSize: 32, Rows: rows})
	if err != nil {
		t.Fatalf("build test maze: %v", err)
	}
	return m
}

func TestBrainTransitions(t *testing.T) {
	b := testBrain(t)

	cases := []struct {
		name  string
		state string
		dist  int
		want  string
	}{
		{"boot_defaults_to_idle", "", 99, StateIdle},
		{"idle_sees_player", StateIdle, 6, StateChase},
		{"idle_player_too_far", StateIdle, 7, StateIdle},
		{"chase_keeps_chasing", StateChase, 10, StateChase},
		{"chase_loses_player", StateChase, 11, StateIdle},
		{"chase_point_blank", StateChase, 0, StateChase},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := b.Next(c.state, c.dist)
			if err != nil {
				t.Fatalf("Next(%q, %d): %v", c.state, c.dist, err)
			}
			if got != c.want {
				t.Fatalf("Next(%q, %d) = %q, want %q", c.state, c.dist, got, c.want)
			}
		})
	}
}

func TestBrainRejectsBrokenScript(t *testing.T) {
	if _, err := newBrain([]byte("if {")); err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestEnemyChasesNearbyPlayer(t *testing.T) {
	g := gridFrom(t, "........")
	e := New(testBrain(t), 0, 0)
	e.X, e.Y = g.WorldAt(maze.Tile{X: 0, Y: 0})
	px, py := g.WorldAt(maze.Tile{X: 5, Y: 0})

	// first tick flips to chase and snaps onto the start tile
	e.Tick(g, px, py)
	if e.State() != StateChase {
		t.Fatalf("state = %q, want %q", e.State(), StateChase)
	}
	if got := g.TileAt(e.X, e.Y); got != (maze.Tile{X: 0, Y: 0}) {
		t.Fatalf("enemy at %v after first tick, want {0 0}", got)
	}

	// each further tick closes one tile
	e.Tick(g, px, py)
	if got := g.TileAt(e.X, e.Y); got != (maze.Tile{X: 1, Y: 0}) {
		t.Fatalf("enemy at %v after second tick, want {1 0}", got)
	}
	e.Tick(g, px, py)
	if got := g.TileAt(e.X, e.Y); got != (maze.Tile{X: 2, Y: 0}) {
		t.Fatalf("enemy at %v after third tick, want {2 0}", got)
	}
}

func TestEnemyIdlesWhenPlayerFar(t *testing.T) {
	g := gridFrom(t, "................")
	e := New(testBrain(t), 0, 0)
	e.X, e.Y = g.WorldAt(maze.Tile{X: 0, Y: 0})
	startX, startY := e.X, e.Y
	px, py := g.WorldAt(maze.Tile{X: 15, Y: 0})

	for i := 0; i < 5; i++ {
		e.Tick(g, px, py)
	}
	if e.State() != StateIdle {
		t.Fatalf("state = %q, want %q", e.State(), StateIdle)
	}
	if e.X != startX || e.Y != startY {
		t.Fatal("idle enemy must not move")
	}
}

func TestEnemyGivesUpWhenPlayerEscapes(t *testing.T) {
	g := gridFrom(t, "................")
	e := New(testBrain(t), 0, 0)
	e.X, e.Y = g.WorldAt(maze.Tile{X: 0, Y: 0})

	// player close: chase
	px, py := g.WorldAt(maze.Tile{X: 4, Y: 0})
	e.Tick(g, px, py)
	if e.State() != StateChase {
		t.Fatalf("state = %q, want %q", e.State(), StateChase)
	}

	// player warps far beyond the leash: back to idle, path dropped
	px, py = g.WorldAt(maze.Tile{X: 15, Y: 0})
	e.Tick(g, px, py)
	if e.State() != StateIdle {
		t.Fatalf("state = %q, want %q", e.State(), StateIdle)
	}
	posX, posY := e.X, e.Y
	e.Tick(g, px, py)
	if e.X != posX || e.Y != posY {
		t.Fatal("enemy kept walking after dropping the chase")
	}
}
