package nav

import "github.com/milk9111/mazewalker/maze"

// Path is an ordered sequence of tiles for an agent to walk, ending at
// the target. Each consecutive pair is adjacent on the grid. A freshly
// found path starts at the agent's own tile; the follower consumes from
// the head, so that first step just snaps the agent to its tile center.
type Path []maze.Tile

// FindPath runs an unweighted breadth-first search from start to target
// over g's adjacency and returns the first path found, or nil when the
// target is unreachable. BFS dequeues in discovery order, so the result
// is shortest by hop count; among equal-length paths the first one
// discovered wins, with neighbor enumeration order as the tie-break.
//
// The frontier holds whole partial paths rather than a predecessor map,
// so the winning path is returned as-is without backtracking. Visited
// tiles are filtered when dequeued, not when enqueued; already-visited
// neighbors still enter the frontier and are discarded later.
//
// maxNodes caps the number of dequeued partial paths so a malformed
// grid cannot spin the search forever; <= 0 means no cap.
func FindPath(g Grid, start, target maze.Tile, maxNodes int) Path {
	frontier := []Path{{start}}
	visited := make(map[maze.Tile]struct{})

	for expanded := 0; len(frontier) > 0; expanded++ {
		if maxNodes > 0 && expanded >= maxNodes {
			return nil
		}

		path := frontier[0]
		frontier = frontier[1:]
		current := path[len(path)-1]

		if current == target {
			return path
		}

		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}

		for _, n := range g.Neighbors(current) {
			next := make(Path, len(path), len(path)+1)
			copy(next, path)
			frontier = append(frontier, append(next, n))
		}
	}
	return nil
}
