package graph

import (
	"errors"
	"fmt"

	"chopsticks/game"
)

var (
	ErrNoSuchVertex = errors.New("no such vertex")
	ErrNoPath       = errors.New("no path")
)

// FindPath returns a shortest sequence of positions connecting start to end
// in the supplied adjacency mapping, using plain breadth-first traversal
// with a visited set. A vertex absent from the mapping is reported as
// ErrNoSuchVertex, distinct from ErrNoPath between two known vertices.
func FindPath(adj map[game.Position][]game.Position, start, end game.Position) ([]game.Position, error) {
	if _, ok := adj[start]; !ok {
		return nil, fmt.Errorf("%w: start %s", ErrNoSuchVertex, start)
	}
	if _, ok := adj[end]; !ok {
		return nil, fmt.Errorf("%w: end %s", ErrNoSuchVertex, end)
	}
	if start == end {
		return []game.Position{start}, nil
	}

	type entry struct {
		pos  game.Position
		path []game.Position
	}
	queue := []entry{{pos: start, path: []game.Position{start}}}
	visited := map[game.Position]struct{}{start: {}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range adj[current.pos] {
			if next == end {
				return append(current.path, next), nil
			}
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}

			path := make([]game.Position, len(current.path)+1)
			copy(path, current.path)
			path[len(current.path)] = next
			queue = append(queue, entry{pos: next, path: path})
		}
	}
	return nil, fmt.Errorf("%w: %s to %s", ErrNoPath, start, end)
}

// Path is FindPath over the graph's own forward adjacency.
func (g *Graph) Path(start, end game.Position) ([]game.Position, error) {
	return FindPath(g.forward, start, end)
}
