package graph

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"

	"chopsticks/game"
	"chopsticks/meta"
)

var (
	ErrInvalidModulus     = errors.New("kill modulus must be at least 2")
	ErrStateSpaceTooLarge = errors.New("state space too large")
)

// Graph holds the forward and reverse adjacency of every position reachable
// from the standard starting position under a fixed kill modulus. Both
// mappings are built together and the graph is immutable once built.
type Graph struct {
	k       int
	forward map[game.Position][]game.Position
	reverse map[game.Position][]game.Position
}

type Option func(b *builder)

type builder struct {
	stateLimit int
}

// WithStateLimit caps the number of positions Build may discover before
// giving up with ErrStateSpaceTooLarge.
func WithStateLimit(limit int) Option {
	return func(b *builder) {
		if limit > 0 {
			b.stateLimit = limit
		}
	}
}

// Build explores every position reachable from game.Initial() under kill
// modulus k and returns the completed graph. Exploration is an iterative
// depth-first walk over an explicit stack; positions already present as keys
// are never re-expanded, which is what makes the walk terminate on a cyclic
// transition relation.
func Build(k int, options ...Option) (*Graph, error) {
	if k <= 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidModulus, k)
	}
	b := &builder{stateLimit: meta.STATE_LIMIT}
	for _, option := range options {
		option(b)
	}

	initial := game.Initial()
	forward := map[game.Position][]game.Position{initial: nil}
	stack := []game.Position{initial}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Terminal positions keep their explicit empty successor entry and
		// are never expanded.
		if pos.Terminal() {
			continue
		}

		succs := pos.Successors(k)
		forward[pos] = succs
		for _, next := range succs {
			if _, seen := forward[next]; seen {
				continue
			}
			if len(forward) >= b.stateLimit {
				return nil, fmt.Errorf("%w: over %d positions at k=%d", ErrStateSpaceTooLarge, b.stateLimit, k)
			}
			forward[next] = nil
			stack = append(stack, next)
		}
	}

	reverse := make(map[game.Position][]game.Position, len(forward))
	for pos := range forward {
		reverse[pos] = nil
	}
	for pos, succs := range forward {
		for _, next := range succs {
			reverse[next] = append(reverse[next], pos)
		}
	}

	return &Graph{k: k, forward: forward, reverse: reverse}, nil
}

// K returns the kill modulus the graph was built for.
func (g *Graph) K() int {
	return g.k
}

// Len returns the number of reachable positions.
func (g *Graph) Len() int {
	return len(g.forward)
}

// Edges returns the total number of forward edges.
func (g *Graph) Edges() int {
	n := 0
	for _, succs := range g.forward {
		n += len(succs)
	}
	return n
}

func (g *Graph) Contains(p game.Position) bool {
	_, ok := g.forward[p]
	return ok
}

// Positions returns every reachable position, in no particular order.
func (g *Graph) Positions() []game.Position {
	return maps.Keys(g.forward)
}

// Successors returns the deduplicated successor set of p, empty for
// terminal positions and for positions outside the graph.
func (g *Graph) Successors(p game.Position) []game.Position {
	return g.forward[p]
}

// Predecessors returns every position that can transition into p in one
// move.
func (g *Graph) Predecessors(p game.Position) []game.Position {
	return g.reverse[p]
}

// Terminals returns every reachable terminal position.
func (g *Graph) Terminals() []game.Position {
	var terminals []game.Position
	for pos, succs := range g.forward {
		if len(succs) == 0 {
			terminals = append(terminals, pos)
		}
	}
	return terminals
}
