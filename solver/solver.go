package solver

import (
	"github.com/rs/zerolog/log"

	"chopsticks/game"
	"chopsticks/graph"
)

// Outcome classifies a position for the player whose turn it is, assuming
// optimal play by both sides. Draw also covers positions the backward
// propagation never resolves: cyclic play with no forced outcome.
type Outcome int8

const (
	Draw Outcome = 0
	Win  Outcome = 1
	Loss Outcome = -1
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "draw"
	}
}

// Table maps every position of a solved graph to its outcome.
type Table map[game.Position]Outcome

// SolvedGame bundles a built graph with its completed classification table.
// It is constructed once by Solve and never mutated afterwards.
type SolvedGame struct {
	graph *graph.Graph
	table Table
}

func (s *SolvedGame) Graph() *graph.Graph {
	return s.graph
}

// Table returns the full classification table. Callers must treat it as
// read-only.
func (s *SolvedGame) Table() Table {
	return s.table
}

func (s *SolvedGame) Outcome(p game.Position) Outcome {
	return s.table[p]
}

// Winner returns the player who forces a win from the standard starting
// position, or false if neither side can.
func (s *SolvedGame) Winner() (game.Player, bool) {
	switch s.Outcome(game.Initial()) {
	case Win:
		return game.Player1, true
	case Loss:
		return game.Player2, true
	default:
		return 0, false
	}
}

// Solve classifies every position of g by retrograde analysis. Terminal
// positions seed as Loss for the player to move, then outcomes propagate
// backward through the reverse graph on a worklist:
//
//   - a predecessor of a Loss can move into it, so it is a Win;
//   - a predecessor whose every successor turned out a Win has no move left
//     that avoids handing the opponent a winning position, so it is a Loss.
//
// The per-position counter of confirmed winning successors guarantees Loss
// is only assigned once all successors are accounted for. Positions the
// propagation never reaches stay Draw.
func Solve(g *graph.Graph) *SolvedGame {
	table := make(Table, g.Len())
	winningSuccs := make(map[game.Position]int, g.Len())

	var stack []game.Position
	for _, pos := range g.Positions() {
		table[pos] = Draw
		if len(g.Successors(pos)) == 0 {
			// The mover's hands are both dead and there is no escape.
			table[pos] = Loss
			stack = append(stack, pos)
		}
	}

	visited := make(map[game.Position]struct{}, g.Len())
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, done := visited[pos]; done {
			continue
		}
		visited[pos] = struct{}{}

		switch table[pos] {
		case Loss:
			for _, pred := range g.Predecessors(pos) {
				table[pred] = Win
				if _, done := visited[pred]; !done {
					stack = append(stack, pred)
				}
			}
		case Win:
			for _, pred := range g.Predecessors(pos) {
				winningSuccs[pred]++
				if winningSuccs[pred] == len(g.Successors(pred)) {
					table[pred] = Loss
					if _, done := visited[pred]; !done {
						stack = append(stack, pred)
					}
				}
			}
		default:
			// Only classified positions ever enter the worklist.
			log.Panic().Stringer("position", pos).Msg("draw position reached the propagation worklist")
		}
	}

	return &SolvedGame{graph: g, table: table}
}
