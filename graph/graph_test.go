package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chopsticks/game"
	"chopsticks/utils"
)

func TestBuildRejectsInvalidModulus(t *testing.T) {
	for _, k := range []int{-1, 0, 1} {
		_, err := Build(k)
		require.ErrorIs(t, err, ErrInvalidModulus, "k=%d makes every hand dead and must be rejected", k)
	}
}

func TestBuildStateLimit(t *testing.T) {
	_, err := Build(5, WithStateLimit(10))
	require.ErrorIs(t, err, ErrStateSpaceTooLarge,
		"a tiny budget must fail loudly instead of exhausting memory")
}

func TestBuildContainsInitial(t *testing.T) {
	g, err := Build(3)
	require.NoError(t, err)

	require.Equal(t, 3, g.K())
	require.True(t, g.Contains(game.Initial()), "the root must be part of the graph")
	require.Len(t, g.Successors(game.Initial()), 4,
		"at k=3 the root has two distinct attack results and two splits")
}

func TestTerminalIffNoSuccessors(t *testing.T) {
	for _, k := range []int{2, 3, 4} {
		g, err := Build(k)
		require.NoError(t, err)

		for _, pos := range g.Positions() {
			if pos.Terminal() {
				require.Empty(t, g.Successors(pos),
					"terminal %s must have an empty successor set at k=%d", pos, k)
			} else {
				require.NotEmpty(t, g.Successors(pos),
					"non-terminal %s must have successors at k=%d", pos, k)
			}
		}
	}
}

func TestTerminalsAreReachable(t *testing.T) {
	g, err := Build(3)
	require.NoError(t, err)

	terminals := g.Terminals()
	require.NotEmpty(t, terminals, "a both-hands-dead position must be reachable at k=3")
	for _, pos := range terminals {
		require.True(t, pos.Terminal())
	}
}

// In every reachable terminal the side to move is exactly the side whose
// hands are dead: the killing attack flips the turn onto its victim, and no
// move can empty the mover's own last hand. The solver's loss seeding relies
// on this.
func TestTerminalTurnMatchesDeadPlayer(t *testing.T) {
	for _, k := range []int{2, 3, 4, 5, 6} {
		g, err := Build(k)
		require.NoError(t, err)

		for _, pos := range g.Terminals() {
			if pos.Turn == game.Player1 {
				require.True(t, pos.P1Left == 0 && pos.P1Right == 0,
					"terminal %s at k=%d: the mover must be the dead player", pos, k)
			} else {
				require.True(t, pos.P2Left == 0 && pos.P2Right == 0,
					"terminal %s at k=%d: the mover must be the dead player", pos, k)
			}
		}
	}
}

func TestReverseGraphConsistency(t *testing.T) {
	g, err := Build(4)
	require.NoError(t, err)

	forwardEdges := 0
	for _, pos := range g.Positions() {
		for _, succ := range g.Successors(pos) {
			forwardEdges++
			require.GreaterOrEqual(t, utils.FindIndex(g.Predecessors(succ), pos), 0,
				"forward edge %s -> %s missing from the reverse graph", pos, succ)
		}
	}

	reverseEdges := 0
	for _, pos := range g.Positions() {
		for _, pred := range g.Predecessors(pos) {
			reverseEdges++
			require.GreaterOrEqual(t, utils.FindIndex(g.Successors(pred), pos), 0,
				"reverse edge %s <- %s has no forward counterpart", pos, pred)
		}
	}

	require.Equal(t, forwardEdges, reverseEdges, "edge inversion must be exact")
	require.Equal(t, forwardEdges, g.Edges())
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := Build(4)
	require.NoError(t, err)
	b, err := Build(4)
	require.NoError(t, err)

	require.Equal(t, a.Len(), b.Len())
	require.ElementsMatch(t, a.Positions(), b.Positions(),
		"the reachable vertex set is exact and deterministic for a given k")
	for _, pos := range a.Positions() {
		require.ElementsMatch(t, a.Successors(pos), b.Successors(pos))
	}
}
