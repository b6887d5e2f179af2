package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"

	"chopsticks/experiments/metrics"
	"chopsticks/graph"
	"chopsticks/meta"
	"chopsticks/solver"
	"chopsticks/utils"
)

// RunSweep builds and solves the game for every kill modulus in
// [minK, maxK], writes the per-k records to CSV, and returns them ordered
// by k. Solves for different k are independent and run concurrently; each
// individual solve stays sequential.
func RunSweep(minK, maxK int) ([]metrics.SolveRecord, error) {
	if minK < 2 || maxK < minK {
		return nil, fmt.Errorf("invalid sweep range [%d, %d]", minK, maxK)
	}

	records := make([]metrics.SolveRecord, maxK-minK+1)
	var eg errgroup.Group
	eg.SetLimit(meta.SWEEP_GOROUTINES)
	for k := minK; k <= maxK; k++ {
		k := k
		eg.Go(func() error {
			record, err := solveOne(k)
			if err != nil {
				return fmt.Errorf("sweep failed at k=%d: %w", k, err)
			}
			records[k-minK] = record
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	writer, err := metrics.NewWriter()
	if err != nil {
		return nil, err
	}
	if err := writer.WriteSolveRecords(records); err != nil {
		return nil, err
	}
	return records, nil
}

func solveOne(k int) (metrics.SolveRecord, error) {
	start := time.Now()

	g, err := graph.Build(k)
	if err != nil {
		return metrics.SolveRecord{}, err
	}
	solved := solver.Solve(g)

	outcomes := maps.Values(solved.Table())
	record := metrics.SolveRecord{
		K:         k,
		Positions: g.Len(),
		Edges:     g.Edges(),
		Terminals: len(g.Terminals()),
		Wins:      utils.CountIf(outcomes, func(o solver.Outcome) bool { return o == solver.Win }),
		Losses:    utils.CountIf(outcomes, func(o solver.Outcome) bool { return o == solver.Loss }),
		Draws:     utils.CountIf(outcomes, func(o solver.Outcome) bool { return o == solver.Draw }),
		Duration:  time.Since(start),
	}
	if winner, ok := solved.Winner(); ok {
		record.Winner = winner.String()
	} else {
		record.Winner = "draw"
	}

	log.Info().
		Int("k", k).
		Int("positions", record.Positions).
		Int("edges", record.Edges).
		Str("winner", record.Winner).
		Dur("took", record.Duration).
		Msg("solved")
	return record, nil
}
