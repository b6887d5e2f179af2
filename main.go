package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chopsticks/experiments"
	"chopsticks/game"
	"chopsticks/meta"
)

// displayName renders a sweep record's winner in the human-readable form
// used for terminal output ("player 1", "player 2").
func displayName(winner string) string {
	switch winner {
	case game.Player1.String():
		return "player 1"
	case game.Player2.String():
		return "player 2"
	default:
		return winner
	}
}

func main() {
	minK := flag.Int("min-k", meta.MIN_K, "smallest kill modulus to solve")
	maxK := flag.Int("max-k", meta.MAX_K, "largest kill modulus to solve")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	records, err := experiments.RunSweep(*minK, *maxK)
	if err != nil {
		log.Error().Err(err).Msg("sweep failed")
		os.Exit(1)
	}

	for _, record := range records {
		if record.Winner == "draw" {
			fmt.Printf("For k = %d: draw\n", record.K)
			continue
		}
		fmt.Printf("For k = %d, the winner is %s\n", record.K, displayName(record.Winner))
	}
}
