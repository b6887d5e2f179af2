package metrics

import "time"

// SolveRecord captures the result of building and solving one graph.
type SolveRecord struct {
	K         int
	Positions int
	Edges     int
	Terminals int
	Wins      int
	Losses    int
	Draws     int
	Winner    string // "Player1", "Player2" or "draw"
	Duration  time.Duration
}
