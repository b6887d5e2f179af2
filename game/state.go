package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Player identifies which side is to move.
type Player int

const (
	Player1 Player = iota
	Player2
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	return fmt.Sprintf("Player%d", int(p)+1)
}

type StateHash uint64

// Position represents the complete game state: both players' hand values in
// fixed slot order plus the player to move. It is a comparable value type so
// it can key maps and sets directly; two positions are the same game state
// iff all five fields are equal. Hand order within a player is a label and is
// never canonicalized.
type Position struct {
	P1Left  int
	P1Right int
	P2Left  int
	P2Right int
	Turn    Player
}

// Initial returns the standard starting position: one finger on every hand,
// player 1 to move.
func Initial() Position {
	return Position{P1Left: 1, P1Right: 1, P2Left: 1, P2Right: 1, Turn: Player1}
}

// Terminal reports whether either player's two hands are both dead. A
// terminal position has no legal moves regardless of whose turn it is.
func (p Position) Terminal() bool {
	if p.P1Left == 0 && p.P1Right == 0 {
		return true
	}
	return p.P2Left == 0 && p.P2Right == 0
}

// hands splits the position into the mover's and the opponent's hand pairs.
func (p Position) hands() (attacker, defender [2]int) {
	if p.Turn == Player1 {
		return [2]int{p.P1Left, p.P1Right}, [2]int{p.P2Left, p.P2Right}
	}
	return [2]int{p.P2Left, p.P2Right}, [2]int{p.P1Left, p.P1Right}
}

// withHands reassembles a full position from the mover's perspective,
// keeping player 1's hands in the first two slots and flipping the turn.
func (p Position) withHands(attacker, defender [2]int) Position {
	next := Position{Turn: p.Turn.Opponent()}
	if p.Turn == Player1 {
		next.P1Left, next.P1Right = attacker[0], attacker[1]
		next.P2Left, next.P2Right = defender[0], defender[1]
	} else {
		next.P1Left, next.P1Right = defender[0], defender[1]
		next.P2Left, next.P2Right = attacker[0], attacker[1]
	}
	return next
}

func (p Position) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(p.P1Left))
	binary.Write(hasher, binary.LittleEndian, int64(p.P1Right))
	binary.Write(hasher, binary.LittleEndian, int64(p.P2Left))
	binary.Write(hasher, binary.LittleEndian, int64(p.P2Right))
	binary.Write(hasher, binary.LittleEndian, int64(p.Turn))

	return StateHash(hasher.Sum64())
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d|%d,%d|%s)", p.P1Left, p.P1Right, p.P2Left, p.P2Right, p.Turn)
}
