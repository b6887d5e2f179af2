package game

// LegalMoves enumerates every legal move for the player to move under kill
// modulus k: the union of all attack moves and all split moves. Terminal
// positions have none.
func (p Position) LegalMoves(k int) []Move {
	if p.Terminal() {
		return nil
	}
	attacker, defender := p.hands()
	var moves []Move

	// Attacks: any live hand of the mover against any live hand of the
	// opponent.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if attacker[i] == 0 || defender[j] == 0 {
				continue
			}
			moves = append(moves, Move{
				ActionType:   AttackAction,
				AttackerHand: i,
				DefenderHand: j,
			})
		}
	}

	// Splits: any redistribution of the mover's total that keeps both hands
	// below k and changes the unordered pair. A zero hand is allowed.
	total := attacker[0] + attacker[1]
	for left := 0; left <= total; left++ {
		right := total - left
		if left >= k || right >= k {
			continue
		}
		if samePair(left, right, attacker[0], attacker[1]) {
			continue
		}
		moves = append(moves, Move{
			ActionType: SplitAction,
			Left:       left,
			Right:      right,
		})
	}
	return moves
}

// samePair compares two hand pairs as unordered multisets.
func samePair(a0, a1, b0, b1 int) bool {
	return (a0 == b0 && a1 == b1) || (a0 == b1 && a1 == b0)
}

// Apply returns the position resulting from the mover playing m. The move
// must come from LegalMoves for the same k.
func (p Position) Apply(m Move, k int) Position {
	attacker, defender := p.hands()
	switch m.ActionType {
	case AttackAction:
		sum := attacker[m.AttackerHand] + defender[m.DefenderHand]
		if sum >= k {
			sum = 0 // hand dies
		}
		defender[m.DefenderHand] = sum
	case SplitAction:
		attacker[0], attacker[1] = m.Left, m.Right
	default:
		panic("unknown action type")
	}
	return p.withHands(attacker, defender)
}

// Successors returns the deduplicated set of positions reachable in one
// move. Distinct moves frequently collapse to the same position (symmetric
// attacks, mirrored splits); set semantics keep the game graph free of
// parallel edges.
func (p Position) Successors(k int) []Position {
	moves := p.LegalMoves(k)
	if len(moves) == 0 {
		return nil
	}

	seen := make(map[Position]struct{}, len(moves))
	succs := make([]Position, 0, len(moves))
	for _, m := range moves {
		next := p.Apply(m, k)
		if _, ok := seen[next]; ok {
			continue
		}
		seen[next] = struct{}{}
		succs = append(succs, next)
	}
	return succs
}
