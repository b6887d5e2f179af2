package game

// ActionType represents the category of a move.
type ActionType int

const (
	AttackAction ActionType = iota
	SplitAction
)

// Move represents one legal action for the player to move. For attacks,
// AttackerHand and DefenderHand index the hands involved (0 = left,
// 1 = right). For splits, Left and Right are the mover's new hand values.
type Move struct {
	ActionType   ActionType
	AttackerHand int
	DefenderHand int
	Left         int
	Right        int
}
