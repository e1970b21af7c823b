package leduc

import "fmt"

// ActionKind discriminates the edges of the game tree.
type ActionKind uint8

const (
	// NoAction stands in for "nothing yet" at the start of a round.
	NoAction ActionKind = iota
	Fold
	Check
	Call
	Bet
	Raise
	// Chance is the dealing of the public card.
	Chance
)

var actionKindNames = [...]string{"none", "fold", "check", "call", "bet", "raise", "deal"}

func (k ActionKind) String() string {
	if int(k) >= len(actionKindNames) {
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
	return actionKindNames[k]
}

// Action is one edge in the game tree. Amount carries the total chips
// committed in the current round for Bet and Raise, and the dealt card
// for Chance.
type Action struct {
	Kind   ActionKind
	Amount int
}

func (a Action) String() string {
	switch a.Kind {
	case Bet, Raise:
		return fmt.Sprintf("%s %d", a.Kind, a.Amount)
	case Chance:
		return fmt.Sprintf("%s %s", a.Kind, Card(a.Amount))
	}
	return a.Kind.String()
}
