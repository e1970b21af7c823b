package leduc

// Card identifies one of the six cards in the deck. Cards come in rank
// pairs: card/2 is the rank and card&1 picks the copy.
type Card int

// NotDealt marks a board with no public card yet.
const NotDealt Card = -1

const (
	// NumRanks is the number of distinct ranks in the deck.
	NumRanks = 3
	// NumCards is the deck size: two copies of each rank.
	NumCards = 2 * NumRanks
	// NumPrivateHands is the number of possible private holdings per
	// player. Each hand is a single card.
	NumPrivateHands = NumCards
)

var (
	rankNames = [NumRanks]string{"J", "Q", "K"}
	copyNames = [2]string{"♠", "♥"}
)

// Rank returns the card's rank, 0 (jack) through 2 (king).
func (c Card) Rank() int { return int(c) / 2 }

// Dealt reports whether c names an actual card.
func (c Card) Dealt() bool { return c != NotDealt }

func (c Card) String() string {
	if !c.Dealt() {
		return "?"
	}
	return rankNames[c.Rank()] + copyNames[int(c)&1]
}

// Compare ranks private card a against b at showdown. A card pairing
// the board beats any other; otherwise the higher rank wins and equal
// ranks split. Returns +1, -1 or 0 from a's side. The board must be
// dealt.
func Compare(a, b, board Card) int {
	if !board.Dealt() {
		panic("leduc: showdown comparison requires a dealt board")
	}
	ar, br, pr := a.Rank(), b.Rank(), board.Rank()
	switch {
	case ar == pr && br != pr:
		return 1
	case ar != pr && br == pr:
		return -1
	case ar > br:
		return 1
	case ar < br:
		return -1
	}
	return 0
}
