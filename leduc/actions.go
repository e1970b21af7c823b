package leduc

import "fmt"

const (
	betRound1 = 2
	betRound2 = 4
)

// successor describes the node an action leads to.
type successor struct {
	kind   NodeKind
	player int
}

type actionEdge struct {
	action Action
	next   successor
}

// legalActions returns the acting player's menu given the last action
// of the current round. A closing check or call ends the round: into
// the chance node in round one, into a showdown in round two. Fold and
// call never reach a decision node as the last action.
func legalActions(last Action, secondRound bool, player int) []actionEdge {
	bet := betRound1
	if secondRound {
		bet = betRound2
	}

	roundClose := successor{kind: ChanceNode}
	if secondRound {
		roundClose = successor{kind: ShowdownNode, player: player}
	}
	afterCheck := roundClose
	if player == 0 {
		afterCheck = successor{kind: DecisionNode, player: 1}
	}

	switch last.Kind {
	case NoAction, Check, Chance:
		return []actionEdge{
			{Action{Kind: Check}, afterCheck},
			{Action{Kind: Bet, Amount: bet}, successor{kind: DecisionNode, player: player ^ 1}},
		}
	case Bet:
		return []actionEdge{
			{Action{Kind: Fold}, successor{kind: FoldNode, player: player}},
			{Action{Kind: Call}, roundClose},
			{Action{Kind: Raise, Amount: last.Amount + bet}, successor{kind: DecisionNode, player: player ^ 1}},
		}
	case Raise:
		return []actionEdge{
			{Action{Kind: Fold}, successor{kind: FoldNode, player: player}},
			{Action{Kind: Call}, roundClose},
		}
	}
	panic(fmt.Sprintf("leduc: no decision follows %v", last.Kind))
}
