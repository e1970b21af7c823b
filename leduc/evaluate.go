package leduc

import "github.com/chrisculver/postflop-solver/game"

// Evaluate accumulates player's counterfactual terminal values into
// result, one entry per private hand. Each live (own, opponent) card
// pair contributes the pot weighted by opponentReach and by the joint
// deal normalization 1/(hands*(hands-1)); pairs blocked by the board or
// by sharing a card are skipped.
func (g *Game) Evaluate(result []float32, node game.Node, player int, opponentReach []float32) {
	n, ok := node.(*Node)
	if !ok {
		panic("leduc: evaluate called with a foreign node")
	}
	if !n.IsTerminal() {
		panic("leduc: evaluate called on a non-terminal node")
	}

	norm := float32(n.pot) / (NumPrivateHands * (NumPrivateHands - 1))

	switch n.kind {
	case FoldNode:
		payoff := norm
		if n.player == player {
			payoff = -norm
		}
		for my := Card(0); my < NumCards; my++ {
			if my == n.board {
				continue
			}
			var reach float32
			for opp := Card(0); opp < NumCards; opp++ {
				if opp != my && opp != n.board {
					reach += opponentReach[opp]
				}
			}
			result[my] += payoff * reach
		}

	case ShowdownNode:
		for my := Card(0); my < NumCards; my++ {
			if my == n.board {
				continue
			}
			var value float32
			for opp := Card(0); opp < NumCards; opp++ {
				if opp == my || opp == n.board {
					continue
				}
				switch Compare(my, opp, n.board) {
				case 1:
					value += norm * opponentReach[opp]
				case -1:
					value -= norm * opponentReach[opp]
				}
			}
			result[my] += value
		}
	}
}
