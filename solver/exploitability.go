package solver

import (
	"github.com/chrisculver/postflop-solver/game"
	"github.com/chrisculver/postflop-solver/internal/sliceop"
)

// Exploitability measures how far the current average profile is from
// equilibrium: the mean of both players' best-response values against
// it. Zero at a Nash equilibrium, so a value of epsilon bounds the
// average strategy's payoff within 2*epsilon of the game value.
func Exploitability(g game.Game) float32 {
	var total float32
	for player := 0; player < 2; player++ {
		cfv := make([]float32, g.NumPrivateHands(player))
		bestResponse(cfv, g, g.Root(), player, g.InitialWeights(player^1))
		for i, w := range g.InitialWeights(player) {
			total += cfv[i] * w
		}
	}
	return total / 2
}

// bestResponse fills result with player's best-response counterfactual
// values against the opponent's average strategy. result must be
// zeroed on entry.
func bestResponse(result []float32, g game.Game, node game.Node, player int, cfreach []float32) {
	if node.IsTerminal() {
		g.Evaluate(result, node, player, cfreach)
		return
	}

	numHands := g.NumPrivateHands(player)

	if node.IsChance() {
		chanceValues(result, g, node, player, numHands, 1, func(r []float32, child int) {
			bestResponse(r, g, node.Play(child), player, cfreach)
		})
		return
	}

	numActions := node.NumActions()

	if node.Player() == player {
		cfv := make([]float32, numActions*numHands)
		for i := 0; i < numActions; i++ {
			bestResponse(row(cfv, i, numHands), g, node.Play(i), player, cfreach)
		}
		copy(result, row(cfv, 0, numHands))
		for i := 1; i < numActions; i++ {
			sliceop.ElementMax(result, row(cfv, i, numHands))
		}
		return
	}

	oppHands := g.NumPrivateHands(player ^ 1)
	reach := averageStrategy(g, node, numActions, oppHands)
	for i := 0; i < numActions; i++ {
		sliceop.Mul(row(reach, i, oppHands), cfreach)
	}
	cfv := make([]float32, numActions*numHands)
	for i := 0; i < numActions; i++ {
		bestResponse(row(cfv, i, numHands), g, node.Play(i), player, row(reach, i, oppHands))
	}
	for i := 0; i < numActions; i++ {
		sliceop.Add(result, row(cfv, i, numHands))
	}
}
