package solver

import (
	"github.com/chrisculver/postflop-solver/game"
	"github.com/chrisculver/postflop-solver/internal/sliceop"
)

// finalize freezes the run output in place: cumulative strategies
// become per-hand averages, every decision node's regret-aliased
// buffer is overwritten with per-action expected values under that
// average profile, and the solved latch flips.
func finalize(g game.Game) {
	normalizeStrategies(g, g.Root())
	for player := 0; player < 2; player++ {
		result := make([]float32, g.NumPrivateHands(player))
		storeExpectedValues(result, g, g.Root(), player, g.InitialWeights(player^1))
	}
	g.SetSolved()
}

func normalizeStrategies(g game.Game, node game.Node) {
	if node.IsTerminal() {
		return
	}
	if !node.IsChance() {
		numActions := node.NumActions()
		numHands := g.NumPrivateHands(node.Player())
		node.Lock()
		if g.IsCompressionEnabled() {
			raw := node.StrategyCompressed()
			s := make([]float32, len(raw))
			for i, v := range raw {
				s[i] = float32(v)
			}
			normalizeColumns(s, numActions, numHands)
			node.SetStrategyScale(encodeUnsigned(raw, s))
		} else {
			normalizeColumns(node.Strategy(), numActions, numHands)
		}
		node.Unlock()
	}
	for i := 0; i < node.NumActions(); i++ {
		normalizeStrategies(g, node.Play(i))
	}
}

// storeExpectedValues fills result with player's counterfactual values
// under the frozen average profile and writes each of player's
// decision nodes' per-action values into its regret-aliased buffer.
// result must be zeroed on entry.
func storeExpectedValues(result []float32, g game.Game, node game.Node, player int, cfreach []float32) {
	if node.IsTerminal() {
		g.Evaluate(result, node, player, cfreach)
		return
	}

	numHands := g.NumPrivateHands(player)

	if node.IsChance() {
		chanceValues(result, g, node, player, numHands, 1, func(r []float32, child int) {
			storeExpectedValues(r, g, node.Play(child), player, cfreach)
		})
		return
	}

	numActions := node.NumActions()

	if node.Player() == player {
		cfv := make([]float32, numActions*numHands)
		for i := 0; i < numActions; i++ {
			storeExpectedValues(row(cfv, i, numHands), g, node.Play(i), player, cfreach)
		}

		node.Lock()
		if g.IsCompressionEnabled() {
			node.SetExpectedValueScale(encodeSigned(node.ExpectedValuesCompressed(), cfv))
		} else {
			copy(node.ExpectedValues(), cfv)
		}
		node.Unlock()

		strategy := averageStrategy(g, node, numActions, numHands)
		for i := 0; i < numActions; i++ {
			sliceop.FMA(result, row(strategy, i, numHands), row(cfv, i, numHands))
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
		storeExpectedValues(row(cfv, i, numHands), g, node.Play(i), player, row(reach, i, oppHands))
	}
	for i := 0; i < numActions; i++ {
		sliceop.Add(result, row(cfv, i, numHands))
	}
}
