package solver

import (
	"sync"

	"github.com/chrisculver/postflop-solver/game"
	"github.com/chrisculver/postflop-solver/internal/sliceop"
)

// traversal is one player's pass of one iteration.
type traversal struct {
	g       game.Game
	params  discountParams
	workers int
}

// solve fills result with player's counterfactual values per private
// hand at node under the opponent reach weights cfreach, updating the
// cumulative regrets and strategy at player's own decision nodes on
// the way back up. result must be zeroed on entry; cfreach is not
// modified.
func (tr *traversal) solve(result []float32, node game.Node, player int, cfreach []float32) {
	if node.IsTerminal() {
		tr.g.Evaluate(result, node, player, cfreach)
		return
	}

	numHands := tr.g.NumPrivateHands(player)

	if node.IsChance() {
		chanceValues(result, tr.g, node, player, numHands, tr.workers, func(r []float32, child int) {
			tr.solve(r, node.Play(child), player, cfreach)
		})
		return
	}

	numActions := node.NumActions()

	if node.Player() == player {
		cfv := make([]float32, numActions*numHands)
		for i := 0; i < numActions; i++ {
			tr.solve(row(cfv, i, numHands), node.Play(i), player, cfreach)
		}

		node.Lock()
		defer node.Unlock()
		if tr.g.IsCompressionEnabled() {
			tr.updateCompressed(result, node, cfv, numActions, numHands)
		} else {
			tr.updateWide(result, node, cfv, numActions, numHands)
		}
		return
	}

	// Opponent's decision: fold their current strategy into the reach
	// weights and sum the children.
	oppHands := tr.g.NumPrivateHands(player ^ 1)
	node.Lock()
	var reach []float32
	if tr.g.IsCompressionEnabled() {
		reach = regretMatchingCompressed(node.RegretsCompressed(), numActions, oppHands)
	} else {
		reach = regretMatching(node.Regrets(), numActions, oppHands)
	}
	node.Unlock()
	for i := 0; i < numActions; i++ {
		sliceop.Mul(row(reach, i, oppHands), cfreach)
	}

	cfv := make([]float32, numActions*numHands)
	for i := 0; i < numActions; i++ {
		tr.solve(row(cfv, i, numHands), node.Play(i), player, row(reach, i, oppHands))
	}
	for i := 0; i < numActions; i++ {
		sliceop.Add(result, row(cfv, i, numHands))
	}
}

// updateWide computes the node value from the current regret-matched
// strategy and folds this iteration's regrets and strategy into the
// cumulative buffers. Caller holds the node lock.
func (tr *traversal) updateWide(result []float32, node game.Node, cfv []float32, numActions, numHands int) {
	regrets := node.Regrets()
	strategy := regretMatching(regrets, numActions, numHands)
	for i := 0; i < numActions; i++ {
		sliceop.FMA(result, row(strategy, i, numHands), row(cfv, i, numHands))
	}

	discountRegrets(regrets, tr.params)
	sliceop.Add(regrets, cfv)
	for i := 0; i < numActions; i++ {
		sliceop.Sub(row(regrets, i, numHands), result)
	}

	cumulative := node.Strategy()
	sliceop.MulScalar(cumulative, tr.params.gamma)
	sliceop.Add(cumulative, strategy)
}

// updateCompressed is updateWide through the quantized views: decode,
// update in float32, re-encode with fresh scales. Caller holds the
// node lock.
func (tr *traversal) updateCompressed(result []float32, node game.Node, cfv []float32, numActions, numHands int) {
	rawRegrets := node.RegretsCompressed()
	strategy := regretMatchingCompressed(rawRegrets, numActions, numHands)
	for i := 0; i < numActions; i++ {
		sliceop.FMA(result, row(strategy, i, numHands), row(cfv, i, numHands))
	}

	regrets := decodeSigned(rawRegrets, node.RegretScale())
	discountRegrets(regrets, tr.params)
	sliceop.Add(regrets, cfv)
	for i := 0; i < numActions; i++ {
		sliceop.Sub(row(regrets, i, numHands), result)
	}
	node.SetRegretScale(encodeSigned(rawRegrets, regrets))

	cumulative := decodeUnsigned(node.StrategyCompressed(), node.StrategyScale())
	sliceop.MulScalar(cumulative, tr.params.gamma)
	sliceop.Add(cumulative, strategy)
	node.SetStrategyScale(encodeUnsigned(node.StrategyCompressed(), cumulative))
}

func discountRegrets(regrets []float32, params discountParams) {
	for i, r := range regrets {
		if r >= 0 {
			regrets[i] = r * params.alpha
		} else {
			regrets[i] = r * params.beta
		}
	}
}

// chanceValues fills result with the chance-weighted sum of child
// values produced by visit, folding each isomorphic outcome onto its
// canonical child by swapping that child's values with the player's
// swap list (and swapping back, keeping cfv intact).
func chanceValues(result []float32, g game.Game, node game.Node, player, numHands, workers int, visit func(result []float32, child int)) {
	numChildren := node.NumActions()
	cfv := make([]float32, numChildren*numHands)
	forEachChild(numChildren, workers, func(i int) {
		visit(row(cfv, i, numHands), i)
	})

	for i := 0; i < numChildren; i++ {
		sliceop.Add(result, row(cfv, i, numHands))
	}
	for i, canonical := range g.IsomorphicChances(node) {
		swaps := g.IsomorphicSwap(node, i)[player]
		values := row(cfv, canonical, numHands)
		applySwap(values, swaps)
		sliceop.Add(result, values)
		applySwap(values, swaps)
	}
	sliceop.MulScalar(result, node.ChanceFactor())
}

// forEachChild visits indices 0..n-1, fanning out across goroutines
// when workers allows it. Visits write to disjoint rows and subtrees,
// contending only on per-node locks.
func forEachChild(n, workers int, visit func(i int)) {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			visit(i)
		}
		return
	}
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			visit(i)
		}()
	}
	wg.Wait()
}

func row(buf []float32, i, width int) []float32 {
	return buf[i*width : (i+1)*width]
}

func applySwap(values []float32, swaps []game.SwapPair) {
	for _, s := range swaps {
		values[s[0]], values[s[1]] = values[s[1]], values[s[0]]
	}
}
