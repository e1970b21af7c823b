package solver

import "github.com/chrisculver/postflop-solver/game"

// regretMatching returns the current strategy at a decision node:
// positive cumulative regrets normalized per hand, uniform where no
// action has positive regret.
func regretMatching(regrets []float32, numActions, numHands int) []float32 {
	strategy := make([]float32, len(regrets))
	for i, r := range regrets {
		if r > 0 {
			strategy[i] = r
		}
	}
	normalizeColumns(strategy, numActions, numHands)
	return strategy
}

// regretMatchingCompressed regret-matches directly on the raw int16
// values; the shared positive scale cancels in the normalization.
func regretMatchingCompressed(raw []int16, numActions, numHands int) []float32 {
	strategy := make([]float32, len(raw))
	for i, r := range raw {
		if r > 0 {
			strategy[i] = float32(r)
		}
	}
	normalizeColumns(strategy, numActions, numHands)
	return strategy
}

// averageStrategy returns the per-hand normalized cumulative strategy
// at a decision node. On the narrow view the raw uint16 values are
// normalized directly, the scale cancelling. The node lock is taken
// for the buffer read.
func averageStrategy(g game.Game, node game.Node, numActions, numHands int) []float32 {
	s := make([]float32, numActions*numHands)
	node.Lock()
	if g.IsCompressionEnabled() {
		for i, v := range node.StrategyCompressed() {
			s[i] = float32(v)
		}
	} else {
		copy(s, node.Strategy())
	}
	node.Unlock()
	normalizeColumns(s, numActions, numHands)
	return s
}

// normalizeColumns scales each hand's column to sum to one across the
// action rows, defaulting to uniform where a column has no mass.
func normalizeColumns(buf []float32, numActions, numHands int) {
	uniform := 1 / float32(numActions)
	for h := 0; h < numHands; h++ {
		var sum float32
		for a := 0; a < numActions; a++ {
			sum += buf[a*numHands+h]
		}
		if sum > 0 {
			inv := 1 / sum
			for a := 0; a < numActions; a++ {
				buf[a*numHands+h] *= inv
			}
		} else {
			for a := 0; a < numActions; a++ {
				buf[a*numHands+h] = uniform
			}
		}
	}
}
