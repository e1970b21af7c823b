// Package solver implements discounted counterfactual regret
// minimization over any game.Game.
//
// Solve runs alternating vector-form passes: one traversal per player
// per iteration, carrying the opponent's reach weights and updating
// the visited player's cumulative regrets and strategy. Regrets are
// discounted with the DCFR schedule (alpha 1.5 on positive regrets,
// beta 0 on negative, gamma 3 on the strategy accumulator).
// Exploitability of the average strategy is recomputed every ten
// iterations and stops the run once it reaches the configured target.
//
// After the loop the run is finalized in place: cumulative strategies
// are normalized to per-hand averages, each decision node's
// regret-aliased buffer is overwritten with per-action expected values
// under that average profile, and the game's solved latch flips.
package solver
