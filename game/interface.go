package game

import "sync"

// SwapPair names two private-hand indices that exchange places when a
// non-canonical chance outcome is mapped onto its canonical sibling.
type SwapPair [2]int

// Node is one state in a built game tree.
//
// Structural accessors (IsTerminal, IsChance, Player, NumActions,
// ChanceFactor, Play) read immutable state and need no locking. The
// embedded Locker guards the buffers and scales below it; callers hold
// it only while reading or writing those, never across a descent into
// a child node.
type Node interface {
	sync.Locker

	IsTerminal() bool
	IsChance() bool
	// Player returns the acting player at a decision node, the folder
	// at a fold terminal and the closing caller at a showdown. It
	// panics at chance nodes, where no player acts.
	Player() int
	NumActions() int
	// ChanceFactor is the reach probability of each child outcome of a
	// chance node, counting the canonical child and the isomorphic
	// outcomes folded onto it separately.
	ChanceFactor() float32
	Play(action int) Node

	// Wide views. Regrets and ExpectedValues alias one buffer: before
	// the game is solved it accumulates regrets, afterwards it holds
	// per-action expected values.
	Strategy() []float32
	Regrets() []float32
	ExpectedValues() []float32

	// Narrow quantized views of the same buffers. A raw value decodes
	// as raw*scale/32767 (int16) or raw*scale/65535 (uint16).
	StrategyCompressed() []uint16
	RegretsCompressed() []int16
	ExpectedValuesCompressed() []int16

	StrategyScale() float32
	SetStrategyScale(scale float32)
	// RegretScale and ExpectedValueScale share one slot, mirroring the
	// buffer they describe.
	RegretScale() float32
	SetRegretScale(scale float32)
	ExpectedValueScale() float32
	SetExpectedValueScale(scale float32)
}

// Game is a fully built two-player zero-sum game model.
type Game interface {
	Root() Node
	NumPrivateHands(player int) int
	// InitialWeights returns the per-hand reach weights at the root.
	// The slice is owned by the game; callers must not modify it.
	InitialWeights(player int) []float32

	// Evaluate accumulates player's counterfactual values at a terminal
	// node into result, one entry per private hand, weighting each
	// (own, opponent) hand pair by opponentReach. It never overwrites:
	// callers zero result themselves.
	Evaluate(result []float32, node Node, player int, opponentReach []float32)

	// IsomorphicChances lists, for each omitted outcome of a chance
	// node, the index of the canonical child standing in for it.
	IsomorphicChances(node Node) []int
	// IsomorphicSwap returns the per-player hand relabeling for the
	// index-th omitted outcome of node.
	IsomorphicSwap(node Node, index int) [2][]SwapPair

	// IsCompressionEnabled reports which storage view family this game
	// was built with. Fixed at construction.
	IsCompressionEnabled() bool

	// IsSolved reports whether the one-shot solved latch has flipped;
	// SetSolved flips it. After that the regret buffers hold expected
	// values and must not be written again.
	IsSolved() bool
	SetSolved()
}
