// Package game defines the contract between a game model and the
// counterfactual-regret engine that solves it.
//
// # Model
//
// A game model owns a fully built tree of two-player zero-sum play.
// Chance nodes fan out to canonical outcomes only; strategically
// equivalent outcomes are folded onto their canonical siblings through
// the isomorphism tables, with per-player hand-index swaps describing
// the relabeling. Decision nodes carry per-(action, private hand)
// buffers for the cumulative strategy and the cumulative regrets; once
// the game is marked solved, the regret buffer holds expected values
// instead.
//
// # Storage views
//
// Buffers expose a wide view ([]float32) and a narrow quantized view
// ([]uint16 strategy, []int16 regrets/EVs with a per-buffer scale).
// Exactly one view family is valid for a whole run, chosen when the
// model is constructed; asking a node for the inactive view panics.
// Both views hold one element per (action, hand) pair.
//
// # Concurrency
//
// Tree construction is single-threaded and must complete before any
// traversal begins. After that the structure (kinds, players, edges,
// payoff inputs) is immutable and may be read freely. Buffer and scale
// access is guarded by the node's own lock; traversals hold at most
// one node lock at a time and release it before descending into a
// child. Nodes are never freed while the game is in use.
package game
