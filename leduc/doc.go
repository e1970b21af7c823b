// Package leduc models Leduc hold'em as a solvable game tree.
//
// # Rules
//
// The deck holds six cards, two copies each of three ranks. Both
// players ante one chip and receive one private card. A first betting
// round is played blind, then one public card is dealt and a second
// round follows. Bets and raises add two chips in the first round and
// four in the second, with at most one bet and one raise per round. At
// showdown a card pairing the public card wins; otherwise the higher
// rank wins and equal ranks split.
//
// # Tree
//
// NewGame builds the complete tree up front: decision nodes with their
// legal action menus, one chance node per spot where the first round
// closes, and fold or showdown terminals. Chance nodes keep one
// canonical child per rank; the other copy of each rank is isomorphic
// and is reconstructed by the solver through the game's swap tables.
// Every decision node carries two buffers with one entry per
// (action, private hand) pair: the cumulative strategy, and a second
// buffer that accumulates regrets during solving and expected values
// after it. The buffers are float32, or uint16/int16 with per-buffer
// scales when the game is built with WithCompression.
//
// The package implements game.Game and game.Node; see that package for
// the locking and storage-view contract.
package leduc
