package leduc

import "github.com/chrisculver/postflop-solver/game"

// Game is a fully built Leduc hold'em model. It implements game.Game.
type Game struct {
	root        *Node
	weights     [2][]float32
	isomorphism []int
	swaps       [2][]game.SwapPair
	compressed  bool
	solved      bool
}

var _ game.Game = (*Game)(nil)

// Option configures a Game before its tree is built.
type Option func(*Game)

// WithCompression selects the narrow quantized storage views for the
// whole run: uint16 strategy and int16 regret/EV buffers with
// per-buffer scales instead of float32.
func WithCompression() Option {
	return func(g *Game) { g.compressed = true }
}

// NewGame builds the complete game tree and allocates every decision
// node's buffers. Construction is single-threaded; the returned game
// may be traversed concurrently afterwards.
func NewGame(opts ...Option) *Game {
	g := &Game{
		// Chance children are one per rank; child i also stands for the
		// odd copy of rank i, reached by swapping the two copies of
		// every rank in both players' hand indexing.
		isomorphism: []int{0, 1, 2},
	}
	for p := 0; p < 2; p++ {
		g.swaps[p] = []game.SwapPair{{0, 1}, {2, 3}, {4, 5}}
		w := make([]float32, NumPrivateHands)
		for i := range w {
			w[i] = 1
		}
		g.weights[p] = w
	}
	for _, opt := range opts {
		opt(g)
	}
	g.root = buildTree(g.compressed)
	return g
}

func (g *Game) Root() game.Node { return g.root }

func (g *Game) NumPrivateHands(player int) int { return NumPrivateHands }

func (g *Game) InitialWeights(player int) []float32 { return g.weights[player] }

func (g *Game) IsomorphicChances(node game.Node) []int { return g.isomorphism }

func (g *Game) IsomorphicSwap(node game.Node, index int) [2][]game.SwapPair { return g.swaps }

func (g *Game) IsCompressionEnabled() bool { return g.compressed }

func (g *Game) IsSolved() bool { return g.solved }

// SetSolved flips the one-shot solved latch. From then on the nodes'
// regret buffers hold expected values.
func (g *Game) SetSolved() { g.solved = true }
