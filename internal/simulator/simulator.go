// Package simulator validates solved strategies by playing them out:
// either exactly, enumerating every deal and weighting playouts by the
// stored average strategy, or by Monte Carlo sampling across workers.
// Payoffs are for the first player, in the same pot-per-deal units the
// solver stores.
package simulator

import (
	"context"
	"errors"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/chrisculver/postflop-solver/internal/randutil"
	"github.com/chrisculver/postflop-solver/internal/statistics"
	"github.com/chrisculver/postflop-solver/leduc"
)

// ErrNotSolved is returned when a game's strategies have not been
// finalized yet.
var ErrNotSolved = errors.New("simulator: game not solved")

// Config holds sampling configuration.
type Config struct {
	Hands   int   // number of deals to sample
	Seed    int64 // base seed; zero draws a fresh one
	Workers int
	Logger  *log.Logger
}

// ExpectedValue enumerates every deal and playout under the game's
// average strategy and returns the first player's expected value. It
// is independent of the expected values the solver stores, which makes
// it a cross-check on them.
func ExpectedValue(g *leduc.Game) (float64, error) {
	if !g.IsSolved() {
		return 0, ErrNotSolved
	}

	root := g.Root().(*leduc.Node)
	pairs := 0
	var total float64
	for c0 := leduc.Card(0); c0 < leduc.NumCards; c0++ {
		for c1 := leduc.Card(0); c1 < leduc.NumCards; c1++ {
			if c1 == c0 {
				continue
			}
			total += playoutValue(g, root, c0, c1)
			pairs++
		}
	}
	return total / float64(pairs), nil
}

// playoutValue is the first player's expected payoff at node when the
// players hold c0 and c1, averaging over strategies and live board
// cards. An odd board card is folded onto its canonical sibling by
// swapping the copy bit of both hands, mirroring how the tree stores
// chance outcomes.
func playoutValue(g *leduc.Game, node *leduc.Node, c0, c1 leduc.Card) float64 {
	switch node.Kind() {
	case leduc.FoldNode:
		if node.Player() == 0 {
			return -float64(node.Pot())
		}
		return float64(node.Pot())

	case leduc.ShowdownNode:
		return float64(leduc.Compare(c0, c1, node.Board())) * float64(node.Pot())

	case leduc.ChanceNode:
		var total float64
		for card := leduc.Card(0); card < leduc.NumCards; card++ {
			if card == c0 || card == c1 {
				continue
			}
			child := node.Play(card.Rank()).(*leduc.Node)
			if card&1 == 1 {
				total += playoutValue(g, child, c0^1, c1^1)
			} else {
				total += playoutValue(g, child, c0, c1)
			}
		}
		return total * float64(node.ChanceFactor())

	default:
		hand := c0
		if node.Player() == 1 {
			hand = c1
		}
		sigma := actionDistribution(g, node, hand)
		var total float64
		for a, p := range sigma {
			if p > 0 {
				total += p * playoutValue(g, node.Play(a).(*leduc.Node), c0, c1)
			}
		}
		return total
	}
}

// actionDistribution returns the average strategy's action
// probabilities for one hand at a decision node.
func actionDistribution(g *leduc.Game, node *leduc.Node, hand leduc.Card) []float64 {
	numActions := node.NumActions()
	sigma := make([]float64, numActions)
	var sum float64
	if g.IsCompressionEnabled() {
		raw := node.StrategyCompressed()
		for a := 0; a < numActions; a++ {
			sigma[a] = float64(raw[a*leduc.NumPrivateHands+int(hand)])
			sum += sigma[a]
		}
	} else {
		strategy := node.Strategy()
		for a := 0; a < numActions; a++ {
			sigma[a] = float64(strategy[a*leduc.NumPrivateHands+int(hand)])
			sum += sigma[a]
		}
	}
	if sum <= 0 {
		for a := range sigma {
			sigma[a] = 1 / float64(numActions)
		}
		return sigma
	}
	for a := range sigma {
		sigma[a] /= sum
	}
	return sigma
}

// Sample deals cfg.Hands random matchups, plays each out by sampling
// the average strategy and the board, and accumulates the first
// player's payoffs. Hands are split across cfg.Workers goroutines,
// each with its own generator derived from the base seed, so a given
// seed and worker count reproduces exactly.
func Sample(ctx context.Context, g *leduc.Game, cfg Config) (*statistics.Statistics, error) {
	if !g.IsSolved() {
		return nil, ErrNotSolved
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Debug("sampling deals", "hands", cfg.Hands, "workers", workers, "seed", seed)

	root := g.Root().(*leduc.Node)
	base := randutil.New(seed)
	perWorker := cfg.Hands / workers
	remainder := cfg.Hands % workers

	parts := make([]statistics.Statistics, workers)
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		hands := perWorker
		if w < remainder {
			hands++
		}
		workerSeed := base.Int64()
		part := &parts[w]

		eg.Go(func() error {
			rng := randutil.New(workerSeed)
			for i := 0; i < hands; i++ {
				if i&1023 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				c0, c1 := dealPair(rng)
				part.Add(samplePlayout(g, root, rng, c0, c1))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for w := range parts {
		total.Merge(&parts[w])
	}
	logger.Debug("sampling finished", "mean", total.Mean(), "stderr", total.StdError())
	return total, nil
}

// dealPair draws an ordered pair of distinct private cards.
func dealPair(rng *rand.Rand) (leduc.Card, leduc.Card) {
	c0 := leduc.Card(rng.IntN(leduc.NumCards))
	c1 := leduc.Card(rng.IntN(leduc.NumCards - 1))
	if c1 >= c0 {
		c1++
	}
	return c0, c1
}

// samplePlayout plays a single deal to a terminal, sampling decisions
// from the average strategy and the board from the live cards.
func samplePlayout(g *leduc.Game, node *leduc.Node, rng *rand.Rand, c0, c1 leduc.Card) float64 {
	for {
		switch node.Kind() {
		case leduc.FoldNode:
			if node.Player() == 0 {
				return -float64(node.Pot())
			}
			return float64(node.Pot())

		case leduc.ShowdownNode:
			return float64(leduc.Compare(c0, c1, node.Board())) * float64(node.Pot())

		case leduc.ChanceNode:
			card := dealBoard(rng, c0, c1)
			node = node.Play(card.Rank()).(*leduc.Node)
			if card&1 == 1 {
				c0 ^= 1
				c1 ^= 1
			}

		default:
			hand := c0
			if node.Player() == 1 {
				hand = c1
			}
			sigma := actionDistribution(g, node, hand)
			node = node.Play(sampleIndex(rng, sigma)).(*leduc.Node)
		}
	}
}

// dealBoard draws a board card uniformly from the cards neither player
// holds.
func dealBoard(rng *rand.Rand, c0, c1 leduc.Card) leduc.Card {
	n := rng.IntN(leduc.NumCards - 2)
	for card := leduc.Card(0); ; card++ {
		if card == c0 || card == c1 {
			continue
		}
		if n == 0 {
			return card
		}
		n--
	}
}

func sampleIndex(rng *rand.Rand, sigma []float64) int {
	x := rng.Float64()
	for a, p := range sigma {
		x -= p
		if x < 0 {
			return a
		}
	}
	return len(sigma) - 1
}
