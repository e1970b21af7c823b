package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/coder/quartz"

	"github.com/chrisculver/postflop-solver/game"
)

// ErrAlreadySolved is returned when Solve is handed a game whose
// solved latch has already flipped.
var ErrAlreadySolved = errors.New("solver: game already solved")

// Progress is a snapshot of a running solve. Exploitability is the
// most recently computed value, which can lag the iteration count by
// up to ten iterations.
type Progress struct {
	Iteration      int
	Exploitability float32
	Elapsed        time.Duration
}

// discountParams holds one iteration's DCFR weights: alpha 1.5 on
// positive cumulative regrets, beta 0 on negative (a constant 1/2
// multiplier), gamma 3 on the cumulative strategy.
type discountParams struct {
	alpha float32
	beta  float32
	gamma float32
}

func newDiscountParams(t int) discountParams {
	ft := float64(t)
	pow := ft * math.Sqrt(ft)
	ratio := ft / (ft + 1)
	return discountParams{
		alpha: float32(pow / (pow + 1)),
		beta:  0.5,
		gamma: float32(ratio * ratio * ratio),
	}
}

// Solve runs discounted CFR on g until exploitability reaches
// cfg.Target or cfg.MaxIterations passes, then finalizes the game in
// place and returns the final exploitability. progress, when non-nil,
// receives periodic snapshots per cfg.
//
// Solve owns the game's buffers for the duration of the call. The
// context is checked between iterations only; a finished iteration is
// never torn down.
func Solve(ctx context.Context, g game.Game, cfg Config, progress func(Progress)) (float32, error) {
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("solver: %w", err)
	}
	if g.IsSolved() {
		return 0, ErrAlreadySolved
	}

	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	start := clock.Now()
	var lastReport time.Time
	report := func(iteration int, exploitability float32) {
		if progress == nil || cfg.ProgressEvery == 0 || iteration%cfg.ProgressEvery != 0 {
			return
		}
		now := clock.Now()
		if !lastReport.IsZero() && now.Sub(lastReport) < cfg.ProgressMinInterval {
			return
		}
		lastReport = now
		progress(Progress{
			Iteration:      iteration,
			Exploitability: exploitability,
			Elapsed:        now.Sub(start),
		})
	}

	exploitability := Exploitability(g)
	report(0, exploitability)

	for t := 0; t < cfg.MaxIterations && exploitability > cfg.Target; t++ {
		if err := ctx.Err(); err != nil {
			return exploitability, err
		}

		tr := &traversal{g: g, params: newDiscountParams(t), workers: cfg.Workers}
		for player := 0; player < 2; player++ {
			result := make([]float32, g.NumPrivateHands(player))
			tr.solve(result, g.Root(), player, g.InitialWeights(player^1))
		}

		if (t+1)%10 == 0 || t+1 == cfg.MaxIterations {
			exploitability = Exploitability(g)
		}
		report(t+1, exploitability)
	}

	finalize(g)
	return exploitability, nil
}
