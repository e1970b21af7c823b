package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/chrisculver/postflop-solver/internal/simulator"
	"github.com/chrisculver/postflop-solver/leduc"
	"github.com/chrisculver/postflop-solver/solver"
)

// SimulateCmd solves the game, then validates the stored expected
// values by playing the average strategy out, either exactly or by
// Monte Carlo sampling.
type SimulateCmd struct {
	Hands      int     `help:"Deals to sample" default:"100000"`
	Seed       int64   `help:"RNG seed; zero draws a fresh one" default:"0"`
	Workers    int     `help:"Sampling workers" default:"4"`
	Exact      bool    `help:"Enumerate every deal and playout instead of sampling"`
	Iterations int     `help:"Solver iterations before simulating" default:"10000"`
	Target     float64 `help:"Solver exploitability target" default:"0.0001"`
	Compressed bool    `help:"Solve with 16-bit quantized storage"`
}

func (c *SimulateCmd) Run(ctx context.Context, logger *log.Logger) error {
	cfg := solver.DefaultConfig()
	cfg.MaxIterations = c.Iterations
	cfg.Target = float32(c.Target)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var opts []leduc.Option
	if c.Compressed {
		opts = append(opts, leduc.WithCompression())
	}
	g := leduc.NewGame(opts...)

	logger.Info("Solving before simulation",
		"iterations", cfg.MaxIterations,
		"target", cfg.Target,
	)
	start := time.Now()
	exploitability, err := solver.Solve(ctx, g, cfg, nil)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	logger.Info("Solved",
		"exploitability", fmt.Sprintf("%.3e", exploitability),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	stored := rootValue(g)

	if c.Exact {
		value, err := simulator.ExpectedValue(g)
		if err != nil {
			return err
		}
		fmt.Println(renderExact(stored, value))
		return nil
	}

	simStart := time.Now()
	stats, err := simulator.Sample(ctx, g, simulator.Config{
		Hands:   c.Hands,
		Seed:    c.Seed,
		Workers: c.Workers,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("sample: %w", err)
	}
	fmt.Println(renderSample(stored, stats, time.Since(simStart)))
	return nil
}
