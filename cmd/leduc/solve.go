package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/chrisculver/postflop-solver/leduc"
	"github.com/chrisculver/postflop-solver/solver"
)

// SolveCmd runs discounted CFR until the exploitability target or the
// iteration limit is reached, then prints the root equilibrium.
type SolveCmd struct {
	Iterations int     `help:"Maximum solver iterations" default:"10000"`
	Target     float64 `help:"Exploitability target; zero runs every iteration" default:"0.0001"`
	Workers    int     `help:"Concurrent workers on chance branches" default:"1"`
	Compressed bool    `help:"Store strategies in 16-bit quantized buffers"`
	Config     string  `help:"HCL config file; its values override flags" type:"path"`
	Export     string  `help:"Write the solved strategy to a JSON file" type:"path"`
	Quiet      bool    `help:"Disable the live progress display"`
}

func (c *SolveCmd) Run(ctx context.Context, logger *log.Logger) error {
	if c.Config != "" {
		fc, err := loadConfig(c.Config)
		if err != nil {
			return err
		}
		c.apply(fc)
		logger.Debug("Loaded config file", "path", c.Config)
	}

	cfg := solver.DefaultConfig()
	cfg.MaxIterations = c.Iterations
	cfg.Target = float32(c.Target)
	cfg.Workers = c.Workers
	if err := cfg.Validate(); err != nil {
		return err
	}

	var opts []leduc.Option
	if c.Compressed {
		opts = append(opts, leduc.WithCompression())
	}
	g := leduc.NewGame(opts...)

	logger.Info("Solving Leduc hold'em",
		"iterations", cfg.MaxIterations,
		"target", cfg.Target,
		"workers", cfg.Workers,
		"compressed", c.Compressed,
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	disp := newDisplay(c.Quiet, cfg.MaxIterations, cancel)
	disp.Start()

	start := time.Now()
	exploitability, err := solver.Solve(ctx, g, cfg, disp.Progress)
	elapsed := time.Since(start)
	disp.Stop()

	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	logger.Info("Solved",
		"exploitability", fmt.Sprintf("%.3e", exploitability),
		"elapsed", elapsed.Round(time.Millisecond),
	)

	fmt.Println(renderSummary(g, exploitability, elapsed))

	if c.Export != "" {
		if err := exportStrategy(c.Export, g, exploitability); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		logger.Info("Wrote strategy", "path", c.Export)
	}
	return nil
}
