package solver

import (
	"fmt"
	"time"

	"github.com/coder/quartz"
)

// Config controls a Solve run.
type Config struct {
	// MaxIterations bounds the DCFR loop. The run may stop earlier
	// when Target is reached.
	MaxIterations int

	// Target stops the run once exploitability falls to or below it,
	// in the same payoff units as the game's evaluator. Zero runs all
	// iterations.
	Target float32

	// Workers enables concurrent traversal of chance-node subtrees
	// when greater than one.
	Workers int

	// ProgressEvery emits a progress callback every N iterations.
	// Zero disables progress reporting.
	ProgressEvery int

	// ProgressMinInterval rate-limits progress callbacks. Zero emits
	// every time ProgressEvery allows.
	ProgressMinInterval time.Duration

	// Clock supplies time for progress reporting. Nil uses the real
	// clock; tests inject a mock.
	Clock quartz.Clock
}

// DefaultConfig returns the settings used by the command line tools.
func DefaultConfig() Config {
	return Config{
		MaxIterations: 10000,
		Target:        0.0001,
		Workers:       1,
		ProgressEvery: 10,
	}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", c.MaxIterations)
	}
	if c.Target < 0 {
		return fmt.Errorf("target exploitability must not be negative, got %v", c.Target)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("progress interval must not be negative, got %d", c.ProgressEvery)
	}
	if c.ProgressMinInterval < 0 {
		return fmt.Errorf("progress min interval must not be negative, got %v", c.ProgressMinInterval)
	}
	return nil
}
