package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chrisculver/postflop-solver/leduc"
)

func TestExploitabilityPositiveAtUniform(t *testing.T) {
	// A fresh game has no cumulative strategy, so the average profile
	// is uniform everywhere.
	e := Exploitability(leduc.NewGame())
	require.Greater(t, e, float32(0.1))
}

func TestExploitabilityMatchesAcrossViews(t *testing.T) {
	wide := Exploitability(leduc.NewGame())
	narrow := Exploitability(leduc.NewGame(leduc.WithCompression()))
	require.InDelta(t, wide, narrow, 1e-6)
}

func TestExploitabilityDecreases(t *testing.T) {
	g := leduc.NewGame()
	initial := Exploitability(g)

	cfg := Config{MaxIterations: 200, Target: 0, Workers: 1}
	final, err := Solve(context.Background(), g, cfg, nil)
	require.NoError(t, err)
	require.Greater(t, final, float32(0))
	require.Less(t, final, initial/10)
}
