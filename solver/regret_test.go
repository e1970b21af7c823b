package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chrisculver/postflop-solver/leduc"
)

func TestRegretMatching(t *testing.T) {
	// Two actions over three hands, one row per action.
	regrets := []float32{2, -1, 0, 0, 2, 4}
	strategy := regretMatching(regrets, 2, 3)
	require.Equal(t, []float32{1, 0, 0, 0, 1, 1}, strategy)
}

func TestRegretMatchingUniformWithoutPositiveRegret(t *testing.T) {
	regrets := []float32{-2, 0, -3, 0}
	strategy := regretMatching(regrets, 2, 2)
	require.Equal(t, []float32{0.5, 0.5, 0.5, 0.5}, strategy)
}

func TestRegretMatchingCompressed(t *testing.T) {
	raw := []int16{300, -5, 0, 100, 0, 900}
	strategy := regretMatchingCompressed(raw, 2, 3)
	want := []float32{0.75, 0.5, 0, 0.25, 0.5, 1}
	require.InDeltaSlice(t, want, strategy, 1e-6)
}

func TestNormalizeColumns(t *testing.T) {
	buf := []float32{3, 0, 1, 2}
	normalizeColumns(buf, 2, 2)
	require.InDeltaSlice(t, []float32{0.75, 0, 0.25, 1}, buf, 1e-6)
}

func TestAverageStrategy(t *testing.T) {
	g := leduc.NewGame()
	root := g.Root()

	cumulative := root.Strategy()
	cumulative[0] = 3
	cumulative[6] = 1

	avg := averageStrategy(g, root, 2, g.NumPrivateHands(0))
	require.InDelta(t, 0.75, avg[0], 1e-6)
	require.InDelta(t, 0.25, avg[6], 1e-6)
	for h := 1; h < 6; h++ {
		require.InDelta(t, 0.5, avg[h], 1e-6)
		require.InDelta(t, 0.5, avg[h+6], 1e-6)
	}

	// The buffer itself stays cumulative.
	require.Equal(t, float32(3), root.Strategy()[0])
}

func TestAverageStrategyCompressed(t *testing.T) {
	g := leduc.NewGame(leduc.WithCompression())
	root := g.Root()

	raw := root.StrategyCompressed()
	raw[0] = 30000
	raw[6] = 10000

	avg := averageStrategy(g, root, 2, g.NumPrivateHands(0))
	require.InDelta(t, 0.75, avg[0], 1e-6)
	require.InDelta(t, 0.25, avg[6], 1e-6)
}
