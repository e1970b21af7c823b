package main

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/chrisculver/postflop-solver/internal/statistics"
	"github.com/chrisculver/postflop-solver/leduc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// nodeStrategy returns a decision node's per-hand normalized average
// strategy as [action][hand], decoding the narrow view when the game
// is compressed.
func nodeStrategy(g *leduc.Game, n *leduc.Node) [][]float64 {
	numActions := n.NumActions()
	hands := leduc.NumPrivateHands
	flat := make([]float64, numActions*hands)
	if g.IsCompressionEnabled() {
		for i, v := range n.StrategyCompressed() {
			flat[i] = float64(v)
		}
	} else {
		for i, v := range n.Strategy() {
			flat[i] = float64(v)
		}
	}
	for h := 0; h < hands; h++ {
		var sum float64
		for a := 0; a < numActions; a++ {
			sum += flat[a*hands+h]
		}
		if sum <= 0 {
			for a := 0; a < numActions; a++ {
				flat[a*hands+h] = 1 / float64(numActions)
			}
			continue
		}
		for a := 0; a < numActions; a++ {
			flat[a*hands+h] /= sum
		}
	}
	return split(flat, numActions, hands)
}

// nodeExpectedValues returns a decision node's stored expected values
// as [action][hand].
func nodeExpectedValues(g *leduc.Game, n *leduc.Node) [][]float64 {
	numActions := n.NumActions()
	hands := leduc.NumPrivateHands
	flat := make([]float64, numActions*hands)
	if g.IsCompressionEnabled() {
		scale := float64(n.ExpectedValueScale()) / math.MaxInt16
		for i, v := range n.ExpectedValuesCompressed() {
			flat[i] = float64(v) * scale
		}
	} else {
		for i, v := range n.ExpectedValues() {
			flat[i] = float64(v)
		}
	}
	return split(flat, numActions, hands)
}

func split(flat []float64, rows, width int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = flat[i*width : (i+1)*width]
	}
	return out
}

// rootValue is the first player's expected value under the stored
// average strategy.
func rootValue(g *leduc.Game) float64 {
	root := g.Root().(*leduc.Node)
	strategy := nodeStrategy(g, root)
	evs := nodeExpectedValues(g, root)
	var value float64
	for a := range strategy {
		for h := range strategy[a] {
			value += strategy[a][h] * evs[a][h]
		}
	}
	return value
}

func renderSummary(g *leduc.Game, exploitability float32, elapsed time.Duration) string {
	root := g.Root().(*leduc.Node)
	strategy := nodeStrategy(g, root)
	evs := nodeExpectedValues(g, root)

	headers := []string{"HAND"}
	for i := 0; i < root.NumActions(); i++ {
		headers = append(headers, strings.ToUpper(root.ActionAt(i).String()))
	}
	headers = append(headers, "EV")

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(int, int) lipgloss.Style { return cellStyle }).
		Headers(headers...)

	for h := 0; h < leduc.NumPrivateHands; h++ {
		row := []string{leduc.Card(h).String()}
		var ev float64
		for a := range strategy {
			row = append(row, fmt.Sprintf("%5.1f%%", strategy[a][h]*100))
			ev += strategy[a][h] * evs[a][h]
		}
		row = append(row, fmt.Sprintf("%+.4f", ev))
		tbl = tbl.Row(row...)
	}

	storage := "float32"
	if g.IsCompressionEnabled() {
		storage = "uint16/int16"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Leduc hold'em equilibrium"),
		tbl.Render(),
		fmt.Sprintf("%s %+.4f", labelStyle.Render("Game value (first player):"), rootValue(g)),
		fmt.Sprintf("%s %.3e", labelStyle.Render("Exploitability:"), exploitability),
		fmt.Sprintf("%s %s, solved in %s", labelStyle.Render("Storage:"), storage, elapsed.Round(time.Millisecond)),
	)
}

func renderExact(stored, enumerated float64) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Exact playout validation"),
		fmt.Sprintf("%s %+.6f", labelStyle.Render("Stored game value:"), stored),
		fmt.Sprintf("%s %+.6f", labelStyle.Render("Enumerated value:"), enumerated),
		fmt.Sprintf("%s %.2e", labelStyle.Render("Difference:"), math.Abs(stored-enumerated)),
	)
}

func renderSample(stored float64, stats *statistics.Statistics, elapsed time.Duration) string {
	low, high := stats.ConfidenceInterval95()
	lines := []string{
		titleStyle.Render("Sampled playout validation"),
		fmt.Sprintf("%s %d", labelStyle.Render("Deals:"), stats.Samples),
		fmt.Sprintf("%s %+.4f ± %.4f", labelStyle.Render("Sampled value:"), stats.Mean(), 1.96*stats.StdError()),
		fmt.Sprintf("%s [%+.4f, %+.4f]", labelStyle.Render("95% interval:"), low, high),
		fmt.Sprintf("%s %+.4f", labelStyle.Render("Stored game value:"), stored),
	}
	if elapsed > 0 {
		rate := float64(stats.Samples) / elapsed.Seconds()
		lines = append(lines, infoStyle.Render(
			fmt.Sprintf("%.0f deals/sec, %s total", rate, elapsed.Round(time.Millisecond))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTree(g *leduc.Game) string {
	root := g.Root().(*leduc.Node)

	counts := map[leduc.NodeKind]int{}
	menus := map[int]int{}
	valuesPerView := 0
	maxPot := 0

	var walk func(n *leduc.Node)
	walk = func(n *leduc.Node) {
		if n.Pot() > maxPot {
			maxPot = n.Pot()
		}
		counts[n.Kind()]++
		if n.Kind() == leduc.DecisionNode {
			menus[n.NumActions()]++
			valuesPerView += n.NumActions() * leduc.NumPrivateHands
		}
		for i := 0; i < n.NumActions(); i++ {
			walk(n.Play(i).(*leduc.Node))
		}
	}
	walk(root)

	total := 0
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(int, int) lipgloss.Style { return cellStyle }).
		Headers("NODE KIND", "COUNT")
	for _, kind := range []leduc.NodeKind{leduc.DecisionNode, leduc.ChanceNode, leduc.FoldNode, leduc.ShowdownNode} {
		tbl = tbl.Row(kind.String(), fmt.Sprintf("%d", counts[kind]))
		total += counts[kind]
	}
	tbl = tbl.Row("total", fmt.Sprintf("%d", total))

	sizes := make([]int, 0, len(menus))
	for size := range menus {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	parts := make([]string, 0, len(sizes))
	for _, size := range sizes {
		parts = append(parts, fmt.Sprintf("%d with %d actions", menus[size], size))
	}

	width := 4
	storage := "float32"
	if g.IsCompressionEnabled() {
		width = 2
		storage = "uint16/int16"
	}
	bytes := valuesPerView * 2 * width

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Leduc hold'em game tree"),
		tbl.Render(),
		fmt.Sprintf("%s %s", labelStyle.Render("Decision menus:"), strings.Join(parts, ", ")),
		fmt.Sprintf("%s %d", labelStyle.Render("Deepest pot:"), maxPot),
		fmt.Sprintf("%s %d values per view, %d bytes (%s)", labelStyle.Render("Storage:"), valuesPerView, bytes, storage),
	)
}
