package leduc

import (
	"math"
	"testing"
)

func onesReach() []float32 {
	return []float32{1, 1, 1, 1, 1, 1}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 1e-6
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name        string
		a, b, board Card
		want        int
	}{
		{"pair beats king", 1, 4, 0, 1},
		{"king loses to pair", 4, 1, 0, -1},
		{"king beats queen", 4, 2, 0, 1},
		{"queen loses to king", 2, 5, 0, -1},
		{"queens split", 2, 3, 0, 0},
		{"pair on second copy", 5, 2, 4, 1},
		{"jacks split", 0, 1, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b, tc.board); got != tc.want {
				t.Errorf("Compare(%v, %v, %v) = %d, want %d", tc.a, tc.b, tc.board, got, tc.want)
			}
		})
	}
}

// With equal reach on both sides, every terminal nets to zero across
// the two players.
func TestEvaluateZeroSum(t *testing.T) {
	g := NewGame()

	terminals := 0
	walk(g.root, func(n *Node) {
		if !n.IsTerminal() {
			return
		}
		terminals++
		r0 := make([]float32, NumPrivateHands)
		r1 := make([]float32, NumPrivateHands)
		g.Evaluate(r0, n, 0, onesReach())
		g.Evaluate(r1, n, 1, onesReach())

		var sum float32
		for i := range r0 {
			sum += r0[i] + r1[i]
		}
		if !approx(sum, 0) {
			t.Errorf("%v node (pot %d) nets to %v, want 0", n.Kind(), n.Pot(), sum)
		}
	})
	if terminals != 139 {
		t.Errorf("visited %d terminals, want 139", terminals)
	}
}

func TestEvaluateFold(t *testing.T) {
	g := NewGame()

	// Player 1 folds to the opening bet: pot 1, every hand collects
	// from five live opponent cards.
	n := follow(t, g.root, Bet, Fold)
	r0 := make([]float32, NumPrivateHands)
	g.Evaluate(r0, n, 0, onesReach())
	for h, v := range r0 {
		if !approx(v, 5.0/30) {
			t.Errorf("winner hand %d = %v, want %v", h, v, 5.0/30)
		}
	}
	r1 := make([]float32, NumPrivateHands)
	g.Evaluate(r1, n, 1, onesReach())
	for h, v := range r1 {
		if !approx(v, -5.0/30) {
			t.Errorf("folder hand %d = %v, want %v", h, v, -5.0/30)
		}
	}

	// Player 0 folds to the raise: pot 3 against player 0.
	n = follow(t, g.root, Bet, Raise, Fold)
	r0 = make([]float32, NumPrivateHands)
	g.Evaluate(r0, n, 0, onesReach())
	for h, v := range r0 {
		if !approx(v, -0.5) {
			t.Errorf("folder hand %d = %v, want -0.5", h, v)
		}
	}
}

func TestEvaluateShowdown(t *testing.T) {
	g := NewGame()

	cases := []struct {
		name  string
		board Card
		path  []ActionKind
		pot   int
		want  []float32
	}{
		{
			name:  "checked down on jack board",
			board: 0,
			path:  []ActionKind{Check, Check},
			pot:   1,
			want:  []float32{0, 4.0 / 30, -3.0 / 30, -3.0 / 30, 1.0 / 30, 1.0 / 30},
		},
		{
			name:  "bet call both rounds on king board",
			board: 4,
			path:  []ActionKind{Bet, Call},
			pot:   7,
			want:  []float32{-21.0 / 30, -21.0 / 30, 7.0 / 30, 7.0 / 30, 0, 28.0 / 30},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chance := follow(t, g.root, tc.path...)
			n := follow(t, deal(t, chance, tc.board), tc.path...)
			if n.Kind() != ShowdownNode {
				t.Fatalf("path ends at a %v node, want showdown", n.Kind())
			}
			if n.Pot() != tc.pot {
				t.Fatalf("pot = %d, want %d", n.Pot(), tc.pot)
			}

			result := make([]float32, NumPrivateHands)
			g.Evaluate(result, n, 0, onesReach())
			for h := range tc.want {
				if !approx(result[h], tc.want[h]) {
					t.Errorf("hand %d = %v, want %v", h, result[h], tc.want[h])
				}
			}
		})
	}
}

// Evaluate accumulates rather than overwriting, and scales with the
// opponent's reach.
func TestEvaluateAccumulates(t *testing.T) {
	g := NewGame()
	n := follow(t, g.root, Bet, Fold)

	result := []float32{1, 1, 1, 1, 1, 1}
	reach := []float32{0.5, 0, 0, 0, 0, 0}
	g.Evaluate(result, n, 0, reach)

	// Hand 0's only live mass is itself, which is excluded.
	if !approx(result[0], 1) {
		t.Errorf("hand 0 = %v, want untouched 1", result[0])
	}
	for h := 1; h < NumPrivateHands; h++ {
		want := 1 + 0.5*float32(1.0/30)
		if !approx(result[h], want) {
			t.Errorf("hand %d = %v, want %v", h, result[h], want)
		}
	}
}
