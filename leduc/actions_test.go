package leduc

import "testing"

func TestRootMenu(t *testing.T) {
	g := NewGame()
	root := g.Root().(*Node)

	if root.NumActions() != 2 {
		t.Fatalf("root has %d actions, want 2", root.NumActions())
	}
	if got := root.ActionAt(0); got != (Action{Kind: Check}) {
		t.Errorf("root action 0 = %v, want check", got)
	}
	if got := root.ActionAt(1); got != (Action{Kind: Bet, Amount: 2}) {
		t.Errorf("root action 1 = %v, want bet 2", got)
	}
}

func TestLegalActionMenus(t *testing.T) {
	cases := []struct {
		name   string
		last   Action
		second bool
		player int
		want   []actionEdge
	}{
		{
			name: "round one opener", last: Action{Kind: NoAction}, player: 0,
			want: []actionEdge{
				{Action{Kind: Check}, successor{kind: DecisionNode, player: 1}},
				{Action{Kind: Bet, Amount: 2}, successor{kind: DecisionNode, player: 1}},
			},
		},
		{
			name: "round one after check", last: Action{Kind: Check}, player: 1,
			want: []actionEdge{
				{Action{Kind: Check}, successor{kind: ChanceNode}},
				{Action{Kind: Bet, Amount: 2}, successor{kind: DecisionNode, player: 0}},
			},
		},
		{
			name: "round one facing bet", last: Action{Kind: Bet, Amount: 2}, player: 0,
			want: []actionEdge{
				{Action{Kind: Fold}, successor{kind: FoldNode, player: 0}},
				{Action{Kind: Call}, successor{kind: ChanceNode}},
				{Action{Kind: Raise, Amount: 4}, successor{kind: DecisionNode, player: 1}},
			},
		},
		{
			name: "round one facing raise", last: Action{Kind: Raise, Amount: 4}, player: 1,
			want: []actionEdge{
				{Action{Kind: Fold}, successor{kind: FoldNode, player: 1}},
				{Action{Kind: Call}, successor{kind: ChanceNode}},
			},
		},
		{
			name: "round two opener", last: Action{Kind: Chance, Amount: 2}, second: true, player: 0,
			want: []actionEdge{
				{Action{Kind: Check}, successor{kind: DecisionNode, player: 1}},
				{Action{Kind: Bet, Amount: 4}, successor{kind: DecisionNode, player: 1}},
			},
		},
		{
			name: "round two after check", last: Action{Kind: Check}, second: true, player: 1,
			want: []actionEdge{
				{Action{Kind: Check}, successor{kind: ShowdownNode, player: 1}},
				{Action{Kind: Bet, Amount: 4}, successor{kind: DecisionNode, player: 0}},
			},
		},
		{
			name: "round two facing bet", last: Action{Kind: Bet, Amount: 4}, second: true, player: 1,
			want: []actionEdge{
				{Action{Kind: Fold}, successor{kind: FoldNode, player: 1}},
				{Action{Kind: Call}, successor{kind: ShowdownNode, player: 1}},
				{Action{Kind: Raise, Amount: 8}, successor{kind: DecisionNode, player: 0}},
			},
		},
		{
			name: "round two facing raise", last: Action{Kind: Raise, Amount: 8}, second: true, player: 0,
			want: []actionEdge{
				{Action{Kind: Fold}, successor{kind: FoldNode, player: 0}},
				{Action{Kind: Call}, successor{kind: ShowdownNode, player: 0}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := legalActions(tc.last, tc.second, tc.player)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d actions, want %d", len(got), len(tc.want))
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("action %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestActionStrings(t *testing.T) {
	cases := []struct {
		action Action
		want   string
	}{
		{Action{Kind: Check}, "check"},
		{Action{Kind: Fold}, "fold"},
		{Action{Kind: Call}, "call"},
		{Action{Kind: Bet, Amount: 4}, "bet 4"},
		{Action{Kind: Raise, Amount: 8}, "raise 8"},
		{Action{Kind: Chance, Amount: 2}, "deal Q♠"},
	}
	for _, tc := range cases {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("String(%v) = %q, want %q", tc.action.Kind, got, tc.want)
		}
	}
}
