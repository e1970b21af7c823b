package leduc

import (
	"sync"

	"github.com/chrisculver/postflop-solver/game"
)

// NodeKind tags what a node represents.
type NodeKind uint8

const (
	// DecisionNode is a spot where one player picks an action.
	DecisionNode NodeKind = iota
	// ChanceNode is the deal of the public card between the rounds.
	ChanceNode
	// FoldNode ends the hand with one player surrendering the pot.
	FoldNode
	// ShowdownNode ends the hand with both players revealing.
	ShowdownNode
)

var nodeKindNames = [...]string{"decision", "chance", "fold", "showdown"}

func (k NodeKind) String() string { return nodeKindNames[k] }

// chanceFactor is the reach probability of each public card once both
// private cards are fixed: four of the six cards remain, and every
// canonical chance child also stands for its same-rank twin.
const chanceFactor = 1.0 / 4.0

type edge struct {
	action Action
	node   *Node
}

// Node is one state in the Leduc tree. The structural fields (kind,
// player, board, pot, edges) are fixed once NewGame returns and may be
// read without the lock; the embedded mutex guards the buffers and
// scales during concurrent traversal.
type Node struct {
	sync.Mutex

	kind   NodeKind
	player int // decision: actor, fold: folder, showdown: closing caller
	board  Card
	pot    int
	edges  []edge

	// Exactly one view family is allocated per game, selected by the
	// compression flag at build time. storage accumulates regrets
	// until the game is solved and expected values afterwards.
	strategy  []float32
	storage   []float32
	strategyQ []uint16
	storageQ  []int16

	strategyScale float32
	storageScale  float32
}

var _ game.Node = (*Node)(nil)

// Kind reports what the node represents.
func (n *Node) Kind() NodeKind { return n.kind }

func (n *Node) IsTerminal() bool { return n.kind == FoldNode || n.kind == ShowdownNode }

func (n *Node) IsChance() bool { return n.kind == ChanceNode }

// Player returns the acting player at a decision node, the folder at a
// fold node and the closing caller at a showdown. No player acts at a
// chance node, so asking for one panics.
func (n *Node) Player() int {
	if n.kind == ChanceNode {
		panic("leduc: no player acts at a chance node")
	}
	return n.player
}

func (n *Node) NumActions() int { return len(n.edges) }

func (n *Node) ChanceFactor() float32 { return chanceFactor }

// Board returns the public card, or NotDealt during the first round.
func (n *Node) Board() Card { return n.board }

// Pot returns the chips each player stands to win: the ante plus all
// matched bet increments so far.
func (n *Node) Pot() int { return n.pot }

// ActionAt returns the action leading to the i-th child.
func (n *Node) ActionAt(i int) Action { return n.edges[i].action }

func (n *Node) Play(action int) game.Node { return n.edges[action].node }

// child is Play without the interface hop, for in-package traversal.
func (n *Node) child(action int) *Node { return n.edges[action].node }

func (n *Node) Strategy() []float32 {
	if n.strategy == nil {
		panic("leduc: wide strategy view unavailable: " + n.viewFailure())
	}
	return n.strategy
}

func (n *Node) Regrets() []float32 {
	if n.storage == nil {
		panic("leduc: wide regret view unavailable: " + n.viewFailure())
	}
	return n.storage
}

func (n *Node) ExpectedValues() []float32 {
	if n.storage == nil {
		panic("leduc: wide expected-value view unavailable: " + n.viewFailure())
	}
	return n.storage
}

func (n *Node) StrategyCompressed() []uint16 {
	if n.strategyQ == nil {
		panic("leduc: narrow strategy view unavailable: " + n.viewFailure())
	}
	return n.strategyQ
}

func (n *Node) RegretsCompressed() []int16 {
	if n.storageQ == nil {
		panic("leduc: narrow regret view unavailable: " + n.viewFailure())
	}
	return n.storageQ
}

func (n *Node) ExpectedValuesCompressed() []int16 {
	if n.storageQ == nil {
		panic("leduc: narrow expected-value view unavailable: " + n.viewFailure())
	}
	return n.storageQ
}

func (n *Node) viewFailure() string {
	if n.kind != DecisionNode {
		return n.kind.String() + " nodes carry no buffers"
	}
	return "the game was built with the other storage width"
}

func (n *Node) StrategyScale() float32 { return n.strategyScale }

func (n *Node) SetStrategyScale(scale float32) { n.strategyScale = scale }

func (n *Node) RegretScale() float32 { return n.storageScale }

func (n *Node) SetRegretScale(scale float32) { n.storageScale = scale }

// ExpectedValueScale shares the regret scale slot, like the buffer it
// describes.
func (n *Node) ExpectedValueScale() float32 { return n.storageScale }

func (n *Node) SetExpectedValueScale(scale float32) { n.storageScale = scale }
