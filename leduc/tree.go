package leduc

// buildTree constructs the complete game tree and allocates the node
// buffers. Single-threaded; callers must not traverse until it
// returns.
func buildTree(compressed bool) *Node {
	root := &Node{kind: DecisionNode, player: 0, board: NotDealt, pot: 1}
	expand(root, Action{Kind: NoAction}, [2]int{0, 0})
	allocate(root, compressed)
	return root
}

// expand grows the subtree under n. last is the previous action of the
// current round and lastBets tracks each player's total committed this
// round; the pot grows by whatever newly becomes matched.
func expand(n *Node, last Action, lastBets [2]int) {
	if n.IsTerminal() {
		return
	}

	if n.kind == ChanceNode {
		for rank := 0; rank < NumRanks; rank++ {
			card := Card(2 * rank) // canonical copy of each rank
			action := Action{Kind: Chance, Amount: int(card)}
			child := &Node{kind: DecisionNode, player: 0, board: card, pot: n.pot}
			expand(child, action, [2]int{0, 0})
			n.edges = append(n.edges, edge{action, child})
		}
		return
	}

	prevMatched := min(lastBets[0], lastBets[1])
	for _, e := range legalActions(last, n.board.Dealt(), n.player) {
		bets := lastBets
		switch e.action.Kind {
		case Call:
			bets[n.player] = bets[n.player^1]
		case Bet, Raise:
			bets[n.player] = e.action.Amount
		}
		child := &Node{
			kind:   e.next.kind,
			player: e.next.player,
			board:  n.board,
			pot:    n.pot + min(bets[0], bets[1]) - prevMatched,
		}
		expand(child, e.action, bets)
		n.edges = append(n.edges, edge{e.action, child})
	}
}

// allocate gives every decision node its buffers, one entry per
// (action, private hand) pair, in the width the game runs with.
func allocate(n *Node, compressed bool) {
	if n.kind == DecisionNode {
		size := len(n.edges) * NumPrivateHands
		if compressed {
			n.strategyQ = make([]uint16, size)
			n.storageQ = make([]int16, size)
		} else {
			n.strategy = make([]float32, size)
			n.storage = make([]float32, size)
		}
	}
	for _, e := range n.edges {
		allocate(e.node, compressed)
	}
}
