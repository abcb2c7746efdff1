package mcts

// SimulateOptions bundles the algorithm flags spec.md threads through
// every simulate call: exploration constant, rollout vs. heuristic leaf
// evaluation, eager child evaluation, and the UCB1/PUCT selection
// variant.
type SimulateOptions struct {
	C            float64
	UseRollout   bool
	EvalChildren bool
	UsePUCT      bool
	UseProbs     bool
}

// Simulate runs count single-simulation passes rooted at n. Each pass
// selects a path to a leaf, expands and evaluates it if non-terminal,
// and backs the leaf value up the path. Returns the number of passes
// actually run (always count; kept as a return value so callers can
// assert on it without a second VisitCount read).
func (n *Node) Simulate(count int, rng randSource, opts SimulateOptions) int {
	for i := 0; i < count; i++ {
		n.simulateOnce(rng, opts)
	}
	return count
}

func (n *Node) simulateOnce(rng randSource, opts SimulateOptions) {
	path := []*Node{n}
	cur := n
	for cur.Expanded && !cur.Terminal() {
		cur = cur.selectChild(opts.C, opts.UsePUCT, opts.UseProbs)
		path = append(path, cur)
	}

	var leafValue float64
	if cur.Terminal() {
		leafValue = terminalValue(cur.State)
	} else {
		cur.expand()
		leafValue = cur.evaluate(rng, opts)
		cur.CachedValue = leafValue
		cur.Evaluated = true
		if opts.EvalChildren {
			cur.evaluateChildrenHeuristic()
		}
	}

	for _, node := range path {
		node.Stats.add(leafValue)
	}
}

// evaluate returns n's leaf value: a random playout to terminal (or a
// ply cap of 4*size^2) if UseRollout, otherwise the direct heuristic
// value of n's state.
func (n *Node) evaluate(rng randSource, opts SimulateOptions) float64 {
	if !opts.UseRollout {
		return n.State.HeuristicValue()
	}
	plyCap := 4 * n.State.Size * n.State.Size
	return rollout(n.State, rng, plyCap)
}
