// Package mcts implements the search tree: node statistics, selection,
// expansion, leaf evaluation, and backpropagation over a board.Board.
package mcts

import (
	"unsafe"

	"github.com/jrcoleman/quoridor-mcts/pkg/board"
)

// BestChildPolicy names the criterion ChooseBestAction and PV use to
// rank children once search has run.
type BestChildPolicy uint8

const (
	// ByVisits picks the most-visited child, the standard MCTS policy.
	ByVisits BestChildPolicy = iota
	// ByValue picks the child with the best side-corrected q-value.
	ByValue
)

// NodeStats holds a node's accumulated search statistics. Unlike the
// teacher's atomic, CAS-guarded stats (built for lock-free tree-parallel
// search), these are plain fields: every mutation here happens under the
// controller's single coarse mutex, so there is nothing left for an
// atomic to protect.
type NodeStats struct {
	visits   int
	valueSum float64
}

// N returns the visit count.
func (s *NodeStats) N() int { return s.visits }

// Q returns the raw accumulated value (hero-positive).
func (s *NodeStats) Q() float64 { return s.valueSum }

// AvgQ returns the hero-positive average value, or 0 if unvisited.
func (s *NodeStats) AvgQ() float64 {
	if s.visits == 0 {
		return 0
	}
	return s.valueSum / float64(s.visits)
}

func (s *NodeStats) add(value float64) {
	s.visits++
	s.valueSum += value
}

// Node is one entity in the search tree. State is immutable once set;
// everything else is mutated only by Simulate and its helpers.
type Node struct {
	State       board.Board
	Stats       NodeStats
	Prior       float64
	Expanded    bool
	Evaluated   bool
	CachedValue float64
	Children    []*Node
}

// NewNode wraps a board position in a fresh, unexpanded, unevaluated
// node. Used for the initial root and for synthesized children in
// MakeMove.
func NewNode(state board.Board) *Node {
	return &Node{State: state}
}

// Terminal reports whether the node's state ends the game.
func (n *Node) Terminal() bool {
	return n.State.IsTerminal()
}

// VisitCount returns the node's visit count.
func (n *Node) VisitCount() int {
	return n.Stats.N()
}

// GetState returns the node's board position.
func (n *Node) GetState() board.Board {
	return n.State
}

// GetEquity returns the node's hero-positive q-value. It fails with
// ErrNotEvaluated if the node has neither visits nor a cached leaf
// value, per spec: evaluation requested before any simulation has run.
func (n *Node) GetEquity() (float64, error) {
	if n.Stats.N() > 0 {
		return n.Stats.AvgQ(), nil
	}
	if n.Evaluated {
		return n.CachedValue, nil
	}
	return 0, ErrNotEvaluated
}

func sideSign(s board.Side) float64 {
	if s == board.Hero {
		return 1
	}
	return -1
}

// childQ returns child's q-value expressed from n's side-to-move
// perspective: value_sum is always stored hero-positive, so it is
// negated here when n's mover is villain.
func (n *Node) childQ(child *Node) float64 {
	var q float64
	switch {
	case child.Stats.N() > 0:
		q = child.Stats.AvgQ()
	case child.Evaluated:
		q = child.CachedValue
	default:
		q = 0
	}
	return q * sideSign(n.State.ToMove)
}

// expand creates one child per legal action of n's state, in the
// canonical order defined by board.LegalActions, with a uniform prior.
// A terminal node is never expanded.
func (n *Node) expand() {
	legal := n.State.LegalActions(false)
	n.Children = make([]*Node, len(legal))
	var uniform float64
	if len(legal) > 0 {
		uniform = 1.0 / float64(len(legal))
	}
	for i, la := range legal {
		n.Children[i] = &Node{State: la.Next, Prior: uniform}
	}
	n.Expanded = true
}

// evaluateChildrenHeuristic assigns each unevaluated child a cached
// heuristic value without adding a visit, used when EvalChildren is set
// on the simulation options.
func (n *Node) evaluateChildrenHeuristic() {
	for _, c := range n.Children {
		if !c.Evaluated {
			c.CachedValue = c.State.HeuristicValue()
			c.Evaluated = true
		}
	}
}

// MemoryUsage approximates the subtree's byte footprint, grounded on the
// teacher's MCTS.MemoryUsage; there is no byte-size search limit in this
// engine, this is diagnostic only.
func (n *Node) MemoryUsage() uint64 {
	total := uint64(unsafe.Sizeof(*n))
	for _, c := range n.Children {
		total += c.MemoryUsage()
	}
	return total
}

// ScoredAction is one entry of GetSortedActions: a child's visit count,
// side-corrected q-value, and rendered action string.
type ScoredAction struct {
	Visits int
	Q      float64
	Action string
}

// SortedActions returns one entry per child, sorted by visit count
// descending, with q expressed from n's side-to-move perspective.
func (n *Node) SortedActions(flip bool) []ScoredAction {
	out := make([]ScoredAction, len(n.Children))
	for i, c := range n.Children {
		out[i] = ScoredAction{
			Visits: c.Stats.N(),
			Q:      n.childQ(c),
			Action: renderAction(c.State.LastAction, flip, n.State.Size),
		}
	}
	// stable insertion sort by visits descending: keeps ties in the
	// canonical child order, matching the lowest-index tie-break used
	// elsewhere in this package.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Visits > out[j-1].Visits; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func renderAction(actionStr string, flip bool, size int) string {
	if !flip {
		return actionStr
	}
	a, err := board.ParseAction(actionStr)
	if err != nil {
		return actionStr
	}
	return a.Flip(size).String()
}

// bestChildScore ranks child under policy, from n's side-to-move
// perspective.
func (n *Node) bestChildScore(child *Node, policy BestChildPolicy) float64 {
	if policy == ByVisits {
		return float64(child.Stats.N())
	}
	return n.childQ(child)
}

// ChooseBestAction picks among n's children: with probability epsilon a
// uniformly random child, otherwise the child maximising policy's
// criterion, ties broken by lowest child index. Expands n first if it
// has not been expanded yet. Fails with ErrNoLegalMoves on a terminal
// node — the side to move there may still have pseudo-legal actions,
// but the game is already over, so none of them are choosable.
func (n *Node) ChooseBestAction(rng randSource, epsilon float64, policy BestChildPolicy) (*Node, error) {
	if n.Terminal() {
		return nil, ErrNoLegalMoves
	}
	if !n.Expanded {
		n.expand()
	}
	if len(n.Children) == 0 {
		return nil, ErrNoLegalMoves
	}
	if epsilon > 0 && rng.Float64() < epsilon {
		return n.Children[rng.Intn(len(n.Children))], nil
	}

	best := n.Children[0]
	bestScore := n.bestChildScore(best, policy)
	for _, c := range n.Children[1:] {
		score := n.bestChildScore(c, policy)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best, nil
}

// PV extracts the principal variation by repeated best-child selection
// under policy, without mutating statistics or requiring an rng.
func (n *Node) PV(policy BestChildPolicy) []string {
	var pv []string
	cur := n
	for cur.Expanded && len(cur.Children) > 0 {
		best := cur.Children[0]
		bestScore := cur.bestChildScore(best, policy)
		for _, c := range cur.Children[1:] {
			score := cur.bestChildScore(c, policy)
			if score > bestScore {
				bestScore = score
				best = c
			}
		}
		pv = append(pv, best.State.LastAction)
		cur = best
	}
	return pv
}

// MakeMove finds the child whose action equals action (after an
// optional unflip), returning it as the new root candidate; the rest of
// the tree is discarded by the caller dropping its reference to n. If
// no child matches, a fresh child is synthesized directly from n's
// state, which also surfaces IllegalMove if action is not legal there.
func (n *Node) MakeMove(action string, flip bool) (*Node, error) {
	if flip {
		parsed, err := board.ParseAction(action)
		if err != nil {
			return nil, err
		}
		action = parsed.Flip(n.State.Size).String()
	}

	for _, c := range n.Children {
		if c.State.LastAction == action {
			return c, nil
		}
	}

	next, err := n.State.Apply(action)
	if err != nil {
		return nil, err
	}
	return NewNode(next), nil
}

// randSource is the subset of *rand.Rand used by this package, so tests
// can substitute a deterministic stub without importing math/rand.
type randSource interface {
	Float64() float64
	Intn(n int) int
}
