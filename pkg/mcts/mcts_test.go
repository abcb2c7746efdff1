package mcts

import (
	"math/rand"
	"testing"

	"github.com/jrcoleman/quoridor-mcts/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRootNode(size int) *Node {
	return NewNode(board.New(size))
}

// S2: a single simulation visits the root exactly once and leaves the
// node's own accumulated value equal to the leaf estimate.
func TestSimulateSingleSimulationCorrectness(t *testing.T) {
	root := newRootNode(9)
	rng := rand.New(rand.NewSource(1))
	opts := SimulateOptions{C: 0.158, UseRollout: false, UsePUCT: false}

	root.Simulate(1, rng, opts)

	assert.Equal(t, 1, root.VisitCount())
	assert.True(t, root.Expanded)
	assert.InDelta(t, root.State.HeuristicValue(), root.Stats.Q(), 1e-9)
}

func TestSimulateExpandsUniformlyOnFirstVisit(t *testing.T) {
	root := newRootNode(9)
	rng := rand.New(rand.NewSource(1))
	root.Simulate(1, rng, SimulateOptions{C: 1.0, UseRollout: false})

	require.True(t, root.Expanded)
	assert.Len(t, root.Children, 131)
}

func TestSimulateInvariantVisitCountMatchesChildSum(t *testing.T) {
	root := newRootNode(9)
	rng := rand.New(rand.NewSource(7))
	opts := SimulateOptions{C: 1.0, UseRollout: false}
	root.Simulate(50, rng, opts)

	sum := 0
	for _, c := range root.Children {
		sum += c.VisitCount()
	}
	// the pass that expands root visits root but descends into no child,
	// so root's own count runs one ahead of its children's sum.
	assert.Equal(t, root.VisitCount(), sum+1)
}

func TestSimulateInvariantValueSumBoundedByVisits(t *testing.T) {
	root := newRootNode(9)
	rng := rand.New(rand.NewSource(3))
	root.Simulate(30, rng, SimulateOptions{C: 1.0, UseRollout: true})

	var walk func(n *Node)
	walk = func(n *Node) {
		assert.LessOrEqual(t, n.Stats.Q(), float64(n.Stats.N())+1e-9)
		assert.GreaterOrEqual(t, n.Stats.Q(), -float64(n.Stats.N())-1e-9)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
}

func TestChooseBestActionEpsilonZeroIsDeterministicGivenStats(t *testing.T) {
	root := newRootNode(9)
	root.expand()
	root.Children[0].Stats.add(1)
	root.Children[0].Stats.add(1)
	root.Children[1].Stats.add(1)

	rng := rand.New(rand.NewSource(0))
	best, err := root.ChooseBestAction(rng, 0, ByVisits)
	require.NoError(t, err)
	assert.Same(t, root.Children[0], best)
}

func TestChooseBestActionOnTerminalFails(t *testing.T) {
	b := board.New(9)
	b.HeroPos = board.Cell{X: 4, Y: 8}
	b.ToMove = board.Villain
	root := NewNode(b)

	rng := rand.New(rand.NewSource(0))
	_, err := root.ChooseBestAction(rng, 0, ByVisits)
	assert.ErrorIs(t, err, ErrNoLegalMoves)
}

func TestGetEquityNotEvaluatedBeforeAnySimulation(t *testing.T) {
	root := newRootNode(9)
	_, err := root.GetEquity()
	assert.ErrorIs(t, err, ErrNotEvaluated)
}

func TestMakeMoveFindsExistingChild(t *testing.T) {
	root := newRootNode(9)
	root.expand()

	child, err := root.MakeMove("*(4,1)", false)
	require.NoError(t, err)
	assert.Equal(t, board.Cell{X: 4, Y: 1}, child.State.HeroPos)
}

func TestMakeMoveSynthesizesWhenUnexpanded(t *testing.T) {
	root := newRootNode(9)
	child, err := root.MakeMove("*(4,1)", false)
	require.NoError(t, err)
	assert.Equal(t, board.Cell{X: 4, Y: 1}, child.State.HeroPos)
}

func TestMakeMoveRejectsIllegalAction(t *testing.T) {
	root := newRootNode(9)
	_, err := root.MakeMove("*(4,8)", false)
	assert.Error(t, err)
}

func TestSortedActionsDescendingByVisits(t *testing.T) {
	root := newRootNode(9)
	root.expand()
	root.Children[2].Stats.add(1)
	root.Children[2].Stats.add(1)
	root.Children[2].Stats.add(1)
	root.Children[0].Stats.add(1)

	sorted := root.SortedActions(false)
	require.True(t, len(sorted) >= 3)
	assert.GreaterOrEqual(t, sorted[0].Visits, sorted[1].Visits)
	assert.Equal(t, 3, sorted[0].Visits)
}

func TestSelectionScoreForcesFirstDescentToLowestIndex(t *testing.T) {
	root := newRootNode(9)
	root.expand()
	child := root.selectChild(0.158, false, false)
	assert.Same(t, root.Children[0], child)
}
