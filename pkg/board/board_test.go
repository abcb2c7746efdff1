package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actionStrings(legal []LegalAction) map[string]bool {
	out := make(map[string]bool, len(legal))
	for _, l := range legal {
		out[l.Action] = true
	}
	return out
}

// S1: initial legality on a 9x9 board.
func TestInitialLegality(t *testing.T) {
	b := New(9)
	legal := b.LegalActions(false)
	strs := actionStrings(legal)

	assert.True(t, strs["*(4,1)"], "hero forward move must be legal")
	assert.True(t, strs["H(0,0)"], "wall placement must be legal")
	assert.False(t, strs["*(4,8)"], "cannot move onto opponent's cell directly")
	assert.Len(t, legal, 131, "3 token moves + 128 walls")
}

func TestTerminalDetectionOnGoalRow(t *testing.T) {
	b := New(9)
	b.HeroPos = Cell{X: 4, Y: 8}
	b.ToMove = Villain

	assert.True(t, b.IsTerminal())
	winner, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, Hero, winner)
}

func TestApplyRejectsIllegalAction(t *testing.T) {
	b := New(9)
	_, err := b.Apply("*(4,8)")
	require.Error(t, err)

	var illegal *IllegalMoveError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, ReasonNotLegal, illegal.Reason)
}

func TestApplyAdvancesTurnAndState(t *testing.T) {
	b := New(9)
	next, err := b.Apply("*(4,1)")
	require.NoError(t, err)

	assert.Equal(t, Cell{X: 4, Y: 1}, next.HeroPos)
	assert.Equal(t, Villain, next.ToMove)
	assert.Equal(t, "*(4,1)", next.LastAction)
	// original board is unmutated
	assert.Equal(t, Cell{X: 4, Y: 0}, b.HeroPos)
}

// S6: a wall placement that would fence off a side's only path is rejected.
func TestWallFencingRejected(t *testing.T) {
	b := New(9)
	// Block every column edge at the row0/row1 boundary except column 8;
	// hero (starting on row 0) still has one way out, so these are legal.
	for _, w := range []string{"H(0,0)", "H(2,0)", "H(4,0)", "H(6,0)"} {
		var err error
		b, err = b.Apply(w)
		require.NoError(t, err, "setup wall %s should be legal", w)
	}

	before := b

	// Sealing the last gap (the edge between columns 7 and 8 on row 0)
	// would strand hero on row 0 forever: rejected.
	_, err := b.Apply("V(7,0)")
	require.Error(t, err)
	var illegal *IllegalMoveError
	require.ErrorAs(t, err, &illegal)

	// the failed call must leave the board state unchanged
	assert.Equal(t, before, b)
}

func TestLegalActionsDeterministicOrder(t *testing.T) {
	b := New(9)
	first := b.LegalActions(false)
	second := b.LegalActions(false)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Action, second[i].Action)
	}
}

func TestFlipTwiceIsIdentity(t *testing.T) {
	a := MustParseAction("H(2,3)")
	flipped := a.Flip(9).Flip(9)
	assert.Equal(t, a, flipped)

	move := MustParseAction("*(1,7)")
	assert.Equal(t, move, move.Flip(9).Flip(9))
}

func TestHeuristicValueRange(t *testing.T) {
	b := New(9)
	v := b.HeuristicValue()
	assert.GreaterOrEqual(t, v, -1.0)
	assert.LessOrEqual(t, v, 1.0)
	// symmetric start: both tokens equidistant from their goal
	assert.InDelta(t, 0, v, 1e-9)
}
