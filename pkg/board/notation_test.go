package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionRoundTrip(t *testing.T) {
	cases := []string{"*(0,0)", "*(4,8)", "H(0,0)", "H(7,7)", "V(3,2)"}
	for _, s := range cases {
		a, err := ParseAction(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, a.String(), "round trip through Action.String")
	}
}

func TestParseActionKinds(t *testing.T) {
	move, err := ParseAction("*(4,1)")
	require.NoError(t, err)
	assert.Equal(t, MoveAction, move.Kind)
	assert.Equal(t, Cell{X: 4, Y: 1}, move.Cell)

	h, err := ParseAction("H(2,3)")
	require.NoError(t, err)
	assert.Equal(t, WallAction, h.Kind)
	assert.Equal(t, Horizontal, h.Orientation)

	v, err := ParseAction("V(2,3)")
	require.NoError(t, err)
	assert.Equal(t, WallAction, v.Kind)
	assert.Equal(t, Vertical, v.Orientation)
}

func TestParseActionRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"*",
		"*()",
		"*(1)",
		"*(1,2",
		"(1,2)",
		"X(1,2)",
		"*(-1,2)",
		"*(1,-2)",
		"*(a,b)",
		"*(1,2,3)",
	}
	for _, s := range bad {
		_, err := ParseAction(s)
		require.Error(t, err, s)
		var illegal *IllegalMoveError
		require.ErrorAs(t, err, &illegal, s)
		assert.Equal(t, ReasonBadSyntax, illegal.Reason, s)
	}
}

func TestMustParseActionPanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() { MustParseAction("nope") })
}
