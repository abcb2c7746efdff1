package bench

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrcoleman/quoridor-mcts/pkg/controller"
)

func tinyConfig(seed int64) controller.Config {
	return controller.DefaultConfig(
		controller.WithSeed(seed),
		controller.WithMinSimulations(4),
		controller.WithMaxSimulations(16),
		controller.WithSimIncrement(4),
		controller.WithRollout(false),
	)
}

func TestVersusArenaPlaysFullCycleAndReportsSummary(t *testing.T) {
	arena := NewVersusArena(5, tinyConfig(1), tinyConfig(2))
	arena.Setup(4, 2)

	listener := NewArenaListener(2).Listener(0)
	arena.Start("alpha", "beta", listener)
	arena.Wait()

	results := arena.Results()
	assert.Equal(t, 4, results.TotalGames)
	assert.Equal(t, results.P1Wins+results.P2Wins+results.Draws, results.TotalGames)
	assert.Equal(t, 0, results.Draws, "quoridor has no draws")
	assert.Equal(t, "alpha", results.P1Name)
	assert.Equal(t, "beta", results.P2Name)
}

func TestPlayGameProducesDecisiveOutcome(t *testing.T) {
	arena := NewVersusArena(5, tinyConfig(3), tinyConfig(4))
	rng := rand.New(rand.NewSource(7))

	moves, outcome, completed := arena.playGame(context.Background(), tinyConfig(3), tinyConfig(4), true, rng)
	require.True(t, completed)
	assert.NotEmpty(t, moves)
	assert.False(t, outcome.IsDraw)
}

func TestPlayGameRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := NewVersusArena(5, tinyConfig(5), tinyConfig(6))
	rng := rand.New(rand.NewSource(9))

	_, _, completed := arena.playGame(ctx, tinyConfig(5), tinyConfig(6), true, rng)
	assert.False(t, completed, "a cancelled game must not be reported as completed")
}

func TestToAgentResult(t *testing.T) {
	assert.Equal(t, VersusPl1Win, toAgentResult(GameOutcome{FirstPlayerWon: true}, true))
	assert.Equal(t, VersusPl2Win, toAgentResult(GameOutcome{FirstPlayerWon: false}, true))
	assert.Equal(t, VersusPl2Win, toAgentResult(GameOutcome{FirstPlayerWon: true}, false))
	assert.Equal(t, VersusDraw, toAgentResult(GameOutcome{IsDraw: true}, true))
}
