// Package bench implements a headless arena that plays two controller
// configurations against each other across many games, split over
// worker goroutines, and reports win/loss/first-move-advantage counts.
// Adapted from the teacher's generic pkg/bench (versus_arena.go,
// listener.go, types.go, arena_listener.go), retargeted at this
// repository's concrete board.Board/controller.Controller types.
package bench

import "sync/atomic"

// VersusMatchResult names which configuration won a single game, from
// player 1's perspective.
type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

// VersusArenaStats accumulates outcome counts across an arena run.
// Draws is always zero for this game (Quoridor is always decisive) but
// is kept for structural parity with the teacher's VersusArenaStats.
type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int { return int(atomic.LoadUint32(&vas.p1Wins)) }
func (vas *VersusArenaStats) P2Wins() int { return int(atomic.LoadUint32(&vas.p2Wins)) }
func (vas *VersusArenaStats) Draws() int  { return int(atomic.LoadUint32(&vas.draws)) }

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

// VersusWorkerInfo is the snapshot passed to a ListenerLike after every
// move and every finished game, for one worker goroutine's local slice
// of the run.
type VersusWorkerInfo struct {
	WorkerID         int
	NGames           int
	FinishedGames    int
	Moves            []string
	P1Wins           int
	P2Wins           int
	Draws            int
	FirstToMoveWins  int
	SecondToMoveWins int
	P1Name           string
	P2Name           string
}

// VersusSummaryInfo is the arena's final aggregate report.
type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

// GameOutcome records which logical player (first or second to act in
// that particular game) won. Quoridor has no draws, so IsDraw is always
// false; kept for structural parity with the teacher's
// PositionLike.IsDraw() contract.
type GameOutcome struct {
	FirstPlayerWon bool
	IsDraw         bool
}

func toAgentResult(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	if outcome.IsDraw {
		return VersusDraw
	}
	if p1WentFirst == outcome.FirstPlayerWon {
		return VersusPl1Win
	}
	return VersusPl2Win
}
