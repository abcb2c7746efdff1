package bench

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/jrcoleman/quoridor-mcts/pkg/board"
	"github.com/jrcoleman/quoridor-mcts/pkg/controller"
)

// VersusArena plays a series of games between two controller
// configurations, split across worker goroutines. Grounded on the
// teacher's generic VersusArena[T, P, S1, R1, S2, R2]
// (pkg/bench/versus_arena.go), retargeted at board.Board and
// controller.Controller directly: there is no PositionLike/ExtMCTS
// abstraction layer because this arena only ever plays one game.
type VersusArena struct {
	VersusArenaStats
	Player1Config controller.Config
	Player2Config controller.Config
	BoardSize     int
	NGames        uint
	NThreads      uint
	p1name        string
	p2name        string
	wg            sync.WaitGroup
	finished      atomic.Bool
	ctx           context.Context
}

// NewVersusArena builds an arena comparing p1 against p2 on a board of
// the given size.
func NewVersusArena(boardSize int, p1, p2 controller.Config) *VersusArena {
	return &VersusArena{
		Player1Config: p1,
		Player2Config: p2,
		BoardSize:     boardSize,
		NGames:        100,
		NThreads:      2,
		ctx:           context.Background(),
	}
}

// WithContext attaches ctx; cancelling it stops the arena after the
// games currently in flight finish their move in progress.
func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

// Setup configures the total game count and worker fan-out.
func (va *VersusArena) Setup(nGames, nThreads uint) {
	va.NGames = nGames
	va.NThreads = nThreads
}

// Wait blocks until every worker, and the worker-0 summary pass, finish.
func (va *VersusArena) Wait() {
	va.wg.Wait()
	for !va.finished.Load() {
		runtime.Gosched()
	}
}

// Start launches NThreads worker goroutines, distributing NGames as
// evenly as the remainder allows.
func (va *VersusArena) Start(p1name, p2name string, listener ListenerLike) {
	va.finished.Store(false)
	listener.OnStart()

	nGames := va.NGames / va.NThreads
	rest := uint(0)
	if va.NThreads > 1 {
		rest = va.NGames % va.NThreads
	}
	va.p1name = p1name
	va.p2name = p2name
	va.wg.Add(int(va.NThreads))

	for i := uint(0); i < va.NThreads; i++ {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}
		l := listener.Clone()
		l.SetRow(int(i))
		go va.worker(int(i), int(nGames+delta), l)
	}
}

// Results returns the arena's current aggregate counts.
func (va *VersusArena) Results() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		Draws:            va.Draws(),
		Workers:          int(va.NThreads),
		P1Name:           va.p1name,
		P2Name:           va.p2name,
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
	}
}

func (va *VersusArena) worker(id, nGames int, listener ListenerLike) {
	rng := rand.New(rand.NewSource(int64(id)<<32 ^ rand.Int63()))
	localStats := VersusArenaStats{}

	listener.OnGameStart()

WorkLoop:
	for gameIdx := 0; gameIdx < nGames; gameIdx++ {
		p1GoesFirst := rng.Int()%2 == 0

		var (
			moves     []string
			outcome   GameOutcome
			completed bool
		)
		if p1GoesFirst {
			moves, outcome, completed = va.playGame(va.ctx, va.Player1Config, va.Player2Config, p1GoesFirst, rng)
		} else {
			moves, outcome, completed = va.playGame(va.ctx, va.Player2Config, va.Player1Config, p1GoesFirst, rng)
		}

		if !completed {
			listener.OnFinishedGame(buildWorkerInfo(
				id, gameIdx+1, nGames, moves, &localStats, va.p1name, va.p2name))
			break WorkLoop
		}

		agentResult := toAgentResult(outcome, p1GoesFirst)
		va.recordResult(agentResult, outcome.FirstPlayerWon, &localStats)

		listener.OnFinishedGame(buildWorkerInfo(
			id, gameIdx+1, nGames, moves, &localStats, va.p1name, va.p2name))
	}

	va.wg.Done()
	listener.OnFinishedWork(buildWorkerInfo(id, nGames, va.Total(), nil, &localStats, va.p1name, va.p2name))

	if id == 0 {
		va.wg.Wait()
		listener.Summary(va.Results())
		listener.OnEnd()
		va.finished.Store(true)
	}
}

// recordResult updates both the arena-wide and the worker-local stats.
func (va *VersusArena) recordResult(agentResult VersusMatchResult, firstPlayerWon bool, localStats *VersusArenaStats) {
	switch agentResult {
	case VersusPl1Win:
		atomic.AddUint32(&va.p1Wins, 1)
		localStats.p1Wins++
	case VersusPl2Win:
		atomic.AddUint32(&va.p2Wins, 1)
		localStats.p2Wins++
	case VersusDraw:
		atomic.AddUint32(&va.draws, 1)
		localStats.draws++
	}

	if agentResult != VersusDraw {
		if firstPlayerWon {
			atomic.AddUint32(&va.firstToMoveWins, 1)
			localStats.firstToMoveWins++
		} else {
			atomic.AddUint32(&va.secondToMoveWins, 1)
			localStats.secondToMoveWins++
		}
	}
}

// playGame plays one game between firstCfg (hero, moves first) and
// secondCfg (villain), each driven by its own Controller. completed is
// false when ctx was cancelled before the game reached a terminal
// position; the caller must then discard the game rather than record a
// result, mirroring the teacher's ctx.Done() early-return in
// playGameAndNotify, which skips recordResult on cancellation.
func (va *VersusArena) playGame(
	ctx context.Context,
	firstCfg, secondCfg controller.Config,
	p1GoesFirst bool,
	rng *rand.Rand,
) (moves []string, outcome GameOutcome, completed bool) {
	firstCfg.Seed = rng.Int63()
	secondCfg.Seed = rng.Int63()

	heroCtrl, err := controller.New(board.New(va.BoardSize), firstCfg)
	if err != nil {
		return nil, GameOutcome{}, false
	}
	defer heroCtrl.Close()

	villainCtrl, err := controller.New(board.New(va.BoardSize), secondCfg)
	if err != nil {
		return nil, GameOutcome{}, false
	}
	defer villainCtrl.Close()

	cur := board.New(va.BoardSize)
	moves = make([]string, 0, 4*va.BoardSize*va.BoardSize)

	for !cur.IsTerminal() {
		select {
		case <-ctx.Done():
			return moves, GameOutcome{}, false
		default:
		}

		var (
			action string
			merr   error
		)
		if cur.ToMove == board.Hero {
			action, merr = heroCtrl.SetStateAndMakeBestMove(cur, false)
		} else {
			action, merr = villainCtrl.SetStateAndMakeBestMove(cur, false)
		}
		if merr != nil {
			return moves, GameOutcome{}, false
		}

		next, aerr := cur.Apply(action)
		if aerr != nil {
			return moves, GameOutcome{}, false
		}
		cur = next
		moves = append(moves, action)
	}

	winner, _ := cur.Winner()
	heroWon := winner == board.Hero
	return moves, GameOutcome{FirstPlayerWon: heroWon}, true
}

func buildWorkerInfo(
	workerID, gameIdx, totalGames int,
	moves []string,
	localStats *VersusArenaStats,
	p1Name, p2Name string,
) VersusWorkerInfo {
	return VersusWorkerInfo{
		WorkerID:         workerID,
		Moves:            moves,
		NGames:           totalGames,
		FinishedGames:    gameIdx,
		P1Wins:           int(localStats.p1Wins),
		P2Wins:           int(localStats.p2Wins),
		Draws:            int(localStats.draws),
		FirstToMoveWins:  int(localStats.firstToMoveWins),
		SecondToMoveWins: int(localStats.secondToMoveWins),
		P1Name:           p1Name,
		P2Name:           p2Name,
	}
}
