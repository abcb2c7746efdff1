package bench

// ListenerStats is the snapshot handed to a ListenerLike callback.
type ListenerStats struct {
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []string
}

// ListenerLike observes one arena worker's progress. Grounded on the
// teacher's ListenerLike (pkg/bench/listener.go); Clone lets each
// worker goroutine get its own instance, the way the teacher clones a
// listener per worker in VersusArena.Start.
type ListenerLike interface {
	SetRow(row int)
	OnStart()
	OnGameStart()
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(VersusSummaryInfo)
	OnEnd()
	Clone() ListenerLike
}

// DefaultListener is a no-op ListenerLike, matching the teacher's own
// DefaultListener (every hook empty; a caller wanting terminal output
// supplies its own ListenerLike; cmd/quoridor-arena uses this no-op one).
type DefaultListener struct {
	row int
}

func (d *DefaultListener) SetRow(row int)                  { d.row = row }
func (d *DefaultListener) OnStart()                        {}
func (d *DefaultListener) OnGameStart()                    {}
func (d *DefaultListener) OnMoveMade(VersusWorkerInfo)      {}
func (d *DefaultListener) OnFinishedGame(VersusWorkerInfo)  {}
func (d *DefaultListener) OnFinishedWork(VersusWorkerInfo)  {}
func (d *DefaultListener) Summary(VersusSummaryInfo)        {}
func (d *DefaultListener) OnEnd()                           {}
func (d *DefaultListener) Clone() ListenerLike              { return &DefaultListener{row: d.row} }
