package controller

// StatsListener attaches optional callbacks observing worker progress,
// mirroring the teacher's StatsListener (pkg/mcts/stats_listener.go) so
// a future network-service layer can watch search progress without
// polling GetVisitCount in a tight loop. This is additive: EnsureSims's
// documented polling behavior is unchanged and remains the primary
// supported path.
type StatsListener struct {
	onSimulation    func(ControllerStats)
	onTargetDrained func(ControllerStats)
}

// OnSimulation attaches a callback invoked after every single
// simulation pass, while the controller's mutex is still held. This
// will noticeably slow the worker down (it runs once per pass, not once
// per batch); use it for debugging, not production telemetry.
func (l *StatsListener) OnSimulation(f func(ControllerStats)) *StatsListener {
	l.onSimulation = f
	return l
}

// OnTargetDrained attaches a callback invoked whenever the worker's
// own decrement brings target_simulations to zero (an EnsureSims
// request has fully drained). It is not invoked when EnsureSims's
// watchdog forces the counter to zero.
func (l *StatsListener) OnTargetDrained(f func(ControllerStats)) *StatsListener {
	l.onTargetDrained = f
	return l
}
