// Package controller wraps a search tree with a background worker that
// drains a target-simulation counter, plus a foreground API for
// display, querying, committing moves, and bounding search between
// decisions (spec.md §4.3).
package controller

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jrcoleman/quoridor-mcts/pkg/board"
	"github.com/jrcoleman/quoridor-mcts/pkg/mcts"
)

// Controller owns one tree root and one background worker goroutine,
// mediating every access to the tree behind a single coarse mutex, with
// the target-simulation counter and the stop flag kept as atomics
// (spec.md §5, §9 "shared mutable tree under one lock").
type Controller struct {
	cfg    Config
	logger *logrus.Logger

	mu   sync.Mutex
	cond *sync.Cond
	root *mcts.Node
	rng  *rand.Rand

	target atomic.Int64
	stop   atomic.Bool
	wg     sync.WaitGroup

	ctxMu sync.Mutex
	ctx   context.Context

	listener *StatsListener
}

// New validates cfg, builds a fresh root at initial, and starts the
// background worker. Fails with ErrConfiguration if cfg is invalid
// (most commonly sim_increment == 0).
func New(initial board.Board, cfg Config, opts ...Option) (*Controller, error) {
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	c := &Controller{
		cfg:    cfg,
		logger: logger,
		root:   mcts.NewNode(initial),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		ctx:    context.Background(),
	}
	c.cond = sync.NewCond(&c.mu)

	c.wg.Add(1)
	go c.worker()

	return c, nil
}

// Close sets the stop flag, wakes the worker, and joins it. After Close
// returns, the tree is released; the Controller must not be used again.
func (c *Controller) Close() {
	c.stop.Store(true)
	c.mu.Lock()
	c.cond.Broadcast()
	c.mu.Unlock()
	c.wg.Wait()
}

// worker is the dedicated background thread of spec.md §4.3's worker
// loop: it waits for target_simulations to go non-zero, then drains a
// bounded batch of it at a time, yielding the mutex between passes so
// foreground operations can interleave.
func (c *Controller) worker() {
	defer c.wg.Done()
	for {
		c.mu.Lock()
		for !c.stop.Load() && c.target.Load() == 0 {
			c.cond.Wait()
		}
		if c.stop.Load() {
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()

		batch := int64(c.cfg.SimIncrement)
		if t := c.target.Load(); t < batch {
			batch = t
		}
		for i := int64(0); i < batch && !c.stop.Load() && c.target.Load() > 0; i++ {
			c.runSimulation()
			if c.target.Add(-1) == 0 {
				c.notifyDrained()
			}
		}
	}
}

// runSimulation takes the lock, runs exactly one §4.2 simulate(n=1, …)
// pass, and releases it; the batch structure in worker lets foreground
// operations interleave between passes. A per-simulation failure is
// contained here (logged, not propagated) per spec.md §7/§9 — Go has no
// checked exceptions, so a panicking simulation is the equivalent
// failure mode recover() guards against.
func (c *Controller) runSimulation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			c.logger.WithFields(logrus.Fields{
				"cycle":       c.root.VisitCount(),
				"node_action": c.root.State.LastAction,
				"error":       r,
			}).Warn("controller: simulation failure contained")
		}
	}()

	c.root.Simulate(1, c.rng, c.simOptions())

	if c.listener != nil && c.listener.onSimulation != nil {
		c.listener.onSimulation(c.snapshotLocked())
	}
}

func (c *Controller) simOptions() mcts.SimulateOptions {
	return mcts.SimulateOptions{
		C:            c.cfg.C,
		UseRollout:   c.cfg.UseRollout,
		EvalChildren: c.cfg.EvalChildren,
		UsePUCT:      c.cfg.UsePUCT,
		UseProbs:     c.cfg.UseProbs,
	}
}

// raiseTarget adds n to target_simulations and notifies the worker.
// Locking around the atomic add and the Signal (rather than signalling
// bare) closes the lost-wakeup race against worker's own lock-guarded
// check-then-Wait: since both sides serialize on c.mu, a raise can never
// land in the gap between worker's predicate check and its Wait call.
func (c *Controller) raiseTarget(n int64) {
	if n <= 0 {
		return
	}
	c.mu.Lock()
	c.target.Add(n)
	c.cond.Signal()
	c.mu.Unlock()
}

func (c *Controller) notifyDrained() {
	c.mu.Lock()
	listener := c.listener
	stats := c.snapshotLocked()
	c.mu.Unlock()
	if listener != nil && listener.onTargetDrained != nil {
		listener.onTargetDrained(stats)
	}
}

func (c *Controller) callerContext() context.Context {
	c.ctxMu.Lock()
	defer c.ctxMu.Unlock()
	return c.ctx
}

// SetContext lets an external caller (e.g. a future network-service
// layer, out of scope here) cancel an in-flight EnsureSims early,
// grounded on the teacher's LimiterLike.SetContext (pkg/mcts/limiter.go).
func (c *Controller) SetContext(ctx context.Context) {
	c.ctxMu.Lock()
	defer c.ctxMu.Unlock()
	c.ctx = ctx
}

// Display renders the root position as a human-readable grid.
func (c *Controller) Display(flip bool) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.State.Display(flip)
}

// MakeMove reroots to the child reached by action, reusing accumulated
// statistics from that subtree.
func (c *Controller) MakeMove(action string, flip bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.root.MakeMove(action, flip)
	if err != nil {
		return err
	}
	c.root = next
	return nil
}

// GetLegalMoves returns the root's legal action strings, in board's
// canonical order.
func (c *Controller) GetLegalMoves(flip bool) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	legal := c.root.State.LegalActions(flip)
	out := make([]string, len(legal))
	for i, l := range legal {
		out[i] = l.Action
	}
	return out
}

// GetSortedActions returns a snapshot of the root's children, sorted by
// visit count descending. Returns nil if the root has not been expanded
// by any simulation yet.
func (c *Controller) GetSortedActions(flip bool) []mcts.ScoredAction {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.root.Expanded {
		return nil
	}
	return c.root.SortedActions(flip)
}

// GetEvaluation returns the root's hero-positive q-value, or
// ErrNotEvaluated if no simulation has touched the root yet.
func (c *Controller) GetEvaluation() (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.GetEquity()
}

// GetVisitCount returns the root's visit count.
func (c *Controller) GetVisitCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.VisitCount()
}

// IsTerminal reports whether the root position ends the game.
func (c *Controller) IsTerminal() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Terminal()
}

// GetWinner returns the side that just moved onto its goal, or ok=false
// if the root is not terminal.
func (c *Controller) GetWinner() (board.Side, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.State.Winner()
}

// ChooseBestAction picks an action from the root per cfg's
// decide_using_visits policy, with probability epsilon returning a
// uniformly random legal move instead. Fails with ErrNoLegalMoves on a
// terminal root.
func (c *Controller) ChooseBestAction(epsilon float64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	child, err := c.root.ChooseBestAction(c.rng, epsilon, c.cfg.bestChildPolicy())
	if err != nil {
		return "", err
	}
	return child.State.LastAction, nil
}

// ResetToInitialState discards the current tree and starts a fresh root
// at initial.
func (c *Controller) ResetToInitialState(initial board.Board) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.root = mcts.NewNode(initial)
}

// EnsureSims synchronously guarantees root visit_count >= n before
// returning. It raises target_simulations by n-current, wakes the
// worker, then polls under a watchdog timeout; on timeout it forces the
// counter to zero and returns with whatever visits were achieved
// (best-effort, per spec.md §9 Open Question b).
func (c *Controller) EnsureSims(n int) {
	if n <= 0 {
		return
	}

	c.mu.Lock()
	current := c.root.VisitCount()
	c.mu.Unlock()
	if current >= n {
		return
	}
	c.raiseTarget(int64(n - current))

	wd := newWatchdog(c.cfg.WatchdogTimeout)
	ctx, cancel := wd.context(c.callerContext())
	defer cancel()

	ticker := time.NewTicker(2 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.target.Store(0)
			c.logger.Warn("controller: ensure_sims watchdog timeout, forcing target to zero")
			return
		case <-ticker.C:
			c.mu.Lock()
			visits := c.root.VisitCount()
			c.mu.Unlock()
			if visits >= n || c.target.Load() == 0 {
				return
			}
		}
	}
}

// SetStateAndMakeBestMove replaces the tree with a fresh root at b, runs
// MinSimulations simulations synchronously, rerolls to the chosen child
// (epsilon=0), and returns the chosen action string. Fails with
// ErrNoLegalMoves when b is terminal.
func (c *Controller) SetStateAndMakeBestMove(b board.Board, flip bool) (string, error) {
	c.mu.Lock()
	c.root = mcts.NewNode(b)
	size := b.Size
	c.mu.Unlock()

	c.EnsureSims(c.cfg.MinSimulations)

	c.mu.Lock()
	defer c.mu.Unlock()
	child, err := c.root.ChooseBestAction(c.rng, 0, c.cfg.bestChildPolicy())
	if err != nil {
		return "", err
	}

	action := child.State.LastAction
	if flip {
		if parsed, perr := board.ParseAction(action); perr == nil {
			action = parsed.Flip(size).String()
		}
	}
	c.root = child
	return action, nil
}

// ControllerStats is a read-only snapshot of search progress: tree size
// and depth, grounded on the teacher's TreeStats/MCTS.Cps/MCTS.MaxDepth.
type ControllerStats struct {
	Cycles      int
	MaxDepth    int
	MemoryUsage uint64
}

// Stats returns a snapshot of the current tree's size and depth.
func (c *Controller) Stats() ControllerStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() ControllerStats {
	return ControllerStats{
		Cycles:      c.root.VisitCount(),
		MaxDepth:    treeDepth(c.root),
		MemoryUsage: c.root.MemoryUsage(),
	}
}

func treeDepth(n *mcts.Node) int {
	if len(n.Children) == 0 {
		return 0
	}
	best := 0
	for _, child := range n.Children {
		if d := treeDepth(child); d > best {
			best = d
		}
	}
	return best + 1
}

// SetStatsListener attaches l, replacing any previously attached
// listener. Pass nil to detach.
func (c *Controller) SetStatsListener(l *StatsListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = l
}
