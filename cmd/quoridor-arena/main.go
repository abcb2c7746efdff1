// Command quoridor-arena runs two controller configurations against
// each other across many games and prints a summary. Standalone
// entrypoint for pkg/bench; the teacher has no analogous standalone
// arena main, only versus_arena_test.go exercising the same API.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/jrcoleman/quoridor-mcts/pkg/bench"
	"github.com/jrcoleman/quoridor-mcts/pkg/controller"
)

func main() {
	var (
		boardSize = flag.Int("size", 9, "board size")
		games     = flag.Uint("games", 20, "total games to play")
		threads   = flag.Uint("threads", 4, "worker goroutines")
		p1Sims    = flag.Int("p1-min-sims", 100, "player 1 min_simulations per move")
		p2Sims    = flag.Int("p2-min-sims", 100, "player 2 min_simulations per move")
		p1C       = flag.Float64("p1-c", 0.158, "player 1 exploration constant")
		p2C       = flag.Float64("p2-c", 0.158, "player 2 exploration constant")
	)
	flag.Parse()

	p1cfg := controller.DefaultConfig(
		controller.WithMinSimulations(*p1Sims),
		controller.WithExplorationConstant(*p1C),
	)
	p2cfg := controller.DefaultConfig(
		controller.WithMinSimulations(*p2Sims),
		controller.WithExplorationConstant(*p2C),
	)

	arena := bench.NewVersusArena(*boardSize, p1cfg, p2cfg)
	arena.Setup(*games, *threads)

	listener := bench.NewArenaListener(int(*threads)).Listener(0)
	start := time.Now()
	arena.Start("p1", "p2", listener)
	arena.Wait()

	elapsed := time.Since(start)
	results := arena.Results()
	fmt.Printf("played %d games across %d workers in %s\n", results.TotalGames, results.Workers, elapsed)
	fmt.Printf("p1 (%s): %d wins\n", results.P1Name, results.P1Wins)
	fmt.Printf("p2 (%s): %d wins\n", results.P2Name, results.P2Wins)
	fmt.Printf("first-to-move wins: %d  second-to-move wins: %d\n", results.FirstToMoveWins, results.SecondToMoveWins)
}
