package mcts

import "github.com/jrcoleman/quoridor-mcts/pkg/board"

// rollout plays uniformly random legal actions from start until terminal
// or a hard ply cap, returning +1/-1 for a decisive result or the
// reached position's heuristic value if the cap is hit.
func rollout(start board.Board, rng randSource, plyCap int) float64 {
	cur := start
	for ply := 0; ply < plyCap; ply++ {
		if cur.IsTerminal() {
			return terminalValue(cur)
		}
		legal := cur.LegalActions(false)
		cur = legal[rng.Intn(len(legal))].Next
	}
	if cur.IsTerminal() {
		return terminalValue(cur)
	}
	return cur.HeuristicValue()
}

func terminalValue(b board.Board) float64 {
	winner, _ := b.Winner()
	if winner == board.Hero {
		return 1
	}
	return -1
}
