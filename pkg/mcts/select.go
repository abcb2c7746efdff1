package mcts

import "math"

// selectionScore computes the UCB1 or PUCT score of child from parent's
// side-to-move perspective.
//
// q_i is child's average value negated for a villain-to-move parent
// (value_sum is always stored hero-positive). Unvisited children take
// q_i from their cached heuristic value if evaluated, else 0 - except
// that an unvisited child of a never-visited parent (N=0) always scores
// +Inf under UCB1, forcing the first descent to pick the lowest-index
// child rather than divide by zero.
func selectionScore(parent, child *Node, c float64, usePuct, useProbs bool) float64 {
	N := parent.Stats.N()
	n := child.Stats.N()

	var q float64
	if n > 0 {
		q = child.Stats.AvgQ() * sideSign(parent.State.ToMove)
	} else if child.Evaluated {
		q = child.CachedValue * sideSign(parent.State.ToMove)
	}

	if n == 0 && N == 0 && !usePuct {
		return math.Inf(1)
	}

	if usePuct {
		p := child.Prior
		if !useProbs {
			p = 1.0 / float64(len(parent.Children))
		}
		return q + c*p*math.Sqrt(float64(N))/(1+float64(n))
	}

	return q + c*math.Sqrt(math.Log(math.Max(1, float64(N)))/math.Max(1, float64(n)))
}

// selectChild returns the child maximising selectionScore, ties broken
// by lowest child index (strict '>' comparison, matching the teacher's
// UCB1.Select).
func (n *Node) selectChild(c float64, usePuct, useProbs bool) *Node {
	best := n.Children[0]
	bestScore := selectionScore(n, best, c, usePuct, useProbs)
	for _, child := range n.Children[1:] {
		score := selectionScore(n, child, c, usePuct, useProbs)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}
