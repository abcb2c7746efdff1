package board

var orthogonal = [4]Cell{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// neighbors returns the cells orthogonally reachable from c without
// crossing a wall, ignoring token occupancy (wall-reachability only,
// used for the goal-path invariant and the heuristic distance).
func (b Board) neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range orthogonal {
		t := Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if b.inGrid(t) && !b.edgeBlocked(c, t) {
			out = append(out, t)
		}
	}
	return out
}

// pathExists reports whether side s has at least one wall-respecting
// path from its current cell to any cell on its goal row.
func (b Board) pathExists(s Side) bool {
	start := b.posOf(s)
	goalY := b.goalRow(s)
	if start.Y == goalY {
		return true
	}

	visited := map[Cell]bool{start: true}
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.neighbors(cur) {
			if visited[n] {
				continue
			}
			if n.Y == goalY {
				return true
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return false
}

// shortestPathLen returns the length, in steps, of the shortest
// wall-respecting path from side s's current cell to its goal row. If
// no path exists (which the placement invariant forbids in any position
// reachable through legal play) it returns a large sentinel distance.
func (b Board) shortestPathLen(s Side) int {
	const unreachable = 1 << 30

	start := b.posOf(s)
	goalY := b.goalRow(s)
	if start.Y == goalY {
		return 0
	}

	dist := map[Cell]int{start: 0}
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		for _, n := range b.neighbors(cur) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = d + 1
			if n.Y == goalY {
				return d + 1
			}
			queue = append(queue, n)
		}
	}
	return unreachable
}
