package board

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// inInterior reports whether (x,y) names a valid wall intersection.
func (b Board) inInterior(x, y int) bool {
	return x >= 0 && x <= b.Size-2 && y >= 0 && y <= b.Size-2
}

// wallConflicts implements the standard two-segment non-overlap rule:
// a same-orientation wall conflicts if it overlaps an adjacent
// intersection along its axis, and a perpendicular wall conflicts if it
// shares the same intersection (the walls would cross).
func (b Board) wallConflicts(w Wall) bool {
	for _, e := range b.Walls {
		if e.Orientation == w.Orientation {
			if e.Orientation == Horizontal {
				if e.Y == w.Y && absInt(e.X-w.X) <= 1 {
					return true
				}
			} else {
				if e.X == w.X && absInt(e.Y-w.Y) <= 1 {
					return true
				}
			}
		} else if e.X == w.X && e.Y == w.Y {
			return true
		}
	}
	return false
}

// withWallPlaced returns a copy of b with w appended to its wall set,
// for legality probing only (does not touch WallsRemaining or ToMove).
func (b Board) withWallPlaced(w Wall) Board {
	nb := b.Clone()
	nb.Walls = append(nb.Walls, w)
	return nb
}

// legalWallActions enumerates the mover's wall-placement actions,
// ordered horizontal before vertical, then by (row, col) ascending.
func (b Board) legalWallActions() []Action {
	mover := b.ToMove
	if b.WallsRemaining[mover] <= 0 {
		return nil
	}

	var actions []Action
	for _, orientation := range [2]Orientation{Horizontal, Vertical} {
		for y := 0; y <= b.Size-2; y++ {
			for x := 0; x <= b.Size-2; x++ {
				w := Wall{X: x, Y: y, Orientation: orientation}
				if b.wallConflicts(w) {
					continue
				}
				probe := b.withWallPlaced(w)
				if !probe.pathExists(Hero) || !probe.pathExists(Villain) {
					continue
				}
				actions = append(actions, Action{Kind: WallAction, Cell: Cell{X: x, Y: y}, Orientation: orientation})
			}
		}
	}
	return actions
}
