package board

// forwardDir is the direction a side advances toward its goal row.
func (b Board) forwardDir(s Side) Cell {
	if s == Hero {
		return Cell{X: 0, Y: 1}
	}
	return Cell{X: 0, Y: -1}
}

var (
	leftDir  = Cell{X: -1, Y: 0}
	rightDir = Cell{X: 1, Y: 0}
)

// legalTokenActions enumerates the mover's token-move actions in the
// fixed order: forward, forward-forward (straight jump), diagonal-left
// jump, diagonal-right jump, side-left, side-right, back. Unavailable
// directions are skipped.
func (b Board) legalTokenActions() []Action {
	mover := b.ToMove
	opp := mover.Opponent()
	from := b.posOf(mover)
	oppPos := b.posOf(opp)

	fwd := b.forwardDir(mover)
	back := Cell{X: -fwd.X, Y: -fwd.Y}

	step := func(dir Cell) (Cell, bool) {
		target := Cell{X: from.X + dir.X, Y: from.Y + dir.Y}
		if !b.inGrid(target) || b.edgeBlocked(from, target) {
			return Cell{}, false
		}
		return target, true
	}

	var actions []Action

	if target, ok := step(fwd); ok {
		if target != oppPos {
			actions = append(actions, Action{Kind: MoveAction, Cell: target})
		} else {
			landing := Cell{X: oppPos.X + fwd.X, Y: oppPos.Y + fwd.Y}
			if b.inGrid(landing) && !b.edgeBlocked(oppPos, landing) {
				actions = append(actions, Action{Kind: MoveAction, Cell: landing})
			} else {
				for _, d := range [2]Cell{leftDir, rightDir} {
					diag := Cell{X: oppPos.X + d.X, Y: oppPos.Y + d.Y}
					if b.inGrid(diag) && !b.edgeBlocked(oppPos, diag) {
						actions = append(actions, Action{Kind: MoveAction, Cell: diag})
					}
				}
			}
		}
	}

	for _, dir := range [3]Cell{leftDir, rightDir, back} {
		if target, ok := step(dir); ok && target != oppPos {
			actions = append(actions, Action{Kind: MoveAction, Cell: target})
		}
	}

	return actions
}
