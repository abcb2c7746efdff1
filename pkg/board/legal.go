package board

// LegalAction pairs a rendered action string with the board that
// results from applying it.
type LegalAction struct {
	Action string
	Next   Board
}

type candidate struct {
	Action Action
	Next   Board
}

// candidates enumerates every legal action in canonical (unflipped)
// order: token moves before walls, per the ordering rules in
// legalTokenActions and legalWallActions.
func (b Board) candidates() []candidate {
	mover := b.ToMove
	out := make([]candidate, 0, 8)

	for _, a := range b.legalTokenActions() {
		next := b.Clone()
		if mover == Hero {
			next.HeroPos = a.Cell
		} else {
			next.VillainPos = a.Cell
		}
		next.ToMove = mover.Opponent()
		next.LastAction = a.String()
		out = append(out, candidate{Action: a, Next: next})
	}

	for _, a := range b.legalWallActions() {
		next := b.Clone()
		next.Walls = append(next.Walls, Wall{X: a.Cell.X, Y: a.Cell.Y, Orientation: a.Orientation})
		next.WallsRemaining[mover]--
		next.ToMove = mover.Opponent()
		next.LastAction = a.String()
		out = append(out, candidate{Action: a, Next: next})
	}

	return out
}

// LegalActions returns every legal successor of b, in the stable order
// defined by §4.1: token moves before walls, token moves in fixed
// direction order, walls by orientation then (row, col) ascending. When
// flip is true, action strings are rendered mirrored across the board
// center; the successor boards themselves are never mirrored.
func (b Board) LegalActions(flip bool) []LegalAction {
	cands := b.candidates()
	out := make([]LegalAction, len(cands))
	for i, c := range cands {
		a := c.Action
		if flip {
			a = a.Flip(b.Size)
		}
		out[i] = LegalAction{Action: a.String(), Next: c.Next}
	}
	return out
}

// Apply returns the successor board reached by actionStr, or an
// IllegalMoveError if actionStr does not name a legal action in b.
// actionStr is always interpreted in absolute (unflipped) coordinates;
// callers presenting a flipped action string must unflip it first with
// Action.Flip before calling Apply.
func (b Board) Apply(actionStr string) (Board, error) {
	a, err := ParseAction(actionStr)
	if err != nil {
		return Board{}, err
	}

	for _, c := range b.candidates() {
		if c.Action == a {
			return c.Next, nil
		}
	}
	return Board{}, NewIllegalMoveError(actionStr, ReasonNotLegal)
}
