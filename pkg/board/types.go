// Package board implements the Quoridor-family board position: token and
// wall placement, legality, terminal detection, and the action-string
// wire encoding used by the search tree in pkg/mcts.
package board

import "fmt"

// Side identifies one of the two players. Hero moves first by convention
// and aims for the far row from its starting row; villain aims for the
// opposite row.
type Side uint8

const (
	Hero Side = iota
	Villain
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Hero {
		return Villain
	}
	return Hero
}

func (s Side) String() string {
	if s == Hero {
		return "hero"
	}
	return "villain"
}

// Orientation is the axis a wall blocks movement along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "H"
	}
	return "V"
}

// Cell is an absolute grid coordinate, column then row.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Flip mirrors a cell coordinate across the board center.
func (c Cell) Flip(size int) Cell {
	return Cell{X: size - 1 - c.X, Y: size - 1 - c.Y}
}

// Wall is a placed wall, identified by the interior intersection it
// occupies and its orientation. A horizontal wall at (x,y) blocks the
// edges between (x,y)-(x,y+1) and (x+1,y)-(x+1,y+1); a vertical wall at
// (x,y) blocks (x,y)-(x+1,y) and (x,y+1)-(x+1,y+1).
type Wall struct {
	X, Y        int
	Orientation Orientation
}

// Flip mirrors a wall's intersection across the board center. Walls sit
// on intersections 0..size-2, so the mirror axis is size-2, not size-1.
func (w Wall) Flip(size int) Wall {
	return Wall{X: size - 2 - w.X, Y: size - 2 - w.Y, Orientation: w.Orientation}
}

func (w Wall) blocks(a, c Cell) bool {
	pair := func(p, q Cell) bool {
		return (a == p && c == q) || (a == q && c == p)
	}
	switch w.Orientation {
	case Horizontal:
		return pair(Cell{w.X, w.Y}, Cell{w.X, w.Y + 1}) ||
			pair(Cell{w.X + 1, w.Y}, Cell{w.X + 1, w.Y + 1})
	default:
		return pair(Cell{w.X, w.Y}, Cell{w.X + 1, w.Y}) ||
			pair(Cell{w.X, w.Y + 1}, Cell{w.X + 1, w.Y + 1})
	}
}

// ActionKind distinguishes a token move from a wall placement.
type ActionKind uint8

const (
	MoveAction ActionKind = iota
	WallAction
)

// Action is the parsed form of an action string: `*(x,y)` for a token
// move to the named cell, or `H(x,y)`/`V(x,y)` for a wall placed at the
// named interior intersection.
type Action struct {
	Kind        ActionKind
	Cell        Cell
	Orientation Orientation
}

func (a Action) String() string {
	if a.Kind == MoveAction {
		return fmt.Sprintf("*(%d,%d)", a.Cell.X, a.Cell.Y)
	}
	return fmt.Sprintf("%s(%d,%d)", a.Orientation, a.Cell.X, a.Cell.Y)
}

// Flip mirrors the action's coordinates across the board center, for
// presenting a position from "my side at bottom" viewpoint. It never
// alters stored state; it is a pure transform on the encoded string.
func (a Action) Flip(size int) Action {
	if a.Kind == MoveAction {
		return Action{Kind: MoveAction, Cell: a.Cell.Flip(size)}
	}
	w := Wall{X: a.Cell.X, Y: a.Cell.Y, Orientation: a.Orientation}.Flip(size)
	return Action{Kind: WallAction, Cell: Cell{X: w.X, Y: w.Y}, Orientation: w.Orientation}
}
