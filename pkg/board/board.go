package board

import "hash/maphash"

// DefaultWallsPerSide returns the starting wall allotment for a board of
// the given size. Standard 9x9 Quoridor gives each side 10 walls; we
// generalise that as size+1, which reproduces the standard count and
// scales sensibly for the smaller boards used in tests.
func DefaultWallsPerSide(size int) int {
	return size + 1
}

// Board is the immutable-by-convention game position: grid size, side to
// move, token cells, remaining wall counts, and the set of placed walls.
// Every mutator returns a new Board; nothing aliases another Board's
// Walls slice after Clone.
type Board struct {
	Size           int
	ToMove         Side
	HeroPos        Cell
	VillainPos     Cell
	WallsRemaining [2]int
	Walls          []Wall
	LastAction     string
}

// New builds the starting position for a board of the given odd size
// (>= 3). Hero starts at the center of row 0 and moves toward row
// size-1; villain starts at the center of row size-1 and moves toward
// row 0.
func New(size int) Board {
	mid := size / 2
	return Board{
		Size:           size,
		ToMove:         Hero,
		HeroPos:        Cell{X: mid, Y: 0},
		VillainPos:     Cell{X: mid, Y: size - 1},
		WallsRemaining: [2]int{DefaultWallsPerSide(size), DefaultWallsPerSide(size)},
	}
}

// Clone returns a deep copy; the returned Board shares no mutable state
// (the Walls slice backing array) with the receiver.
func (b Board) Clone() Board {
	nb := b
	if len(b.Walls) > 0 {
		nb.Walls = make([]Wall, len(b.Walls))
		copy(nb.Walls, b.Walls)
	}
	return nb
}

func (b Board) posOf(s Side) Cell {
	if s == Hero {
		return b.HeroPos
	}
	return b.VillainPos
}

func (b Board) goalRow(s Side) int {
	if s == Hero {
		return b.Size - 1
	}
	return 0
}

func (b Board) inGrid(c Cell) bool {
	return c.X >= 0 && c.X < b.Size && c.Y >= 0 && c.Y < b.Size
}

func (b Board) edgeBlocked(a, c Cell) bool {
	for _, w := range b.Walls {
		if w.blocks(a, c) {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the side that just moved stands on its
// goal row.
func (b Board) IsTerminal() bool {
	mover := b.ToMove.Opponent()
	return b.posOf(mover).Y == b.goalRow(mover)
}

// Winner returns the side that just moved onto its goal row. The second
// return value is false when the position is not terminal.
func (b Board) Winner() (Side, bool) {
	if !b.IsTerminal() {
		return 0, false
	}
	return b.ToMove.Opponent(), true
}

// Hash is a stable, order-independent digest of the position for
// diagnostics, never used for correctness. Nothing in this repository
// calls it.
func (b Board) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)

	writeInt := func(v int) {
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(v)
			v >>= 8
		}
		_, _ = h.Write(buf[:])
	}

	writeInt(b.Size)
	writeInt(int(b.ToMove))
	writeInt(b.HeroPos.X)
	writeInt(b.HeroPos.Y)
	writeInt(b.VillainPos.X)
	writeInt(b.VillainPos.Y)
	writeInt(b.WallsRemaining[Hero])
	writeInt(b.WallsRemaining[Villain])
	for _, w := range sortedWalls(b.Walls) {
		writeInt(w.X)
		writeInt(w.Y)
		writeInt(int(w.Orientation))
	}
	return h.Sum64()
}

var hashSeed = maphash.MakeSeed()

func sortedWalls(walls []Wall) []Wall {
	out := make([]Wall, len(walls))
	copy(out, walls)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && wallLess(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func wallLess(a, b Wall) bool {
	if a.Orientation != b.Orientation {
		return a.Orientation < b.Orientation
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
