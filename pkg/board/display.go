package board

import (
	"strconv"
	"strings"
)

// Display renders a human-readable grid: token cells as 'h'/'v', wall
// segments as '|' and '-', with the side to move and remaining wall
// counts in a trailer line. Not part of any wire contract. When flip is
// true, rows are printed in reverse (row 0 at the top), so villain's
// start side appears at the bottom of the output whichever side is to
// move.
func (b Board) Display(flip bool) string {
	var sb strings.Builder

	rows := make([]int, b.Size)
	for i := range rows {
		if flip {
			rows[i] = i
		} else {
			rows[i] = b.Size - 1 - i
		}
	}

	for _, y := range rows {
		sb.WriteString(strconv.Itoa(y))
		sb.WriteByte(' ')
		for x := 0; x < b.Size; x++ {
			cell := Cell{X: x, Y: y}
			switch {
			case cell == b.HeroPos:
				sb.WriteByte('h')
			case cell == b.VillainPos:
				sb.WriteByte('v')
			default:
				sb.WriteByte('.')
			}
			if x < b.Size-1 {
				if b.verticalWallBetween(x, y) {
					sb.WriteByte('|')
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteByte('\n')
		if y != rows[len(rows)-1] {
			sb.WriteByte(' ')
			sb.WriteByte(' ')
			for x := 0; x < b.Size; x++ {
				below := y - 1
				if flip {
					below = y + 1
				}
				if below >= 0 && below < b.Size && b.horizontalWallBetween(x, y, below) {
					sb.WriteByte('-')
				} else {
					sb.WriteByte(' ')
				}
				if x < b.Size-1 {
					sb.WriteByte(' ')
				}
			}
			sb.WriteByte('\n')
		}
	}

	sb.WriteString(b.ToMove.String())
	sb.WriteString(" to move, walls remaining hero=")
	sb.WriteString(strconv.Itoa(b.WallsRemaining[Hero]))
	sb.WriteString(" villain=")
	sb.WriteString(strconv.Itoa(b.WallsRemaining[Villain]))
	sb.WriteByte('\n')

	return sb.String()
}

func (b Board) verticalWallBetween(x, y int) bool {
	return b.edgeBlocked(Cell{X: x, Y: y}, Cell{X: x + 1, Y: y})
}

func (b Board) horizontalWallBetween(x, yA, yB int) bool {
	return b.edgeBlocked(Cell{X: x, Y: yA}, Cell{X: x, Y: yB})
}
