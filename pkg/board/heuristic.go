package board

// HeuristicValue returns the signed difference of shortest-path
// distances from each token to its goal, normalised by 2*(size-1) and
// clamped to [-1, +1]. Positive values favour hero.
func (b Board) HeuristicValue() float64 {
	heroDist := float64(b.shortestPathLen(Hero))
	villainDist := float64(b.shortestPathLen(Villain))

	norm := float64(2 * (b.Size - 1))
	v := (villainDist - heroDist) / norm

	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
