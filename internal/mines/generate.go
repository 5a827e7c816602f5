package mines

import (
	"log/slog"
	"math/rand/v2"
)

// plantMines marks exactly mineCount distinct cells as mines, sampling
// coordinates without replacement.
func plantMines(cells []cell, mineCount int, r *rand.Rand) {
	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, len(cells))
	for i := range candidates {
		candidates[i] = i
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		cells[candidates[i]].value = mineValue()
		k--
		candidates[i] = candidates[k]
	}
}

// countNeighbors derives the number of every non-mine cell. Runs once,
// before the board is handed out.
func (b *Board) countNeighbors() {
	for row := range b.height {
		for col := range b.width {
			c := b.at(Pt(row, col))
			if c.isMine() {
				continue
			}
			n := 0
			for nb := range b.Neighbors(Pt(row, col)) {
				if b.at(nb).isMine() {
					n++
				}
			}
			c.value = numberValue(n)
		}
	}
	b.logger.Debug(
		"board generated",
		slog.Int("width", b.width),
		slog.Int("height", b.height),
		slog.Int("mines", b.mineCount),
	)
}
