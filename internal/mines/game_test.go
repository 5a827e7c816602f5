package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealBlankRow(t *testing.T) {
	for _, size := range [][2]int{{3, 1}, {1, 3}} {
		b, err := NewBoard(size[0], size[1], 0)
		require.NoError(t, err)

		outcome, err := b.Reveal(0, 0)
		require.NoError(t, err)
		assert.Equal(t, Continue, outcome)
		assert.Equal(t, 3, b.RevealedCount())
		assert.True(t, b.HasWon())
		assert.Equal(t, Won, b.Status())
	}
}

func TestFlagTwice(t *testing.T) {
	b, err := NewBoard(4, 4, 3, WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)

	require.NoError(t, b.Flag(2, 3))
	flagged, _ := b.HasFlag(2, 3)
	assert.True(t, flagged)
	assert.Equal(t, 1, b.FlagCount())
	assert.Equal(t, 2, b.MinesLeft())

	require.NoError(t, b.Flag(2, 3))
	flagged, _ = b.HasFlag(2, 3)
	assert.False(t, flagged)
	assert.Equal(t, 0, b.FlagCount())
	assert.Equal(t, 3, b.MinesLeft())
}

func TestFlagRevealed(t *testing.T) {
	b, err := NewBoardFromMines(3, 3, []Point{{1, 1}})
	require.NoError(t, err)

	_, err = b.Reveal(0, 0)
	require.NoError(t, err)

	err = b.Flag(0, 0)
	assert.ErrorIs(t, err, ErrCellRevealed)
	assert.ErrorIs(t, err, ErrInvalidState)
	flagged, _ := b.HasFlag(0, 0)
	assert.False(t, flagged)
	assert.Equal(t, 0, b.FlagCount())
}

func TestRevealFlagged(t *testing.T) {
	b, err := NewBoardFromMines(3, 3, []Point{{1, 1}})
	require.NoError(t, err)

	for _, p := range []Point{{0, 0}, {1, 1}} {
		require.NoError(t, b.Flag(p.Row, p.Col))

		outcome, err := b.Reveal(p.Row, p.Col)
		assert.ErrorIs(t, err, ErrCellFlagged)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, Continue, outcome)

		revealed, _ := b.IsRevealed(p.Row, p.Col)
		assert.False(t, revealed)
	}
	assert.Equal(t, InProgress, b.Status())

	require.NoError(t, b.Flag(0, 0))
	_, err = b.Reveal(0, 0)
	assert.NoError(t, err)
}

func TestRevealMine(t *testing.T) {
	b, err := NewBoardFromMines(4, 4, []Point{{0, 0}, {0, 1}, {3, 3}})
	require.NoError(t, err)

	outcome, err := b.Reveal(0, 1)
	require.NoError(t, err)
	assert.Equal(t, GameOver, outcome)
	assert.Equal(t, 1, b.RevealedCount())
	assert.Equal(t, Lost, b.Status())

	for _, p := range []Point{{0, 0}, {3, 3}} {
		revealed, _ := b.IsRevealed(p.Row, p.Col)
		assert.False(t, revealed)
	}
}

func TestRevealRevealed(t *testing.T) {
	b, err := NewBoardFromMines(5, 5, []Point{{4, 4}})
	require.NoError(t, err)

	_, err = b.Reveal(0, 0)
	require.NoError(t, err)
	before := b.RevealedCount()

	outcome, err := b.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Continue, outcome)
	assert.Equal(t, before, b.RevealedCount())
}

func TestFloodFillSkipsDiagonalBlanks(t *testing.T) {
	/*
	 * . . 1 * 1     (1,1) and (2,2) are both blank but only touch
	 * . . 1 1 1     diagonally; the numbers at (1,2) and (2,1)
	 * 1 1 . . .     separate them.
	 * * 1 . . .
	 * 1 1 . . .
	 */
	b, err := NewBoardFromMines(5, 5, []Point{{0, 3}, {3, 0}})
	require.NoError(t, err)

	_, err = b.Reveal(0, 0)
	require.NoError(t, err)

	want := map[Point]bool{
		{0, 0}: true, {0, 1}: true, {1, 0}: true, {1, 1}: true, // blank region
		{0, 2}: true, {1, 2}: true, {2, 0}: true, {2, 1}: true, // coastline
	}
	for row := range 5 {
		for col := range 5 {
			revealed, _ := b.IsRevealed(row, col)
			assert.Equal(t, want[Pt(row, col)], revealed, "(%d, %d)", row, col)
		}
	}

	blank, _ := b.IsBlank(2, 2)
	assert.True(t, blank)
}

func TestFloodFillDropsFlags(t *testing.T) {
	b, err := NewBoardFromMines(4, 1, []Point{{0, 3}})
	require.NoError(t, err)

	// . . 1 *
	require.NoError(t, b.Flag(0, 1))
	require.NoError(t, b.Flag(0, 2))
	require.NoError(t, b.Flag(0, 3))
	assert.Equal(t, 3, b.FlagCount())

	_, err = b.Reveal(0, 0)
	require.NoError(t, err)

	for col := range 3 {
		revealed, _ := b.IsRevealed(0, col)
		flagged, _ := b.HasFlag(0, col)
		assert.True(t, revealed, "col %d", col)
		assert.False(t, flagged, "col %d", col)
	}
	flagged, _ := b.HasFlag(0, 3)
	assert.True(t, flagged)
	assert.Equal(t, 1, b.FlagCount())
	assert.True(t, b.HasWon())
}

// expectedRegion computes what revealing start should uncover: the blank
// cells orthogonally connected to start plus every number touching them.
func expectedRegion(b *Board, start Point) map[Point]bool {
	region := map[Point]bool{start: true}
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			q := p.Add(d[0], d[1])
			if b.inBounds(q) && b.at(q).isBlank() && !region[q] {
				region[q] = true
				queue = append(queue, q)
			}
		}
	}
	for p := range region {
		if !b.at(p).isBlank() {
			continue
		}
		for nb := range b.Neighbors(p) {
			if b.at(nb).isNumber() {
				region[nb] = true
			}
		}
	}
	return region
}

func TestFloodFillRegion(t *testing.T) {
	t.Parallel()

	for seed := range uint64(20) {
		layout, err := Intermediate.NewBoard(WithRand(rand.New(rand.NewPCG(seed, 7))))
		require.NoError(t, err)

		for row := range layout.Height() {
			for col := range layout.Width() {
				if !layout.at(Pt(row, col)).isBlank() {
					continue
				}
				b, err := Intermediate.NewBoard(WithRand(rand.New(rand.NewPCG(seed, 7))))
				require.NoError(t, err)

				outcome, err := b.Reveal(row, col)
				require.NoError(t, err)
				require.Equal(t, Continue, outcome)

				want := expectedRegion(b, Pt(row, col))
				for i := range b.cells {
					p := Pt(i/b.width, i%b.width)
					if b.cells[i].isMine() {
						require.False(t, b.cells[i].revealed, "mine %s revealed", p)
					}
					require.Equal(t, want[p], b.cells[i].revealed,
						"seed %d start (%d, %d) cell %s", seed, row, col, p)
				}
			}
		}
	}
}

func TestHasWonMatchesRevealedCount(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for range 30 {
		b, err := Beginner.NewBoard(WithRand(r))
		require.NoError(t, err)

		safe := b.Width()*b.Height() - b.MineCount()
		for !b.HasWon() {
			p := Pt(r.IntN(b.Height()), r.IntN(b.Width()))
			c := b.at(p)
			switch {
			case c.isMine():
				if r.IntN(2) == 0 {
					require.NoError(t, b.Flag(p.Row, p.Col))
				}
				continue
			case c.flagged:
				require.NoError(t, b.Flag(p.Row, p.Col))
			case !c.revealed && r.IntN(4) == 0:
				require.NoError(t, b.Flag(p.Row, p.Col))
				continue
			}
			_, err := b.Reveal(p.Row, p.Col)
			require.NoError(t, err)
			assert.Equal(t, b.RevealedCount() == safe, b.HasWon())
		}
		assert.Equal(t, safe, b.RevealedCount())
		assert.Equal(t, Won, b.Status())
	}
}

func TestRevealMines(t *testing.T) {
	mines := []Point{{0, 0}, {2, 2}, {3, 1}}
	b, err := NewBoardFromMines(4, 4, mines)
	require.NoError(t, err)

	require.NoError(t, b.Flag(2, 2))
	require.NoError(t, b.Flag(1, 3))

	outcome, err := b.Reveal(0, 0)
	require.NoError(t, err)
	require.Equal(t, GameOver, outcome)

	b.RevealMines()
	for _, p := range mines {
		revealed, _ := b.IsRevealed(p.Row, p.Col)
		assert.True(t, revealed, "%s", p)
	}
	flagged, _ := b.HasFlag(2, 2)
	assert.True(t, flagged)
	revealed, _ := b.IsRevealed(1, 3)
	assert.False(t, revealed)
	assert.Equal(t, 2, b.FlagCount())
	assert.Equal(t, len(mines), b.RevealedCount())
	assert.Equal(t, Lost, b.Status())
}

func TestLostBeatsWon(t *testing.T) {
	b, err := NewBoardFromMines(2, 1, []Point{{0, 0}})
	require.NoError(t, err)

	outcome, err := b.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, GameOver, outcome)

	_, err = b.Reveal(0, 1)
	require.NoError(t, err)
	assert.True(t, b.HasWon())
	assert.Equal(t, Lost, b.Status())
}
