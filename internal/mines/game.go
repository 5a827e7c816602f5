package mines

import (
	"log/slog"
	"strconv"
)

type Outcome uint8

const (
	Continue Outcome = iota
	GameOver
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case GameOver:
		return "game over"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Status) Over() bool {
	return s == Won || s == Lost
}

// Flag toggles the flag on a hidden cell.
func (b *Board) Flag(row, col int) error {
	c, err := b.lookup("flag", row, col)
	if err != nil {
		return err
	}
	if c.revealed {
		return &CellError{Op: "flag", Point: Pt(row, col), Err: ErrCellRevealed}
	}
	c.flag()
	if c.flagged {
		b.flagCount++
	} else {
		b.flagCount--
	}
	return nil
}

// Reveal uncovers a cell on behalf of the player. Hitting a mine is not an
// error: it reveals that single cell and reports GameOver. Revealing a
// hidden blank cell also uncovers the blank region around it together with
// the numbers on its border.
func (b *Board) Reveal(row, col int) (Outcome, error) {
	c, err := b.lookup("reveal", row, col)
	if err != nil {
		return Continue, err
	}
	p := Pt(row, col)
	if c.flagged {
		return Continue, &CellError{Op: "reveal", Point: p, Err: ErrCellFlagged}
	}

	switch {
	case c.isMine():
		c.reveal(false)
		b.logger.Debug("mine hit", slog.Any("point", p))
		return GameOver, nil
	case c.isNumber():
		c.reveal(false)
	case c.revealed:
	default:
		n := b.floodFill(p)
		b.logger.Debug("flood fill", slog.Any("point", p), slog.Int("revealed", n))
	}
	return Continue, nil
}

// sweep reveals a cell regardless of its flag. A flag picked up this way is
// dropped so that flagged and revealed stay exclusive.
func (b *Board) sweep(c *cell) (revealed bool) {
	if c.revealed {
		return false
	}
	if c.flagged {
		c.flag()
		b.flagCount--
	}
	c.reveal(true)
	return true
}

// floodFill walks the blank region orthogonally connected to start, depth
// first. Every time a cell is on top of the stack all of its numbered
// neighbors are revealed; then the walk descends into the first hidden
// blank orthogonal neighbor in scan order, or backtracks if there is none.
func (b *Board) floodFill(start Point) (revealed int) {
	if b.sweep(b.at(start)) {
		revealed++
	}
	stack := []Point{start}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		next, found := Point{}, false
		for nb := range b.Neighbors(top) {
			c := b.at(nb)
			switch {
			case c.isNumber():
				if b.sweep(c) {
					revealed++
				}
			case c.isBlank() && !c.revealed && !found && orthogonal(top, nb):
				next, found = nb, true
			}
		}

		if found {
			if b.sweep(b.at(next)) {
				revealed++
			}
			stack = append(stack, next)
		} else {
			stack = stack[:len(stack)-1]
		}
	}

	return revealed
}

func orthogonal(p, q Point) bool {
	return p.Row == q.Row || p.Col == q.Col
}

// RevealMines uncovers every mine, flagged or not, for the end-of-game
// board. Flags on mines are kept so they can be shown as correct. The
// engine never calls this on its own.
func (b *Board) RevealMines() {
	for i := range b.cells {
		if b.cells[i].isMine() {
			b.cells[i].reveal(true)
		}
	}
}

func (b *Board) RevealedCount() (count int) {
	for i := range b.cells {
		if b.cells[i].revealed {
			count++
		}
	}
	return
}

// HasWon reports whether every non-mine cell has been revealed. Flags do
// not matter.
func (b *Board) HasWon() bool {
	for i := range b.cells {
		if !b.cells[i].isMine() && !b.cells[i].revealed {
			return false
		}
	}
	return true
}

// Status derives the game state from the cells. A revealed mine means the
// game is lost even if every safe cell has been uncovered as well.
func (b *Board) Status() Status {
	for i := range b.cells {
		if b.cells[i].isMine() && b.cells[i].revealed {
			return Lost
		}
	}
	if b.HasWon() {
		return Won
	}
	return InProgress
}
