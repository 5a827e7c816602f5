package mines

import (
	"hash/maphash"
	"io"
	"iter"
	"log/slog"
	"math/rand/v2"
)

// Board is a rectangular minefield of height rows by width columns. Mines
// and numbers are fixed once NewBoard returns; afterwards only flags and
// reveals change. A Board is not safe for concurrent use.
type Board struct {
	width, height int
	mineCount     int
	flagCount     int
	cells         []cell // row-major
	logger        *slog.Logger
}

type options struct {
	rnd    *rand.Rand
	logger *slog.Logger
}

type Option func(*options)

// WithRand sets the random source used for mine placement.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rnd = r
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func CreateRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

func newBoard(width, height, mineCount int, logger *slog.Logger) (*Board, error) {
	if width < 0 || height < 0 {
		return nil, ErrNegativeSize
	}
	if mineCount < 0 {
		return nil, ErrNegativeMines
	}
	if mineCount > width*height {
		return nil, ErrTooManyMines
	}
	return &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		cells:     make([]cell, width*height),
		logger:    logger,
	}, nil
}

// NewBoard places mineCount mines uniformly at random on a width x height
// board and numbers every other cell.
func NewBoard(width, height, mineCount int, opts ...Option) (*Board, error) {
	o := buildOptions(opts)
	b, err := newBoard(width, height, mineCount, o.logger)
	if err != nil {
		return nil, err
	}
	if o.rnd == nil {
		o.rnd = CreateRand()
	}
	plantMines(b.cells, mineCount, o.rnd)
	b.countNeighbors()
	return b, nil
}

// NewBoardFromMines builds a board with mines at exactly the given points.
func NewBoardFromMines(width, height int, mines []Point, opts ...Option) (*Board, error) {
	o := buildOptions(opts)
	b, err := newBoard(width, height, len(mines), o.logger)
	if err != nil {
		return nil, err
	}
	for _, p := range mines {
		if !b.inBounds(p) {
			return nil, &CellError{Op: "place mine", Point: p, Err: ErrOutOfRange}
		}
		c := b.at(p)
		if c.isMine() {
			return nil, &CellError{Op: "place mine", Point: p, Err: ErrDuplicateMine}
		}
		c.value = mineValue()
	}
	b.countNeighbors()
	return b, nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) Params() GameParams {
	return GameParams{Width: b.width, Height: b.height, MineCount: b.mineCount}
}

func (b *Board) MineCount() int {
	return b.mineCount
}

// FlagCount is the number of cells currently carrying a flag.
func (b *Board) FlagCount() int {
	return b.flagCount
}

// MinesLeft is what a mine counter display shows. It goes negative when
// the player places more flags than there are mines.
func (b *Board) MinesLeft() int {
	return b.mineCount - b.flagCount
}

func (b *Board) inBounds(p Point) bool {
	return 0 <= p.Row && p.Row < b.height && 0 <= p.Col && p.Col < b.width
}

func (b *Board) at(p Point) *cell {
	return &b.cells[p.Row*b.width+p.Col]
}

func (b *Board) lookup(op string, row, col int) (*cell, error) {
	p := Pt(row, col)
	if !b.inBounds(p) {
		return nil, &CellError{Op: op, Point: p, Err: ErrOutOfRange}
	}
	return b.at(p), nil
}

// Neighbors yields the in-bounds cells around p in row-major order,
// rows and columns each scanned from -1 to +1. p itself is skipped.
func (b *Board) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				nb := p.Add(dr, dc)
				if !b.inBounds(nb) {
					continue
				}
				if !yield(nb) {
					return
				}
			}
		}
	}
}

func (b *Board) IsMine(row, col int) (bool, error) {
	c, err := b.lookup("is mine", row, col)
	if err != nil {
		return false, err
	}
	return c.isMine(), nil
}

func (b *Board) IsBlank(row, col int) (bool, error) {
	c, err := b.lookup("is blank", row, col)
	if err != nil {
		return false, err
	}
	return c.isBlank(), nil
}

func (b *Board) HasFlag(row, col int) (bool, error) {
	c, err := b.lookup("has flag", row, col)
	if err != nil {
		return false, err
	}
	return c.flagged, nil
}

func (b *Board) IsRevealed(row, col int) (bool, error) {
	c, err := b.lookup("is revealed", row, col)
	if err != nil {
		return false, err
	}
	return c.revealed, nil
}

// Number returns the count of mines around a non-mine cell.
func (b *Board) Number(row, col int) (int, error) {
	c, err := b.lookup("number", row, col)
	if err != nil {
		return 0, err
	}
	n, ok := c.value.Number()
	if !ok {
		return 0, &CellError{Op: "number", Point: Pt(row, col), Err: ErrNotANumber}
	}
	return n, nil
}

// Value returns the hidden content of a cell regardless of whether it has
// been revealed.
func (b *Board) Value(row, col int) (Value, error) {
	c, err := b.lookup("value", row, col)
	if err != nil {
		return Value{}, err
	}
	return c.value, nil
}
