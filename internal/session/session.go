// Package session keeps the state a front end needs around one game: the
// board itself, the clock, and what to show once the game is over.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var ErrGameOver = errors.New("game is over")

// Session owns a board for the duration of one round. All methods are safe
// for concurrent use; a display goroutine may poll Snapshot or Elapsed
// while another goroutine applies moves.
type Session struct {
	mu sync.Mutex

	params    mines.GameParams
	layout    []mines.Point
	board     *mines.Board
	status    mines.Status
	forfeited bool
	exploded  *mines.Point
	moves     int
	startedAt time.Time
	endedAt   time.Time

	logger *slog.Logger
	rnd    *rand.Rand
	now    func() time.Time
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rnd = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLayout fixes the mine positions instead of placing them at random.
// Retry replays the same layout.
func WithLayout(layout []mines.Point) Option {
	return func(s *Session) {
		s.layout = layout
	}
}

func New(params mines.GameParams, opts ...Option) (*Session, error) {
	s := &Session{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.layout != nil {
		params.MineCount = len(s.layout)
	}
	if err := s.reset(params); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) newBoard(params mines.GameParams) (*mines.Board, error) {
	opts := []mines.Option{mines.WithLogger(s.logger)}
	if s.rnd != nil {
		opts = append(opts, mines.WithRand(s.rnd))
	}
	if s.layout != nil {
		return mines.NewBoardFromMines(params.Width, params.Height, s.layout, opts...)
	}
	return params.NewBoard(opts...)
}

func (s *Session) reset(params mines.GameParams) error {
	board, err := s.newBoard(params)
	if err != nil {
		return fmt.Errorf("unable to create board %s: %w", params, err)
	}

	s.params = params
	s.board = board
	s.forfeited = false
	s.exploded = nil
	s.moves = 0
	s.startedAt = s.now()
	s.endedAt = time.Time{}
	s.update()

	s.logger.Info("new game", slog.String("params", params.String()))
	return nil
}

// update re-derives the status after a move and stops the clock once the
// game is decided.
func (s *Session) update() {
	s.status = s.board.Status()
	if s.forfeited {
		s.status = mines.Lost
	}
	if s.status.Over() && s.endedAt.IsZero() {
		s.endedAt = s.now()
		s.logger.Info(
			"game over",
			slog.String("status", s.status.String()),
			slog.String("params", s.params.String()),
			slog.Int("moves", s.moves),
			slog.Duration("elapsed", s.endedAt.Sub(s.startedAt)),
		)
	}
}

// Retry starts a fresh board with the same parameters.
func (s *Session) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reset(s.params)
}

// NewGame starts a fresh board with different parameters. The current game
// is left untouched if the parameters are invalid.
func (s *Session) NewGame(params mines.GameParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	layout := s.layout
	s.layout = nil
	if err := s.reset(params); err != nil {
		s.layout = layout
		return err
	}
	return nil
}

// Open reveals a cell. Hitting a mine ends the game and uncovers every
// other mine for display.
func (s *Session) Open(p mines.Point) (mines.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open(p)
}

func (s *Session) open(p mines.Point) (mines.Outcome, error) {
	if s.status.Over() {
		return mines.Continue, ErrGameOver
	}
	outcome, err := s.board.Reveal(p.Row, p.Col)
	if err != nil {
		return outcome, err
	}
	s.moves++
	if outcome == mines.GameOver {
		s.exploded = &p
		s.board.RevealMines()
		s.logger.Debug("mine hit", slog.Any("point", p))
	}
	s.update()
	return outcome, nil
}

func (s *Session) Flag(p mines.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Over() {
		return ErrGameOver
	}
	if err := s.board.Flag(p.Row, p.Col); err != nil {
		return err
	}
	s.moves++
	return nil
}

// Chord opens every hidden, unflagged neighbor of an opened number once the
// number of flags around it matches. Anything else is a no-op.
func (s *Session) Chord(p mines.Point) (mines.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Over() {
		return mines.Continue, ErrGameOver
	}
	revealed, err := s.board.IsRevealed(p.Row, p.Col)
	if err != nil {
		return mines.Continue, err
	}
	if !revealed {
		return mines.Continue, nil
	}
	n, err := s.board.Number(p.Row, p.Col)
	if err != nil || n == 0 {
		return mines.Continue, nil
	}

	var flags int
	var todo []mines.Point
	for nb := range s.board.Neighbors(p) {
		flagged, _ := s.board.HasFlag(nb.Row, nb.Col)
		opened, _ := s.board.IsRevealed(nb.Row, nb.Col)
		switch {
		case flagged:
			flags++
		case !opened:
			todo = append(todo, nb)
		}
	}
	if flags != n {
		return mines.Continue, nil
	}

	for _, nb := range todo {
		if opened, _ := s.board.IsRevealed(nb.Row, nb.Col); opened {
			continue
		}
		outcome, err := s.open(nb)
		if err != nil {
			return outcome, err
		}
		if s.status.Over() {
			return outcome, nil
		}
	}
	return mines.Continue, nil
}

// Forfeit gives up the current game and uncovers the mines.
func (s *Session) Forfeit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Over() {
		return ErrGameOver
	}
	s.forfeited = true
	s.board.RevealMines()
	s.update()
	return nil
}

func (s *Session) Status() mines.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) Params() mines.GameParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

func (s *Session) MinesLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.MinesLeft()
}

func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed()
}

func (s *Session) elapsed() time.Duration {
	if s.endedAt.IsZero() {
		return s.now().Sub(s.startedAt)
	}
	return s.endedAt.Sub(s.startedAt)
}
