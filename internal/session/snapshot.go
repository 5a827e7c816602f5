package session

import (
	"time"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type Snapshot struct {
	Params    mines.GameParams `json:"params"`
	Grid      Grid             `json:"grid"`
	Status    mines.Status     `json:"status"`
	MinesLeft int              `json:"mines_left"`
	Elapsed   time.Duration    `json:"elapsed"`
	StartedAt time.Time        `json:"started_at"`
	EndedAt   *time.Time       `json:"ended_at,omitempty"`
	Exploded  *mines.Point     `json:"exploded,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Params:    s.params,
		Grid:      s.grid(),
		Status:    s.status,
		MinesLeft: s.board.MinesLeft(),
		Elapsed:   s.elapsed(),
		StartedAt: s.startedAt,
	}
	if !s.endedAt.IsZero() {
		endedAt := s.endedAt
		snap.EndedAt = &endedAt
	}
	if s.exploded != nil {
		exploded := *s.exploded
		snap.Exploded = &exploded
	}
	return snap
}

func (s *Session) grid() Grid {
	over := s.status.Over()
	grid := make(Grid, 0, s.board.Width()*s.board.Height())
	for row := range s.board.Height() {
		for col := range s.board.Width() {
			grid = append(grid, s.cellState(mines.Pt(row, col), over))
		}
	}
	return grid
}

func (s *Session) cellState(p mines.Point, over bool) CellState {
	// coordinates come from the board's own dimensions
	v, _ := s.board.Value(p.Row, p.Col)
	flagged, _ := s.board.HasFlag(p.Row, p.Col)
	revealed, _ := s.board.IsRevealed(p.Row, p.Col)

	switch {
	case s.exploded != nil && *s.exploded == p:
		return ExplodedMine
	case flagged && over && v.IsMine():
		return CorrectFlag
	case flagged && over:
		return WrongFlag
	case flagged:
		return Flag
	case v.IsMine() && (revealed || over):
		return UnflaggedMine
	case revealed:
		n, _ := v.Number()
		return CellState(n)
	default:
		return Unknown
	}
}
