package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width     int `json:"width" mapstructure:"width"`
	Height    int `json:"height" mapstructure:"height"`
	MineCount int `json:"mine_count" mapstructure:"mine_count"`
}

var (
	Beginner     = GameParams{Width: 9, Height: 9, MineCount: 10}
	Intermediate = GameParams{Width: 16, Height: 16, MineCount: 40}
	Expert       = GameParams{Width: 30, Height: 16, MineCount: 99}
)

var presets = map[string]GameParams{
	"beginner":     Beginner,
	"intermediate": Intermediate,
	"expert":       Expert,
}

// PresetByName looks up a difficulty preset, ignoring case.
func PresetByName(name string) (GameParams, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Validate() error {
	if p.Width < 0 || p.Height < 0 {
		return ErrNegativeSize
	}
	if p.MineCount < 0 {
		return ErrNegativeMines
	}
	if p.MineCount > p.Width*p.Height {
		return ErrTooManyMines
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

// [GameParams] implements [fmt.Stringer]
func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p GameParams) PointInBounds(pt Point) bool {
	return 0 <= pt.Row && pt.Row < p.Height && 0 <= pt.Col && pt.Col < p.Width
}

func (p GameParams) NewBoard(opts ...Option) (*Board, error) {
	return NewBoard(p.Width, p.Height, p.MineCount, opts...)
}
