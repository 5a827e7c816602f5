package mines

import "fmt"

type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// [Point] implements [fmt.Stringer]
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

func (p Point) Add(dr, dc int) Point {
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}
