package mines

import "strconv"

type Kind uint8

const (
	Blank Kind = iota
	Number
	Mine
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Number:
		return "number"
	case Mine:
		return "mine"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is what a cell hides: a mine, a blank, or the number of adjacent
// mines (1 to 8). The zero Value is Blank. Values are only produced while a
// board is being constructed.
type Value struct {
	n int8 // -1 mine, 0 blank, 1..8 adjacent mines
}

func mineValue() Value {
	return Value{n: -1}
}

// panics [AssertionError]
func numberValue(n int) Value {
	if n < 0 || n > 8 {
		panic(AssertionError{"neighbor count out of range: " + strconv.Itoa(n)})
	}
	return Value{n: int8(n)}
}

func (v Value) Kind() Kind {
	switch {
	case v.n < 0:
		return Mine
	case v.n == 0:
		return Blank
	default:
		return Number
	}
}

func (v Value) IsMine() bool {
	return v.n < 0
}

func (v Value) IsBlank() bool {
	return v.n == 0
}

// Number reports the adjacent mine count. ok is false for mines.
func (v Value) Number() (n int, ok bool) {
	if v.n < 0 {
		return 0, false
	}
	return int(v.n), true
}

// [Value] implements [fmt.Stringer]
func (v Value) String() string {
	switch {
	case v.n < 0:
		return "*"
	case v.n == 0:
		return "."
	default:
		return strconv.Itoa(int(v.n))
	}
}
