package mines

type cell struct {
	value    Value
	flagged  bool
	revealed bool
}

func (c *cell) isMine() bool {
	return c.value.IsMine()
}

func (c *cell) isBlank() bool {
	return c.value.IsBlank()
}

func (c *cell) isNumber() bool {
	return c.value.Kind() == Number
}

func (c *cell) flag() {
	c.flagged = !c.flagged
}

// reveal fails on a flagged cell unless ignoreFlag is set. The flag bit is
// left untouched either way; Board decides what happens to it.
func (c *cell) reveal(ignoreFlag bool) error {
	if c.flagged && !ignoreFlag {
		return ErrCellFlagged
	}
	c.revealed = true
	return nil
}
