package fretboard

// Screen maps a logical cell to a (row, col) screen position under the
// layout. Row 0 is the top of the rendered board, column 0 the leftmost
// visible fret. This is a pure coordinate transform applied after highlight
// computation; it never changes which cells are highlighted.
func (l Layout) Screen(c Cell, stringCount, fretStart, fretEnd int) (row, col int) {
	if l.Bass == BassTop {
		row = c.String
	} else {
		row = stringCount - 1 - c.String
	}
	if l.Handedness == LeftHanded {
		col = fretEnd - 1 - c.Fret
	} else {
		col = c.Fret - fretStart
	}
	return row, col
}

// CellAt is the inverse of Screen, used by interactive consumers that need
// to resolve a clicked position back to a string and fret.
func (l Layout) CellAt(row, col, stringCount, fretStart, fretEnd int) Cell {
	var c Cell
	if l.Bass == BassTop {
		c.String = row
	} else {
		c.String = stringCount - 1 - row
	}
	if l.Handedness == LeftHanded {
		c.Fret = fretEnd - 1 - col
	} else {
		c.Fret = col + fretStart
	}
	return c
}
