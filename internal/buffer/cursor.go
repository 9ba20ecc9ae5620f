package buffer

// Position is a zero-based (column, row) coordinate into a buffer. It is
// plain data and must be re-validated whenever the buffer changes shape.
type Position struct {
	Col int
	Row int
}

// AtBeginningOfLine reports whether col is the first column.
func AtBeginningOfLine(col int) bool { return col == 0 }

// AtEndOfLine reports whether col is the end-of-line column of row, i.e. the
// cell of its newline marker.
func AtEndOfLine(b *Buffer, row, col int) bool {
	l, ok := b.Line(row)
	return ok && col == l.TextLen()
}

// CanMoveTo reports whether a plain cursor move may land on (row, col). The
// end-of-line column is reachable; anything past it is not.
func CanMoveTo(b *Buffer, row, col int) bool {
	l, ok := b.Line(row)
	return ok && col >= 0 && col <= l.TextLen()
}

// Valid reports whether p satisfies the cursor invariant for b.
func Valid(b *Buffer, p Position) bool { return CanMoveTo(b, p.Row, p.Col) }

// Clamp returns the valid position nearest to p.
func Clamp(b *Buffer, p Position) Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= b.LineCount() {
		p.Row = b.LineCount() - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if end := b.TextLen(p.Row); p.Col > end {
		p.Col = end
	}
	return p
}
