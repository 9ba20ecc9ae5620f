package buffer

import "slices"

// Insert places ch at p, shifting the rest of the line right. The column may
// range from 0 to the end-of-line column; inserting after the newline marker,
// or inserting a newline, is refused. The caller advances the cursor.
func (b *Buffer) Insert(p Position, ch byte) bool {
	if ch == '\n' {
		return false
	}
	l, ok := b.Line(p.Row)
	if !ok || p.Col < 0 || p.Col > l.TextLen() {
		return false
	}
	l.insertAt(p.Col, ch)
	return true
}

// Delete removes the character at p. Deleting the newline marker of a line
// joins it with the following line; the last line's end is out of range.
func (b *Buffer) Delete(p Position) bool {
	l, ok := b.Line(p.Row)
	if !ok || p.Col < 0 {
		return false
	}
	switch {
	case p.Col < l.TextLen():
		l.removeAt(p.Col)
		return true
	case p.Col == l.TextLen():
		return b.Join(p.Row)
	}
	return false
}

// Join merges row with its successor, dropping row's newline marker.
func (b *Buffer) Join(row int) bool {
	l, ok := b.Line(row)
	if !ok || !l.Terminated() || row+1 >= len(b.lines) {
		return false
	}
	l.appendLine(b.lines[row+1])
	b.lines = slices.Delete(b.lines, row+1, row+2)
	return true
}

// Split breaks the line at p in two. The head keeps row and gains a newline
// marker; the tail, including the original marker, becomes row+1.
func (b *Buffer) Split(p Position) bool {
	l, ok := b.Line(p.Row)
	if !ok || p.Col < 0 || p.Col > l.TextLen() {
		return false
	}
	tail := l.splitAt(p.Col)
	b.lines = slices.Insert(b.lines, p.Row+1, tail)
	return true
}
