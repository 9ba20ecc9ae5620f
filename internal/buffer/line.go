package buffer

// Line is one newline-delimited segment of a file. The newline marker, when
// present, is stored as the last character.
type Line struct {
	data []byte
}

func newLine(b []byte) *Line {
	data := make([]byte, len(b))
	copy(data, b)
	return &Line{data: data}
}

// Len returns the number of stored characters, newline included.
func (l *Line) Len() int { return len(l.data) }

// Terminated reports whether the line ends with a newline marker.
func (l *Line) Terminated() bool {
	return len(l.data) > 0 && l.data[len(l.data)-1] == '\n'
}

// TextLen returns the length without the newline marker. It is also the
// column of the marker, the canonical end-of-line position.
func (l *Line) TextLen() int {
	if l.Terminated() {
		return len(l.data) - 1
	}
	return len(l.data)
}

// String returns the raw line content, newline included.
func (l *Line) String() string { return string(l.data) }

// Bytes returns a copy of the raw line content.
func (l *Line) Bytes() []byte {
	out := make([]byte, len(l.data))
	copy(out, l.data)
	return out
}

// ---------------------------------------------------------------------------
// Resizing primitives. Callers validate indices first.
// ---------------------------------------------------------------------------

func (l *Line) insertAt(i int, ch byte) {
	l.data = append(l.data, 0)
	copy(l.data[i+1:], l.data[i:])
	l.data[i] = ch
}

func (l *Line) removeAt(i int) {
	l.data = append(l.data[:i], l.data[i+1:]...)
}

// splitAt truncates the line to [0,i) plus a fresh newline and returns the
// tail [i,Len) as a new line.
func (l *Line) splitAt(i int) *Line {
	tail := newLine(l.data[i:])
	head := make([]byte, i, i+1)
	copy(head, l.data[:i])
	l.data = append(head, '\n')
	return tail
}

// appendLine replaces the newline marker with the content of next.
func (l *Line) appendLine(next *Line) {
	l.data = append(l.data[:l.TextLen()], next.data...)
}
