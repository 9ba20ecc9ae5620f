// Package buffer holds file contents as discrete lines and implements the
// character and line editing operations of the editor.
//
// A character is a byte. Every line except possibly the last ends with a
// newline marker that is stored as a regular trailing character, so the file
// is reconstructed byte for byte by concatenating the lines.
//
// Edit operations never fail: a request whose position is out of range is a
// silent no-op and reports false.
package buffer

import (
	"bytes"
	"fmt"
)

// Buffer is an ordered sequence of lines in document order.
type Buffer struct {
	lines []*Line
}

// New returns a buffer holding a single empty line.
func New() *Buffer {
	return &Buffer{lines: []*Line{newLine(nil)}}
}

// FromString builds a buffer from s using the same splitting rules as Load.
func FromString(s string) *Buffer {
	return fromBytes([]byte(s))
}

func fromBytes(data []byte) *Buffer {
	b := &Buffer{}
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			b.lines = append(b.lines, newLine(data))
			break
		}
		b.lines = append(b.lines, newLine(data[:i+1]))
		data = data[i+1:]
	}
	if len(b.lines) == 0 {
		b.lines = []*Line{newLine(nil)}
	}
	return b
}

// LineCount returns the number of lines. It is never less than one.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the line at row.
func (b *Buffer) Line(row int) (*Line, bool) {
	if row < 0 || row >= len(b.lines) {
		return nil, false
	}
	return b.lines[row], true
}

// TextLen returns the length of row without its newline marker, or -1 when
// row is out of range.
func (b *Buffer) TextLen(row int) int {
	l, ok := b.Line(row)
	if !ok {
		return -1
	}
	return l.TextLen()
}

// Bytes returns the full contents of the buffer.
func (b *Buffer) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(b.size())
	for _, l := range b.lines {
		buf.Write(l.data)
	}
	return buf.Bytes()
}

// String returns the full contents of the buffer.
func (b *Buffer) String() string { return string(b.Bytes()) }

func (b *Buffer) size() int {
	n := 0
	for _, l := range b.lines {
		n += len(l.data)
	}
	return n
}

// Equal reports whether b and other hold the same lines.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || len(b.lines) != len(other.lines) {
		return false
	}
	for i := range b.lines {
		if !bytes.Equal(b.lines[i].data, other.lines[i].data) {
			return false
		}
	}
	return true
}

// Validate returns an error describing the first broken structural invariant.
func (b *Buffer) Validate() error {
	if len(b.lines) == 0 {
		return fmt.Errorf("buffer has no lines")
	}
	for i, l := range b.lines {
		if l == nil {
			return fmt.Errorf("line %d is nil", i)
		}
		if nl := bytes.IndexByte(l.data, '\n'); nl >= 0 && nl != len(l.data)-1 {
			return fmt.Errorf("line %d holds a newline at column %d of %d", i, nl, len(l.data))
		}
		if i < len(b.lines)-1 && !l.Terminated() {
			return fmt.Errorf("line %d is not newline-terminated", i)
		}
	}
	return nil
}
