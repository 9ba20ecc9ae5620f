package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// ErrTooLarge is returned by LoadFile for files above the size limit.
var ErrTooLarge = errors.New("file too large")

// Load reads r to the end and splits it into lines. Each newline stays as
// the last character of the line it terminates; a non-empty remainder after
// the last newline becomes the final line. The empty segment after a final
// newline is not kept as a line, so "a\n" loads as one line. An empty stream
// yields one empty line. On a read error no buffer is returned.
func Load(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return fromBytes(data), nil
}

// LoadFile loads the file at path. maxSize bounds the file size in bytes;
// zero or less disables the check.
func LoadFile(path string, maxSize int64) (*Buffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: path, Err: syscall.EISDIR}
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%s: %d bytes exceeds limit of %d: %w", path, info.Size(), maxSize, ErrTooLarge)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// WriteTo writes every line verbatim to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, l := range b.lines {
		n, err := w.Write(l.data)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Save truncates path and writes the buffer to it. New files are created
// with mode 0644; an existing file keeps its mode.
func (b *Buffer) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := b.WriteTo(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
