// Package session owns one open file: its buffer, the cursor, the modified
// flag and the status message. Commands arrive already decoded from key
// events; each reports whether it changed anything worth redrawing and
// whether it changed the state that would be persisted.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/xonecas/delta/internal/buffer"
)

// Direction is a cursor movement request.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
	Top
	Bottom
)

const (
	defaultTabWidth = 4
	defaultPageJump = 60
)

// PositionStore remembers the last cursor position per file.
type PositionStore interface {
	Get(path string) (row, col int, ok bool)
	Put(path string, row, col int)
	Forget(path string)
}

// Options tunes editing behavior.
type Options struct {
	TabWidth    int
	ExpandTabs  bool
	PageJump    int
	MaxFileSize int64
	Positions   PositionStore // nil: positions are not remembered
}

// Result reports the effect of a command.
type Result struct {
	Changed  bool // buffer or cursor changed; a redraw is needed
	Modified bool // persisted state changed (marked dirty, or saved)
}

// Session is an open file being edited.
type Session struct {
	path   string
	buf    *buffer.Buffer
	cursor buffer.Position
	opts   Options

	modified bool
	saved    string // contents as last read from or written to disk

	status    string
	statusErr bool
}

// Open loads path and starts a session on it. The cursor is restored from
// opts.Positions when it knows the file; a file that no longer exists is
// dropped from it.
func Open(path string, opts Options) (*Session, error) {
	buf, err := buffer.LoadFile(path, opts.MaxFileSize)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && opts.Positions != nil {
			if key, kerr := filepath.Abs(path); kerr == nil {
				opts.Positions.Forget(key)
			}
		}
		return nil, err
	}
	if err := buf.Validate(); err != nil {
		log.Error().Err(err).Str("file", path).Msg("loaded buffer is inconsistent")
	}
	s := New(path, buf, opts)
	s.restoreCursor()
	return s, nil
}

// New starts a session on an already loaded buffer.
func New(path string, buf *buffer.Buffer, opts Options) *Session {
	if opts.TabWidth <= 0 {
		opts.TabWidth = defaultTabWidth
	}
	if opts.PageJump <= 0 {
		opts.PageJump = defaultPageJump
	}
	return &Session{
		path:  path,
		buf:   buf,
		opts:  opts,
		saved: buf.String(),
	}
}

// ---------------------------------------------------------------------------
// Read-only queries for the renderer
// ---------------------------------------------------------------------------

func (s *Session) Buffer() *buffer.Buffer  { return s.buf }
func (s *Session) Cursor() buffer.Position { return s.cursor }
func (s *Session) Modified() bool          { return s.modified }
func (s *Session) Path() string            { return s.path }

// Status returns the pending status message and whether it reports an error.
func (s *Session) Status() (string, bool) { return s.status, s.statusErr }

// TakeStatus returns the pending status message and clears it.
func (s *Session) TakeStatus() (string, bool) {
	msg, isErr := s.status, s.statusErr
	s.status, s.statusErr = "", false
	return msg, isErr
}

func (s *Session) setStatus(msg string) {
	s.status, s.statusErr = msg, false
}

func (s *Session) setError(msg string) {
	s.status, s.statusErr = msg, true
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

// Move moves the cursor. Moves that would leave the valid range are ignored.
func (s *Session) Move(d Direction) Result {
	before := s.cursor
	row, col := s.cursor.Row, s.cursor.Col

	switch d {
	case Left:
		if buffer.AtBeginningOfLine(col) {
			if buffer.CanMoveTo(s.buf, row-1, 0) {
				s.cursor = buffer.Position{Col: s.buf.TextLen(row - 1), Row: row - 1}
			}
		} else if buffer.CanMoveTo(s.buf, row, col-1) {
			s.cursor.Col--
		}
	case Right:
		if buffer.AtEndOfLine(s.buf, row, col) {
			if buffer.CanMoveTo(s.buf, row+1, 0) {
				s.cursor = buffer.Position{Col: 0, Row: row + 1}
			}
		} else if buffer.CanMoveTo(s.buf, row, col+1) {
			s.cursor.Col++
		}
	case Up:
		if buffer.CanMoveTo(s.buf, row-1, col) {
			s.cursor.Row--
		}
	case Down:
		if buffer.CanMoveTo(s.buf, row+1, col) {
			s.cursor.Row++
		}
	case Home:
		s.cursor.Col = 0
	case End:
		s.cursor.Col = s.buf.TextLen(row)
	case PageUp:
		s.cursor = buffer.Clamp(s.buf, buffer.Position{Col: col, Row: row - s.opts.PageJump})
	case PageDown:
		s.cursor = buffer.Clamp(s.buf, buffer.Position{Col: col, Row: row + s.opts.PageJump})
	case Top:
		s.cursor = buffer.Position{}
	case Bottom:
		last := s.buf.LineCount() - 1
		s.cursor = buffer.Position{Col: s.buf.TextLen(last), Row: last}
	}

	return Result{Changed: s.cursor != before}
}

// InsertChar inserts a printable ASCII character at the cursor and advances
// it. A tab inserts TabWidth spaces when ExpandTabs is set.
func (s *Session) InsertChar(ch byte) Result {
	switch {
	case ch == '\t' && s.opts.ExpandTabs:
		n := 0
		for i := 0; i < s.opts.TabWidth; i++ {
			if s.insert(' ') {
				n++
			}
		}
		return s.edited(n > 0)
	case ch == '\t', ch >= 32 && ch <= 126:
		return s.edited(s.insert(ch))
	}
	return Result{}
}

// InsertText inserts every printable ASCII byte of text, splitting lines at
// newlines. Other bytes are dropped.
func (s *Session) InsertText(text string) Result {
	var res Result
	for i := 0; i < len(text); i++ {
		var r Result
		switch text[i] {
		case '\n':
			r = s.SplitLine()
		case '\t':
			r = s.edited(s.insert('\t'))
		default:
			r = s.InsertChar(text[i])
		}
		res.Changed = res.Changed || r.Changed
		res.Modified = res.Modified || r.Modified
	}
	return res
}

func (s *Session) insert(ch byte) bool {
	if !s.buf.Insert(s.cursor, ch) {
		return false
	}
	s.cursor.Col++
	return true
}

// DeleteBackward removes the character before the cursor. At the start of a
// line it joins the line onto the previous one.
func (s *Session) DeleteBackward() Result {
	p := s.cursor
	if buffer.AtBeginningOfLine(p.Col) {
		if p.Row == 0 {
			return Result{}
		}
		end := s.buf.TextLen(p.Row - 1)
		if !s.buf.Join(p.Row - 1) {
			return Result{}
		}
		s.cursor = buffer.Position{Col: end, Row: p.Row - 1}
		return s.edited(true)
	}
	p.Col--
	if !s.buf.Delete(p) {
		return Result{}
	}
	s.cursor = p
	return s.edited(true)
}

// DeleteForward removes the character under the cursor. At the end of a line
// it joins the following line onto it.
func (s *Session) DeleteForward() Result {
	return s.edited(s.buf.Delete(s.cursor))
}

// SplitLine breaks the line at the cursor and moves to the new line.
func (s *Session) SplitLine() Result {
	if !s.buf.Split(s.cursor) {
		return Result{}
	}
	s.cursor = buffer.Position{Col: 0, Row: s.cursor.Row + 1}
	return s.edited(true)
}

func (s *Session) edited(ok bool) Result {
	if !ok {
		return Result{}
	}
	s.modified = true
	return Result{Changed: true, Modified: true}
}

// Save writes the buffer back to its file. Nothing is written when there are
// no unsaved changes. On failure the buffer and the modified flag are left as
// they were and the reason is put in the status area.
func (s *Session) Save() (Result, error) {
	if !s.modified {
		s.setStatus("No changes to write")
		return Result{Changed: true}, nil
	}
	if err := s.buf.Save(s.path); err != nil {
		s.setError(StatusFor(err))
		log.Warn().Err(err).Str("file", s.path).Msg("save failed")
		return Result{Changed: true}, fmt.Errorf("save %s: %w", s.path, err)
	}

	content := s.buf.String()
	added, deleted := lineDelta(filepath.Base(s.path), s.saved, content)
	s.saved = content
	s.modified = false
	s.setStatus(fmt.Sprintf("Successfully wrote file (+%d -%d)", added, deleted))
	log.Info().Str("file", s.path).Int("added", added).Int("deleted", deleted).Msg("file saved")
	return Result{Changed: true, Modified: true}, nil
}

// Quit ends the session, recording the cursor position. It reports whether
// unsaved changes are being discarded.
func (s *Session) Quit() (discarded bool) {
	if s.opts.Positions != nil {
		if key, err := filepath.Abs(s.path); err == nil {
			s.opts.Positions.Put(key, s.cursor.Row, s.cursor.Col)
		}
	}
	if s.modified {
		log.Info().Str("file", s.path).Msg("quit with unsaved changes")
	}
	return s.modified
}

func (s *Session) restoreCursor() {
	if s.opts.Positions == nil {
		return
	}
	key, err := filepath.Abs(s.path)
	if err != nil {
		return
	}
	row, col, ok := s.opts.Positions.Get(key)
	if !ok {
		return
	}
	s.cursor = buffer.Clamp(s.buf, buffer.Position{Col: col, Row: row})
}
