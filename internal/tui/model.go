// Package tui renders an edit session in the terminal and turns key presses
// into session commands.
package tui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/delta/internal/session"
	"github.com/xonecas/delta/internal/theme"
)

// Options configures the view.
type Options struct {
	Palette     theme.Palette
	LineNumbers bool
	TabWidth    int // display width of a tab stop
}

// Model is the bubbletea model for one edit session.
type Model struct {
	sess *session.Session

	width, height int
	top, left     int // first visible row and display column

	tabWidth    int
	lineNumbers bool

	keys     keyMap
	handlers map[string]keyHandler
	help     help.Model
	styles   styles

	status    string
	statusErr bool

	quitting  bool
	discarded bool
}

// New creates a model editing sess.
func New(sess *session.Session, opts Options) Model {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	st := newStyles(opts.Palette)

	h := help.New()
	h.Styles.ShortKey = st.FooterName
	h.Styles.ShortDesc = st.Footer
	h.Styles.ShortSeparator = st.Footer

	m := Model{
		sess:        sess,
		tabWidth:    opts.TabWidth,
		lineNumbers: opts.LineNumbers,
		keys:        newKeyMap(),
		help:        h,
		styles:      st,
	}
	m.handlers = m.keyPressHandlers()
	m.status, m.statusErr = sess.TakeStatus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Discarded reports whether the session was quit with unsaved changes.
func (m Model) Discarded() bool { return m.discarded }
