package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/delta/internal/session"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scrollToCursor()

	// -- Bracketed paste -----------------------------------------------------
	case tea.PasteMsg:
		m.clearStatus()
		m.apply(m.sess.InsertText(msg.Content))
		m.takeStatus()

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		return m, m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress runs the bound command for msg, or inserts the typed text.
// The previous status message is dropped first so it lasts one keystroke.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if m.quitting {
		return nil
	}
	m.clearStatus()
	var cmd tea.Cmd
	if h, ok := m.handlers[msg.Keystroke()]; ok {
		cmd = h(m)
	} else if msg.Text != "" {
		m.apply(m.sess.InsertText(msg.Text))
	}
	m.takeStatus()
	return cmd
}

func (m *Model) handleSave() tea.Cmd {
	// The failure is already in the status area and the log.
	res, _ := m.sess.Save()
	m.apply(res)
	return nil
}

func (m *Model) handleQuit() tea.Cmd {
	m.discarded = m.sess.Quit()
	m.quitting = true
	return tea.Quit
}

func (m *Model) apply(res session.Result) {
	if res.Changed {
		m.scrollToCursor()
	}
}

func (m *Model) clearStatus() { m.status, m.statusErr = "", false }

func (m *Model) takeStatus() {
	if msg, isErr := m.sess.TakeStatus(); msg != "" {
		m.status, m.statusErr = msg, isErr
	}
}

// scrollToCursor adjusts the viewport so the cursor cell is on screen.
func (m *Model) scrollToCursor() {
	cur := m.sess.Cursor()
	rows, cols := m.bodyHeight(), m.textWidth()

	if cur.Row < m.top {
		m.top = cur.Row
	}
	if cur.Row >= m.top+rows {
		m.top = cur.Row - rows + 1
	}
	if last := m.sess.Buffer().LineCount() - 1; m.top > last {
		m.top = last
	}
	m.top = max(m.top, 0)

	x := m.displayCol(cur.Row, cur.Col)
	if x < m.left {
		m.left = x
	}
	if x >= m.left+cols {
		m.left = x - cols + 1
	}
}
