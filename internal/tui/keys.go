package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/delta/internal/session"
)

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Home, End             key.Binding
	Top, Bottom           key.Binding
	PageUp, PageDown      key.Binding
	Newline               key.Binding
	Backspace, Delete     key.Binding
	Tab                   key.Binding
	Save                  key.Binding
	Quit                  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),
		Top:       key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "top")),
		Bottom:    key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "bottom")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Newline:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "delete back")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", "save")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+e", "ctrl+c"), key.WithHelp("^E", "exit")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Quit}
}

type keyHandler func(*Model) tea.Cmd

func move(d session.Direction) keyHandler {
	return func(m *Model) tea.Cmd {
		m.apply(m.sess.Move(d))
		return nil
	}
}

// keyPressHandlers maps every keystroke bound in the key map to its command.
func (m *Model) keyPressHandlers() map[string]keyHandler {
	bindings := []struct {
		b key.Binding
		h keyHandler
	}{
		{m.keys.Up, move(session.Up)},
		{m.keys.Down, move(session.Down)},
		{m.keys.Left, move(session.Left)},
		{m.keys.Right, move(session.Right)},
		{m.keys.Home, move(session.Home)},
		{m.keys.End, move(session.End)},
		{m.keys.Top, move(session.Top)},
		{m.keys.Bottom, move(session.Bottom)},
		{m.keys.PageUp, move(session.PageUp)},
		{m.keys.PageDown, move(session.PageDown)},
		{m.keys.Newline, func(m *Model) tea.Cmd { m.apply(m.sess.SplitLine()); return nil }},
		{m.keys.Backspace, func(m *Model) tea.Cmd { m.apply(m.sess.DeleteBackward()); return nil }},
		{m.keys.Delete, func(m *Model) tea.Cmd { m.apply(m.sess.DeleteForward()); return nil }},
		{m.keys.Tab, func(m *Model) tea.Cmd { m.apply(m.sess.InsertChar('\t')); return nil }},
		{m.keys.Save, (*Model).handleSave},
		{m.keys.Quit, (*Model).handleQuit},
	}
	handlers := make(map[string]keyHandler)
	for _, kb := range bindings {
		if !kb.b.Enabled() {
			continue
		}
		for _, k := range kb.b.Keys() {
			handlers[k] = kb.h
		}
	}
	return handlers
}
