package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/golden"
	"github.com/xonecas/delta/internal/buffer"
	"github.com/xonecas/delta/internal/session"
	"github.com/xonecas/delta/internal/theme"
)

func newTestModel(t *testing.T, content string, width, height int, lineNumbers bool) Model {
	t.Helper()
	sess := session.New("demo.txt", buffer.FromString(content), session.Options{})
	m := New(sess, Options{Palette: theme.Default, LineNumbers: lineNumbers, TabWidth: 4})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func TestViewGolden(t *testing.T) {
	m := newTestModel(t, "hello\n\tx\nlast", 50, 5, true)
	golden.RequireEqual(t, []byte(ansi.Strip(m.renderContent())))
}

func TestViewRowsFillWidth(t *testing.T) {
	m := newTestModel(t, "hello\n\tx\nlast", 50, 5, true)
	lines := strings.Split(m.renderContent(), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d rows, want 5", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 50 {
			t.Errorf("row %d: width=%d (want 50)", i, w)
		}
	}
}

func TestViewNarrowFooterDropsHelp(t *testing.T) {
	m := newTestModel(t, "x", 24, 3, true)
	lines := strings.Split(ansi.Strip(m.renderContent()), "\n")
	footer := lines[len(lines)-1]
	if strings.Contains(footer, "save") {
		t.Errorf("footer %q should not fit the help", footer)
	}
	if !strings.HasPrefix(footer, " demo.txt:1:1  Delta") {
		t.Errorf("footer = %q", footer)
	}
	if w := ansi.StringWidth(lines[len(lines)-1]); w != 24 {
		t.Errorf("footer width=%d (want 24)", w)
	}
}

func TestViewZeroSize(t *testing.T) {
	sess := session.New("demo.txt", buffer.FromString("x"), session.Options{})
	m := New(sess, Options{Palette: theme.Default})
	if got := m.renderContent(); got != "" {
		t.Errorf("got %q before the first resize", got)
	}
}

func TestViewHidesNonPrintable(t *testing.T) {
	m := newTestModel(t, "a\x01b", 20, 3, false)
	first := strings.Split(ansi.Strip(m.renderContent()), "\n")[0]
	if !strings.HasPrefix(first, "a?b ") {
		t.Errorf("row = %q", first)
	}
}

func TestExpandTabs(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"\thello", "    hello"},
		{"\t\thi", "        hi"},
		{"ab\tc", "ab  c"},
		{"abcd\te", "abcd    e"},
		{"no tabs", "no tabs"},
		{"\x7f", "?"},
	}
	for _, tc := range cases {
		if got := expandTabs([]byte(tc.in), 4); got != tc.want {
			t.Errorf("expandTabs(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLineNumberWidth(t *testing.T) {
	cases := []struct {
		lines int
		want  int
	}{
		{1, 1},
		{8, 1},
		{9, 2},
		{98, 2},
		{99, 3},
	}
	for _, tc := range cases {
		content := strings.Repeat("\n", tc.lines-1)
		m := newTestModel(t, content+"x", 40, 5, true)
		if got := m.lineNumberWidth(); got != tc.want {
			t.Errorf("%d lines: width=%d, want %d", tc.lines, got, tc.want)
		}
	}
}
