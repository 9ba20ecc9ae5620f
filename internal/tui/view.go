package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	if m.width > 0 && !m.quitting {
		x, y := m.cursorCell()
		v.Cursor = tea.NewCursor(x, y)
	}
	return v
}

// renderContent draws the visible rows followed by the footer line.
func (m Model) renderContent() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	buf := m.sess.Buffer()
	cur := m.sess.Cursor()
	digits := m.lineNumberWidth()
	tw := m.textWidth()

	for i := 0; i < m.bodyHeight(); i++ {
		row := m.top + i
		if row >= buf.LineCount() {
			b.WriteString(m.styles.Text.Render(strings.Repeat(" ", m.width)))
			b.WriteByte('\n')
			continue
		}

		if m.lineNumbers {
			gutSty := m.styles.Gutter
			if row == cur.Row {
				gutSty = m.styles.GutterCur
			}
			b.WriteString(gutSty.Render(fmt.Sprintf("%*d ", digits, row+1)))
		}

		text := m.visibleText(row, tw)
		b.WriteString(m.styles.Text.Render(text + strings.Repeat(" ", tw-len(text))))
		b.WriteByte('\n')
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

// visibleText returns the display cells of row that fall inside the
// horizontal window.
func (m Model) visibleText(row, width int) string {
	line, ok := m.sess.Buffer().Line(row)
	if !ok {
		return ""
	}
	cells := expandTabs(line.Bytes()[:line.TextLen()], m.tabWidth)
	if m.left >= len(cells) {
		return ""
	}
	cells = cells[m.left:]
	if len(cells) > width {
		cells = cells[:width]
	}
	return cells
}

// renderFooter draws "[*]name:line:col  Delta  status" on the left and the
// key help on the right, filling exactly one terminal row.
func (m Model) renderFooter() string {
	cur := m.sess.Cursor()
	mark := " "
	if m.sess.Modified() {
		mark = "*"
	}

	left := m.styles.FooterName.Render(fmt.Sprintf("%s%s:%d:%d", mark, m.sess.Path(), cur.Row+1, cur.Col+1)) +
		m.styles.Footer.Render("  ") +
		m.styles.Title.Render("Delta")
	if m.status != "" {
		st := m.styles.Status
		if m.statusErr {
			st = m.styles.Error
		}
		left += m.styles.Footer.Render("  ") + st.Render(m.status)
	}

	right := m.help.ShortHelpView(m.keys.ShortHelp())
	leftW, rightW := ansi.StringWidth(left), ansi.StringWidth(right)

	var line string
	if gap := m.width - leftW - rightW - 1; gap >= 2 {
		line = left + m.styles.Footer.Render(strings.Repeat(" ", gap)) + right + m.styles.Footer.Render(" ")
	} else {
		line = left + m.styles.Footer.Render(strings.Repeat(" ", max(m.width-leftW, 0)))
	}
	if ansi.StringWidth(line) > m.width {
		line = ansi.Truncate(line, m.width, "")
	}
	return line
}

// cursorCell returns the screen cell of the cursor.
func (m Model) cursorCell() (x, y int) {
	cur := m.sess.Cursor()
	x = m.displayCol(cur.Row, cur.Col) - m.left
	if m.lineNumbers {
		x += m.lineNumberWidth() + 1
	}
	return x, cur.Row - m.top
}

// lineNumberWidth is the number of digits reserved for line numbers, the
// decimal width of the line count plus one.
func (m Model) lineNumberWidth() int {
	return len(strconv.Itoa(m.sess.Buffer().LineCount() + 1))
}

func (m Model) bodyHeight() int {
	return max(m.height-1, 1)
}

// textWidth returns the width available for line text.
func (m Model) textWidth() int {
	w := m.width
	if m.lineNumbers {
		w -= m.lineNumberWidth() + 1
	}
	return max(w, 1)
}

// displayCol converts a byte column to a display column on row.
func (m Model) displayCol(row, col int) int {
	line, ok := m.sess.Buffer().Line(row)
	if !ok {
		return 0
	}
	text := line.Bytes()[:line.TextLen()]
	return len(expandTabs(text[:min(col, len(text))], m.tabWidth))
}

// expandTabs replaces tabs with spaces up to the next tab stop. Bytes that
// are not printable ASCII are shown as '?' so each byte keeps one cell.
func expandTabs(s []byte, tabWidth int) string {
	var b strings.Builder
	col := 0
	for _, c := range s {
		switch {
		case c == '\t':
			spaces := tabWidth - (col % tabWidth)
			b.WriteString(strings.Repeat(" ", spaces))
			col += spaces
		case c < 32 || c > 126:
			b.WriteByte('?')
			col++
		default:
			b.WriteByte(c)
			col++
		}
	}
	return b.String()
}
