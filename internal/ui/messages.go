package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/parleyhq/parley/internal/chat"
)

// MessagePane renders the scrollable message region. It owns no state
// beyond its dimensions; the log and scroll position are passed in per
// render so the pane stays a pure projection of them.
type MessagePane struct {
	width  int
	height int
}

// NewMessagePane creates a new message pane
func NewMessagePane() *MessagePane {
	return &MessagePane{width: DefaultWrapWidth, height: 10}
}

// SetSize sets the pane dimensions
func (m *MessagePane) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m.width = width
	m.height = height
}

// ContentRows returns the rows available for message lines, after the
// title and rule. The scroll capacity is derived from this.
func (m *MessagePane) ContentRows() int {
	rows := m.height - TitleHeight - RuleHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Capacity returns the visible message capacity for the current size.
func (m *MessagePane) Capacity() int {
	return chat.VisibleCapacity(m.ContentRows())
}

// View renders the pane: title row, rule, then the scroll window of
// wrapped message lines padded to exactly ContentRows rows.
func (m *MessagePane) View(log *chat.Log, scroll chat.Scroll) string {
	var b strings.Builder
	b.WriteString(m.titleRow(scroll))
	b.WriteString("\n")
	b.WriteString(RuleStyle.Render(strings.Repeat("─", m.width)))

	rows := m.ContentRows()
	lines := m.windowLines(log, scroll, rows)
	for i := 0; i < rows; i++ {
		b.WriteString("\n")
		if i < len(lines) {
			b.WriteString(lines[i])
		}
	}
	return b.String()
}

// titleRow renders "Messages" with a right-aligned scroll indicator
// when the viewport is pinned to history.
func (m *MessagePane) titleRow(scroll chat.Scroll) string {
	title := PaneTitleStyle.Render("Messages")
	if scroll.Mode != chat.ModeScrolling {
		return title
	}
	indicator := ScrollIndicatorStyle.Render(fmt.Sprintf("↑%d messages", scroll.Position))
	pad := m.width - ansi.StringWidth(title) - ansi.StringWidth(indicator)
	if pad < 1 {
		return title
	}
	return title + strings.Repeat(" ", pad) + indicator
}

// windowLines wraps the visible records and trims to the row budget.
// The window is the capacity-sized slice of records ending Position
// messages before the newest.
func (m *MessagePane) windowLines(log *chat.Log, scroll chat.Scroll, rows int) []string {
	total := log.Len()
	if total == 0 {
		return nil
	}
	capacity := chat.VisibleCapacity(rows)

	end := total - scroll.Position
	if end > total {
		end = total
	}
	if end < 0 {
		end = 0
	}
	start := end - capacity
	if start < 0 {
		start = 0
	}

	styles := MessageStyles()
	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, chat.Wrap(log.At(i), m.width, styles)...)
	}

	// The capacity estimate can overshoot the row budget for tall
	// wrapped messages; keep the newest lines.
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	return lines
}
