package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parleyhq/parley/internal/chat"
	"github.com/parleyhq/parley/internal/ui"
)

// View composes the four regions: header, content (message pane beside
// the roster), and the input region (rule, input line, key help).
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if !m.ready {
		v.SetContent("Loading...")
		return v
	}

	m.footer.SetScrolling(m.scroll.Mode == chat.ModeScrolling)
	if m.input.HasSuggestions() {
		m.footer.SetSuggestions(m.input.Suggestions(), m.input.SelectedSuggestion())
	} else {
		m.footer.SetSuggestions(nil, 0)
	}

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.messages.View(m.log, m.scroll),
		strings.Repeat(" ", ui.GutterWidth),
		m.users.View(m.roster.Names()),
	)

	rule := ui.RuleStyle.Render(strings.Repeat("─", m.width))

	v.SetContent(lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		content,
		rule,
		m.input.View(),
		m.footer.View(),
	))
	return v
}
