package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the key-help line under the input. While mention
// suggestions are active it shows those instead.
type Footer struct {
	width       int
	scrolling   bool     // viewport pinned to history
	suggestions []string // active mention completions
	selected    int      // highlighted completion
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetScrolling tells the footer the viewport is pinned to history.
func (f *Footer) SetScrolling(scrolling bool) {
	f.scrolling = scrolling
}

// SetSuggestions shows mention completions in place of the key help.
// Pass nil to restore the help line.
func (f *Footer) SetSuggestions(suggestions []string, selected int) {
	f.suggestions = suggestions
	f.selected = selected
}

// View renders the footer line
func (f *Footer) View() string {
	if len(f.suggestions) > 0 {
		return f.suggestionLine()
	}

	bindings := []KeyBinding{
		{Key: "enter", Desc: "send"},
		{Key: "pgup/dn", Desc: "scroll"},
		{Key: "ctrl+y", Desc: "copy last"},
		{Key: "ctrl+c", Desc: "quit"},
	}
	if f.scrolling {
		bindings = []KeyBinding{
			{Key: "esc", Desc: "live tail"},
			{Key: "↑/↓", Desc: "scroll"},
			{Key: "home/end", Desc: "oldest/newest"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	return FooterStyle.Render(" " + strings.Join(parts, sep))
}

func (f *Footer) suggestionLine() string {
	var parts []string
	for i, s := range f.suggestions {
		if i == f.selected {
			parts = append(parts, SuggestionSelectedStyle.Render(" @"+s+" "))
		} else {
			parts = append(parts, SuggestionStyle.Render("@"+s))
		}
	}
	hint := FooterDescStyle.Render("tab: next · enter: accept")
	return FooterStyle.Render(" " + strings.Join(parts, "  ") + "  " + hint)
}
