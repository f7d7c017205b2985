package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/parleyhq/parley/internal/chat"
)

// maxSuggestions caps how many mention completions are offered at once.
const maxSuggestions = 5

// Input wraps the single-line message input and the @mention
// autocomplete state that rides along with it.
type Input struct {
	ti          textinput.Model
	suggestions []string
	suggestIdx  int
}

// NewInput creates a focused message input
func NewInput() *Input {
	ti := textinput.New()
	ti.Placeholder = "message..."
	ti.CharLimit = InputCharLimit
	ti.Prompt = InputPromptStyle.Render("> ")
	ti.Focus()
	return &Input{ti: ti}
}

// SetWidth sets the input width
func (i *Input) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	i.ti.SetWidth(width)
}

// Update forwards msg to the underlying text input.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.ti, cmd = i.ti.Update(msg)
	return cmd
}

// Value returns the current input text.
func (i *Input) Value() string {
	return i.ti.Value()
}

// SetValue replaces the input text and moves the cursor to the end.
func (i *Input) SetValue(value string) {
	i.ti.SetValue(value)
	i.ti.CursorEnd()
}

// Reset clears the input and any active suggestions.
func (i *Input) Reset() {
	i.ti.SetValue("")
	i.ClearSuggestions()
}

// View renders the input line.
func (i *Input) View() string {
	return i.ti.View()
}

// mentionFragment extracts a trailing "@fragment" from value: an @ at
// the start of a word, with no space after it, still being typed at the
// end of the line. Returns the fragment (may be empty, meaning a bare
// @), the index of the @, and whether one was found.
func mentionFragment(value string) (frag string, at int, ok bool) {
	at = strings.LastIndex(value, "@")
	if at < 0 {
		return "", 0, false
	}
	if at > 0 && value[at-1] != ' ' {
		return "", 0, false
	}
	frag = value[at+1:]
	if strings.Contains(frag, " ") {
		return "", 0, false
	}
	return frag, at, true
}

// RefreshSuggestions recomputes mention completions from the current
// input text against the roster. Call after every edit.
func (i *Input) RefreshSuggestions(roster *chat.Roster) {
	frag, _, ok := mentionFragment(i.ti.Value())
	if !ok {
		i.ClearSuggestions()
		return
	}
	matches := roster.Matching(frag)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	if len(matches) == 0 {
		i.ClearSuggestions()
		return
	}
	// Keep the selection stable across keystrokes when possible.
	if i.suggestIdx >= len(matches) {
		i.suggestIdx = 0
	}
	i.suggestions = matches
}

// HasSuggestions reports whether the completion list is showing.
func (i *Input) HasSuggestions() bool {
	return len(i.suggestions) > 0
}

// Suggestions returns the current completion candidates.
func (i *Input) Suggestions() []string {
	return i.suggestions
}

// SelectedSuggestion returns the index of the highlighted candidate.
func (i *Input) SelectedSuggestion() int {
	return i.suggestIdx
}

// CycleSuggestion advances the highlight (tab).
func (i *Input) CycleSuggestion() {
	if len(i.suggestions) == 0 {
		return
	}
	i.suggestIdx = (i.suggestIdx + 1) % len(i.suggestions)
}

// AcceptSuggestion replaces the trailing @fragment with the highlighted
// name and a trailing space, then dismisses the list.
func (i *Input) AcceptSuggestion() {
	if len(i.suggestions) == 0 {
		return
	}
	value := i.ti.Value()
	_, at, ok := mentionFragment(value)
	if !ok {
		i.ClearSuggestions()
		return
	}
	name := i.suggestions[i.suggestIdx]
	i.ti.SetValue(value[:at] + "@" + name + " ")
	i.ti.CursorEnd()
	i.ClearSuggestions()
}

// ClearSuggestions dismisses the completion list.
func (i *Input) ClearSuggestions() {
	i.suggestions = nil
	i.suggestIdx = 0
}
