package chat

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Styles carries the lipgloss styles Wrap applies to record segments.
// The zero value renders plain text, which the tests lean on.
type Styles struct {
	Stamp   lipgloss.Style // the [HH:MM:SS] prefix
	Name    lipgloss.Style // sender name on chat/pending records
	Text    lipgloss.Style // chat body
	System  lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Pending lipgloss.Style // pending body including the (sending...) tag
}

// pendingTag marks locally echoed messages awaiting confirmation.
const pendingTag = " (sending...)"

// Wrap renders one record into display lines no wider than maxWidth
// columns. Width decisions are made on the ANSI-stripped text so style
// codes never count toward the limit; styling is re-applied per line so
// color and boldness survive the wrap boundary. Continuation lines are
// indented to align under the timestamp bracket.
//
// Wrapping is greedy at word boundaries (spaces). A single word wider
// than maxWidth is placed alone on its own overflowing line rather than
// split mid-word; that is accepted behavior, not a bug. maxWidth < 1 is
// a caller error and is clamped to 1.
//
// Wrap is pure: identical inputs always yield identical lines.
func Wrap(rec Record, maxWidth int, st Styles) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}

	stamp := "[" + rec.Stamp + "]"
	indent := strings.Repeat(" ", ansi.StringWidth(stamp)+1)

	prefix := st.Stamp.Render(stamp) + " "
	plainPrefix := stamp + " "

	body := rec.Text
	bodyStyle := st.Text
	switch rec.Kind {
	case KindChat:
		prefix += st.Name.Render(rec.Name+":") + " "
		plainPrefix += rec.Name + ": "
	case KindPending:
		prefix += st.Name.Render(rec.Name+":") + " "
		plainPrefix += rec.Name + ": "
		body += pendingTag
		bodyStyle = st.Pending
	case KindSystem:
		bodyStyle = st.System
	case KindError:
		bodyStyle = st.Error
	case KindInfo:
		bodyStyle = st.Info
	}

	// Fast path: the whole line fits unwrapped.
	if ansi.StringWidth(plainPrefix+body) <= maxWidth {
		return []string{prefix + bodyStyle.Render(body)}
	}

	var (
		lines      []string
		cur        []string
		curWidth   = ansi.StringWidth(plainPrefix)
		linePrefix = prefix
	)
	flush := func() {
		lines = append(lines, linePrefix+bodyStyle.Render(strings.Join(cur, " ")))
		cur = cur[:0]
		linePrefix = indent
		curWidth = ansi.StringWidth(indent)
	}
	for _, word := range strings.Split(body, " ") {
		w := ansi.StringWidth(word)
		add := w
		if len(cur) > 0 {
			add++ // joining space
		}
		if curWidth+add > maxWidth && len(cur) > 0 {
			flush()
			add = w
		}
		cur = append(cur, word)
		curWidth += add
	}
	if len(cur) > 0 {
		flush()
	}
	return lines
}
