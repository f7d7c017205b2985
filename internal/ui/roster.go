package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RosterPane renders the user list beside the message pane.
type RosterPane struct {
	width  int
	height int
}

// NewRosterPane creates a new roster pane
func NewRosterPane() *RosterPane {
	return &RosterPane{width: 20, height: 10}
}

// SetSize sets the pane dimensions
func (r *RosterPane) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r.width = width
	r.height = height
}

// View renders the roster: title, rule, then one name per row. Names
// wider than the pane are truncated with an ellipsis; when there are
// more users than rows the last row becomes an overflow count.
func (r *RosterPane) View(names []string) string {
	var b strings.Builder
	b.WriteString(PaneTitleStyle.Render(fmt.Sprintf("Users (%d)", len(names))))
	b.WriteString("\n")
	b.WriteString(RuleStyle.Render(strings.Repeat("─", r.width)))

	rows := r.height - TitleHeight - RuleHeight
	if rows < 1 {
		rows = 1
	}

	visible := names
	overflow := 0
	if len(names) > rows {
		visible = names[:rows-1]
		overflow = len(names) - len(visible)
	}

	for i := 0; i < rows; i++ {
		b.WriteString("\n")
		switch {
		case i < len(visible):
			b.WriteString(RosterNameStyle.Render(runewidth.Truncate(visible[i], r.width, "…")))
		case i == len(visible) && overflow > 0:
			b.WriteString(RosterOverflowStyle.Render(fmt.Sprintf("+%d more", overflow)))
		}
	}
	return b.String()
}
