package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Header represents the top header bar
type Header struct {
	width     int
	room      string
	userCount int
	connected bool
	notice    string // update banner text, empty when none
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetRoom sets the room name to display
func (h *Header) SetRoom(room string) {
	h.room = room
}

// SetUserCount sets the user count to display
func (h *Header) SetUserCount(n int) {
	h.userCount = n
}

// SetConnected sets the connection indicator
func (h *Header) SetConnected(connected bool) {
	h.connected = connected
}

// SetNotice sets the update banner. An empty string hides the line.
func (h *Header) SetNotice(notice string) {
	h.notice = notice
}

// HasNotice reports whether the banner line is visible, which costs one
// extra header row in the layout.
func (h *Header) HasNotice() bool {
	return h.notice != ""
}

// View renders the header (one line, plus the notice line when set)
func (h *Header) View() string {
	titleText := " parley"

	status := "connected"
	if !h.connected {
		status = "disconnected"
	}
	var rightText string
	if h.room != "" {
		rightText = fmt.Sprintf("%s · %d users · %s ", h.room, h.userCount, status)
	} else {
		rightText = status + " "
	}

	// "·" separators are multi-byte; measure display width, not bytes.
	paddingLen := h.width - ansi.StringWidth(titleText) - ansi.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	bar := h.renderGradient(fullContent, status)

	if h.notice == "" {
		return bar
	}
	return bar + "\n" + NoticeStyle.Render(" "+h.notice)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// status is used to locate and mute the connection-status portion of the text.
func (h *Header) renderGradient(content, status string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	// End color: fade to the main background
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	// The render loop below indexes runes, so the status offset has to
	// be a rune index too.
	statusStart := -1
	if byteStart := strings.LastIndex(content, status); byteStart >= 0 {
		statusStart = utf8.RuneCountInString(content[:byteStart])
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		// Interpolation factor (0.0 to 1.0)
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		inStatus := statusStart >= 0 && i >= statusStart

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 7) // Bold for " parley" title

		if inStatus {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
