package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/parleyhq/parley/internal/chat"
)

func fillLog(n int) *chat.Log {
	l := chat.NewLog()
	for i := 0; i < n; i++ {
		l.Append(chat.NewChat("user", fmt.Sprintf("m%d", i), "12:00:00"))
	}
	return l
}

func TestMessagePaneExactRows(t *testing.T) {
	p := NewMessagePane()
	p.SetSize(40, 12)

	tests := []struct {
		name string
		log  *chat.Log
	}{
		{"empty log pads fully", chat.NewLog()},
		{"few messages pad the rest", fillLog(2)},
		{"full window", fillLog(50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := p.View(tt.log, chat.Scroll{})
			lines := strings.Split(view, "\n")
			// title + rule + 10 content rows
			if len(lines) != 12 {
				t.Errorf("rendered %d lines, want 12", len(lines))
			}
			for i, line := range lines {
				if w := ansi.StringWidth(line); w > 40 {
					t.Errorf("line %d width %d exceeds pane width", i, w)
				}
			}
		})
	}
}

func TestMessagePaneShowsNewestByDefault(t *testing.T) {
	p := NewMessagePane()
	p.SetSize(40, 12) // 10 content rows, capacity 6

	view := p.View(fillLog(10), chat.Scroll{})
	if !strings.Contains(view, "m9") {
		t.Error("newest message missing from live-tail view")
	}
	if strings.Contains(view, "m0") {
		t.Error("message outside the window rendered")
	}
}

func TestMessagePaneScrolledWindow(t *testing.T) {
	p := NewMessagePane()
	p.SetSize(40, 12) // capacity 6

	log := fillLog(10)
	s := chat.Scroll{Position: 4, Mode: chat.ModeScrolling}
	view := p.View(log, s)

	// Window is m0..m5: 4 held back from the bottom, 6 visible.
	if !strings.Contains(view, "m5") {
		t.Error("top of scrolled window missing")
	}
	if strings.Contains(view, "m9") {
		t.Error("newest message rendered while scrolled")
	}
	if !strings.Contains(view, "↑4 messages") {
		t.Error("scroll indicator missing")
	}
}

func TestMessagePaneNoIndicatorAtLiveTail(t *testing.T) {
	p := NewMessagePane()
	p.SetSize(40, 12)
	view := p.View(fillLog(10), chat.Scroll{})
	if strings.Contains(view, "↑") {
		t.Error("scroll indicator rendered in live-tail mode")
	}
}

func TestMessagePaneTallMessagesKeepNewestLines(t *testing.T) {
	p := NewMessagePane()
	p.SetSize(24, 8) // 6 content rows

	l := chat.NewLog()
	long := strings.Repeat("wrap me please ", 6)
	for i := 0; i < 5; i++ {
		l.Append(chat.NewChat("u", long+fmt.Sprintf("tail%d", i), "12:00:00"))
	}
	view := p.View(l, chat.Scroll{})
	lines := strings.Split(view, "\n")
	if len(lines) != 8 {
		t.Fatalf("rendered %d lines, want 8", len(lines))
	}
	// The newest record's final wrapped line must survive the trim.
	if !strings.Contains(view, "tail4") {
		t.Error("newest wrapped line trimmed away")
	}
}
