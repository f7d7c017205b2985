package ui

import (
	"github.com/parleyhq/parley/internal/logger"
)

// ViewContext holds the layout for one terminal size. It is a plain
// value recomputed on every resize; regions receive explicit dimensions
// rather than consulting shared state.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	InputHeight   int
	ContentHeight int
	MessageWidth  int
	RosterWidth   int
}

// Layout computes region dimensions for a terminal of width x height.
// notice reserves an extra header line for the update banner.
func Layout(width, height int, notice bool) ViewContext {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v := ViewContext{
		TerminalWidth:  width,
		TerminalHeight: height,
		HeaderHeight:   HeaderHeight,
		InputHeight:    InputHeight,
	}
	if notice {
		v.HeaderHeight += NoticeHeight
	}

	v.ContentHeight = height - v.HeaderHeight - v.InputHeight
	if v.ContentHeight < 1 {
		v.ContentHeight = 1
	}

	v.MessageWidth = width * MessageWidthPercent / 100
	if v.MessageWidth < 1 {
		v.MessageWidth = 1
	}
	v.RosterWidth = width - v.MessageWidth - GutterWidth
	if v.RosterWidth < 1 {
		v.RosterWidth = 1
	}

	logger.WithComponent("ui").Debug("layout computed",
		"width", width,
		"height", height,
		"headerHeight", v.HeaderHeight,
		"contentHeight", v.ContentHeight,
		"messageWidth", v.MessageWidth,
		"rosterWidth", v.RosterWidth,
	)
	return v
}
