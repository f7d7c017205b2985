// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for region sizing
const (
	// HeaderHeight is the height of the header bar in lines
	HeaderHeight = 1

	// NoticeHeight is the extra header line used for update notices
	NoticeHeight = 1

	// InputHeight is the fixed height of the input region
	// (rule + input line + key help)
	InputHeight = 3

	// TitleHeight is the height of pane titles
	TitleHeight = 1

	// RuleHeight is the height of the separator under pane titles
	RuleHeight = 1

	// GutterWidth is the blank column between message and roster panes
	GutterWidth = 1

	// MessageWidthPercent is the share of the terminal width given to
	// the message pane; the roster takes the rest minus the gutter
	MessageWidthPercent = 75

	// MinTerminalWidth is the smallest width layout calculations accept
	MinTerminalWidth = 20

	// MinTerminalHeight is the smallest height layout calculations accept
	MinTerminalHeight = 8

	// InputCharLimit is the character limit for the message input
	InputCharLimit = 512

	// DefaultWrapWidth is used when no terminal size has arrived yet
	DefaultWrapWidth = 80
)
