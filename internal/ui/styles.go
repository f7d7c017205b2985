package ui

import "charm.land/lipgloss/v2"

// Color palette - Purple + Cyan/Teal theme. All of these are replaced
// by regenerateStyles when a theme is applied; the initializers exist
// so tests and early renders see sane values.
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBg          = lipgloss.Color("#1F2937") // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorUser        = lipgloss.Color("#A78BFA") // Light purple for sender names
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber for notices
	ColorInfo        = lipgloss.Color("#06B6D4") // Cyan for info messages
	ColorError       = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981") // Green for connected status
)

// Header styles
var (
	HeaderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// Pane chrome
var (
	PaneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	RuleStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)
)

// Message pane styles
var (
	StampStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	SenderStyle = lipgloss.NewStyle().
			Foreground(ColorUser).
			Bold(true)

	MessageTextStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	SystemStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoTextStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Roster styles
var (
	RosterNameStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	RosterOverflowStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)
)

// Input region styles
var (
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	SuggestionStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SuggestionSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorSecondary).
				Bold(true)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Status styles
var (
	StatusConnectedStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	StatusDisconnectedStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)
