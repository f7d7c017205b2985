// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of Parley.
package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/parleyhq/parley/internal/chat"
)

// Theme defines a complete color palette for the application.
// Each theme provides colors for all UI elements, ensuring visual consistency.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for headers, highlights)
	Primary string
	// Secondary is the secondary accent color (used for key hints, info)
	Secondary string

	// Background colors
	Bg string // Main background

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	User    string // Sender names in the message pane
	Warning string // Update notices, scroll indicator
	Error   string // Error messages
	Info    string // Informational messages
	Success string // Connected status

	// Border is the color of pane rules and separators
	Border string
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeLight      ThemeName = "light"
)

// DefaultThemeName is the default theme name
const DefaultThemeName = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		User:        "#A78BFA",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#06B6D4",
		Success:     "#10B981",
		Border:      "#374151",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		User:        "#A3BE8C",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Success:     "#A3BE8C",
		Border:      "#4C566A",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		User:        "#FF79C6",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Info:        "#8BE9FD",
		Success:     "#50FA7B",
		Border:      "#44475A",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6366F1",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		User:        "#7C3AED",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Info:        "#0891B2",
		Success:     "#16A34A",
		Border:      "#D1D5DB",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultThemeName]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultThemeName]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// MessageStyles returns the wrap styles for the current theme.
func MessageStyles() chat.Styles {
	return chat.Styles{
		Stamp:   StampStyle,
		Name:    SenderStyle,
		Text:    MessageTextStyle,
		System:  SystemStyle,
		Error:   ErrorTextStyle,
		Info:    InfoTextStyle,
		Pending: PendingStyle,
	}
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	// Header styles
	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	NoticeStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	// Pane chrome
	PaneTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	RuleStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	ScrollIndicatorStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	// Message pane styles
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

	// Roster styles
	RosterNameStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	RosterOverflowStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	// Input region styles
	InputPromptStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	SuggestionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	SuggestionSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Bold(true)

	// Footer styles
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Status styles
	StatusConnectedStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	StatusDisconnectedStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
