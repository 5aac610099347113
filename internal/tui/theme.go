// Package tui provides terminal styling for launcher diagnostics
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette used for diagnostics
type Theme struct {
	Error   lipgloss.Color
	Warning lipgloss.Color
}

// DefaultTheme returns the default launcher theme
func DefaultTheme() *Theme {
	return &Theme{
		Error:   lipgloss.Color("#FF5555"),
		Warning: lipgloss.Color("#FFB86C"),
	}
}

// Styles contains the pre-built lipgloss styles
type Styles struct {
	Theme *Theme

	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates styled components from a theme. The renderer decides
// the color profile, so styles bound to a non-terminal writer render plain text.
func NewStyles(r *lipgloss.Renderer, theme *Theme) *Styles {
	s := &Styles{Theme: theme}

	s.Error = r.NewStyle().
		Foreground(theme.Error)

	s.Warning = r.NewStyle().
		Foreground(theme.Warning)

	return s
}

// ErrorMessage formats an error message with icon
func (s *Styles) ErrorMessage(message string) string {
	icon := s.Error.Render("✕")
	text := s.Error.Render(message)
	return icon + " " + text
}

// WarningMessage formats a warning message with icon
func (s *Styles) WarningMessage(message string) string {
	icon := s.Warning.Render("!")
	text := s.Warning.Render(message)
	return icon + " " + text
}
