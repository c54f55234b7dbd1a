// ============================================================================
// istring - String Utilities
// ============================================================================
//
// Package:     render
// Description: Colors and styles for terminal output
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorAdded   = lipgloss.Color("#10B981") // Emerald
	ColorRemoved = lipgloss.Color("#EF4444") // Red
	ColorValue   = lipgloss.Color("#06B6D4") // Cyan
	ColorNumber  = lipgloss.Color("#F59E0B") // Amber
	ColorName    = lipgloss.Color("#8B5CF6") // Violet
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Styles holds the styles used by a Renderer
type Styles struct {
	Added   lipgloss.Style
	Removed lipgloss.Style
	Bool    lipgloss.Style
	Number  lipgloss.Style
	Null    lipgloss.Style
	Name    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the colored styles bound to renderer r
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Added:   r.NewStyle().Foreground(ColorAdded).Underline(true),
		Removed: r.NewStyle().Foreground(ColorRemoved).Strikethrough(true),
		Bool:    r.NewStyle().Foreground(ColorValue),
		Number:  r.NewStyle().Foreground(ColorNumber),
		Null:    r.NewStyle().Foreground(ColorMuted).Italic(true),
		Name:    r.NewStyle().Foreground(ColorName).Bold(true),
		Muted:   r.NewStyle().Foreground(ColorMuted),
		Error:   r.NewStyle().Foreground(ColorRemoved).Bold(true),
	}
}

// PlainStyles returns styles that render text unchanged
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Added:   plain,
		Removed: plain,
		Bool:    plain,
		Number:  plain,
		Null:    plain,
		Name:    plain,
		Muted:   plain,
		Error:   plain,
	}
}
