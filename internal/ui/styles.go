// Package ui provides Charm-based UI components for tinct
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette, replaced by ApplyPalette
	Primary    = DefaultPalette().Primary
	Secondary  = DefaultPalette().Secondary
	Accent     = DefaultPalette().Accent
	Info       = DefaultPalette().Info
	Success    = DefaultPalette().Success
	Warning    = DefaultPalette().Warning
	Error      = DefaultPalette().Error
	Muted      = DefaultPalette().Muted
	Background = DefaultPalette().Background
	Foreground = DefaultPalette().Foreground
	Border     = DefaultPalette().Border
	Highlight  = DefaultPalette().Highlight

	// Text styles
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style
	HeaderStyle  lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style

	activePalette = DefaultPalette()
)

func init() {
	buildStyles()
}

// ApplyPalette switches the package colors and rebuilds every style.
func ApplyPalette(p Palette) {
	activePalette = p
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Info = p.Info
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Background = p.Background
	Foreground = p.Foreground
	Border = p.Border
	Highlight = p.Highlight
	buildStyles()
}

// ActivePalette returns the palette last applied.
func ActivePalette() Palette {
	return activePalette
}

func fg(c lipgloss.Color) lipgloss.Style {
	if activePalette.Disabled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

func buildStyles() {
	Tagline = fg(Muted).
		Italic(true)

	SuccessStyle = fg(Success).
		Bold(true)

	WarningStyle = fg(Warning)

	ErrorStyle = fg(Error).
		Bold(true)

	MutedStyle = fg(Muted)

	HintStyle = fg(Muted).
		Italic(true)

	HeaderStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true)
	if !activePalette.Disabled {
		HeaderStyle = HeaderStyle.
			Foreground(Contrast(Primary)).
			Background(Primary)
	}

	TableHeader = fg(Primary).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Muted).
		Padding(0, 1)

	TableCell = lipgloss.NewStyle().
		Padding(0, 1)
}

// PrimaryStyle renders text in the primary accent.
func PrimaryStyle() lipgloss.Style {
	return fg(Primary).Bold(true)
}

// Header renders a screen title bar.
func Header(title string) string {
	return HeaderStyle.Render(title)
}

// Swatch renders a two-cell block filled with color.
func Swatch(color string) string {
	hex, ok := NormalizeHex(color)
	if !ok || activePalette.Disabled {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
