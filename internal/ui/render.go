package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iiroan/tinct/internal/prefs"
)

// RenderPreferences renders the stored and effective value of every
// preference as a table.
func RenderPreferences(entries []prefs.Entry) string {
	keyWidth := len("preference")
	storedWidth := len("stored")
	for _, e := range entries {
		keyWidth = max(keyWidth, len(e.Key))
		storedWidth = max(storedWidth, len(storedText(e)))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		TableHeader.Width(keyWidth+2).Render("preference"),
		TableHeader.Width(storedWidth+2).Render("stored"),
		TableHeader.Render("effective"),
	)

	rows := []string{header}
	for _, e := range entries {
		stored := storedText(e)
		storedCell := TableCell.Width(storedWidth + 2).Render(stored)
		if !e.Present {
			storedCell = TableCell.Width(storedWidth + 2).Inherit(MutedStyle).Render(stored)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			TableCell.Width(keyWidth+2).Render(e.Key),
			storedCell,
			TableCell.Render(effectiveText(e.Effective)),
		))
	}
	return strings.Join(rows, "\n")
}

func storedText(e prefs.Entry) string {
	if !e.Present {
		return "(unset)"
	}
	return e.Stored
}

func effectiveText(value string) string {
	if _, ok := NormalizeHex(value); ok {
		return Swatch(value) + " " + value
	}
	return value
}

// RenderNotice renders a notification message the way the page toast does.
func RenderNotice(message string) string {
	return SuccessStyle.Render("✔ " + message)
}

// PrintKV prints an indented key and value line to w.
func PrintKV(w io.Writer, key, value string) {
	keyStyle := MutedStyle.Width(12)
	fmt.Fprintf(w, "  %s %s\n", keyStyle.Render(key+":"), value)
}
