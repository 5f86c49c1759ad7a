package ui

import (
	"image/color"
	"strings"

	lipglossv2 "charm.land/lipgloss/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iiroan/tinct/internal/page"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

const (
	themeLight = "light"
	themeDark  = "dark"
)

// ThemeNames returns supported palette names.
func ThemeNames() []string {
	return []string{themeLight, themeDark}
}

// PaletteByName returns a palette by theme name.
func PaletteByName(name string) Palette {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case themeDark:
		return Palette{
			Name:       themeDark,
			Primary:    lipgloss.Color(page.DefaultPrimaryColor),
			Secondary:  lipgloss.Color(page.DefaultSecondaryColor),
			Accent:     lipgloss.Color("#F1C40F"),
			Info:       lipgloss.Color("#5DADE2"),
			Success:    lipgloss.Color("#58D68D"),
			Warning:    lipgloss.Color("#F5B041"),
			Error:      lipgloss.Color("#EC7063"),
			Muted:      lipgloss.Color("#95A5A6"),
			Background: lipgloss.Color("#1A1A1A"),
			Surface:    lipgloss.Color("#2D2D2D"),
			Foreground: lipgloss.Color("#F5F5F5"),
			Border:     lipgloss.Color("#444444"),
			Highlight:  lipgloss.Color("#FFFFFF"),
		}
	default:
		return Palette{
			Name:       themeLight,
			Primary:    lipgloss.Color(page.DefaultPrimaryColor),
			Secondary:  lipgloss.Color(page.DefaultSecondaryColor),
			Accent:     lipgloss.Color("#D4AC0D"),
			Info:       lipgloss.Color("#2E86C1"),
			Success:    lipgloss.Color("#28B463"),
			Warning:    lipgloss.Color("#CA6F1E"),
			Error:      lipgloss.Color("#CB4335"),
			Muted:      lipgloss.Color("#7F8C8D"),
			Background: lipgloss.Color("#F5F5F5"),
			Surface:    lipgloss.Color("#FFFFFF"),
			Foreground: lipgloss.Color("#333333"),
			Border:     lipgloss.Color("#DDDDDD"),
			Highlight:  lipgloss.Color("#000000"),
		}
	}
}

// DefaultPalette returns the light palette.
func DefaultPalette() Palette {
	return PaletteByName(themeLight)
}

// PaletteFor returns the palette the document currently asks for: dark or
// light following the theme class, accents from the style variables.
func PaletteFor(doc *page.Document) Palette {
	name := themeLight
	if doc.Dark() {
		name = themeDark
	}
	p := PaletteByName(name)
	p.Primary = colorOr(doc.StyleVar(page.VarPrimaryColor), p.Primary)
	p.Secondary = colorOr(doc.StyleVar(page.VarSecondaryColor), p.Secondary)
	return p
}

// NormalizeHex accepts the "#rrggbb" form a color input produces and returns
// it lower-cased.
func NormalizeHex(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return "", false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "", false
		}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

// Blend mixes from toward to by t in Lab space. Unparseable inputs return to.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	a, errA := colorful.Hex(string(from))
	b, errB := colorful.Hex(string(to))
	if errA != nil || errB != nil {
		return to
	}
	switch {
	case t <= 0:
		return lipgloss.Color(a.Hex())
	case t >= 1:
		return lipgloss.Color(b.Hex())
	}
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}

// Contrast picks black or white text for a background color.
func Contrast(bg lipgloss.Color) lipgloss.Color {
	c, err := colorful.Hex(string(bg))
	if err != nil {
		return lipgloss.Color("#FFFFFF")
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}

func colorOr(value string, fallback lipgloss.Color) lipgloss.Color {
	if hex, ok := NormalizeHex(value); ok {
		return lipgloss.Color(hex)
	}
	return fallback
}

// v2 converts a palette color for the Bubble Tea views.
func v2(c lipgloss.Color) color.Color {
	return lipglossv2.Color(string(c))
}
