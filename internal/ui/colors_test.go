package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/prefs"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "#3498db", want: "#3498db", ok: true},
		{in: "#ABCDEF", want: "#abcdef", ok: true},
		{in: "  #112233 ", want: "#112233", ok: true},
		{in: "#abc", ok: false},
		{in: "112233", ok: false},
		{in: "#12zz45", ok: false},
		{in: "#1122334", ok: false},
		{in: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeHex(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlendEndpoints(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	assert.Equal(t, from, Blend(from, to, 0))
	assert.Equal(t, to, Blend(from, to, 1))
	assert.Equal(t, to, Blend(from, to, 2))

	mid := Blend(from, to, 0.5)
	assert.NotEqual(t, from, mid)
	assert.NotEqual(t, to, mid)

	assert.Equal(t, to, Blend("not-a-color", to, 0.5))
}

func TestContrast(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#000000"), Contrast("#F5F5F5"))
	assert.Equal(t, lipgloss.Color("#FFFFFF"), Contrast("#1A1A1A"))
	assert.Equal(t, lipgloss.Color("#FFFFFF"), Contrast(""))
}

func TestPaletteForFollowsDocument(t *testing.T) {
	doc := page.New(nil)

	p := PaletteFor(doc)
	assert.Equal(t, themeLight, p.Name)
	assert.Equal(t, lipgloss.Color(page.DefaultPrimaryColor), p.Primary)

	doc.Body().AddClass(page.ClassDarkTheme)
	doc.SetStyleVar(page.VarPrimaryColor, "#112233")
	doc.SetStyleVar(page.VarSecondaryColor, "garbage")

	p = PaletteFor(doc)
	assert.Equal(t, themeDark, p.Name)
	assert.Equal(t, lipgloss.Color("#112233"), p.Primary)
	assert.Equal(t, lipgloss.Color(page.DefaultSecondaryColor), p.Secondary)
}

func TestPaletteByNameFallsBackToLight(t *testing.T) {
	assert.Equal(t, themeDark, PaletteByName(" Dark ").Name)
	assert.Equal(t, themeLight, PaletteByName("solarized").Name)
	assert.Equal(t, []string{"light", "dark"}, ThemeNames())
}

func TestRenderPreferences(t *testing.T) {
	ApplyTheme(themeLight, true)
	t.Cleanup(func() { ApplyTheme(themeLight, false) })

	out := RenderPreferences([]prefs.Entry{
		{Key: prefs.KeyDarkTheme, Stored: "true", Present: true, Effective: "true"},
		{Key: prefs.KeyPrimaryColor, Effective: page.DefaultPrimaryColor},
	})

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, out, "preference")
	assert.Contains(t, out, prefs.KeyDarkTheme)
	assert.Contains(t, out, "(unset)")
	assert.Contains(t, out, page.DefaultPrimaryColor)
}

func TestControlHotkeysAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, c := range Controls() {
		prev, dup := seen[c.Hotkey]
		require.False(t, dup, "%s and %s share hotkey %s", prev, c.ID, c.Hotkey)
		seen[c.Hotkey] = c.ID

		got, ok := controlByHotkey(c.Hotkey)
		require.True(t, ok)
		assert.Equal(t, c.ID, got.ID)
	}
	_, ok := controlByHotkey("x")
	assert.False(t, ok)
}
