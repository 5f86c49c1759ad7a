package ui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/iiroan/tinct/internal/page"
)

// ControlItem is a clickable control in the controls list.
type ControlItem struct {
	ID        string
	TitleText string
	Details   string
	Hotkey    string
}

// Title returns the control label.
func (c ControlItem) Title() string { return c.TitleText }

// Description returns the control details.
func (c ControlItem) Description() string { return c.Details }

// FilterValue returns the filterable text.
func (c ControlItem) FilterValue() string { return c.TitleText + " " + c.ID }

// Controls returns the page controls in display order.
func Controls() []ControlItem {
	return []ControlItem{
		{ID: page.IDThemeToggle, TitleText: "Toggle Theme", Details: "Switch light and dark, remember the choice", Hotkey: "t"},
		{ID: page.IDAnimateButton, TitleText: "Animate Cards", Details: "Replay the card entrance", Hotkey: "a"},
		{ID: page.IDResetButton, TitleText: "Reset Button", Details: "Release the animate button", Hotkey: "r"},
		{ID: page.IDSaveColors, TitleText: "Save Colors", Details: "Store and apply both picked colors", Hotkey: "s"},
		{ID: page.IDClearStorage, TitleText: "Clear Storage", Details: "Forget every preference", Hotkey: "c"},
	}
}

// controlDelegate renders numbered control rows. pressed reports whether a
// control carries its pressed class.
type controlDelegate struct {
	pressed func(id string) bool

	slot          lipgloss.Style
	title         lipgloss.Style
	selectedTitle lipgloss.Style
	hotkey        lipgloss.Style
	pressedMark   lipgloss.Style
}

func newControlDelegate(p Palette, pressed func(id string) bool) controlDelegate {
	d := controlDelegate{
		pressed:       pressed,
		slot:          lipgloss.NewStyle(),
		title:         lipgloss.NewStyle(),
		selectedTitle: lipgloss.NewStyle().Bold(true),
		hotkey:        lipgloss.NewStyle(),
		pressedMark:   lipgloss.NewStyle().Bold(true),
	}
	if p.Disabled {
		return d
	}
	d.slot = d.slot.Foreground(v2(p.Muted))
	d.title = d.title.Foreground(v2(p.Foreground))
	d.selectedTitle = d.selectedTitle.Foreground(v2(p.Primary))
	d.hotkey = d.hotkey.Foreground(v2(p.Muted))
	d.pressedMark = d.pressedMark.Foreground(v2(p.Secondary))
	return d
}

func (d controlDelegate) Height() int { return 1 }

func (d controlDelegate) Spacing() int { return 0 }

func (d controlDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d controlDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	control, ok := item.(ControlItem)
	if !ok || m.Width() <= 0 {
		return
	}

	isSelected := index == m.Index()
	slot := fmt.Sprintf("%d.", index+1)
	available := max(10, m.Width()-12)
	content := ansi.Truncate(control.TitleText, available, "...")

	prefix := "  "
	titleText := d.title.Render(content)
	if isSelected {
		prefix = "> "
		titleText = d.selectedTitle.Render(content)
	}

	mark := ""
	if d.pressed != nil && d.pressed(control.ID) {
		mark = " " + d.pressedMark.Render("●")
	}

	hint := d.hotkey.Render("[" + control.Hotkey + "]")
	fmt.Fprint(w, prefix+d.slot.Render(slot)+" "+titleText+" "+hint+mark) //nolint:errcheck
}

type pageKeyMap struct {
	Click   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Jump    key.Binding
	Hotkeys key.Binding
	Revert  key.Binding
	Quit    key.Binding
}

func newPageKeyMap() pageKeyMap {
	return pageKeyMap{
		Click: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "click"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "quick click"),
		),
		Hotkeys: key.NewBinding(
			key.WithKeys("t", "a", "r", "s", "c"),
			key.WithHelp("t/a/r/s/c", "controls"),
		),
		Revert: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "revert color"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k pageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Next, k.Hotkeys, k.Quit}
}

func (k pageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Click, k.Jump, k.Hotkeys}, {k.Next, k.Prev, k.Revert, k.Quit}}
}

func matches(b key.Binding, k string) bool {
	for _, candidate := range b.Keys() {
		if candidate == k {
			return true
		}
	}
	return false
}

func controlByHotkey(k string) (ControlItem, bool) {
	for _, c := range Controls() {
		if strings.EqualFold(c.Hotkey, k) && len(k) == 1 {
			return c, true
		}
	}
	return ControlItem{}, false
}
