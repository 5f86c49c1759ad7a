package ui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/iiroan/tinct/internal/page"
)

// colorPicker edits the value of a color input element. Only a complete
// "#rrggbb" value is written back; anything else leaves the element alone.
type colorPicker struct {
	label   string
	el      *page.Element
	input   textinput.Model
	invalid bool
}

func newColorPicker(label string, el *page.Element) colorPicker {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "#rrggbb"
	ti.CharLimit = 7
	ti.SetWidth(8)
	ti.SetValue(el.Value())
	return colorPicker{label: label, el: el, input: ti}
}

func (p *colorPicker) Focus() tea.Cmd {
	p.invalid = false
	p.input.SetValue(p.el.Value())
	p.input.CursorEnd()
	return p.input.Focus()
}

// Blur commits the typed value.
func (p *colorPicker) Blur() {
	p.Commit()
	p.input.Blur()
}

func (p *colorPicker) Focused() bool {
	return p.input.Focused()
}

// Commit writes a valid value to the element and reports whether it did.
func (p *colorPicker) Commit() bool {
	hex, ok := NormalizeHex(p.input.Value())
	if !ok {
		p.invalid = p.input.Value() != p.el.Value()
		return false
	}
	p.invalid = false
	p.el.SetValue(hex)
	p.input.SetValue(hex)
	return true
}

// Revert drops the typed value.
func (p *colorPicker) Revert() {
	p.invalid = false
	p.input.SetValue(p.el.Value())
	p.input.CursorEnd()
}

// Sync follows the element while the picker is not being edited, so stored
// values and clears show up.
func (p *colorPicker) Sync() {
	if p.input.Focused() {
		return
	}
	if p.input.Value() != p.el.Value() {
		p.input.SetValue(p.el.Value())
	}
	p.invalid = false
}

func (p colorPicker) Update(msg tea.Msg) (colorPicker, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if _, ok := NormalizeHex(p.input.Value()); ok {
		p.invalid = false
	}
	return p, cmd
}

func (p colorPicker) Value() string {
	return p.input.Value()
}

func (p colorPicker) View() string {
	return p.input.View()
}
