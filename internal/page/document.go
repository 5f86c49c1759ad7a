// Package page models the preference page as a small document: fixed
// elements with class lists, form values, inline style and animations, plus
// a stylesheet of defaults. Hosts render it and feed it events; nothing here
// knows about terminals.
package page

import (
	"errors"
	"fmt"
	"time"
)

// Element identities bound at startup.
const (
	IDThemeToggle    = "themeToggle"
	IDAnimateButton  = "animateButton"
	IDResetButton    = "resetButton"
	IDClearStorage   = "clearStorage"
	IDSaveColors     = "saveColors"
	IDPrimaryColor   = "primaryColor"
	IDSecondaryColor = "secondaryColor"
	IDNotification   = "notification"
)

// Classes the stylesheet reacts to.
const (
	ClassDarkTheme     = "dark-theme"
	ClassShow          = "show"
	ClassAnimateButton = "animate-button"
	ClassCard          = "card"
)

// Global style variables.
const (
	VarPrimaryColor   = "--primary-color"
	VarSecondaryColor = "--secondary-color"
)

// Colors declared by the stylesheet and the color input markup.
const (
	DefaultPrimaryColor   = "#3498db"
	DefaultSecondaryColor = "#2ecc71"
)

// ErrNoElement is returned when an element id is not part of the document.
var ErrNoElement = errors.New("no such element")

// Card is the content of one card element.
type Card struct {
	Title string
	Body  string
}

// DefaultCards is the card deck used when none is configured.
func DefaultCards() []Card {
	return []Card{
		{Title: "Theme", Body: "Switch between the light and dark palette."},
		{Title: "Colors", Body: "Pick a primary and a secondary accent."},
		{Title: "Motion", Body: "Replay the entrance animation of every card."},
	}
}

// Document is the live page: root element carrying the style variables,
// body carrying the theme class, and the bound controls and cards.
type Document struct {
	root  *Element
	body  *Element
	byID  map[string]*Element
	order []*Element
	sheet Stylesheet
	clock func() time.Time
}

// Option configures a Document.
type Option func(*Document)

// WithClock sets the clock used to start and finish animations.
func WithClock(clock func() time.Time) Option {
	return func(d *Document) {
		if clock != nil {
			d.clock = clock
		}
	}
}

// WithStylesheet replaces the default stylesheet.
func WithStylesheet(sheet Stylesheet) Option {
	return func(d *Document) {
		d.sheet = sheet
	}
}

// New builds the page markup with the given cards. A nil deck uses
// DefaultCards; an empty one renders no cards.
func New(cards []Card, opts ...Option) *Document {
	d := &Document{
		byID:  make(map[string]*Element),
		sheet: DefaultStylesheet(),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if cards == nil {
		cards = DefaultCards()
	}

	d.root = d.append(newElement(d, "html", ""))
	d.body = d.append(newElement(d, "body", ""))

	d.appendButton(IDThemeToggle, "Toggle Theme")
	d.appendButton(IDAnimateButton, "Animate Cards")
	d.appendButton(IDResetButton, "Reset Button")
	d.appendButton(IDSaveColors, "Save Colors")
	d.appendButton(IDClearStorage, "Clear Storage")

	primary := d.append(newElement(d, "input", IDPrimaryColor))
	primary.SetData("type", "color")
	primary.SetValue(DefaultPrimaryColor)
	secondary := d.append(newElement(d, "input", IDSecondaryColor))
	secondary.SetData("type", "color")
	secondary.SetValue(DefaultSecondaryColor)

	d.append(newElement(d, "div", IDNotification, "notification"))

	for i, c := range cards {
		card := d.append(newElement(d, "section", fmt.Sprintf("card-%d", i+1), ClassCard))
		card.SetText(c.Title)
		card.SetData("body", c.Body)
	}
	return d
}

func (d *Document) append(e *Element) *Element {
	d.order = append(d.order, e)
	if e.id != "" {
		d.byID[e.id] = e
	}
	return e
}

func (d *Document) appendButton(id, label string) {
	btn := d.append(newElement(d, "button", id))
	btn.SetText(label)
}

func (d *Document) now() time.Time {
	return d.clock()
}

// Root is the document element; style variables live on its inline style.
func (d *Document) Root() *Element { return d.root }

// Body holds the theme marker class.
func (d *Document) Body() *Element { return d.body }

// Stylesheet returns the static stylesheet.
func (d *Document) Stylesheet() Stylesheet { return d.sheet }

// ElementByID returns the element with id, or nil.
func (d *Document) ElementByID(id string) *Element {
	return d.byID[id]
}

// MustElement returns the element with id or ErrNoElement.
func (d *Document) MustElement(id string) (*Element, error) {
	e, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("element %q: %w", id, ErrNoElement)
	}
	return e, nil
}

// ElementsByClass returns elements carrying class name in document order.
func (d *Document) ElementsByClass(name string) []*Element {
	var out []*Element
	for _, e := range d.order {
		if e.HasClass(name) {
			out = append(out, e)
		}
	}
	return out
}

// Cards returns the card elements in document order.
func (d *Document) Cards() []*Element {
	return d.ElementsByClass(ClassCard)
}

// StyleVar returns the computed value of a global style variable: the value
// set on the root inline style, or the stylesheet default.
func (d *Document) StyleVar(name string) string {
	if v, ok := d.root.Property(name); ok {
		return v
	}
	return d.sheet.Vars[name]
}

// SetStyleVar sets a global style variable on the root inline style.
func (d *Document) SetStyleVar(name, value string) {
	d.root.SetProperty(name, value)
}

// Dark reports whether the theme marker class is on the body.
func (d *Document) Dark() bool {
	return d.body.HasClass(ClassDarkTheme)
}

// Dispatch sends an event of type t to the element with id.
func (d *Document) Dispatch(id string, t EventType) error {
	e, err := d.MustElement(id)
	if err != nil {
		return err
	}
	return e.Dispatch(t)
}

// Animating reports whether any element has an animation that has not sent
// its end event yet.
func (d *Document) Animating() bool {
	for _, e := range d.order {
		if !e.current.IsNone() && !e.animEnded {
			return true
		}
	}
	return false
}

// Advance sends animationend to every element whose animation completed by
// now, once per animation run, in document order.
func (d *Document) Advance(now time.Time) error {
	var errs []error
	for _, e := range d.order {
		if !e.finish(now) {
			continue
		}
		if err := e.Dispatch(EventAnimationEnd); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
