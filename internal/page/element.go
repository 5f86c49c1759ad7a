package page

import (
	"errors"
	"slices"
	"time"
)

// EventType names an event dispatched on an element.
type EventType string

const (
	EventClick        EventType = "click"
	EventAnimationEnd EventType = "animationend"
)

// Event is delivered to listeners registered on the target element.
type Event struct {
	Type   EventType
	Target *Element
}

// Listener handles an event. A returned error is handed back to whoever
// dispatched the event.
type Listener func(Event) error

// Element is a node of the document: an identity, a class list, text, a
// form value, inline style properties, and an animation.
type Element struct {
	doc *Document

	id      string
	tag     string
	classes []string
	text    string
	value   string
	style   map[string]string
	data    map[string]string

	inline    *Animation
	current   Animation
	animStart time.Time
	animEnded bool

	listeners map[EventType][]Listener
}

func newElement(doc *Document, tag, id string, classes ...string) *Element {
	return &Element{
		doc:       doc,
		id:        id,
		tag:       tag,
		classes:   slices.Clone(classes),
		style:     make(map[string]string),
		data:      make(map[string]string),
		listeners: make(map[EventType][]Listener),
	}
}

func (e *Element) ID() string  { return e.id }
func (e *Element) Tag() string { return e.tag }

// Classes returns the class list in insertion order.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// HasClass reports whether name is in the class list.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// AddClass adds name if it is not present yet.
func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
	e.recompute()
}

// RemoveClass removes name if present.
func (e *Element) RemoveClass(name string) {
	idx := slices.Index(e.classes, name)
	if idx < 0 {
		return
	}
	e.classes = slices.Delete(e.classes, idx, idx+1)
	e.recompute()
}

// ToggleClass flips name and reports whether it is present afterwards.
func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

func (e *Element) Text() string        { return e.text }
func (e *Element) SetText(text string) { e.text = text }

// Value is the form value of an input element.
func (e *Element) Value() string         { return e.value }
func (e *Element) SetValue(value string) { e.value = value }

// Data returns a data attribute.
func (e *Element) Data(key string) string { return e.data[key] }

func (e *Element) SetData(key, value string) { e.data[key] = value }

// Property returns an inline style property.
func (e *Element) Property(name string) (string, bool) {
	v, ok := e.style[name]
	return v, ok
}

// SetProperty sets an inline style property.
func (e *Element) SetProperty(name, value string) {
	e.style[name] = value
}

// Animation returns the animation currently in effect: the inline one when
// set, otherwise the stylesheet rule matching a class.
func (e *Element) Animation() Animation {
	return e.current
}

// SetAnimation sets the inline animation property. Setting the value already
// in effect does not restart it; going through None first does.
func (e *Element) SetAnimation(a Animation) {
	e.inline = &a
	e.recompute()
}

// AnimationStartedAt returns when the current animation was (re)started.
func (e *Element) AnimationStartedAt() time.Time {
	return e.animStart
}

// AnimationPhase reports where the current animation stands at now and the
// linear progress of its active interval.
func (e *Element) AnimationPhase(now time.Time) (Phase, float64) {
	if e.current.IsNone() {
		return PhaseIdle, 0
	}
	begin := e.animStart.Add(e.current.Delay)
	end := begin.Add(e.current.Duration)
	switch {
	case now.Before(begin):
		return PhaseDelayed, 0
	case !now.Before(end):
		return PhaseFinished, 1
	default:
		return PhaseRunning, float64(now.Sub(begin)) / float64(e.current.Duration)
	}
}

// AddEventListener registers fn for events of type t.
func (e *Element) AddEventListener(t EventType, fn Listener) {
	e.listeners[t] = append(e.listeners[t], fn)
}

// Dispatch delivers an event of type t to every listener in registration
// order. Listener errors do not stop delivery; they are joined.
func (e *Element) Dispatch(t EventType) error {
	ev := Event{Type: t, Target: e}
	var errs []error
	for _, fn := range slices.Clone(e.listeners[t]) {
		if err := fn(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Click dispatches a click event.
func (e *Element) Click() error {
	return e.Dispatch(EventClick)
}

func (e *Element) recompute() {
	var next Animation
	if e.inline != nil {
		next = *e.inline
	} else {
		next = e.doc.sheet.animationFor(e.classes)
	}
	if next == e.current {
		return
	}
	e.current = next
	e.animEnded = false
	if !next.IsNone() {
		e.animStart = e.doc.now()
	}
}

// finish marks the animation ended if it is due and reports whether the end
// event should be sent.
func (e *Element) finish(now time.Time) bool {
	if e.animEnded {
		return false
	}
	phase, _ := e.AnimationPhase(now)
	if phase != PhaseFinished {
		return false
	}
	e.animEnded = true
	return true
}
