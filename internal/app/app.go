// Package app wires the page controls to the preference operations.
//
// App is built once at startup and owns every collaborator, so handlers
// never reach for package-level element handles.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iiroan/tinct/internal/animate"
	"github.com/iiroan/tinct/internal/notify"
	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/prefs"
	"github.com/iiroan/tinct/internal/sched"
	"github.com/iiroan/tinct/internal/store"
)

// Options configures New.
type Options struct {
	Store  store.Store
	Cards  []page.Card
	Start  time.Time
	Logger *log.Logger
}

// App is the explicit context passed to every control handler.
type App struct {
	Doc      *page.Document
	Loop     *sched.Loop
	Store    store.Store
	Applier  *prefs.Applier
	Notifier *notify.Presenter
	Animator *animate.Animator

	logger     *log.Logger
	animateBtn *page.Element
}

// New builds the document and binds the controls. An empty Start uses the
// current time.
func New(opts Options) (*App, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("app: store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	start := opts.Start
	if start.IsZero() {
		start = time.Now()
	}

	loop := sched.NewLoop(start)
	doc := page.New(opts.Cards, page.WithClock(loop.Now))

	notifyEl, err := doc.MustElement(page.IDNotification)
	if err != nil {
		return nil, err
	}
	presenter := notify.New(notifyEl, loop, logger)

	applier, err := prefs.NewApplier(opts.Store, doc, presenter, logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		Doc:      doc,
		Loop:     loop,
		Store:    opts.Store,
		Applier:  applier,
		Notifier: presenter,
		Animator: animate.New(doc, loop, logger),
		logger:   logger,
	}
	if err := a.bind(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) bind() error {
	handlers := []struct {
		id    string
		event page.EventType
		fn    page.Listener
	}{
		{page.IDThemeToggle, page.EventClick, a.onThemeToggle},
		{page.IDAnimateButton, page.EventClick, a.onAnimate},
		// The button's own end event stands in for the cards finishing;
		// the cards' end events are not counted.
		{page.IDAnimateButton, page.EventAnimationEnd, a.onAnimateEnd},
		{page.IDResetButton, page.EventClick, a.onReset},
		{page.IDClearStorage, page.EventClick, a.onClearStorage},
		{page.IDSaveColors, page.EventClick, a.onSaveColors},
	}
	for _, h := range handlers {
		el, err := a.Doc.MustElement(h.id)
		if err != nil {
			return err
		}
		el.AddEventListener(h.event, h.fn)
	}
	a.animateBtn = a.Doc.ElementByID(page.IDAnimateButton)
	return nil
}

// Start applies the stored preferences. Call once, after New.
func (a *App) Start() error {
	return a.Applier.LoadAndApply()
}

// Click dispatches a click on the element with id.
func (a *App) Click(id string) error {
	a.logger.Debug("click", "target", id)
	return a.Doc.Dispatch(id, page.EventClick)
}

// Tick moves the run loop to now, then delivers animation end events that
// became due.
func (a *App) Tick(now time.Time) error {
	a.Loop.AdvanceTo(now)
	return a.Doc.Advance(a.Loop.Now())
}

// Busy reports whether timers or animations are still pending.
func (a *App) Busy() bool {
	return a.Loop.Pending() > 0 || a.Doc.Animating()
}

// Pressed reports whether the animate control carries its pressed class.
func (a *App) Pressed() bool {
	return a.animateBtn.HasClass(page.ClassAnimateButton)
}

func (a *App) onThemeToggle(page.Event) error {
	dark := a.Doc.Body().ToggleClass(page.ClassDarkTheme)
	return a.Applier.SaveTheme(dark)
}

func (a *App) onAnimate(ev page.Event) error {
	ev.Target.AddClass(page.ClassAnimateButton)
	a.Animator.Animate()
	return nil
}

func (a *App) onAnimateEnd(ev page.Event) error {
	ev.Target.RemoveClass(page.ClassAnimateButton)
	return nil
}

func (a *App) onReset(page.Event) error {
	a.animateBtn.RemoveClass(page.ClassAnimateButton)
	return nil
}

func (a *App) onClearStorage(page.Event) error {
	return a.Applier.ResetAll()
}

func (a *App) onSaveColors(page.Event) error {
	return a.Applier.ApplyAndPersistColors()
}
