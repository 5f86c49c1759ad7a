// Package notify shows transient status messages on the notification element.
package notify

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/sched"
)

// HideDelay is how long a message stays visible.
const HideDelay = 3000 * time.Millisecond

// Presenter drives the notification element.
//
// Every Show schedules its own hide timer and nothing cancels it, so an
// earlier timer hides the element even when a newer message is on screen.
type Presenter struct {
	el     *page.Element
	sched  sched.Scheduler
	logger *log.Logger
}

// New returns a presenter for el. A nil logger discards debug output.
func New(el *page.Element, s sched.Scheduler, logger *log.Logger) *Presenter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Presenter{el: el, sched: s, logger: logger}
}

// Show displays message and schedules the hide.
func (p *Presenter) Show(message string) {
	p.el.SetText(message)
	p.el.AddClass(page.ClassShow)
	p.logger.Debug("notification shown", "message", message)

	p.sched.AfterFunc(HideDelay, func() {
		p.el.RemoveClass(page.ClassShow)
	})
}

// Visible reports whether the notification is showing.
func (p *Presenter) Visible() bool {
	return p.el.HasClass(page.ClassShow)
}

// Message returns the last message shown.
func (p *Presenter) Message() string {
	return p.el.Text()
}
