// Package animate replays the entrance animation of the card elements.
package animate

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/sched"
)

const (
	// RestartDelay separates clearing an animation from reapplying it, so
	// the reapplied value counts as a new animation.
	RestartDelay = 10 * time.Millisecond
	// Stagger is the extra start delay of each card after the previous one.
	Stagger = 100 * time.Millisecond
)

// FadeIn is the card entrance animation without its per-card delay.
var FadeIn = page.Animation{
	Name:     "fadeIn",
	Duration: 600 * time.Millisecond,
	Easing:   page.EaseOut,
}

// Animator restarts the card animations. There is no way to cancel a run;
// animating again restarts every card from the first one.
type Animator struct {
	doc    *page.Document
	sched  sched.Scheduler
	logger *log.Logger
}

// New returns an animator over the cards of doc.
func New(doc *page.Document, s sched.Scheduler, logger *log.Logger) *Animator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Animator{doc: doc, sched: s, logger: logger}
}

// CardAnimation returns the animation of the card at index i.
func CardAnimation(i int) page.Animation {
	a := FadeIn
	a.Delay = time.Duration(i) * Stagger
	return a
}

// Animate clears every card animation and reapplies the staggered fade-in
// after RestartDelay, in document order.
func (a *Animator) Animate() {
	cards := a.doc.Cards()
	a.logger.Debug("animating cards", "count", len(cards))
	for i, card := range cards {
		card.SetAnimation(page.None)
		anim := CardAnimation(i)
		a.sched.AfterFunc(RestartDelay, func() {
			card.SetAnimation(anim)
		})
	}
}
