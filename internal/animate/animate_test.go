package animate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/sched"
)

func setup(cards int) (*Animator, *page.Document, *sched.Loop) {
	loop := sched.NewLoop(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	deck := make([]page.Card, cards)
	for i := range deck {
		deck[i] = page.Card{Title: string(rune('A' + i))}
	}
	doc := page.New(deck, page.WithClock(loop.Now))
	return New(doc, loop, nil), doc, loop
}

func TestAnimateStaggersInDocumentOrder(t *testing.T) {
	a, doc, loop := setup(3)

	a.Animate()
	for _, card := range doc.Cards() {
		assert.True(t, card.Animation().IsNone(), "cleared before restart")
	}

	loop.Advance(RestartDelay)
	cards := doc.Cards()
	require.Len(t, cards, 3)
	want := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}
	for i, card := range cards {
		got := card.Animation()
		assert.Equal(t, want[i], got.Delay, card.Text())
		assert.Equal(t, "fadeIn", got.Name)
		assert.Equal(t, 600*time.Millisecond, got.Duration)
		assert.Equal(t, page.EaseOut, got.Easing)
	}
	assert.Equal(t, "fadeIn 0.6s ease-out 0.1s", cards[1].Animation().String())
	assert.Equal(t, "fadeIn 0.6s ease-out 0.2s", cards[2].Animation().String())
}

func TestAnimateAgainRestartsInFlight(t *testing.T) {
	a, doc, loop := setup(2)

	a.Animate()
	loop.Advance(RestartDelay)
	first := doc.Cards()[1].AnimationStartedAt()

	loop.Advance(300 * time.Millisecond)
	a.Animate()
	assert.True(t, doc.Cards()[1].Animation().IsNone())
	loop.Advance(RestartDelay)

	restarted := doc.Cards()[1].AnimationStartedAt()
	assert.Equal(t, first.Add(300*time.Millisecond+RestartDelay), restarted)
	assert.Equal(t, CardAnimation(1), doc.Cards()[1].Animation())
}

func TestCardsSendEndEventsWhenFinished(t *testing.T) {
	a, doc, loop := setup(3)
	var ended []string
	for _, card := range doc.Cards() {
		card.AddEventListener(page.EventAnimationEnd, func(ev page.Event) error {
			ended = append(ended, ev.Target.Text())
			return nil
		})
	}

	a.Animate()
	loop.Advance(RestartDelay)
	loop.Advance(FadeIn.Duration + Stagger)
	require.NoError(t, doc.Advance(loop.Now()))
	assert.Equal(t, []string{"A", "B"}, ended)

	loop.Advance(Stagger)
	require.NoError(t, doc.Advance(loop.Now()))
	assert.Equal(t, []string{"A", "B", "C"}, ended)
}

func TestAnimateWithoutCards(t *testing.T) {
	a, _, loop := setup(0)
	a.Animate()
	assert.Zero(t, loop.Pending())
}
