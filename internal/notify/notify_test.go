package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/sched"
)

func setup() (*Presenter, *sched.Loop) {
	loop := sched.NewLoop(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	doc := page.New(nil, page.WithClock(loop.Now))
	return New(doc.ElementByID(page.IDNotification), loop, nil), loop
}

func TestShowThenHideAfterDelay(t *testing.T) {
	p, loop := setup()

	p.Show("Theme preference saved!")
	assert.True(t, p.Visible())
	assert.Equal(t, "Theme preference saved!", p.Message())

	loop.Advance(HideDelay - time.Millisecond)
	assert.True(t, p.Visible())
	loop.Advance(time.Millisecond)
	assert.False(t, p.Visible())
	assert.Equal(t, "Theme preference saved!", p.Message(), "text stays after hide")
}

func TestEarlierTimerHidesNewerMessage(t *testing.T) {
	p, loop := setup()

	p.Show("A")
	loop.Advance(1000 * time.Millisecond)
	p.Show("B")

	loop.Advance(1999 * time.Millisecond)
	assert.True(t, p.Visible())
	assert.Equal(t, "B", p.Message())

	// 3000ms after the first call: the first timer fires.
	loop.Advance(time.Millisecond)
	assert.False(t, p.Visible())
	assert.Equal(t, "B", p.Message())

	// The second timer still fires at 4000ms; the element is already hidden.
	assert.Equal(t, 1, loop.Pending())
	loop.Advance(1000 * time.Millisecond)
	assert.False(t, p.Visible())
	assert.Zero(t, loop.Pending())
}

func TestShowAfterHideRearms(t *testing.T) {
	p, loop := setup()

	p.Show("A")
	loop.Advance(HideDelay)
	p.Show("B")
	assert.True(t, p.Visible())
	loop.Advance(HideDelay)
	assert.False(t, p.Visible())
}
