package ui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/tinct/internal/app"
	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/prefs"
	"github.com/iiroan/tinct/internal/store"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	t     *testing.T
	now   time.Time
	app   *app.App
	store *store.MemoryStore
	model PageModel
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	s := store.NewMemoryStore()
	a, err := app.New(app.Options{Store: s, Start: epoch})
	require.NoError(t, err)
	require.NoError(t, a.Start())

	h := &harness{t: t, now: epoch, app: a, store: s}
	h.model = NewPageModel(a, func() time.Time { return h.now }, nil, true)
	return h
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	return tea.KeyPressMsg{Code: []rune(k)[0], Text: k}
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.model.Update(msg)
	model, ok := next.(PageModel)
	require.True(h.t, ok)
	h.model = model
	return cmd
}

func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

func (h *harness) typeText(s string) {
	h.t.Helper()
	for _, r := range s {
		h.send(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func (h *harness) clearInput() {
	h.t.Helper()
	for range 7 {
		h.press("backspace")
	}
}

func (h *harness) frameAfter(d time.Duration) {
	h.t.Helper()
	h.now = h.now.Add(d)
	h.send(frameMsg(h.now))
}

func (h *harness) stored(key string) (string, bool) {
	h.t.Helper()
	v, ok, err := h.store.Get(key)
	require.NoError(h.t, err)
	return v, ok
}

func TestHotkeyTogglesThemeAndShowsToast(t *testing.T) {
	h := newHarness(t)

	h.press("t")

	assert.True(t, h.app.Doc.Dark())
	v, ok := h.stored(prefs.KeyDarkTheme)
	require.True(t, ok)
	assert.Equal(t, "true", v)
	assert.Contains(t, h.model.renderToast(80), prefs.MsgThemeSaved)
	assert.True(t, h.model.ticking)
}

func TestToastHidesAfterDelay(t *testing.T) {
	h := newHarness(t)
	h.press("t")

	h.frameAfter(2999 * time.Millisecond)
	assert.NotEmpty(t, h.model.renderToast(80))

	h.frameAfter(time.Millisecond)
	assert.Empty(t, h.model.renderToast(80))
	assert.False(t, h.model.ticking)
}

func TestEnterClicksSelectedControl(t *testing.T) {
	h := newHarness(t)

	h.press("enter")
	assert.True(t, h.app.Doc.Dark())

	h.press("down", "space")
	assert.True(t, h.app.Pressed())
}

func TestQuickLaunchPressesAndReleasesAnimate(t *testing.T) {
	h := newHarness(t)

	h.press("2")
	require.True(t, h.app.Pressed())
	assert.Equal(t, 1, h.model.list.Index())

	h.frameAfter(page.PressAnimation.Duration)
	assert.False(t, h.app.Pressed())
}

func TestResetHotkeyReleasesAnimate(t *testing.T) {
	h := newHarness(t)

	h.press("a")
	require.True(t, h.app.Pressed())
	h.press("r")
	assert.False(t, h.app.Pressed())
}

func TestPickerCommitThenSave(t *testing.T) {
	h := newHarness(t)

	h.press("tab")
	require.Equal(t, focusPrimary, h.model.focus)
	h.clearInput()
	h.typeText("#112233")
	h.press("tab")
	require.Equal(t, focusSecondary, h.model.focus)
	h.clearInput()
	h.typeText("#ABCDEF")
	h.press("tab")
	require.Equal(t, focusControls, h.model.focus)

	assert.Equal(t, "#112233", h.app.Doc.ElementByID(page.IDPrimaryColor).Value())
	assert.Equal(t, "#abcdef", h.app.Doc.ElementByID(page.IDSecondaryColor).Value())
	assert.Equal(t, page.DefaultPrimaryColor, h.app.Doc.StyleVar(page.VarPrimaryColor))

	h.press("s")

	v, ok := h.stored(prefs.KeyPrimaryColor)
	require.True(t, ok)
	assert.Equal(t, "#112233", v)
	v, ok = h.stored(prefs.KeySecondaryColor)
	require.True(t, ok)
	assert.Equal(t, "#abcdef", v)
	assert.Equal(t, "#112233", h.app.Doc.StyleVar(page.VarPrimaryColor))
	assert.EqualValues(t, "#112233", ActivePalette().Primary)
}

func TestPickerRejectsInvalidValue(t *testing.T) {
	h := newHarness(t)

	h.press("tab")
	h.clearInput()
	h.typeText("#12zz45")
	h.press("enter")

	assert.Equal(t, page.DefaultPrimaryColor, h.app.Doc.ElementByID(page.IDPrimaryColor).Value())
	assert.True(t, h.model.primary.invalid)
	assert.Contains(t, h.model.status, "#rrggbb")

	h.press("esc")
	assert.Equal(t, page.DefaultPrimaryColor, h.model.primary.Value())
	assert.Empty(t, h.model.status)
	assert.Equal(t, focusPrimary, h.model.focus)
}

func TestPickerFollowsClear(t *testing.T) {
	h := newHarness(t)

	h.press("tab")
	h.clearInput()
	h.typeText("#000000")
	h.press("shift+tab")
	require.Equal(t, focusControls, h.model.focus)
	h.press("s")
	require.Equal(t, "#000000", h.model.primary.Value())

	h.press("c")

	_, ok := h.stored(prefs.KeyPrimaryColor)
	assert.False(t, ok)
	assert.Contains(t, h.model.renderToast(80), prefs.MsgPrefsCleared)
	assert.Equal(t, page.DefaultPrimaryColor, h.model.primary.Value())
}

func TestCardsFadeDuringAnimation(t *testing.T) {
	h := newHarness(t)
	cards := h.app.Doc.Cards()
	require.Len(t, cards, 3)

	h.press("a")
	h.frameAfter(100 * time.Millisecond)

	running := cardVisibility(cards[0], h.app.Loop.Now())
	assert.Greater(t, running, 0.0)
	assert.Less(t, running, 1.0)
	assert.Equal(t, 1.0, cardVisibility(cards[2], h.app.Loop.Now()), "delayed cards draw unanimated")

	h.frameAfter(time.Second)
	for _, c := range cards {
		assert.Equal(t, 1.0, cardVisibility(c, h.app.Loop.Now()))
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			h := newHarness(t)
			cmd := h.send(keyMsg(k))
			require.NotNil(t, cmd)
			assert.True(t, h.model.quitting)
		})
	}
}

func TestQuitLettersTypeIntoPicker(t *testing.T) {
	h := newHarness(t)
	h.press("tab")
	h.clearInput()

	h.press("q")

	assert.False(t, h.model.quitting)
	assert.Equal(t, "q", h.model.primary.Value())
}

func TestStoreErrorShowsInStatus(t *testing.T) {
	s := failingStore{MemoryStore: store.NewMemoryStore()}
	a, err := app.New(app.Options{Store: s, Start: epoch})
	require.NoError(t, err)
	m := NewPageModel(a, func() time.Time { return epoch }, nil, true)

	next, _ := m.Update(keyMsg("t"))
	m = next.(PageModel)

	assert.Contains(t, m.status, "quota")
	assert.True(t, strings.Contains(m.renderLeftPanel(60), "quota"))
}

func TestPageLayout(t *testing.T) {
	wide := calculatePageLayout(120, 40)
	assert.False(t, wide.stacked)
	assert.Equal(t, 120, wide.leftWidth+wide.rightWidth+2)

	narrow := calculatePageLayout(60, 40)
	assert.True(t, narrow.stacked)
	assert.Equal(t, 60, narrow.leftWidth)
}

type failingStore struct {
	*store.MemoryStore
}

func (failingStore) Set(string, string) error { return errQuota }

var errQuota = quotaError{}

type quotaError struct{}

func (quotaError) Error() string { return "quota exceeded" }
