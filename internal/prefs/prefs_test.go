package prefs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/store"
)

type recorder struct{ messages []string }

func (r *recorder) Show(message string) { r.messages = append(r.messages, message) }

// failingStore fails Set for one key.
type failingStore struct {
	*store.MemoryStore
	failKey string
}

var errDisk = errors.New("disk full")

func (f failingStore) Set(key, value string) error {
	if key == f.failKey {
		return errDisk
	}
	return f.MemoryStore.Set(key, value)
}

func newApplier(t *testing.T, s store.Store) (*Applier, *page.Document, *recorder) {
	t.Helper()
	doc := page.New(nil)
	rec := &recorder{}
	a, err := NewApplier(s, doc, rec, nil)
	require.NoError(t, err)
	return a, doc, rec
}

func inputs(doc *page.Document) (string, string) {
	return doc.ElementByID(page.IDPrimaryColor).Value(), doc.ElementByID(page.IDSecondaryColor).Value()
}

func TestLoadWithEmptyStoreKeepsDefaults(t *testing.T) {
	a, doc, rec := newApplier(t, store.NewMemoryStore())

	require.NoError(t, a.LoadAndApply())
	assert.False(t, doc.Dark())
	assert.Equal(t, page.DefaultPrimaryColor, doc.StyleVar(page.VarPrimaryColor))
	assert.Equal(t, page.DefaultSecondaryColor, doc.StyleVar(page.VarSecondaryColor))
	_, inline := doc.Root().Property(page.VarPrimaryColor)
	assert.False(t, inline, "nothing overwrote the stylesheet")
	p, s := inputs(doc)
	assert.Equal(t, page.DefaultPrimaryColor, p)
	assert.Equal(t, page.DefaultSecondaryColor, s)
	assert.Empty(t, rec.messages)
}

func TestLoadPartialPreferences(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(KeyDarkTheme, "true"))
	require.NoError(t, s.Set(KeyPrimaryColor, "#abcdef"))
	a, doc, _ := newApplier(t, s)

	require.NoError(t, a.LoadAndApply())
	assert.True(t, doc.Dark())
	assert.Equal(t, "#abcdef", doc.StyleVar(page.VarPrimaryColor))
	assert.Equal(t, page.DefaultSecondaryColor, doc.StyleVar(page.VarSecondaryColor))
	p, sec := inputs(doc)
	assert.Equal(t, "#abcdef", p)
	assert.Equal(t, page.DefaultSecondaryColor, sec)
}

func TestLoadThemeFlagIsExact(t *testing.T) {
	for _, stored := range []string{"false", "TRUE", "1", "yes", ""} {
		t.Run(stored, func(t *testing.T) {
			s := store.NewMemoryStore()
			require.NoError(t, s.Set(KeyDarkTheme, stored))
			a, doc, _ := newApplier(t, s)
			require.NoError(t, a.LoadAndApply())
			assert.False(t, doc.Dark())
		})
	}
}

func TestEmptyStoredColorIsIgnored(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(KeyPrimaryColor, ""))
	a, doc, _ := newApplier(t, s)

	require.NoError(t, a.LoadAndApply())
	_, inline := doc.Root().Property(page.VarPrimaryColor)
	assert.False(t, inline)
}

func TestColorsRoundTrip(t *testing.T) {
	s := store.NewMemoryStore()
	a, doc, rec := newApplier(t, s)
	doc.ElementByID(page.IDPrimaryColor).SetValue("#112233")
	doc.ElementByID(page.IDSecondaryColor).SetValue("#445566")

	require.NoError(t, a.ApplyAndPersistColors())
	assert.Equal(t, []string{MsgColorsSaved}, rec.messages)
	assert.Equal(t, "#112233", doc.StyleVar(page.VarPrimaryColor))
	assert.Equal(t, "#445566", doc.StyleVar(page.VarSecondaryColor))

	fresh, freshDoc, _ := newApplier(t, s)
	require.NoError(t, fresh.LoadAndApply())
	assert.Equal(t, "#112233", freshDoc.StyleVar(page.VarPrimaryColor))
	assert.Equal(t, "#445566", freshDoc.StyleVar(page.VarSecondaryColor))
	p, sec := inputs(freshDoc)
	assert.Equal(t, "#112233", p)
	assert.Equal(t, "#445566", sec)
}

func TestSaveColorsPartialWrite(t *testing.T) {
	s := failingStore{MemoryStore: store.NewMemoryStore(), failKey: KeySecondaryColor}
	a, doc, rec := newApplier(t, s)
	doc.ElementByID(page.IDPrimaryColor).SetValue("#112233")

	err := a.ApplyAndPersistColors()
	require.ErrorIs(t, err, errDisk)
	assert.Empty(t, rec.messages)

	v, ok, _ := s.Get(KeyPrimaryColor)
	assert.True(t, ok, "earlier write is not rolled back")
	assert.Equal(t, "#112233", v)
	_, inline := doc.Root().Property(page.VarPrimaryColor)
	assert.False(t, inline, "style not applied after a failed write")
}

func TestResetAllIsIdempotent(t *testing.T) {
	s := store.NewMemoryStore()
	a, doc, rec := newApplier(t, s)
	require.NoError(t, s.Set(KeyDarkTheme, "true"))
	require.NoError(t, s.Set(KeyPrimaryColor, "#112233"))
	require.NoError(t, s.Set(KeySecondaryColor, "#445566"))
	require.NoError(t, a.LoadAndApply())

	check := func() {
		assert.Zero(t, s.Len())
		assert.False(t, doc.Dark())
		assert.Equal(t, page.DefaultPrimaryColor, doc.StyleVar(page.VarPrimaryColor))
		assert.Equal(t, page.DefaultSecondaryColor, doc.StyleVar(page.VarSecondaryColor))
		p, sec := inputs(doc)
		assert.Equal(t, page.DefaultPrimaryColor, p)
		assert.Equal(t, page.DefaultSecondaryColor, sec)
	}

	require.NoError(t, a.ResetAll())
	check()
	require.NoError(t, a.ResetAll())
	check()
	assert.Equal(t, []string{MsgPrefsCleared, MsgPrefsCleared}, rec.messages)
}

func TestSaveTheme(t *testing.T) {
	s := store.NewMemoryStore()
	a, _, rec := newApplier(t, s)

	require.NoError(t, a.SaveTheme(true))
	v, _, _ := s.Get(KeyDarkTheme)
	assert.Equal(t, "true", v)

	require.NoError(t, a.SaveTheme(false))
	v, _, _ = s.Get(KeyDarkTheme)
	assert.Equal(t, "false", v)
	assert.Equal(t, []string{MsgThemeSaved, MsgThemeSaved}, rec.messages)
}

func TestSnapshot(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(KeyPrimaryColor, "#abcdef"))
	a, _, _ := newApplier(t, s)
	require.NoError(t, a.LoadAndApply())

	entries, err := a.Snapshot()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, Entry{Key: KeyDarkTheme, Effective: "false"}, entries[0])
	assert.Equal(t, Entry{Key: KeyPrimaryColor, Stored: "#abcdef", Present: true, Effective: "#abcdef"}, entries[1])
	assert.Equal(t, Entry{Key: KeySecondaryColor, Effective: page.DefaultSecondaryColor}, entries[2])
}
