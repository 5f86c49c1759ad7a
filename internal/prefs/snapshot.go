package prefs

import (
	"fmt"

	"github.com/iiroan/tinct/internal/page"
)

// Entry describes one preference: what the store holds and what the page
// currently shows.
type Entry struct {
	Key       string
	Stored    string
	Present   bool
	Effective string
}

// Snapshot reports every preference in Keys order.
func (a *Applier) Snapshot() ([]Entry, error) {
	effective := map[string]string{
		KeyDarkTheme:      fmt.Sprintf("%t", a.doc.Dark()),
		KeyPrimaryColor:   a.doc.StyleVar(page.VarPrimaryColor),
		KeySecondaryColor: a.doc.StyleVar(page.VarSecondaryColor),
	}

	entries := make([]Entry, 0, len(Keys()))
	for _, key := range Keys() {
		value, ok, err := a.store.Get(key)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", key, err)
		}
		entries = append(entries, Entry{
			Key:       key,
			Stored:    value,
			Present:   ok,
			Effective: effective[key],
		})
	}
	return entries, nil
}
