// Package prefs moves preferences between the store and the page.
package prefs

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/store"
)

// Store keys.
const (
	KeyDarkTheme      = "darkTheme"
	KeyPrimaryColor   = "primaryColor"
	KeySecondaryColor = "secondaryColor"
)

// Keys lists every preference key.
func Keys() []string {
	return []string{KeyDarkTheme, KeyPrimaryColor, KeySecondaryColor}
}

// Notification messages.
const (
	MsgThemeSaved   = "Theme preference saved!"
	MsgColorsSaved  = "Color preferences saved!"
	MsgPrefsCleared = "All preferences cleared!"
)

// Notifier shows a transient message.
type Notifier interface {
	Show(message string)
}

// Applier reads and writes preferences and reflects them on the document.
type Applier struct {
	store    store.Store
	doc      *page.Document
	notifier Notifier
	logger   *log.Logger

	primary   *page.Element
	secondary *page.Element
}

// NewApplier binds the color inputs of doc. It fails when they are missing.
func NewApplier(s store.Store, doc *page.Document, n Notifier, logger *log.Logger) (*Applier, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	primary, err := doc.MustElement(page.IDPrimaryColor)
	if err != nil {
		return nil, err
	}
	secondary, err := doc.MustElement(page.IDSecondaryColor)
	if err != nil {
		return nil, err
	}
	return &Applier{
		store:     s,
		doc:       doc,
		notifier:  n,
		logger:    logger,
		primary:   primary,
		secondary: secondary,
	}, nil
}

// LoadAndApply reflects stored preferences on the document. Only the exact
// text "true" enables the dark theme; absent or empty colors leave the
// stylesheet and markup defaults alone.
func (a *Applier) LoadAndApply() error {
	dark, _, err := a.store.Get(KeyDarkTheme)
	if err != nil {
		return fmt.Errorf("loading %s: %w", KeyDarkTheme, err)
	}
	if dark == "true" {
		a.doc.Body().AddClass(page.ClassDarkTheme)
	}

	if err := a.loadColor(KeyPrimaryColor, page.VarPrimaryColor, a.primary); err != nil {
		return err
	}
	if err := a.loadColor(KeySecondaryColor, page.VarSecondaryColor, a.secondary); err != nil {
		return err
	}

	a.logger.Debug("preferences applied",
		"dark", a.doc.Dark(),
		"primary", a.doc.StyleVar(page.VarPrimaryColor),
		"secondary", a.doc.StyleVar(page.VarSecondaryColor),
	)
	return nil
}

func (a *Applier) loadColor(key, variable string, input *page.Element) error {
	color, _, err := a.store.Get(key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if color == "" {
		return nil
	}
	a.doc.SetStyleVar(variable, color)
	input.SetValue(color)
	return nil
}

// SaveTheme stores the theme flag as "true" or "false".
func (a *Applier) SaveTheme(dark bool) error {
	if err := a.store.Set(KeyDarkTheme, strconv.FormatBool(dark)); err != nil {
		return fmt.Errorf("saving %s: %w", KeyDarkTheme, err)
	}
	a.logger.Info("theme saved", "dark", dark)
	a.notifier.Show(MsgThemeSaved)
	return nil
}

// ApplyAndPersistColors stores the two color input values and applies them.
// A failed write stops the operation; nothing already written is undone.
func (a *Applier) ApplyAndPersistColors() error {
	primary := a.primary.Value()
	secondary := a.secondary.Value()

	if err := a.store.Set(KeyPrimaryColor, primary); err != nil {
		return fmt.Errorf("saving %s: %w", KeyPrimaryColor, err)
	}
	if err := a.store.Set(KeySecondaryColor, secondary); err != nil {
		return fmt.Errorf("saving %s: %w", KeySecondaryColor, err)
	}

	a.doc.SetStyleVar(page.VarPrimaryColor, primary)
	a.doc.SetStyleVar(page.VarSecondaryColor, secondary)

	a.logger.Info("colors saved", "primary", primary, "secondary", secondary)
	a.notifier.Show(MsgColorsSaved)
	return nil
}

// ResetAll removes every preference and restores the defaults on the page.
func (a *Applier) ResetAll() error {
	for _, key := range Keys() {
		if err := a.store.Remove(key); err != nil {
			return fmt.Errorf("clearing %s: %w", key, err)
		}
	}

	a.doc.Body().RemoveClass(page.ClassDarkTheme)
	a.doc.SetStyleVar(page.VarPrimaryColor, page.DefaultPrimaryColor)
	a.doc.SetStyleVar(page.VarSecondaryColor, page.DefaultSecondaryColor)
	a.primary.SetValue(page.DefaultPrimaryColor)
	a.secondary.SetValue(page.DefaultSecondaryColor)

	a.logger.Info("preferences cleared")
	a.notifier.Show(MsgPrefsCleared)
	return nil
}
