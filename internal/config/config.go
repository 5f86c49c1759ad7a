// Package config handles configuration loading and validation for tinct
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/store"
)

// AppName names the config and state directories.
const AppName = "tinct"

// Environment overrides.
const (
	EnvStore     = "TINCT_STORE"
	EnvStorePath = "TINCT_STORE_PATH"
	EnvLogFile   = "TINCT_LOG_FILE"
)

// Config represents the main configuration for tinct
type Config struct {
	Store StoreConfig `yaml:"store"`
	UI    UIConfig    `yaml:"ui"`
	Log   LogConfig   `yaml:"log"`
}

// StoreConfig selects where preferences persist
type StoreConfig struct {
	Backend string `yaml:"backend"` // file, sqlite, keyring, memory
	Path    string `yaml:"path"`    // file location, or keyring service name
}

// UIConfig holds terminal page settings
type UIConfig struct {
	NoColor bool   `yaml:"no_color"`
	Dense   bool   `yaml:"dense"`
	Cards   []Card `yaml:"cards"`
}

// Card is one entry of the card deck
type Card struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// LogConfig holds logging settings
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	cards := make([]Card, 0, len(page.DefaultCards()))
	for _, c := range page.DefaultCards() {
		cards = append(cards, Card{Title: c.Title, Body: c.Body})
	}
	return &Config{
		Store: StoreConfig{
			Backend: store.BackendFile,
		},
		UI: UIConfig{
			Cards: cards,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads configuration from the user config directory
func LoadDefault() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	backend := strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if backend != "" && !slices.Contains(store.Backends(), backend) {
		return fmt.Errorf("store.backend %q: %w", c.Store.Backend, store.ErrUnknownBackend)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	for i, card := range c.UI.Cards {
		if strings.TrimSpace(card.Title) == "" {
			return fmt.Errorf("ui.cards[%d].title is required", i)
		}
	}
	return nil
}

// ApplyEnv overrides settings from the environment, after loading an
// optional .env file from the working directory.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	c.applyLookup(os.LookupEnv)
	return nil
}

func (c *Config) applyLookup(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvStore); ok && v != "" {
		c.Store.Backend = v
	}
	if v, ok := lookup(EnvStorePath); ok && v != "" {
		c.Store.Path = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.Log.File = v
	}
}

// Cards returns the configured deck as page cards. An empty list in the
// file means no cards.
func (c *Config) Cards() []page.Card {
	cards := make([]page.Card, 0, len(c.UI.Cards))
	for _, card := range c.UI.Cards {
		cards = append(cards, page.Card{Title: card.Title, Body: card.Body})
	}
	return cards
}

// StorePath returns the configured store location, or the default one for
// the backend.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	switch strings.ToLower(strings.TrimSpace(c.Store.Backend)) {
	case store.BackendKeyring:
		return store.DefaultService, nil
	case store.BackendMemory:
		return "", nil
	case store.BackendSQLite:
		return configFile("prefs.db")
	default:
		return configFile("prefs.yaml")
	}
}

// LogPath returns the log file used while the page owns the terminal.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving state directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, AppName, AppName+".log"), nil
}

// GetConfigPath returns the path to tinct.yaml in the user config directory
func GetConfigPath() (string, error) {
	return configFile(AppName + ".yaml")
}

func configFile(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, AppName, name), nil
}
