package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iiroan/tinct/internal/app"
	"github.com/iiroan/tinct/internal/config"
	"github.com/iiroan/tinct/internal/store"
	"github.com/iiroan/tinct/internal/ui"
)

var (
	verbose      bool
	quiet        bool
	noColor      bool
	cfgFile      string
	storeBackend string
	storePath    string
	logger       *log.Logger
	cfg          *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tinct",
	Short: "Keep theme and accent color preferences",
	Long: `tinct keeps a light or dark theme and two accent colors in a small
durable store and shows them on an interactive terminal page.

Run without a command to open the page. Without a terminal the current
preferences are printed instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(os.Stderr)

		if cmd.Name() == "version" || cmd.Name() == "help" {
			applyUISettings()
			return nil
		}

		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		applyUISettings()
		setupLogger(os.Stderr)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		if !ui.IsInteractiveTerminal() {
			return runShow(cmd)
		}
		return runPage()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/tinct/tinct.yaml)")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "Store backend: file, sqlite, keyring or memory")
	rootCmd.PersistentFlags().StringVar(&storePath, "store-path", "", "Store file, or keyring service name")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file, then applies environment overrides and
// the store flags on top.
func loadConfig() (*config.Config, error) {
	var (
		c   *config.Config
		err error
	)
	if cfgFile != "" {
		c, err = config.Load(cfgFile)
	} else {
		c, err = config.LoadDefault()
	}
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		c = config.DefaultConfig()
	}

	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}
	if storeBackend != "" {
		c.Store.Backend = storeBackend
	}
	if storePath != "" {
		c.Store.Path = storePath
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

func applyUISettings() {
	if cfg == nil {
		ui.ApplyPreferences(ui.Preferences{NoColor: noColor})
		return
	}
	ui.ApplyPreferences(ui.Preferences{
		Dense:   cfg.UI.Dense,
		NoColor: cfg.UI.NoColor || noColor,
	})
}

func colorDisabled() bool {
	return noColor || os.Getenv("NO_COLOR") != "" || (cfg != nil && cfg.UI.NoColor)
}

func setupLogger(w io.Writer) {
	level := log.InfoLevel
	if cfg != nil && cfg.Log.Level != "" {
		if parsed, err := log.ParseLevel(cfg.Log.Level); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !colorDisabled() {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
		Prefix:          config.AppName,
	})
	logger.SetStyles(styles)
}

// openApp opens the configured store and builds the page on it with the
// stored preferences applied. The returned func closes the store.
func openApp() (*app.App, func(), error) {
	path, err := cfg.StorePath()
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(cfg.Store.Backend, path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s store: %w", backendName(), err)
	}
	logger.Debug("store opened", "backend", backendName(), "path", path)

	closeStore := func() {
		if err := s.Close(); err != nil {
			logger.Warn("closing store", "error", err)
		}
	}

	a, err := app.New(app.Options{Store: s, Cards: cfg.Cards(), Logger: logger})
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	if err := a.Start(); err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("loading preferences: %w", err)
	}
	return a, closeStore, nil
}

func backendName() string {
	if cfg.Store.Backend == "" {
		return store.BackendFile
	}
	return cfg.Store.Backend
}

// runPage opens the terminal page. Logs go to a rotating file while it owns
// the screen.
func runPage() error {
	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	rotator := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}
	defer rotator.Close() //nolint:errcheck

	setupLogger(rotator)
	defer setupLogger(os.Stderr)

	a, closeStore, err := openApp()
	if err != nil {
		return err
	}
	defer closeStore()

	logger.Info("page started", "backend", backendName())
	if err := ui.RunPage(a, logger, colorDisabled()); err != nil {
		return fmt.Errorf("running page: %w", err)
	}
	return nil
}
