package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iiroan/tinct/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored and effective preferences",
	Long: `Show every preference: the value held by the store, and the value the
page uses once stored preferences are applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd)
	},
}

func runShow(cmd *cobra.Command) error {
	a, closeStore, err := openApp()
	if err != nil {
		return err
	}
	defer closeStore()

	entries, err := a.Applier.Snapshot()
	if err != nil {
		return err
	}
	path, err := cfg.StorePath()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ui.StartScreen(out, "PREFERENCES", "")
	fmt.Fprintln(out, ui.RenderPreferences(entries))
	fmt.Fprintln(out)
	ui.PrintKV(out, "Store", backendName())
	if path != "" {
		ui.PrintKV(out, "Location", path)
	}
	ui.PrintKV(out, "Cards", fmt.Sprintf("%d", len(a.Doc.Cards())))
	return nil
}
