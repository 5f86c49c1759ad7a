package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/ui"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every stored preference",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		if !ui.IsInteractiveTerminal() {
			return fmt.Errorf("refusing to clear preferences without --yes")
		}
		confirmed := false
		err := huh.NewConfirm().
			Title("Clear all preferences?").
			Description("Theme and both colors return to their defaults.").
			Affirmative("Clear").
			Negative("Keep").
			Value(&confirmed).
			WithTheme(ui.HuhTheme()).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), ui.HintStyle.Render("Nothing cleared."))
			return nil
		}
	}

	a, closeStore, err := openApp()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := a.Click(page.IDClearStorage); err != nil {
		return err
	}
	printNotice(cmd, a)
	return nil
}
