package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiroan/tinct/internal/app"
	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Toggle the theme, or switch to the named one",
	Long: `Toggle between the light and dark theme and remember the choice.

With a theme name the toggle is only clicked when the current theme differs.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: ui.ThemeNames(),
	RunE:      runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	var want string
	if len(args) == 1 {
		want = strings.ToLower(strings.TrimSpace(args[0]))
		if !slices.Contains(ui.ThemeNames(), want) {
			return fmt.Errorf("unknown theme %q (supported: %s)", args[0], strings.Join(ui.ThemeNames(), ", "))
		}
	}

	a, closeStore, err := openApp()
	if err != nil {
		return err
	}
	defer closeStore()

	out := cmd.OutOrStdout()
	if want != "" && want == themeName(a) {
		ui.PrintKV(out, "Theme", want+" (unchanged)")
		return nil
	}

	if err := a.Click(page.IDThemeToggle); err != nil {
		return err
	}
	printNotice(cmd, a)
	ui.PrintKV(out, "Theme", themeName(a))
	return nil
}

func themeName(a *app.App) string {
	if a.Doc.Dark() {
		return "dark"
	}
	return "light"
}

// printNotice prints the notification while it is on screen.
func printNotice(cmd *cobra.Command, a *app.App) {
	if a.Notifier.Visible() {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderNotice(a.Notifier.Message()))
	}
}
