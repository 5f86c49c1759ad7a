package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/tinct/internal/page"
	"github.com/iiroan/tinct/internal/ui"
)

var (
	primaryFlag   string
	secondaryFlag string
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Save the primary and secondary colors",
	Long: `Fill the two color pickers and save them. Missing values are asked
for on a terminal and otherwise keep their current value.`,
	Args: cobra.NoArgs,
	RunE: runColors,
}

func init() {
	colorsCmd.Flags().StringVar(&primaryFlag, "primary", "", "Primary color (#rrggbb)")
	colorsCmd.Flags().StringVar(&secondaryFlag, "secondary", "", "Secondary color (#rrggbb)")
}

func runColors(cmd *cobra.Command, args []string) error {
	a, closeStore, err := openApp()
	if err != nil {
		return err
	}
	defer closeStore()

	primaryEl := a.Doc.ElementByID(page.IDPrimaryColor)
	secondaryEl := a.Doc.ElementByID(page.IDSecondaryColor)

	primary := primaryFlag
	secondary := secondaryFlag
	if (primary == "" || secondary == "") && ui.IsInteractiveTerminal() {
		if primary == "" {
			primary = primaryEl.Value()
		}
		if secondary == "" {
			secondary = secondaryEl.Value()
		}
		if err := colorsForm(&primary, &secondary).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}
	if primary == "" {
		primary = primaryEl.Value()
	}
	if secondary == "" {
		secondary = secondaryEl.Value()
	}

	p, ok := ui.NormalizeHex(primary)
	if !ok {
		return fmt.Errorf("primary color %q is not a #rrggbb color", primary)
	}
	s, ok := ui.NormalizeHex(secondary)
	if !ok {
		return fmt.Errorf("secondary color %q is not a #rrggbb color", secondary)
	}
	primaryEl.SetValue(p)
	secondaryEl.SetValue(s)

	if err := a.Click(page.IDSaveColors); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printNotice(cmd, a)
	ui.PrintKV(out, "Primary", ui.Swatch(p)+" "+p)
	ui.PrintKV(out, "Secondary", ui.Swatch(s)+" "+s)
	return nil
}

func colorsForm(primary, secondary *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Primary color").
				Description("Accent for titles and the selected control").
				Placeholder("#rrggbb").
				CharLimit(7).
				Validate(validateHex).
				Value(primary),
			huh.NewInput().
				Title("Secondary color").
				Description("Accent for the notification").
				Placeholder("#rrggbb").
				CharLimit(7).
				Validate(validateHex).
				Value(secondary),
		),
	).WithTheme(ui.HuhTheme())
}

func validateHex(s string) error {
	if _, ok := ui.NormalizeHex(s); !ok {
		return errors.New("expected #rrggbb")
	}
	return nil
}
