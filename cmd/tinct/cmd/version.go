package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/iiroan/tinct/internal/ui"
)

// Version information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information about tinct.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		ui.StartScreen(out, "TINCT", "")
		ui.PrintKV(out, "Version", Version)
		ui.PrintKV(out, "Commit", Commit)
		ui.PrintKV(out, "Build Date", BuildDate)
		ui.PrintKV(out, "Go Version", runtime.Version())
		ui.PrintKV(out, "OS/Arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH))
	},
}
