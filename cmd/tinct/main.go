// tinct keeps theme and accent color preferences for the terminal
package main

import (
	"fmt"
	"os"

	"github.com/iiroan/tinct/cmd/tinct/cmd"
	"github.com/iiroan/tinct/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}
