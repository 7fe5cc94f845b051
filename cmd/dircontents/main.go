// Command dircontents lists directory contents in colored columns.
package main

import (
	"os"

	"github.com/aki/dircontents/internal/cli/commands"
	"github.com/aki/dircontents/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}
