package main

import (
	"os"

	"github.com/quillorm/quill/cli/commands"
	"github.com/quillorm/quill/cli/internal/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		ui.PrintError("%v", err)
		os.Exit(1)
	}
}
