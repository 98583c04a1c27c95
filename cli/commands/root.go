// Package commands implements the quill CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillorm/quill/cli/internal/update"
	"github.com/quillorm/quill/internal/debug"
)

// Version is the CLI version, overridable at build time.
var Version = "0.1.0"

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:           "quill",
	Short:         "Typed query engine and schema tooling",
	Long:          "quill compiles typed lookups into dialect-correct SQL and manages the schema metadata behind them.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.Init(debugFlag)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("quill version %s\n", Version)
		return update.Check(Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.AddCommand(initCmd, validateCmd, ddlCmd, explainCmd, versionCmd)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
