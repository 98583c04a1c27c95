package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillorm/quill/cli/internal/config"
	"github.com/quillorm/quill/cli/internal/ui"
	"github.com/quillorm/quill/sdl"
)

var validateSchemaPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a schema file",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "schema file (defaults to configured path)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path := validateSchemaPath
	if path == "" {
		path = cfg.SchemaPath
	}

	tables, err := sdl.ParseFile(config.AppFs, path)
	if err != nil {
		ui.PrintError("schema is invalid: %v", err)
		return err
	}

	ui.PrintSuccess("schema is valid (%d models)", len(tables))
	rows := make([][]string, 0, len(tables))
	for _, t := range tables {
		pk := "-"
		if t.PrimaryKey != nil {
			pk = t.PrimaryKey.ToSQL()
		}
		rows = append(rows, []string{t.Name, fmt.Sprintf("%d", len(t.Columns)), pk})
	}
	ui.PrintTable([]string{"table", "columns", "primary key"}, rows)
	return nil
}
