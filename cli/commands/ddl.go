package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/quillorm/quill/cli/internal/config"
	"github.com/quillorm/quill/cli/internal/ui"
	"github.com/quillorm/quill/cli/internal/watch"
	"github.com/quillorm/quill/schema"
	"github.com/quillorm/quill/sdl"
)

var (
	ddlSchemaPath string
	ddlProvider   string
	ddlWatch      bool
)

var ddlCmd = &cobra.Command{
	Use:   "ddl",
	Short: "Emit CREATE TABLE statements for a schema",
	RunE:  runDDL,
}

func init() {
	ddlCmd.Flags().StringVar(&ddlSchemaPath, "schema", "", "schema file (defaults to configured path)")
	ddlCmd.Flags().StringVar(&ddlProvider, "provider", "", "target provider (defaults to configured provider)")
	ddlCmd.Flags().BoolVar(&ddlWatch, "watch", false, "re-emit on schema changes")
}

func runDDL(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path := ddlSchemaPath
	if path == "" {
		path = cfg.SchemaPath
	}
	provider := ddlProvider
	if provider == "" {
		provider = cfg.Provider
	}

	emit := func() error {
		tables, err := sdl.ParseFile(config.AppFs, path)
		if err != nil {
			return err
		}
		for _, t := range tables {
			fmt.Println(schema.CreateTableSQL(provider, t))
		}
		return nil
	}

	if !ddlWatch {
		return emit()
	}

	w, err := watch.New(path, emit)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	ui.PrintInfo("watching %s, press ctrl-c to stop", path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return w.Stop()
}
