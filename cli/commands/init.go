package commands

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/quillorm/quill/cli/internal/config"
	"github.com/quillorm/quill/cli/internal/ui"
)

const sampleSchema = `model User {
    id    BigInt @id
    email String
    name  String?
    age   Int    @default(0)
}

model Order {
    userId  BigInt
    orderId BigInt
    total   Float

    @@id([userId, orderId], name: "pk_user_orders")
    @@map("orders")
}
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new quill project",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	answers := struct {
		SchemaPath string
		Provider   string
	}{}

	questions := []*survey.Question{
		{
			Name: "schemaPath",
			Prompt: &survey.Input{
				Message: "Schema file path:",
				Default: "schema.quill",
			},
		},
		{
			Name: "provider",
			Prompt: &survey.Select{
				Message: "Database provider:",
				Options: []string{"sqlite", "postgresql", "mysql"},
				Default: "sqlite",
			},
		},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	exists, err := afero.Exists(config.AppFs, answers.SchemaPath)
	if err != nil {
		return err
	}
	if exists {
		ui.PrintWarning("schema file %s already exists, leaving it alone", answers.SchemaPath)
	} else {
		if err := afero.WriteFile(config.AppFs, answers.SchemaPath, []byte(sampleSchema), 0o644); err != nil {
			return err
		}
		ui.PrintSuccess("wrote %s", answers.SchemaPath)
	}

	if err := config.Save(&config.Config{
		SchemaPath: answers.SchemaPath,
		Provider:   answers.Provider,
	}); err != nil {
		return err
	}
	ui.PrintSuccess("project initialized for %s", answers.Provider)
	ui.PrintInfo("set DATABASE_URL in .env to connect")
	return nil
}
