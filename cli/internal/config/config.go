// Package config loads and saves the CLI configuration from the usual
// places: quill.yaml in the working directory or home config dir,
// QUILL_-prefixed environment variables, and .env/.env.local files.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem seam; tests swap in an in-memory fs.
var AppFs = afero.NewOsFs()

// Config holds the application configuration.
type Config struct {
	SchemaPath  string
	Provider    string
	DatabaseURL string
}

// Load reads configuration from config files, environment and .env files.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName("quill")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "quill"))

	viper.SetEnvPrefix("QUILL")
	viper.AutomaticEnv()

	viper.SetDefault("schema_path", "schema.quill")
	viper.SetDefault("provider", "sqlite")

	// Missing config file is fine; defaults and env cover it.
	_ = viper.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	return &Config{
		SchemaPath:  viper.GetString("schema_path"),
		Provider:    viper.GetString("provider"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}, nil
}

// Save writes the configuration to the home config directory.
func Save(cfg *Config) error {
	viper.Set("schema_path", cfg.SchemaPath)
	viper.Set("provider", cfg.Provider)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(home, ".config", "quill")
	if err := AppFs.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	return viper.WriteConfigAs(filepath.Join(configDir, "quill.yaml"))
}
