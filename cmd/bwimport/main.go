package main

import (
	"fmt"
	"os"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/mdouchement/bwimport/internal/client"
	"github.com/spf13/cobra"
)

const dbname = "bwimport.db"

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	cfg      string
	dbpath   string
	rootName string
)

func main() {
	c := &cobra.Command{
		Use:     "bwimport",
		Short:   "Import Bitwarden exports into a local password database",
		Version: fmt.Sprintf("%s - build %.7s @ %s", version, revision, date),
		Args:    cobra.NoArgs,
	}

	importCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	importCmd.Flags().StringVarP(&dbpath, "database", "d", dbname, "Database file")
	importCmd.Flags().StringVarP(&rootName, "root", "r", "", "Name of the root group")
	c.AddCommand(importCmd)
	c.AddCommand(inspectCmd)

	if err := c.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var (
	importCmd = &cobra.Command{
		Use:   "import FILENAME",
		Short: "Import a Bitwarden export (plaintext or password-protected)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts := client.ImportOptions{
				Database: dbpath,
				RootName: rootName,
			}

			if cfg != "" {
				konf := koanf.New(".")
				if err := konf.Load(file.Provider(cfg), yaml.Parser()); err != nil {
					return err
				}

				if v := konf.String("database_path"); v != "" {
					opts.Database = v
				}
				if v := konf.String("root_name"); v != "" {
					opts.RootName = v
				}
			}

			return client.Import(args[0], opts)
		},
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect FILENAME",
		Short: "Decrypt an export and print its structure without importing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return client.Inspect(args[0])
		},
	}
)
