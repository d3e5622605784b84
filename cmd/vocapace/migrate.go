package main

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tobue/vocapace/internal/database"
	"github.com/tobue/vocapace/schemas"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded SQL migrations to the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer db.Close()

			names, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
			if err != nil {
				return fmt.Errorf("list migrations: %w", err)
			}
			sort.Strings(names)

			for _, name := range names {
				statements, err := fs.ReadFile(schemas.Migrations, name)
				if err != nil {
					return fmt.Errorf("read migration %s: %w", name, err)
				}
				// The connection enables MultiStatements, so each file can
				// hold several DDL statements.
				if _, err := db.ExecContext(cmd.Context(), string(statements)); err != nil {
					return fmt.Errorf("apply migration %s: %w", name, err)
				}
				fmt.Printf("applied %s\n", name)
			}
			return nil
		},
	}
}
