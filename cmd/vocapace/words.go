package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tobue/vocapace/internal/database"
	"github.com/tobue/vocapace/internal/word"
)

func newWordsCommand() *cobra.Command {
	wordsCmd := &cobra.Command{
		Use:   "words",
		Short: "Vocabulary management commands",
	}
	wordsCmd.AddCommand(newWordsImportCommand())
	return wordsCmd
}

func newWordsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import words from a YAML list into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read words file: %w", err)
			}

			var originalWords []string
			if err := yaml.Unmarshal(content, &originalWords); err != nil {
				return fmt.Errorf("parse words file: %w", err)
			}
			if len(originalWords) == 0 {
				return fmt.Errorf("no words found in %s", args[0])
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer db.Close()

			repo := word.NewDBRepository(db)
			if err := repo.BatchCreate(cmd.Context(), originalWords); err != nil {
				return fmt.Errorf("import words: %w", err)
			}

			fmt.Printf("imported %d words\n", len(originalWords))
			return nil
		},
	}
}
