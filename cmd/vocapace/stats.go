package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tobue/vocapace/internal/database"
	"github.com/tobue/vocapace/internal/practice"
)

func newStatsCommand() *cobra.Command {
	var learnerID int64

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a learner's practice counts per state",
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

			repo := practice.NewDBRepository(db)
			counts, err := repo.CountByState(cmd.Context(), learnerID)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			total := 0
			for _, state := range []string{"Learning", "Review", "Relearning"} {
				fmt.Printf("%-12s %d\n", state, counts[state])
				total += counts[state]
			}
			bold.Printf("%-12s %d\n", "Total", total)
			return nil
		},
	}
	statsCmd.Flags().Int64Var(&learnerID, "learner", 0, "learner ID")
	_ = statsCmd.MarkFlagRequired("learner")
	return statsCmd
}
