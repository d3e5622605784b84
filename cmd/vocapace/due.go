package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tobue/vocapace/internal/database"
	"github.com/tobue/vocapace/internal/practice"
	"github.com/tobue/vocapace/internal/scheduler"
)

func newDueCommand() *cobra.Command {
	var learnerID int64
	var limit int

	dueCmd := &cobra.Command{
		Use:   "due",
		Short: "List a learner's words that are due for review",
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

			schedulerCfg := scheduler.Config{
				DesiredRetention: cfg.Scheduler.DesiredRetention,
				MaximumInterval:  cfg.Scheduler.MaximumIntervalDays,
				LearningSteps:    cfg.Scheduler.LearningSteps(),
				RelearningSteps:  cfg.Scheduler.RelearningSteps(),
			}
			if len(cfg.Scheduler.Weights) == 21 {
				copy(schedulerCfg.Weights[:], cfg.Scheduler.Weights)
			}
			sched, err := scheduler.New(schedulerCfg)
			if err != nil {
				return fmt.Errorf("scheduler.New() > %w", err)
			}

			now := time.Now().UTC()
			repo := practice.NewDBRepository(db)
			dueWords, err := repo.FindDue(cmd.Context(), learnerID, now, limit)
			if err != nil {
				return err
			}
			if len(dueWords) == 0 {
				fmt.Println("nothing due")
				return nil
			}

			overdue := color.New(color.FgRed)
			for _, dw := range dueWords {
				line := fmt.Sprintf("%-30s %-12s due %s", dw.OriginalWord, dw.State, dw.Due.Format(time.RFC3339))
				if card, err := dw.Card(); err == nil && card.Stability != nil {
					line += fmt.Sprintf("  retrievability %.2f", sched.Retrievability(card, now))
				}
				if dw.Due.Before(now.Add(-24 * time.Hour)) {
					overdue.Println(line)
					continue
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	dueCmd.Flags().Int64Var(&learnerID, "learner", 0, "learner ID")
	dueCmd.Flags().IntVar(&limit, "limit", 50, "maximum number of words to list")
	_ = dueCmd.MarkFlagRequired("learner")
	return dueCmd
}
