package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/tobue/vocapace/internal/bootstrap"
	"github.com/tobue/vocapace/internal/config"
	"github.com/tobue/vocapace/internal/database"
	"github.com/tobue/vocapace/internal/learner"
	"github.com/tobue/vocapace/internal/practice"
	"github.com/tobue/vocapace/internal/scheduler"
	"github.com/tobue/vocapace/internal/server"
	"github.com/tobue/vocapace/internal/word"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "vocapace-server",
		Short:         "Vocapace learning API HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()
	logger := slog.Default()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook(func(context.Context) error {
		return db.Close()
	})

	sched, err := newScheduler(cfg.Scheduler)
	if err != nil {
		return fmt.Errorf("scheduler.New() > %w", err)
	}

	words := word.NewDBRepository(db)
	practices := practice.NewDBRepository(db)
	learners := learner.NewDBRepository(db)
	reviewer := practice.NewReviewer(sched, practices, words, practice.SystemClock{}, logger)

	handler := server.NewRouter(
		server.NewLearningEventsHandler(reviewer, logger),
		server.NewWordProgressHandler(words, practices, sched, practice.SystemClock{}, logger),
		learners,
		logger,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: corsMiddleware(h2c.NewHandler(handler, &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func newScheduler(cfg config.SchedulerConfig) (*scheduler.Scheduler, error) {
	schedulerCfg := scheduler.Config{
		DesiredRetention: cfg.DesiredRetention,
		MaximumInterval:  cfg.MaximumIntervalDays,
		LearningSteps:    cfg.LearningSteps(),
		RelearningSteps:  cfg.RelearningSteps(),
	}
	if len(cfg.Weights) == 21 {
		copy(schedulerCfg.Weights[:], cfg.Weights)
	}
	return scheduler.New(schedulerCfg)
}

func corsMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
