package commands

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contalibre-dev/contalibre/internal/api"
	"github.com/contalibre-dev/contalibre/internal/chart"
	"github.com/contalibre-dev/contalibre/internal/config"
	"github.com/contalibre-dev/contalibre/internal/journal"
	"github.com/contalibre-dev/contalibre/internal/platform/database"
	"github.com/contalibre-dev/contalibre/internal/platform/logger"
	"github.com/contalibre-dev/contalibre/internal/platform/server"
	"github.com/contalibre-dev/contalibre/internal/statement"
	"github.com/contalibre-dev/contalibre/internal/storage"
	"github.com/contalibre-dev/contalibre/internal/subscription"
	"github.com/contalibre-dev/contalibre/internal/tenant"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "path to config file")
	return cmd
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is not actionable

	db, err := database.NewPostgres(database.Options{
		DSN:          cfg.Database.DSN,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		LogSQL:       cfg.Database.LogSQL,
	})
	if err != nil {
		return err
	}

	if err := storage.Migrate(db); err != nil {
		return err
	}

	tpl := chart.DefaultTemplate()
	if cfg.Chart.TemplatePath != "" {
		tpl, err = chart.LoadTemplateFile(cfg.Chart.TemplatePath)
		if err != nil {
			return err
		}
	}

	reportStore := storage.NewReportStore(db)
	chartStore := storage.NewChartStore(db)
	installer := chart.NewInstaller(tpl, chartStore)

	companySvc := tenant.NewService(storage.NewCompanyRepo(db), installer)
	journalSvc := journal.NewService(storage.NewJournalRepo(db))
	subSvc := subscription.NewService(storage.NewSubscriptionRepo(db))
	builder := statement.NewBuilder(reportStore, reportStore)

	srv := server.New(
		log,
		cfg.Server.Port,
		cfg.Server.Mode,
		[]gin.HandlerFunc{api.TenantResolver()},
		api.NewCompanyHandler(companySvc),
		api.NewChartHandler(reportStore),
		api.NewJournalHandler(journalSvc),
		api.NewReportHandler(builder, subSvc),
		api.NewSubscriptionHandler(subSvc),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down", zap.String("reason", "signal"))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
