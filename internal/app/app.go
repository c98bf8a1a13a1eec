package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/kurochkinivan/scan_analyzer/internal/artifact"
	"github.com/kurochkinivan/scan_analyzer/internal/config"
	v1 "github.com/kurochkinivan/scan_analyzer/internal/controller/http/v1"
	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/kurochkinivan/scan_analyzer/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/scan_analyzer/internal/pipeline"
	"github.com/kurochkinivan/scan_analyzer/internal/repository/postgresql"
	"github.com/kurochkinivan/scan_analyzer/internal/repository/sqlite"
	"github.com/kurochkinivan/scan_analyzer/internal/stage"
	"golang.org/x/sync/errgroup"
)

const (
	reportsBuffer = 100

	serverShutdownTimeout = 5 * time.Second
	runnerShutdownTimeout = 30 * time.Second

	interruptedMessage = "Pipeline analysis interrupted by server restart"
)

type jobStore interface {
	pipeline.JobCreator
	pipeline.JobWriter
	pipeline.JobReader
	FailInterrupted(ctx context.Context, message string) (int64, error)
}

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("uploads_dir", a.cfg.App.UploadsDirectory),
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.String("work_dir", a.cfg.App.WorkDirectory),
		slog.String("store", a.cfg.Store.Driver),
	)

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	failed, err := store.FailInterrupted(ctx, interruptedMessage)
	if err != nil {
		return fmt.Errorf("failed to mark interrupted jobs: %w", err)
	}
	if failed > 0 {
		a.log.WarnContext(ctx, "failed jobs interrupted by previous run", slog.Int64("count", failed))
	}

	return a.startPipeline(ctx, store)
}

func (a *App) openStore(ctx context.Context) (jobStore, func(), error) {
	switch a.cfg.Store.Driver {
	case config.StorePostgreSQL:
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
		)

		pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
		}

		return postgresql.NewJobsRepository(pool, postgresql.NewTxManager(pool)), pool.Close, nil

	case config.StoreSQLite:
		a.log.InfoContext(ctx, "opening sqlite database", slog.String("sqlite_path", a.cfg.SQLite.Path))

		db, err := sqlite.Open(ctx, a.cfg.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}

		closeDB := func() {
			if err := db.Close(); err != nil {
				a.log.Error("failed to close sqlite database", slog.String("err", err.Error()))
			}
		}

		return sqlite.NewJobsRepository(db), closeDB, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q", a.cfg.Store.Driver)
	}
}

func (a *App) startPipeline(ctx context.Context, store jobStore) error {
	for _, dir := range []string{a.cfg.UploadsDirectory, a.cfg.WorkDirectory} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	stageOne, err := stage.NewCommand(a.log.With(slog.String("stage", "one")), a.cfg.StageOneCommand, a.cfg.WorkDirectory)
	if err != nil {
		return fmt.Errorf("failed to configure stage one: %w", err)
	}

	stageTwo, err := stage.NewCommand(a.log.With(slog.String("stage", "two")), a.cfg.StageTwoCommand, a.cfg.WorkDirectory)
	if err != nil {
		return fmt.Errorf("failed to configure stage two: %w", err)
	}

	reports := make(chan *domain.AnalysisResult, reportsBuffer)

	artifacts := artifact.NewStore(a.log, a.cfg.UploadsDirectory)
	runner := pipeline.NewRunner(a.log, store, store, stageOne)
	status := pipeline.NewStatusReader(store)
	aggregator := pipeline.NewAggregator(a.log, artifacts, stageTwo, a.cfg.WorkDirectory, reports)
	reporter := pipeline.NewReporter(
		a.log,
		a.cfg.ReportsDirectory,
		reports,
		report_generator.NewPDF(),
		report_generator.NewCSV(),
		report_generator.NewXLSX(),
	)

	server := v1.NewServer(
		a.cfg.HTTP,
		v1.NewJobsHandler(a.log, artifacts, runner, status, aggregator),
		v1.NewReportsHandler(a.log, a.cfg.ReportsDirectory),
	)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()

		serverErr := server.Shutdown(shutdownCtx)

		runnerCtx, cancel := context.WithTimeout(context.Background(), runnerShutdownTimeout)
		defer cancel()

		if err := runner.Shutdown(runnerCtx); err != nil {
			a.log.Warn("stage runs interrupted by shutdown", slog.String("err", err.Error()))
		}

		return serverErr
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}
