// Command server starts the recruiting pipeline HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/hireline/hireline/internal/adapter/ai/openai"
	"github.com/hireline/hireline/internal/adapter/convert/gotenberg"
	"github.com/hireline/hireline/internal/adapter/httpserver"
	"github.com/hireline/hireline/internal/adapter/observability"
	"github.com/hireline/hireline/internal/adapter/queue/redpanda"
	"github.com/hireline/hireline/internal/adapter/repo/postgres"
	"github.com/hireline/hireline/internal/adapter/textextract/docconv"
	"github.com/hireline/hireline/internal/app"
	"github.com/hireline/hireline/internal/config"
	"github.com/hireline/hireline/internal/usecase"
)

// redisAdapter narrows *goredis.Client to the readiness interface.
type redisAdapter struct{ *goredis.Client }

func (a redisAdapter) Ping(ctx context.Context) app.RedisPingResult {
	return a.Client.Ping(ctx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)
	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	rdb := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
	defer func() { _ = rdb.Close() }()

	producer, err := redpanda.NewProducer(cfg.KafkaBrokers)
	if err != nil {
		slog.Error("redpanda producer connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			slog.Error("failed to close queue producer", slog.Any("error", err))
		}
	}()

	// Repositories
	appRepo := postgres.NewApplicationRepo(pool)
	vacRepo := postgres.NewVacancyRepo(pool)
	preRepo := postgres.NewPreInterviewRepo(pool)
	postRepo := postgres.NewPostInterviewRepo(pool)
	skillRepo := postgres.NewSkillResultRepo(pool)
	msgRepo := postgres.NewInterviewMessageRepo(pool)

	// Adapters
	converter := gotenberg.New(cfg.GotenbergURL, cfg.FilesDir)
	extractor := docconv.New()
	aiClient := openai.New(cfg)

	// Usecases
	appSvc := usecase.NewApplicationService(appRepo, vacRepo, converter, producer)
	interviewSvc := usecase.NewInterviewService(appRepo, vacRepo, msgRepo, extractor, producer)
	resultSvc := usecase.NewResultService(appRepo, preRepo, postRepo, skillRepo, msgRepo)
	vacancyFillSvc := usecase.NewVacancyFillService(vacRepo, aiClient, converter, extractor)

	if err := app.SeedVacancies(ctx, cfg.VacancySeedPath, vacRepo); err != nil {
		slog.Error("vacancy seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	dbCheck, redisCheck, kafkaCheck := app.BuildReadinessChecks(pool, redisAdapter{rdb}, producer)

	srv := &httpserver.Server{
		Cfg:          cfg,
		Applications: appSvc,
		Interviews:   interviewSvc,
		Results:      resultSvc,
		VacancyFill:  vacancyFillSvc,
		DBCheck:      dbCheck,
		RedisCheck:   redisCheck,
		KafkaCheck:   kafkaCheck,
	}

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           app.BuildRouter(cfg, srv),
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
