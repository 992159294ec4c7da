// Command worker consumes assessment tasks and runs the scoring stages.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hireline/hireline/internal/adapter/ai/openai"
	"github.com/hireline/hireline/internal/adapter/lock/redis"
	"github.com/hireline/hireline/internal/adapter/observability"
	"github.com/hireline/hireline/internal/adapter/queue/redpanda"
	"github.com/hireline/hireline/internal/adapter/queue/shared"
	"github.com/hireline/hireline/internal/adapter/repo/postgres"
	"github.com/hireline/hireline/internal/adapter/signals/github"
	"github.com/hireline/hireline/internal/adapter/textextract/docconv"
	"github.com/hireline/hireline/internal/config"
	"github.com/hireline/hireline/internal/usecase"
)

const consumerGroupID = "hireline-workers"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)
	observability.InitMetrics()

	// Expose stage and AI metrics for scraping alongside the server's.
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: ":9090", Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		if err := srv.ListenAndServe(); err != nil {
			slog.Error("worker metrics server error", slog.Any("error", err))
		}
	}()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	slog.Info("starting worker", slog.String("env", cfg.AppEnv))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("database connection failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	rdb := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
	defer func() { _ = rdb.Close() }()

	// Repositories
	appRepo := postgres.NewApplicationRepo(pool)
	vacRepo := postgres.NewVacancyRepo(pool)
	preRepo := postgres.NewPreInterviewRepo(pool)
	postRepo := postgres.NewPostInterviewRepo(pool)
	skillRepo := postgres.NewSkillResultRepo(pool)
	msgRepo := postgres.NewInterviewMessageRepo(pool)

	// Adapters
	attachments := docconv.New()
	aiClient := openai.New(cfg)
	// Without a token the GitHub REST calls would only ever come back 401,
	// so the collector runs on readme-stats signals alone.
	var devAssess *github.DeveloperAssessment
	if cfg.GithubToken != "" {
		devAssess = github.NewDeveloperAssessment(cfg.GithubAPIBaseURL, cfg.GithubToken)
	}
	collector := github.NewCollector(cfg.GithubStatsBaseURL, devAssess)
	stageLock := redis.NewStageLock(rdb, cfg.StageLockTTL)

	// Stage runners
	preSvc := usecase.NewPreInterviewService(appRepo, vacRepo, preRepo, aiClient, collector, attachments)
	postSvc := usecase.NewPostInterviewService(appRepo, vacRepo, preRepo, postRepo, skillRepo, msgRepo, aiClient, attachments)

	handler := shared.NewStageHandler(preSvc, postSvc, stageLock)

	consumer, err := redpanda.NewConsumer(cfg.KafkaBrokers, consumerGroupID, handler, cfg.ConsumerMaxConcurrency)
	if err != nil {
		slog.Error("consumer init failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			slog.Error("failed to close consumer", slog.Any("error", err))
		}
	}()

	if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
		slog.Error("consumer stopped", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("worker shut down")
}
