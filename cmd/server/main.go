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

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"trustlink/internal/attestation/handler"
	"trustlink/internal/attestation/metrics"
	"trustlink/internal/attestation/service"
	"trustlink/internal/attestation/store"
	"trustlink/internal/auth"
	authhandler "trustlink/internal/auth/handler"
	"trustlink/internal/events"
	"trustlink/internal/platform/config"
	"trustlink/internal/platform/httpserver"
	"trustlink/internal/platform/logger"
	"trustlink/internal/platform/middleware"
	"trustlink/internal/platform/postgres"
	platformredis "trustlink/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	log := logger.New(slog.LevelInfo)
	slog.SetDefault(log)

	roles, attestations, index, cleanup, err := buildStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build stores: %w", err)
	}
	defer cleanup()

	publisher, closePublisher, err := buildPublisher(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("build publisher: %w", err)
	}
	defer closePublisher()

	svc := service.New(roles, attestations, index, auth.NewContextAuthenticator(),
		service.WithPublisher(publisher),
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
	)

	tokens := auth.NewTokenService(cfg.JWTSigningKey, "trustlink")

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(log))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	handler.New(svc, tokens, log).Register(r)
	authhandler.New(tokens, cfg.AuthSecretHash, cfg.TokenTTL, log).Register(r)

	server := httpserver.New(cfg.Addr, r)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr, "store", cfg.StoreBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return httpserver.Shutdown(server)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func buildStores(ctx context.Context, cfg config.Server) (store.RoleStore, store.AttestationStore, store.IndexStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		return store.NewMemoryRoleStore(), store.NewMemoryAttestationStore(), store.NewMemoryIndexStore(), func() {}, nil

	case config.StoreRedis:
		client, err := platformredis.New(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		cleanup := func() { _ = client.Close() }
		return store.NewRedisRoleStore(client.Client),
			store.NewRedisAttestationStore(client.Client),
			store.NewRedisIndexStore(client.Client),
			cleanup, nil

	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		cleanup := func() { _ = db.Close() }
		return store.NewPostgresRoleStore(db),
			store.NewPostgresAttestationStore(db),
			store.NewPostgresIndexStore(db),
			cleanup, nil

	default:
		return nil, nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func buildPublisher(ctx context.Context, cfg config.Server, log *slog.Logger) (events.Publisher, func(), error) {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NewLogPublisher(log), func() {}, nil
	}
	kafka, err := events.NewKafkaPublisher(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		return nil, nil, err
	}
	return kafka, kafka.Close, nil
}
