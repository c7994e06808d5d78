package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"amity/internal/audit"
	authservice "amity/internal/auth/service"
	"amity/internal/auth/store/revocation"
	"amity/internal/friendship"
	"amity/internal/identity/store"
	"amity/internal/jwttoken"
	"amity/internal/platform/config"
	"amity/internal/platform/httpserver"
	"amity/internal/platform/logger"
	"amity/internal/platform/metrics"
	"amity/internal/platform/middleware"
	redisclient "amity/internal/platform/redis"
	httptransport "amity/internal/transport/http"
)

// main wires dependencies and runs the server plus the audit worker under a
// shared lifecycle. Business logic lives in the internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	users, pool, err := newUserStore(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize user store", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
	}

	trl, health, err := newRevocationList(cfg)
	if err != nil {
		log.Error("failed to initialize revocation list", "error", err)
		os.Exit(1)
	}

	auditStore, closeAudit, err := newAuditStore(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize audit sink", "error", err)
		os.Exit(1)
	}
	defer closeAudit()

	publisher := audit.NewPublisher(log, m)
	worker := audit.NewWorker(auditStore, publisher.Inbox(), log)

	tokens := jwttoken.New(cfg.JWTSigningKey, "amity", cfg.TokenTTL)
	auth := authservice.NewService(users, tokens, trl, publisher, log, m)
	friends := friendship.NewService(users, publisher, log, m)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Auth:        auth,
		Friends:     friends,
		Tokens:      tokens,
		Revocations: trl,
		Logger:      log,
		Metrics:     m,
		Health:      health,
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// newUserStore selects PostgreSQL when DATABASE_URL is set, otherwise the
// in-memory store. The returned pool is nil for the memory store.
func newUserStore(ctx context.Context, cfg config.Server) (store.UserStore, *pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		return store.NewMemory(), nil, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	pg := store.NewPostgres(pool)
	if err := pg.Schema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return pg, pool, nil
}

// tokenRevocationList is the full TRL surface: services revoke, middleware
// checks.
type tokenRevocationList interface {
	authservice.TokenRevoker
	middleware.TokenRevocationChecker
}

// newRevocationList selects Redis when REDIS_URL is set. The health check
// covers Redis only; the memory TRL has nothing to probe.
func newRevocationList(cfg config.Server) (tokenRevocationList, func(r *http.Request) error, error) {
	client, err := redisclient.New(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return revocation.NewMemoryTRL(), nil, nil
	}
	health := func(r *http.Request) error {
		return client.Health(r.Context())
	}
	return revocation.NewRedisTRL(client.Client), health, nil
}

func newAuditStore(ctx context.Context, cfg config.Server) (audit.Store, func(), error) {
	if len(cfg.AuditBrokers) == 0 {
		return audit.NewMemoryStore(), func() {}, nil
	}
	sink, err := audit.NewKafkaSink(ctx, cfg.AuditBrokers, cfg.AuditTopic)
	if err != nil {
		return nil, nil, err
	}
	return sink, sink.Close, nil
}
