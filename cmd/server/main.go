package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"registrar/internal/platform/config"
	"registrar/internal/platform/httpserver"
	"registrar/internal/platform/logger"
	"registrar/internal/platform/metrics"
	"registrar/internal/platform/postgres"
	platformredis "registrar/internal/platform/redis"
	"registrar/internal/registration/events"
	"registrar/internal/registration/hasher"
	"registrar/internal/registration/ids"
	"registrar/internal/registration/service"
	"registrar/internal/registration/store"
	httptransport "registrar/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the registration service.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	users, cleanupStore, err := buildUserStore(cfg)
	if err != nil {
		log.Error("store setup failed", "backend", cfg.Store.Backend, "error", err.Error())
		os.Exit(1)
	}
	defer cleanupStore()

	publisher, cleanupPublisher, err := buildPublisher(cfg, log)
	if err != nil {
		log.Error("event publisher setup failed", "error", err.Error())
		os.Exit(1)
	}
	defer cleanupPublisher()

	m := metrics.New(prometheus.DefaultRegisterer)
	svc := service.New(ids.NewUUIDSource(), hasher.NewBcrypt(cfg.Hashing.BcryptCost), users, publisher, log, m)
	handler := httptransport.NewHandler(svc, log)
	router := httptransport.NewRouter(handler, log, m)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting registrar", "addr", cfg.Addr, "store", cfg.Store.Backend)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}

func buildUserStore(cfg config.Server) (service.UserStore, func(), error) {
	switch cfg.Store.Backend {
	case "postgres":
		db, err := postgres.Open(cfg.Store.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if _, err := db.Exec(store.Schema); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store.NewPostgres(db), func() { _ = db.Close() }, nil
	case "redis":
		client, err := platformredis.New(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		if client == nil {
			return nil, nil, errors.New("redis store selected but REGISTRAR_REDIS_URL is empty")
		}
		return store.NewRedis(client.Client), func() { _ = client.Close() }, nil
	default:
		return store.NewInMemory(), func() {}, nil
	}
}

// buildPublisher picks Kafka when brokers are configured and falls back to
// the in-process publisher for local development.
func buildPublisher(cfg config.Server, log *slog.Logger) (service.EventPublisher, func(), error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return events.NewInMemoryPublisher(log), func() {}, nil
	}

	publisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		return nil, nil, err
	}
	return publisher, publisher.Close, nil
}
