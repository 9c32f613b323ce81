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

	"example.com/activities/internal/api"
	"example.com/activities/internal/config"
	"example.com/activities/internal/directory"
	"example.com/activities/internal/domain"
	"example.com/activities/internal/events"
	httptransport "example.com/activities/internal/transport/http"
	"example.com/activities/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := directory.NewInMemoryRepository()

	var sink events.Sink = events.NoopSink{}
	var announcer *events.Announcer
	if len(cfg.KafkaBrokers) > 0 {
		publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.EventsTopic)
		defer publisher.Close()

		announcer = events.NewAnnouncer(publisher, cfg.EventBufferSize)
		go announcer.Start(ctx)
		sink = announcer
		slog.Info("roster events enabled", "topic", cfg.EventsTopic, "brokers", cfg.KafkaBrokers)
	} else {
		slog.Info("KAFKA_BROKERS not set, roster events disabled")
	}

	service := domain.NewService(repo, sink)

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	chain := httptransport.RequestLogger()(httptransport.CORS(cfg.CORSOrigin)(mux))

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, chain)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("activities-service listening", "address", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	if announcer != nil {
		announcer.Wait()
	}
}
