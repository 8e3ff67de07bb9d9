// Package main provides the entry point for the Drashta journal event
// pipeline and SSE server.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/vamsi200/drashta/internal/api"
	"github.com/vamsi200/drashta/internal/appinfo"
	"github.com/vamsi200/drashta/internal/classify"
	"github.com/vamsi200/drashta/internal/config"
	"github.com/vamsi200/drashta/internal/hub"
	"github.com/vamsi200/drashta/internal/ingest"
	"github.com/vamsi200/drashta/internal/journal"
	"github.com/vamsi200/drashta/internal/metrics"
	"github.com/vamsi200/drashta/internal/query"
	"github.com/vamsi200/drashta/internal/version"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to parse configuration: %v", err)
	}

	logger := slog.Default()

	reader, err := journal.Open(journal.WithLogger(logger))
	if err != nil {
		log.Fatalf("failed to open journal: %v", err)
	}
	defer reader.Close()

	router := classify.NewRouter()
	engine := query.New(reader, router)

	h := hub.New(
		hub.WithLogger(logger),
		hub.WithLagObserver(metrics.HubObserver{}),
	)
	go h.Run()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := ingest.New(reader, h, engine.ClassifyLive, ingest.WithLogger(logger))

	var ingestAlive atomic.Bool
	ingestAlive.Store(true)

	dispatcherDone := make(chan error, 1)
	go func() {
		err := dispatcher.Run(ctx)
		ingestAlive.Store(false)
		dispatcherDone <- err
	}()

	rateLimiter := api.NewRateLimiter(api.DefaultRateLimiterConfig())

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := api.NewServer(addr, engine, h,
		api.WithRateLimiter(rateLimiter),
		api.WithAssetsDir(cfg.AssetsDir),
		api.WithQueryTimeout(cfg.QueryTimeout),
		api.WithMaxLimit(cfg.DrainMaxLimit),
		api.WithLivenessCheck(ingestAlive.Load),
	)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("starting %s v%s on %s", appinfo.AppName, version.String(), addr)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-done:
		log.Println("shutting down...")
	case err := <-errCh:
		log.Printf("server error: %v", err)
		cancel()
		os.Exit(1)
	}

	cancel()
	<-dispatcherDone

	h.Stop()
	rateLimiter.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	log.Println("server stopped")
}
