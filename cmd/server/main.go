package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nhoffmann/graphd/internal/analysis"
	"github.com/nhoffmann/graphd/internal/api"
	"github.com/nhoffmann/graphd/internal/config"
	"github.com/nhoffmann/graphd/internal/metrics"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	cfgPath := flag.String("config", "configs/graph.yaml", "Path to graph YAML config")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	cfg := loader.Config()
	if err := config.Validate(cfg); err != nil {
		slog.Error("config validation failed", "err", err)
		os.Exit(1)
	}

	// ── Build initial graph ───────────────────────────────────────────────────
	model, err := analysis.Build(cfg)
	if err != nil {
		slog.Error("failed to build graph", "err", err)
		os.Exit(1)
	}
	slog.Info("graph built", "nodes", model.G.NodeCount(), "edges", model.G.EdgeCount())

	// ── Engine ────────────────────────────────────────────────────────────────
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := analysis.NewRegistry()
	eng := analysis.New(ctx, model, reg, cfg.Server)

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	loader.OnChange(func(newCfg *config.GraphConfig) {
		if err := config.Validate(newCfg); err != nil {
			metrics.GraphReloads.WithLabelValues("invalid").Inc()
			slog.Warn("hot-reload skipped: config invalid", "err", err)
			return
		}
		newModel, err := analysis.Build(newCfg)
		if err != nil {
			metrics.GraphReloads.WithLabelValues("invalid").Inc()
			slog.Warn("hot-reload skipped: graph build failed", "err", err)
			return
		}
		eng.SwapModel(newModel)
		metrics.GraphReloads.WithLabelValues("success").Inc()
		slog.Info("graph hot-reloaded", "nodes", newModel.G.NodeCount(), "edges", newModel.G.EdgeCount())
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.New(eng, loader)
	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down…")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	cancel() // stop workers
	eng.Shutdown()
	slog.Info("goodbye")
}
