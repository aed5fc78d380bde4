package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	httpadapter "github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/adapters/http"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/challenge"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/config"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/formula"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/infrastructure/storage"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/usecase"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/validator"
)

// stdRNG delegates to math/rand (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.Intn(n) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	classifier, err := formula.New()
	if err != nil {
		logger.Error("failed to load koujue table", "error", err)
		os.Exit(1)
	}

	// Wire providers → use cases → HTTP adapter.
	gen := challenge.NewGenerator(cfg.BoardRods, stdRNG{})
	val := validator.New()
	st := storage.NewFS(cfg.DataDir)
	uc := usecase.NewService(classifier, gen, val, st)
	if err := uc.ResumeSession(context.Background()); err != nil {
		logger.Warn("could not resume session stats", "error", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(uc, cfg.BoardRods)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "rods", cfg.BoardRods, "data", cfg.DataDir)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
