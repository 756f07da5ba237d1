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

	httpdelivery "github.com/qrbill-ch/qrbill/internal/delivery/http"
	"github.com/qrbill-ch/qrbill/internal/infrastructure/config"
	"github.com/qrbill-ch/qrbill/internal/infrastructure/qrgenerator"
	"github.com/qrbill-ch/qrbill/internal/usecase/decodebill"
	"github.com/qrbill-ch/qrbill/internal/usecase/generatebill"
	"github.com/qrbill-ch/qrbill/pkg/logging"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	qrGen := qrgenerator.NewGenerator(cfg.QRCodeSize)
	generateUC := generatebill.NewUseCase(qrGen)
	decodeUC := decodebill.NewUseCase()

	handler := httpdelivery.NewHandler(generateUC, decodeUC)
	router := httpdelivery.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		slog.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("http serve failed", "error", serveErr)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
