package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/fake-survey-generator/cliparse"
	"github.com/danielhkuo/fake-survey-generator/db"
	"github.com/danielhkuo/fake-survey-generator/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	driver, err := db.ParseDriver(cfg.DatabaseType)
	if err != nil {
		slog.Error("invalid database type", "error", err)
		os.Exit(1)
	}

	// Connect, ping and create schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbConn, err := db.Open(ctx, driver, cfg.DatabaseURL)
	cancel()
	if err != nil {
		slog.Error("database setup failed", "driver", driver, "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "driver", driver)

	server := &http.Server{
		Handler:           router.NewRouter(dbConn, cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.Port))
	if err != nil {
		slog.Error("listen failed", "port", cfg.Port, "error", err)
		dbConn.Close()
		os.Exit(1)
	}

	// Ctrl-C or SIGTERM starts a graceful shutdown
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Listening", "port", cfg.Port)
	err = serve(sigCtx, server, ln)

	// Handlers are done with the database by now
	dbConn.Close()
	if err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// serve runs the server until ctx is done, then drains in-flight requests.
// It returns only after Shutdown has finished, so callers may release
// resources the handlers use.
func serve(ctx context.Context, server *http.Server, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		errc <- server.Serve(ln)
	}()

	select {
	case err := <-errc:
		// Serve failed before any shutdown was requested
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownErr := server.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		slog.Error("graceful shutdown failed", "error", shutdownErr)
		server.Close()
	}

	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return shutdownErr
}

func newLogger(cfg cliparse.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
