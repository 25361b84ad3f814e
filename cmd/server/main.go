package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wardfs/wardfs/internal/infrastructure/config"
	"github.com/wardfs/wardfs/internal/infrastructure/logging"
	"github.com/wardfs/wardfs/internal/infrastructure/server"
	"github.com/wardfs/wardfs/internal/sandbox"
)

func main() {
	port := flag.String("port", "", "HTTP port (overrides PORT)")
	host := flag.String("host", "", "Bind address (overrides HOST)")
	dev := flag.Bool("dev", false, "Development mode: console logs, debug level")
	flag.Usage = usage
	flag.Parse()

	dirs := flag.Args()
	if len(dirs) == 0 {
		usage()
		os.Exit(1)
	}

	cfg := config.LoadOrDefault()
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *dev {
		cfg.Logging.Development = true
	}

	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	sb, err := sandbox.New(dirs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srv, err := server.NewServer(cfg, sb, logger)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	defer srv.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("Server error", zap.Error(err))
		}
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown failed", zap.Error(err))
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] DIR [DIR...]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Serve sandboxed filesystem tools over HTTP, confined to the given directories.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
