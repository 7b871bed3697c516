package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/fitkeeper/internal/client/api"
	"github.com/iudanet/fitkeeper/internal/client/cli"
	"github.com/iudanet/fitkeeper/internal/client/config"
	"github.com/iudanet/fitkeeper/internal/client/iocli"
	"github.com/iudanet/fitkeeper/internal/client/profile"
	"github.com/iudanet/fitkeeper/internal/client/session"
	"github.com/iudanet/fitkeeper/internal/client/storage"
	"github.com/iudanet/fitkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/fitkeeper/internal/client/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	stdio := iocli.NewStdio()

	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(stdio)
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	if len(cfg.Args) == 0 {
		cli.PrintUsage(stdio)
		return 1
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем локальное хранилище
	kv, err := openStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	svc := session.New(ctx, api.NewClient(cfg.ServerURL), kv, logger, session.Config{Guard: cfg.GuardConfig()})
	defer svc.Close()

	// Сетевая ошибка при старте не мешает работать с локальным состоянием
	if err := svc.Start(ctx); err != nil {
		if errors.Is(err, profile.ErrFetchFailed) {
			logger.Warn("Profile could not be refreshed, using cached copy", "error", err)
		} else {
			logger.Info("Stored session was not resumed", "error", err)
		}
	}

	c := cli.New(stdio, svc, cli.Passwords{FromFile: cfg.PasswordFile, FromArgs: cfg.Password})
	if err := c.Run(ctx, cfg.Args[0], cfg.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage(stdio)
		}
		return 1
	}
	return 0
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.KVStorage, error) {
	if cfg.Store == config.StoreSQLite {
		s, err := sqlite.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	s, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func printVersion() {
	fmt.Printf("FitKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
