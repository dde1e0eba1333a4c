package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/akojamsy/voting-system/api"
	"github.com/akojamsy/voting-system/cache"
	"github.com/akojamsy/voting-system/cfg"
	"github.com/akojamsy/voting-system/db"
	"github.com/akojamsy/voting-system/directory"
	"github.com/akojamsy/voting-system/store"
	"github.com/akojamsy/voting-system/types"
	"github.com/akojamsy/voting-system/utils"
	"github.com/akojamsy/voting-system/voting"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file, reading configuration from environment")
	}

	serviceCfg, err := cfg.New()
	if err != nil {
		panic(err.Error())
	}

	if err := setupSentry(serviceCfg); err != nil {
		panic(err)
	}
	defer sentry.Flush(2 * time.Second)

	logger, err := newLogger(serviceCfg)
	if err != nil {
		panic("cannot init logger")
	}
	logger.Info("Start voting API server...", zap.String("storage", serviceCfg.StorageDriver))

	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Println("cannot sync log", err)
		}
	}()

	if err := run(serviceCfg, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run(serviceCfg cfg.VotingConfig, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbClient, err := db.NewClient(db.Config{
		DbAdapter: db.Adapter(serviceCfg.StorageDriver),
		DbName:    serviceCfg.StorageDB,
		URL:       serviceCfg.StorageURI,
		Dir:       serviceCfg.StorageDir,
		MinConn:   serviceCfg.StorageMinConn,
		MaxConn:   serviceCfg.StorageMaxConn,
		FlushDB:   serviceCfg.StorageIsFlush,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("cannot create storage client: %w", err)
	}
	defer func() {
		if err := dbClient.Close(context.Background()); err != nil {
			logger.Warn("Cannot close storage client", zap.Error(err))
		}
	}()

	ids, err := utils.NewIDGenerator(serviceCfg.NodeID)
	if err != nil {
		return fmt.Errorf("cannot create id generator: %w", err)
	}

	st := store.New(store.Config{Client: dbClient, IDs: ids, Logger: logger})
	if err := st.Load(ctx); err != nil {
		if !errors.Is(err, types.ErrMalformedCollection) {
			return err
		}
		logger.Warn("Stored data is malformed, falling back to defaults", zap.Error(err))
		if err := st.LoadOrSeed(ctx); err != nil {
			return err
		}
	}

	sessions, err := cache.New(cache.Config{
		Adapter:    cache.Adapter(serviceCfg.CacheEngine),
		URL:        serviceCfg.CacheURL,
		DB:         serviceCfg.CacheDB,
		IsFlush:    serviceCfg.CacheIsFlush,
		SessionTTL: serviceCfg.SessionTTL,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("cannot create session cache: %w", err)
	}
	defer sessions.Close()

	dir := directory.New(directory.Config{Store: st, Sessions: sessions, Logger: logger})
	if err := dir.EnsureAdmin(ctx); err != nil {
		return err
	}
	svc := voting.NewService(voting.Config{Store: st, Logger: logger})

	srv := api.NewServer().
		SetLogger(logger).
		SetVoting(svc).
		SetDirectory(dir).
		SetTimeout(serviceCfg.DefaultAPITimeout).
		SetVersion(cfg.ServerVersion, serviceCfg.StorageDriver)
	e := api.New(srv)

	errCh := make(chan error, 1)
	go func() {
		if err := api.Start(e, serviceCfg); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return e.Shutdown(shutdownCtx)
}

func setupSentry(sCfg cfg.VotingConfig) error {
	opts := sentry.ClientOptions{
		Dsn:         sCfg.SentryDSN,
		Environment: sCfg.ServerMode,
		Release:     "voting-system@" + cfg.ServerVersion,
	}
	if err := sentry.Init(opts); err != nil {
		return err
	}
	return nil
}
