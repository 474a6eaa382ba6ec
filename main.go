package main

import (
	"context"
	"fmt"
	"os"
	"time"

	bidding "lot-auction/internal/biddingService"
	"lot-auction/internal/config"
	model "lot-auction/internal/models"
	"lot-auction/internal/notify"
	"lot-auction/internal/persistence"
	"lot-auction/internal/repository"
	"lot-auction/internal/server"
	"lot-auction/utils"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(2)
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set log level: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to open snapshot store", map[string]any{"backend": cfg.Backend, "error": err.Error()})
	}
	defer closeStore()

	catalog, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		utils.Fatal("failed to load lot catalog", map[string]any{"catalog": cfg.CatalogFile, "error": err.Error()})
	}

	notifier, closeNotifier := newNotifier(cfg)
	defer closeNotifier()

	biddingSvc := bidding.NewBiddingService(
		repository.NewMemoryRepo(),
		repository.NewPendingTracker(),
		repository.NewRegistry(),
		store,
		notifier,
	)
	if err := biddingSvc.Bootstrap(ctx, catalog); err != nil {
		utils.Fatal("failed to restore auction state", map[string]any{"error": err.Error()})
	}

	router := server.SetupRouter(biddingSvc)

	utils.Info("starting auction server", map[string]any{"addr": cfg.Addr(), "backend": cfg.Backend})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Error("server stopped", map[string]any{"error": err.Error()})
		closeNotifier()
		closeStore()
		os.Exit(1)
	}
}

// openStore returns the snapshot store for the configured backend and its cleanup func
func openStore(ctx context.Context, cfg config.Config) (persistence.Store, func(), error) {
	if cfg.Backend == config.BackendRedis {
		client, err := persistence.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		store := persistence.NewRedisStore(client, cfg.RedisKey)
		return store, func() { _ = store.Close() }, nil
	}
	return persistence.NewFileStore(cfg.DataFile), func() {}, nil
}

// loadCatalog reads the YAML catalog, falling back to the built-in lots
func loadCatalog(path string) ([]model.Lot, error) {
	now := time.Now().UTC()
	if path == "" {
		return persistence.DefaultCatalog(now), nil
	}
	return persistence.LoadCatalog(path, now)
}

// newNotifier always logs bids and additionally publishes them when a broker is configured
func newNotifier(cfg config.Config) (notify.Notifier, func()) {
	if cfg.AMQPURL == "" {
		return notify.LogNotifier{}, func() {}
	}
	publisher := notify.NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPQueue)
	return notify.Fanout{notify.LogNotifier{}, publisher}, func() { _ = publisher.Close() }
}
