package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/hotelreserve/config"
	"github.com/Domenick1991/hotelreserve/internal/bootstrap"
	"github.com/Domenick1991/hotelreserve/internal/cache"
	"github.com/Domenick1991/hotelreserve/internal/kafka"
	"github.com/Domenick1991/hotelreserve/internal/persistence"
	"github.com/Domenick1991/hotelreserve/internal/service/booking"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatalf("init snapshot store: %v", err)
	}
	defer cleanup()

	searchTTL := time.Duration(cfg.Booking.SearchCacheTTL) * time.Second
	redisCache := cache.NewRedisCache(cfg.Redis, searchTTL)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	bookingService := booking.NewBookingService(
		store,
		redisCache,
		producer,
		cfg.Kafka.ReservationEventsTopic,
		time.Duration(cfg.Booking.CheckpointTimeoutSeconds)*time.Second,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	if err := bookingService.Restore(ctx); err != nil {
		log.Printf("WARNING: snapshot restore failed, starting with in-memory state only: %v", err)
	}

	if err := bootstrap.Run(ctx, cfg, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func newStore(ctx context.Context, cfg *config.Config) (persistence.Store, func(), error) {
	switch cfg.Persistence.Backend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		return persistence.NewPostgresStore(pool, cfg.Persistence.Property), pool.Close, nil
	default:
		return persistence.NewFileStore(cfg.Persistence.SnapshotPath), func() {}, nil
	}
}
