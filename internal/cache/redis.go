package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/hotelreserve/config"
	"github.com/Domenick1991/hotelreserve/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache memoizes availability searches. Entries are short-lived and
// every successful mutation invalidates them wholesale, so a stale hit can
// only show a freed room as busy, never a busy room as free: bookings
// always re-check availability against the ledger.
type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
	}
}

func (c *RedisCache) GetSearch(ctx context.Context, roomType domain.RoomType, checkIn, checkOut time.Time) ([]domain.Room, error) {
	data, err := c.client.Get(ctx, searchKey(roomType, checkIn, checkOut)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var rooms []domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, roomType domain.RoomType, checkIn, checkOut time.Time, rooms []domain.Room) error {
	payload, err := json.Marshal(rooms)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(roomType, checkIn, checkOut), payload, c.searchTTL).Err()
}

// InvalidateSearches drops every cached search result.
func (c *RedisCache) InvalidateSearches(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, searchKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

const searchKeyPrefix = "cache:search:"

func searchKey(roomType domain.RoomType, checkIn, checkOut time.Time) string {
	t := string(roomType)
	if t == "" {
		t = "ANY"
	}
	return fmt.Sprintf("%s%s:%s:%s", searchKeyPrefix, t, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
}
