// golos-labs/golos-bot/cache/cache.go

// Package cache persists the little state the bot keeps between restarts:
// the Telegram update offset, so a restart does not replay already-handled
// messages, and per-outcome run counters surfaced by /status. The cache is
// optional; with no Redis configured the bot starts from a fresh offset.
package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/golos-labs/golos-bot/config"
)

const keyPrefix = "golos-bot:"

type DB struct {
	rdb *redis.Client
	ctx context.Context
}

// New connects to Redis. A nil or empty config returns (nil, nil): the
// caller treats a nil *DB as "no cache".
func New(cfg *config.CacheConfig) (*DB, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to cache at %s: %w", cfg.Addr, err)
	}
	return &DB{rdb: rdb, ctx: ctx}, nil
}

func (db *DB) Ping() error {
	return db.rdb.Ping(db.ctx).Err()
}

func (db *DB) Close() error {
	return db.rdb.Close()
}

// LoadOffset returns the last confirmed Telegram update offset, or zero
// when none has been saved yet.
func (db *DB) LoadOffset(ctx context.Context) (int64, error) {
	val, err := db.rdb.Get(ctx, keyPrefix+"update_offset").Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not load update offset: %w", err)
	}
	offset, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt update offset %q: %w", val, err)
	}
	return offset, nil
}

// SaveOffset records the next update offset to request after a restart.
func (db *DB) SaveOffset(ctx context.Context, offset int64) error {
	return db.rdb.Set(ctx, keyPrefix+"update_offset", strconv.FormatInt(offset, 10), 0).Err()
}

// CountRun increments the counter for one pipeline outcome. Failures are
// ignored; counters are best-effort.
func (db *DB) CountRun(outcome string) {
	db.rdb.Incr(db.ctx, keyPrefix+"runs:"+outcome)
}

// RunCounts returns every outcome counter.
func (db *DB) RunCounts() (map[string]int64, error) {
	counts := make(map[string]int64)
	pattern := keyPrefix + "runs:*"
	iter := db.rdb.Scan(db.ctx, 0, pattern, 0).Iterator()
	for iter.Next(db.ctx) {
		key := iter.Val()
		val, err := db.rdb.Get(db.ctx, key).Int64()
		if err != nil {
			continue
		}
		counts[key[len(keyPrefix+"runs:"):]] = val
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
