// Package bootstrap opens the storage backend selected by configuration.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/ariefcatur/go-kasir.git/internal/config"
	"github.com/ariefcatur/go-kasir.git/internal/kv"
	"github.com/ariefcatur/go-kasir.git/internal/postgres"
	"github.com/ariefcatur/go-kasir.git/internal/redisx"
	"go.uber.org/zap"
)

// OpenStore returns the kv.Store for cfg.StoreBackend and a func releasing its connections.
func OpenStore(ctx context.Context, cfg config.Config, log *zap.Logger) (kv.Store, func(), error) {
	switch cfg.StoreBackend {
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connect: %w", err)
		}
		s := &postgres.Store{DB: db}
		if err := s.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("postgres migrate: %w", err)
		}
		log.Info("store ready", zap.String("backend", "postgres"))
		return s, db.Close, nil
	case "redis":
		rdb := redisx.New(cfg.RedisAddr)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		log.Info("store ready", zap.String("backend", "redis"), zap.String("prefix", cfg.RedisPrefix))
		return &redisx.Store{RDB: rdb, Prefix: cfg.RedisPrefix}, func() { _ = rdb.Close() }, nil
	case "memory":
		log.Warn("memory store: data hilang saat proses berhenti")
		return kv.NewMemStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}
