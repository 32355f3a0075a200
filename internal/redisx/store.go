package redisx

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariefcatur/go-kasir.git/internal/kv"
	"github.com/redis/go-redis/v9"
)

var _ kv.Store = (*Store)(nil)

// Store keeps each collection as one string value without TTL.
type Store struct {
	RDB    *redis.Client
	Prefix string
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.RDB.Get(ctx, s.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *Store) Write(ctx context.Context, key string, blob []byte) error {
	return s.RDB.Set(ctx, s.Key(key), blob, 0).Err()
}

func (s *Store) Key(collection string) string {
	return fmt.Sprintf(KeyBlob, s.Prefix, collection)
}
