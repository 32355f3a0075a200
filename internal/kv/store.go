package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// Nama koleksi yang disimpan, masing-masing satu blob JSON per key.
const (
	KeyProducts     = "products"
	KeyTransactions = "transactions"
	KeyStoreProfile = "storeProfile"
)

// Store is the persistence port: whole-blob read and write per key.
// A write replaces the previous blob for that key atomically.
type Store interface {
	Read(ctx context.Context, key string) (blob []byte, ok bool, err error)
	Write(ctx context.Context, key string, blob []byte) error
}

// GetJSON decodes the blob stored under key. An absent key yields the zero value of T.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var out T
	b, ok, err := s.Read(ctx, key)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

func PutJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Write(ctx, key, b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
