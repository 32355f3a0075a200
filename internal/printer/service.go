// Package printer consumes transaction events and writes receipt files.
package printer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	kafkax "github.com/ariefcatur/go-kasir.git/internal/kafka"
	"github.com/ariefcatur/go-kasir.git/internal/receipt"
	"github.com/ariefcatur/go-kasir.git/internal/redisx"
	"github.com/ariefcatur/go-kasir.git/internal/sales"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Service struct {
	Profiles    *sales.Profiles
	Redis       *redis.Client // optional; nil = tanpa dedup
	Dir         string
	Location    *time.Location
	ServiceName string
	Log         *zap.Logger
}

// HandleTransaction dipasang sebagai handler consumer.
func (s *Service) HandleTransaction(ctx context.Context, m kafkago.Message) error {
	// 1) decode envelope
	var env sales.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return kafkax.Permanent(fmt.Errorf("decode envelope: %w", err))
	}
	if env.EventType != sales.EventTransactionCommitted && env.EventType != sales.EventTransactionEdited {
		return nil
	}

	// 2) dedup via Redis (event_id)
	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	if s.Redis != nil {
		if seen, _ := redisx.Exists(ctx, s.Redis, dkey); seen {
			return nil
		}
	}

	// 3) decode payload
	p, err := kafkax.UnwrapPayload[sales.TransactionPayload](env.Payload)
	if err != nil {
		return kafkax.Permanent(err)
	}
	if p.Transaction.ID == "" {
		return kafkax.Permanent(fmt.Errorf("event %s: transaction without id", env.EventID))
	}

	// 4) render + tulis file struk
	path, err := s.Print(ctx, p.Transaction)
	if err != nil {
		return err
	}
	s.Log.Info("receipt written",
		zap.String("event_type", env.EventType),
		zap.String("transaction_id", p.Transaction.ID),
		zap.String("path", path))

	if s.Redis != nil {
		_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	}
	return nil
}

// Print renders trx with the current store profile into Dir/{id}.txt.
func (s *Service) Print(ctx context.Context, trx sales.Transaction) (string, error) {
	profile, err := s.Profiles.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("load store profile: %w", err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, filepath.Base(trx.ID)+".txt")
	text := receipt.Render(profile, trx, s.Location)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
