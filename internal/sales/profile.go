package sales

import (
	"context"

	"github.com/ariefcatur/go-kasir.git/internal/kv"
)

// Profiles stores the singleton store profile shown on receipts.
type Profiles struct{ Store kv.Store }

func (p *Profiles) Get(ctx context.Context) (StoreProfile, error) {
	return kv.GetJSON[StoreProfile](ctx, p.Store, kv.KeyStoreProfile)
}

func (p *Profiles) Save(ctx context.Context, sp StoreProfile) error {
	return kv.PutJSON(ctx, p.Store, kv.KeyStoreProfile, sp)
}
