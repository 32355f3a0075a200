package sales

import (
	"context"

	"github.com/ariefcatur/go-kasir.git/internal/kv"
)

// Ledger reads and writes the whole transactions collection on every call.
// Last writer wins at collection granularity.
type Ledger struct{ Store kv.Store }

// List returns transactions in commit order.
func (l *Ledger) List(ctx context.Context) ([]Transaction, error) {
	list, err := kv.GetJSON[[]Transaction](ctx, l.Store, kv.KeyTransactions)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Transaction{}
	}
	return list, nil
}

func (l *Ledger) Get(ctx context.Context, id string) (Transaction, error) {
	list, err := l.List(ctx)
	if err != nil {
		return Transaction{}, err
	}
	for _, t := range list {
		if t.ID == id {
			return t, nil
		}
	}
	return Transaction{}, ErrNotFound
}

// Append: read full list, append, write full list back.
func (l *Ledger) Append(ctx context.Context, t Transaction) error {
	list, err := l.List(ctx)
	if err != nil {
		return err
	}
	t.Items = cloneItems(t.Items)
	return kv.PutJSON(ctx, l.Store, kv.KeyTransactions, append(list, t))
}

// Replace applies update to the transaction with the given id and recomputes
// Change from the stored Total. ID, Date, Items and Total are restored after
// update runs. Id yang tidak ada: list ditulis ulang tanpa perubahan, found=false.
func (l *Ledger) Replace(ctx context.Context, id string, update func(*Transaction)) (Transaction, bool, error) {
	list, err := l.List(ctx)
	if err != nil {
		return Transaction{}, false, err
	}
	var (
		out   Transaction
		found bool
	)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		orig := list[i]
		t := orig
		t.Items = cloneItems(orig.Items)
		update(&t)
		t.ID, t.Date, t.Items, t.Total = orig.ID, orig.Date, orig.Items, orig.Total
		t.Change = t.Paid - t.Total
		list[i] = t
		out, found = t, true
		break
	}
	if err := kv.PutJSON(ctx, l.Store, kv.KeyTransactions, list); err != nil {
		return Transaction{}, false, err
	}
	return out, found, nil
}

// Edit is Replace driven by a patch of customer name, status and paid amount.
func (l *Ledger) Edit(ctx context.Context, id string, p TransactionPatch) (Transaction, bool, error) {
	if p.Status != nil && !p.Status.Valid() {
		return Transaction{}, false, invalid(ReasonStatusInvalid)
	}
	return l.Replace(ctx, id, func(t *Transaction) {
		if p.CustomerName != nil {
			t.CustomerName = *p.CustomerName
		}
		if p.Status != nil {
			t.Status = *p.Status
		}
		if p.Paid != nil {
			t.Paid = *p.Paid
		}
	})
}
