package sales

import (
	"context"
	"strings"

	"github.com/ariefcatur/go-kasir.git/internal/kv"
	"github.com/ariefcatur/go-kasir.git/internal/pricing"
	"github.com/google/uuid"
)

type Catalog struct{ Store kv.Store }

// List returns products in stored order. Filter kosong = semua produk;
// selain itu dicocokkan case-insensitive ke nama.
func (c *Catalog) List(ctx context.Context, filter string) ([]Product, error) {
	all, err := kv.GetJSON[[]Product](ctx, c.Store, kv.KeyProducts)
	if err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(all))
	q := strings.ToLower(strings.TrimSpace(filter))
	for _, p := range all {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *Catalog) Get(ctx context.Context, id string) (Product, error) {
	all, err := c.List(ctx, "")
	if err != nil {
		return Product{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (c *Catalog) Create(ctx context.Context, in ProductInput) (Product, error) {
	p := Product{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(in.Name),
		Price:   in.Price,
		Stock:   in.Stock,
		Satuan:  in.Satuan,
		Panjang: in.Panjang,
		Lebar:   in.Lebar,
	}
	if err := validateProduct(p); err != nil {
		return Product{}, err
	}
	all, err := c.List(ctx, "")
	if err != nil {
		return Product{}, err
	}
	if err := kv.PutJSON(ctx, c.Store, kv.KeyProducts, append(all, p)); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Update overwrites the entry with the same id. Cart lines and transactions
// keep their own snapshot. Missing id: no-op, updated=false.
func (c *Catalog) Update(ctx context.Context, p Product) (bool, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := validateProduct(p); err != nil {
		return false, err
	}
	all, err := c.List(ctx, "")
	if err != nil {
		return false, err
	}
	updated := false
	for i := range all {
		if all[i].ID == p.ID {
			all[i] = p
			updated = true
		}
	}
	return updated, kv.PutJSON(ctx, c.Store, kv.KeyProducts, all)
}

func (c *Catalog) Delete(ctx context.Context, id string) (bool, error) {
	all, err := c.List(ctx, "")
	if err != nil {
		return false, err
	}
	kept := all[:0]
	for _, p := range all {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	deleted := len(kept) != len(all)
	return deleted, kv.PutJSON(ctx, c.Store, kv.KeyProducts, kept)
}

// CalculatePrice parses the three text fields and returns satuan*panjang*lebar,
// or ErrMissingInput. Caller keeps its previous price on error.
func (c *Catalog) CalculatePrice(satuan, panjang, lebar string) (float64, error) {
	return pricing.ComputePriceText(satuan, panjang, lebar)
}

func validateProduct(p Product) error {
	switch {
	case p.Name == "":
		return invalid(ReasonNameRequired)
	case p.Price < 0:
		return invalid(ReasonPriceNegative)
	case p.Stock < 0:
		return invalid(ReasonStockNegative)
	}
	return nil
}
