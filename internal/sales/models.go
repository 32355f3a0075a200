package sales

import "time"

// Product: satuan/panjang/lebar hanya input untuk menghitung Price.
// Price disimpan terpisah dan tidak dihitung ulang otomatis.
type Product struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Stock   int     `json:"stock"`
	Satuan  float64 `json:"satuan"`
	Panjang float64 `json:"panjang"`
	Lebar   float64 `json:"lebar"`
}

// ProductInput is a catalog entry before an id is assigned.
type ProductInput struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Stock   int     `json:"stock"`
	Satuan  float64 `json:"satuan"`
	Panjang float64 `json:"panjang"`
	Lebar   float64 `json:"lebar"`
}

// SaleItem snapshots name and price of the product at the moment it entered the cart.
type SaleItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

type Transaction struct {
	ID           string     `json:"id"`
	Date         time.Time  `json:"date"`
	Items        []SaleItem `json:"items"`
	Total        float64    `json:"total"`
	Paid         float64    `json:"paid"`
	Change       float64    `json:"change"`
	CustomerName string     `json:"customerName"`
	Status       Status     `json:"status"` // lihat status.go
}

// TransactionPatch lists the fields an edit may touch. Nil means unchanged.
type TransactionPatch struct {
	CustomerName *string  `json:"customerName,omitempty"`
	Status       *Status  `json:"status,omitempty"`
	Paid         *float64 `json:"paid,omitempty"`
}

type StoreProfile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func cloneItems(items []SaleItem) []SaleItem {
	out := make([]SaleItem, len(items))
	copy(out, items)
	return out
}
