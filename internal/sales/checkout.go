package sales

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ariefcatur/go-kasir.git/internal/pricing"
	"github.com/google/uuid"
)

// CartView is what the cashier screen renders after every cart mutation.
type CartView struct {
	Items        []SaleItem `json:"items"`
	Total        float64    `json:"total"`
	Payment      string     `json:"payment"`
	Change       float64    `json:"change"`
	CustomerName string     `json:"customerName"`
	Status       Status     `json:"status"`
	Ready        bool       `json:"ready"` // semua syarat commit terpenuhi
}

// Checkout is the single register session: cart, tendered payment, customer
// name and status. Commit does not clear the session; Reset does, when the
// receipt is closed.
type Checkout struct {
	Ledger *Ledger
	Now    func() time.Time
	NewID  func() string

	mu           sync.Mutex
	cart         Cart
	payment      string
	customerName string
	status       Status
}

func NewCheckout(l *Ledger) *Checkout {
	return &Checkout{
		Ledger: l,
		Now:    time.Now,
		NewID:  uuid.NewString,
		status: StatusLunas,
	}
}

func (c *Checkout) AddToCart(p Product) CartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Add(p)
	return c.viewLocked()
}

func (c *Checkout) RemoveFromCart(productID string) CartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Remove(productID)
	return c.viewLocked()
}

// SetPayment stores the raw tendered text; parsing happens on read.
func (c *Checkout) SetPayment(raw string) CartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payment = raw
	return c.viewLocked()
}

func (c *Checkout) SetCustomerName(name string) CartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerName = name
	return c.viewLocked()
}

func (c *Checkout) SetStatus(s Status) (CartView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !s.Valid() {
		return c.viewLocked(), invalid(ReasonStatusInvalid)
	}
	c.status = s
	return c.viewLocked(), nil
}

func (c *Checkout) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Total()
}

// Change is payment minus total; payment yang tidak valid dihitung 0.
func (c *Checkout) Change() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.changeLocked()
}

func (c *Checkout) View() CartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Commit validates the session and appends a Transaction to the ledger.
// On any error nothing is written and the session is unchanged.
func (c *Checkout) Commit(ctx context.Context) (Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validateLocked(); err != nil {
		return Transaction{}, err
	}
	paid, _ := pricing.ParseAmount(c.payment)
	total := c.cart.Total()
	t := Transaction{
		ID:           c.NewID(),
		Date:         c.Now().UTC(),
		Items:        c.cart.Items(),
		Total:        total,
		Paid:         paid,
		Change:       paid - total,
		CustomerName: c.customerName,
		Status:       c.statusLocked(),
	}
	if err := c.Ledger.Append(ctx, t); err != nil {
		return Transaction{}, fmt.Errorf("append transaction: %w", err)
	}
	return t, nil
}

// Reset clears cart, payment, customer and restores the default status.
func (c *Checkout) Reset() CartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Clear()
	c.payment = ""
	c.customerName = ""
	c.status = StatusLunas
	return c.viewLocked()
}

func (c *Checkout) validateLocked() error {
	if c.cart.Len() == 0 {
		return invalid(ReasonCartEmpty)
	}
	if _, ok := pricing.ParseAmount(c.payment); !ok {
		return invalid(ReasonPaymentInvalid)
	}
	if c.changeLocked() < 0 {
		return invalid(ReasonPaymentShort)
	}
	if strings.TrimSpace(c.customerName) == "" {
		return invalid(ReasonCustomerRequired)
	}
	return nil
}

func (c *Checkout) changeLocked() float64 {
	return pricing.Parse(c.payment) - c.cart.Total()
}

func (c *Checkout) statusLocked() Status {
	if c.status == "" {
		return StatusLunas
	}
	return c.status
}

func (c *Checkout) viewLocked() CartView {
	return CartView{
		Items:        c.cart.Items(),
		Total:        c.cart.Total(),
		Payment:      c.payment,
		Change:       c.changeLocked(),
		CustomerName: c.customerName,
		Status:       c.statusLocked(),
		Ready:        c.validateLocked() == nil,
	}
}
