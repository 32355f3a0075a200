package sales

import (
	"errors"

	"github.com/ariefcatur/go-kasir.git/internal/pricing"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrMissingInput = pricing.ErrMissingInput
	ErrOutOfRange   = pricing.ErrOutOfRange
)

// Alasan validasi yang ditampilkan ke operator.
const (
	ReasonCartEmpty        = "cart is empty"
	ReasonPaymentInvalid   = "payment amount is not a number"
	ReasonPaymentShort     = "insufficient payment"
	ReasonCustomerRequired = "customer name is required"
	ReasonStatusInvalid    = "unknown payment status"
	ReasonNameRequired     = "product name is required"
	ReasonPriceNegative    = "price must not be negative"
	ReasonStockNegative    = "stock must not be negative"
)

// ValidationError is a recoverable, user-facing rejection. State is left untouched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(reason string) error {
	return &ValidationError{Reason: reason}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
