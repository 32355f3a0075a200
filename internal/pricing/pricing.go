// Package pricing menghitung harga berbasis luas: satuan x panjang x lebar.
package pricing

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMissingInput = errors.New("satuan, panjang, and lebar must all be filled in")
	ErrOutOfRange   = errors.New("calculated price is out of range")
)

// ParseAmount parses user-entered numeric text. ok is false for empty,
// unparsable, NaN or infinite input.
func ParseAmount(s string) (v float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Parse is ParseAmount with every failure mapped to 0.
func Parse(s string) float64 {
	v, _ := ParseAmount(s)
	return v
}

// ComputePrice returns satuan*panjang*lebar without rounding.
// Semua faktor wajib > 0; hasil yang overflow ditolak dengan ErrOutOfRange.
func ComputePrice(satuan, panjang, lebar float64) (float64, error) {
	if !(satuan > 0) || !(panjang > 0) || !(lebar > 0) {
		return 0, ErrMissingInput
	}
	v := satuan * panjang * lebar
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrOutOfRange
	}
	return v, nil
}

func ComputePriceText(satuan, panjang, lebar string) (float64, error) {
	return ComputePrice(Parse(satuan), Parse(panjang), Parse(lebar))
}
