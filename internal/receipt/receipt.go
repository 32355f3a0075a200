// Package receipt merender struk 80mm sebagai teks polos.
package receipt

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ariefcatur/go-kasir.git/internal/sales"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Width is the printable column count of an 80mm thermal roll.
const Width = 32

var idr = message.NewPrinter(language.Indonesian)

var (
	hari  = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	bulan = [...]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli",
		"Agustus", "September", "Oktober", "November", "Desember"}
)

// Rupiah formats v with Indonesian digit grouping, e.g. "Rp 20.000".
func Rupiah(v float64) string {
	return idr.Sprintf("Rp %v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// Tanggal formats t as "Jumat, 16 Oktober 2026 09.30" in loc.
func Tanggal(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%s, %d %s %d %02d.%02d",
		hari[t.Weekday()], t.Day(), bulan[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// Render produces the receipt text for trx. Phone line dilewati jika kosong.
func Render(p sales.StoreProfile, trx sales.Transaction, loc *time.Location) string {
	var b strings.Builder
	sep := strings.Repeat("-", Width)

	if p.Name != "" {
		b.WriteString(center(strings.ToUpper(p.Name)))
	}
	if p.Phone != "" {
		b.WriteString(center("Telp: " + p.Phone))
	}
	b.WriteString(center(Tanggal(trx.Date, loc)))
	b.WriteString(sep + "\n")
	b.WriteString(row("Pelanggan", trx.CustomerName))
	b.WriteString(row("Status", string(trx.Status)))
	b.WriteString(sep + "\n")

	for _, it := range trx.Items {
		b.WriteString(it.ProductName + "\n")
		b.WriteString(row(fmt.Sprintf("%d x %s", it.Quantity, Rupiah(it.Price)), Rupiah(it.Subtotal)))
	}

	b.WriteString(sep + "\n")
	b.WriteString(row("Total", Rupiah(trx.Total)))
	b.WriteString(row("Tunai", Rupiah(trx.Paid)))
	b.WriteString(row("Kembalian", Rupiah(trx.Change)))
	b.WriteString(sep + "\n")
	b.WriteString(center("Terima kasih"))
	b.WriteString(center("No: " + trx.ID))
	return b.String()
}

func row(left, right string) string {
	pad := Width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if pad < 1 {
		return left + "\n" + strings.Repeat(" ", max(Width-utf8.RuneCountInString(right), 0)) + right + "\n"
	}
	return left + strings.Repeat(" ", pad) + right + "\n"
}

func center(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= Width {
		return s + "\n"
	}
	return strings.Repeat(" ", (Width-n)/2) + s + "\n"
}
