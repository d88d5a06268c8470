package utils

import (
	"fmt"
	"math"
)

// FormatCurrencyEUR memformat nilai float64 sebagai string Euro untuk
// ditampilkan di struk dan layar kasir. Pembulatan 2 desimal terjadi di sini,
// di batas presentasi, bukan di tengah perhitungan.
// Contoh: 15.505 -> "15.51 €"
func FormatCurrencyEUR(amount float64) string {
	rounded := math.Round(amount*100) / 100
	return fmt.Sprintf("%.2f €", rounded)
}
