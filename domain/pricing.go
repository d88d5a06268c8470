package domain

import "math"

// DefaultTaxRate adalah PPN Kosovo 18%. Semua harga menu sudah termasuk
// pajak (tax-inclusive); pajak diekstrak dari total, tidak pernah ditambah.
const DefaultTaxRate = 0.18

// LineTotal -> (harga satuan + jumlah harga extra) * quantity.
// unitPrice sudah mencerminkan modifier variant; caller yang resolve.
func LineTotal(unitPrice float64, extraPrices []float64, quantity int) float64 {
	perUnit := unitPrice
	for _, p := range extraPrices {
		perUnit += p
	}
	return perUnit * float64(quantity)
}

// OrderSubtotal -> jumlah seluruh line total.
func OrderSubtotal(items []CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal
	}
	return subtotal
}

// TaxFromInclusive mengekstrak pajak dari subtotal yang sudah termasuk pajak.
// Formula: tax = subtotal * rate / (1 + rate).
func TaxFromInclusive(subtotal, rate float64) float64 {
	if subtotal <= 0 {
		return 0
	}
	return subtotal * rate / (1 + rate)
}

// GrandTotal -> subtotal + tip. Tip flat, tidak pernah kena pajak.
func GrandTotal(subtotal, tip float64) float64 {
	return math.Max(0, subtotal+tip)
}

// RoundCurrency membulatkan ke 2 desimal. Hanya dipakai di batas presentasi,
// bukan di tengah perhitungan, supaya error pembulatan tidak menumpuk.
func RoundCurrency(value float64) float64 {
	return math.Round(value*100) / 100
}
