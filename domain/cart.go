package domain

import "sort"

// CartItem adalah baris keranjang yang belum dikirim ke dapur.
// Transient: tidak pernah dipersist sebagai entitas sendiri.
type CartItem struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	VariantID   *uint   `json:"variant_id,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ExtraIDs    []uint  `json:"extra_ids"`
	LineTotal   float64 `json:"line_total"`
	Notes       string  `json:"notes,omitempty"`
}

type CartSummary struct {
	Items     []CartItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	TaxRate   float64    `json:"tax_rate"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

// CartItemsMergeable -> dua baris bisa digabung jika product, variant dan
// set extra-nya sama. Notes sengaja tidak ikut dibandingkan.
func CartItemsMergeable(a, b CartItem) bool {
	if a.ProductID != b.ProductID {
		return false
	}
	if !uintPtrEqual(a.VariantID, b.VariantID) {
		return false
	}
	return uintSetEqual(a.ExtraIDs, b.ExtraIDs)
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func uintSetEqual(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	sortedA := append([]uint(nil), a...)
	sortedB := append([]uint(nil), b...)
	sort.Slice(sortedA, func(i, j int) bool { return sortedA[i] < sortedA[j] })
	sort.Slice(sortedB, func(i, j int) bool { return sortedB[i] < sortedB[j] })
	for i := range sortedA {
		if sortedA[i] != sortedB[i] {
			return false
		}
	}
	return true
}
