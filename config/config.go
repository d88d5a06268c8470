package config

import (
	"os"
	"strconv"

	"github.com/yeremiapane/bistro-pos/domain"
)

// Konfigurasi lewat environment (dimuat dari .env oleh main).

func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// TaxRate -> tarif PPN tax-inclusive, default 18%.
func TaxRate() float64 {
	raw := os.Getenv("TAX_RATE")
	if raw == "" {
		return domain.DefaultTaxRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 {
		return domain.DefaultTaxRate
	}
	return rate
}

// CartStorePath -> file JSON tempat keranjang berjalan dipersist.
func CartStorePath() string {
	path := os.Getenv("CART_STORE_PATH")
	if path == "" {
		path = "carts.json"
	}
	return path
}
