package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	assert.InDelta(t, 20.0, LineTotal(10.0, nil, 2), 0.001)
	assert.InDelta(t, 27.0, LineTotal(10.0, []float64{2.0, 1.5}, 2), 0.001)
	assert.InDelta(t, 0.0, LineTotal(10.0, nil, 0), 0.001)
}

func TestOrderSubtotal(t *testing.T) {
	items := []CartItem{
		{LineTotal: 10.50},
		{LineTotal: 4.25},
	}
	assert.InDelta(t, 14.75, OrderSubtotal(items), 0.001)
	assert.Equal(t, 0.0, OrderSubtotal(nil))
}

func TestTaxFromInclusive(t *testing.T) {
	// tax = s*r/(1+r), dan s - tax = s/(1+r)
	subtotals := []float64{1, 10, 99.99, 100, 1234.56}
	rates := []float64{0.08, 0.18, 0.2}

	for _, s := range subtotals {
		for _, r := range rates {
			tax := TaxFromInclusive(s, r)
			assert.InDelta(t, s*r/(1+r), tax, 0.01)
			assert.InDelta(t, s/(1+r), s-tax, 0.01)
		}
	}
}

func TestTaxFromInclusiveNonPositive(t *testing.T) {
	assert.Equal(t, 0.0, TaxFromInclusive(0, 0.18))
	assert.Equal(t, 0.0, TaxFromInclusive(-5, 0.18))
}

func TestGrandTotal(t *testing.T) {
	assert.InDelta(t, 110.0, GrandTotal(100, 10), 0.001)
	assert.InDelta(t, 100.0, GrandTotal(100, 0), 0.001)
	// Tidak pernah negatif
	assert.Equal(t, 0.0, GrandTotal(0, -5))
}

func TestTipDoesNotAffectTax(t *testing.T) {
	subtotal := 100.0
	taxBefore := TaxFromInclusive(subtotal, 0.18)
	total := GrandTotal(subtotal, 25)
	taxAfter := TaxFromInclusive(subtotal, 0.18)

	assert.Equal(t, taxBefore, taxAfter)
	assert.InDelta(t, 125.0, total, 0.001)
}

func TestExampleReceipt(t *testing.T) {
	// subtotal=100, tip=10, rate=0.18 => tax ~ 15.25, total = 110
	tax := TaxFromInclusive(100, 0.18)
	assert.InDelta(t, 15.25, RoundCurrency(tax), 0.01)
	assert.InDelta(t, 110.0, GrandTotal(100, 10), 0.001)
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 15.25, RoundCurrency(15.254237))
	assert.Equal(t, 15.26, RoundCurrency(15.2561))
	assert.Equal(t, 10.0, RoundCurrency(10.0))
}
