package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/utils"
)

func newTestCart(t *testing.T) *CartService {
	t.Helper()
	utils.InitLogger()
	storePath := filepath.Join(t.TempDir(), "carts.json")
	return NewCartService(storePath, domain.DefaultTaxRate)
}

func TestCartAddItemMergesMatchingLines(t *testing.T) {
	cart := newTestCart(t)

	cart.AddItem(domain.CartItem{ProductID: 1, ProductName: "Burger", Quantity: 1, UnitPrice: 5.50})
	cart.AddItem(domain.CartItem{ProductID: 2, ProductName: "Fries", Quantity: 1, UnitPrice: 2.50})
	cart.AddItem(domain.CartItem{ProductID: 1, ProductName: "Burger", Quantity: 2, UnitPrice: 5.50})

	items := cart.Items()
	require.Len(t, items, 2)
	// Baris lama dipertahankan di posisinya, quantity dijumlahkan
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.InDelta(t, 16.50, items[0].LineTotal, 0.001)
}

func TestCartAddItemDifferentExtrasStaySeparate(t *testing.T) {
	cart := newTestCart(t)

	cart.AddItem(domain.CartItem{ProductID: 1, Quantity: 1, UnitPrice: 5.50, ExtraIDs: []uint{3}})
	cart.AddItem(domain.CartItem{ProductID: 1, Quantity: 1, UnitPrice: 5.50})

	assert.Len(t, cart.Items(), 2)
}

func TestCartMergeIgnoresNotes(t *testing.T) {
	cart := newTestCart(t)

	cart.AddItem(domain.CartItem{ProductID: 1, Quantity: 1, UnitPrice: 5.50, Notes: "no onion"})
	cart.AddItem(domain.CartItem{ProductID: 1, Quantity: 1, UnitPrice: 5.50, Notes: "extra sauce"})

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := newTestCart(t)
	cart.AddItem(domain.CartItem{ProductID: 1, Quantity: 1, UnitPrice: 4.00})

	cart.UpdateQuantity(0, 5)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.InDelta(t, 20.00, items[0].LineTotal, 0.001)

	// Quantity <= 0 menghapus baris
	cart.UpdateQuantity(0, 0)
	assert.True(t, cart.IsEmpty())
}

func TestCartRemoveItemOutOfRange(t *testing.T) {
	cart := newTestCart(t)
	cart.AddItem(domain.CartItem{ProductID: 1, Quantity: 1, UnitPrice: 4.00})

	cart.RemoveItem(5)
	cart.RemoveItem(-1)
	assert.Len(t, cart.Items(), 1)
}

func TestCartContextsAreIsolated(t *testing.T) {
	cart := newTestCart(t)

	cart.SetContext(TableContextKey(1))
	cart.AddItem(domain.CartItem{ProductID: 1, Quantity: 1, UnitPrice: 4.00})

	cart.SetContext(TableContextKey(2))
	cart.AddItem(domain.CartItem{ProductID: 2, Quantity: 2, UnitPrice: 3.00})

	// Clear hanya membuang context aktif
	cart.Clear()
	assert.True(t, cart.IsEmpty())

	cart.SetContext(TableContextKey(1))
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ProductID)
}

func TestCartSummary(t *testing.T) {
	cart := newTestCart(t)

	cart.AddItem(domain.CartItem{ProductID: 1, Quantity: 2, UnitPrice: 30.00})
	cart.AddItem(domain.CartItem{ProductID: 2, Quantity: 4, UnitPrice: 10.00})

	summary := cart.Summary()
	assert.InDelta(t, 100.00, summary.Subtotal, 0.001)
	// Harga tax-inclusive: total = subtotal, pajak terkandung di dalamnya
	assert.InDelta(t, 100.00, summary.Total, 0.001)
	assert.InDelta(t, domain.TaxFromInclusive(100.00, domain.DefaultTaxRate), summary.Tax, 0.001)
	assert.Equal(t, 6, summary.ItemCount)
	assert.Len(t, summary.Items, 2)
}

func TestCartPersistsAcrossRestart(t *testing.T) {
	utils.InitLogger()
	storePath := filepath.Join(t.TempDir(), "carts.json")

	cart := NewCartService(storePath, domain.DefaultTaxRate)
	cart.SetContext(TableContextKey(3))
	cart.AddItem(domain.CartItem{ProductID: 7, ProductName: "Espresso", Quantity: 2, UnitPrice: 1.80})

	// Instance baru dengan store yang sama mensimulasikan restart aplikasi
	reloaded := NewCartService(storePath, domain.DefaultTaxRate)
	reloaded.SetContext(TableContextKey(3))

	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 3.60, items[0].LineTotal, 0.001)
}
