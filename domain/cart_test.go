package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestCartItemsMergeableSameProduct(t *testing.T) {
	a := CartItem{ProductID: 1, Quantity: 1, UnitPrice: 4.5}
	b := CartItem{ProductID: 1, Quantity: 2, UnitPrice: 4.5}
	assert.True(t, CartItemsMergeable(a, b))
}

func TestCartItemsMergeableDifferentProduct(t *testing.T) {
	a := CartItem{ProductID: 1}
	b := CartItem{ProductID: 2}
	assert.False(t, CartItemsMergeable(a, b))
}

func TestCartItemsMergeableVariant(t *testing.T) {
	a := CartItem{ProductID: 1, VariantID: uintPtr(10)}
	b := CartItem{ProductID: 1, VariantID: uintPtr(10)}
	c := CartItem{ProductID: 1, VariantID: uintPtr(11)}
	d := CartItem{ProductID: 1}

	assert.True(t, CartItemsMergeable(a, b))
	assert.False(t, CartItemsMergeable(a, c))
	assert.False(t, CartItemsMergeable(a, d))
}

func TestCartItemsMergeableExtrasAsSet(t *testing.T) {
	a := CartItem{ProductID: 1, ExtraIDs: []uint{3, 7}}
	b := CartItem{ProductID: 1, ExtraIDs: []uint{7, 3}}
	c := CartItem{ProductID: 1, ExtraIDs: []uint{3}}

	// Urutan extra tidak relevan, isinya yang dibandingkan
	assert.True(t, CartItemsMergeable(a, b))
	assert.False(t, CartItemsMergeable(a, c))
}

func TestCartItemsMergeableIgnoresNotes(t *testing.T) {
	a := CartItem{ProductID: 1, Notes: "no onion"}
	b := CartItem{ProductID: 1, Notes: "extra spicy"}
	assert.True(t, CartItemsMergeable(a, b))
}
