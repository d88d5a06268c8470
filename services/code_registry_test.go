package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/bistro-pos/domain"
)

func TestRegistryResolveSeededCodes(t *testing.T) {
	db := setupTestDB(t)
	registry := newTestRegistry(db)

	openID := mustResolve(t, registry, domain.CodeTypeOrderStatus, domain.StatusOpen)
	dineInID := mustResolve(t, registry, domain.CodeTypeOrderType, domain.TypeDineIn)
	freeID := mustResolve(t, registry, domain.CodeTypeTableStatus, domain.TableFree)

	assert.NotZero(t, openID)
	assert.NotZero(t, dineInID)
	assert.NotZero(t, freeID)
	assert.NotEqual(t, openID, dineInID)
}

func TestRegistryResolveUnknownCode(t *testing.T) {
	db := setupTestDB(t)
	registry := newTestRegistry(db)

	_, err := registry.Resolve(domain.CodeTypeOrderStatus, "NO_SUCH_STATUS")
	require.Error(t, err)

	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRegistryReverseResolve(t *testing.T) {
	db := setupTestDB(t)
	registry := newTestRegistry(db)

	readyID := mustResolve(t, registry, domain.CodeTypeOrderStatus, domain.StatusReady)

	ref, err := registry.ReverseResolve(readyID)
	require.NoError(t, err)
	assert.Equal(t, domain.CodeTypeOrderStatus, ref.CodeType)
	assert.Equal(t, domain.StatusReady, ref.Code)

	var notFound *domain.NotFoundError
	_, err = registry.ReverseResolve(99999)
	require.Error(t, err)
	assert.ErrorAs(t, err, &notFound)
}

func TestRegistryTranslate(t *testing.T) {
	db := setupTestDB(t)
	registry := newTestRegistry(db)

	openID := mustResolve(t, registry, domain.CodeTypeOrderStatus, domain.StatusOpen)

	label, err := registry.Translate(openID, "en")
	require.NoError(t, err)
	assert.Equal(t, "Open", label)

	label, err = registry.Translate(openID, "sq")
	require.NoError(t, err)
	assert.Equal(t, "E hapur", label)

	// Bahasa yang tidak di-seed bukan error, labelnya saja kosong
	label, err = registry.Translate(openID, "de")
	require.NoError(t, err)
	assert.Equal(t, "", label)
}

func TestRegistryEntriesByType(t *testing.T) {
	db := setupTestDB(t)
	registry := newTestRegistry(db)

	entries, err := registry.EntriesByType(domain.CodeTypeOrderStatus)
	require.NoError(t, err)
	assert.Len(t, entries, 8)

	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].SortOrder, entries[i].SortOrder)
	}
}

func TestRegistrySetActiveInvalidatesCacheSynchronously(t *testing.T) {
	db := setupTestDB(t)
	registry := newTestRegistry(db)

	// Warm up cache dulu
	mustResolve(t, registry, domain.CodeTypeOrderType, domain.TypeDelivery)

	require.NoError(t, registry.SetActive(domain.CodeTypeOrderType, domain.TypeDelivery, false))

	// Langsung setelah SetActive return, resolve harus sudah gagal
	_, err := registry.Resolve(domain.CodeTypeOrderType, domain.TypeDelivery)
	var notFound *domain.NotFoundError
	require.Error(t, err)
	assert.ErrorAs(t, err, &notFound)

	active, err := registry.IsActive(domain.CodeTypeOrderType, domain.TypeDelivery)
	require.NoError(t, err)
	assert.False(t, active)

	// Entry nonaktif tetap muncul di listing admin
	entries, err := registry.EntriesByType(domain.CodeTypeOrderType)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	// Aktifkan kembali
	require.NoError(t, registry.SetActive(domain.CodeTypeOrderType, domain.TypeDelivery, true))
	mustResolve(t, registry, domain.CodeTypeOrderType, domain.TypeDelivery)
}

func TestRegistrySetActiveUnknownEntry(t *testing.T) {
	db := setupTestDB(t)
	registry := newTestRegistry(db)

	err := registry.SetActive(domain.CodeTypeOrderType, "DRONE_DROP", true)
	var notFound *domain.NotFoundError
	require.Error(t, err)
	assert.ErrorAs(t, err, &notFound)
}
