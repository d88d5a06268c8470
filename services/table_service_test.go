package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/repository"
)

func newTestTableService(t *testing.T) (*TableService, *CodeRegistry) {
	t.Helper()
	db := setupTestDB(t)
	registry := newTestRegistry(db)
	return NewTableService(repository.NewTableRepository(db), registry), registry
}

func TestTableCreateStartsFree(t *testing.T) {
	tables, registry := newTestTableService(t)

	table, err := tables.Create("T01", 6)
	require.NoError(t, err)

	freeID := mustResolve(t, registry, domain.CodeTypeTableStatus, domain.TableFree)
	assert.Equal(t, freeID, table.StatusID)
	assert.Equal(t, 6, table.Seats)
}

func TestSyncTableForOrderDineIn(t *testing.T) {
	tables, registry := newTestTableService(t)

	table, err := tables.Create("T01", 4)
	require.NoError(t, err)

	occupiedID := mustResolve(t, registry, domain.CodeTypeTableStatus, domain.TableOccupied)
	freeID := mustResolve(t, registry, domain.CodeTypeTableStatus, domain.TableFree)

	require.NoError(t, tables.SyncTableForOrder(domain.TypeDineIn, domain.StatusOpen, &table.ID))
	refreshed, err := tables.GetByID(table.ID)
	require.NoError(t, err)
	assert.Equal(t, occupiedID, refreshed.StatusID)

	require.NoError(t, tables.SyncTableForOrder(domain.TypeDineIn, domain.StatusCompleted, &table.ID))
	refreshed, err = tables.GetByID(table.ID)
	require.NoError(t, err)
	assert.Equal(t, freeID, refreshed.StatusID)
}

func TestSyncTableForOrderIgnoresOtherTypes(t *testing.T) {
	tables, registry := newTestTableService(t)

	table, err := tables.Create("T01", 4)
	require.NoError(t, err)

	// Takeaway/delivery tidak menyentuh meja walau table id terisi
	require.NoError(t, tables.SyncTableForOrder(domain.TypeTakeaway, domain.StatusOpen, &table.ID))
	require.NoError(t, tables.SyncTableForOrder(domain.TypeDelivery, domain.StatusOpen, &table.ID))
	require.NoError(t, tables.SyncTableForOrder(domain.TypeDineIn, domain.StatusOpen, nil))

	freeID := mustResolve(t, registry, domain.CodeTypeTableStatus, domain.TableFree)
	refreshed, err := tables.GetByID(table.ID)
	require.NoError(t, err)
	assert.Equal(t, freeID, refreshed.StatusID)
}

func TestTableGetByIDUnknown(t *testing.T) {
	tables, _ := newTestTableService(t)

	_, err := tables.GetByID(404)
	var notFound *domain.NotFoundError
	require.Error(t, err)
	assert.ErrorAs(t, err, &notFound)
}
