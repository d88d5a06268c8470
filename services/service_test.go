package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yeremiapane/bistro-pos/database"
	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/models"
	"github.com/yeremiapane/bistro-pos/repository"
	"github.com/yeremiapane/bistro-pos/utils"
)

// setupTestDB membuka database sqlite in-memory terpisah per test (DSN pakai
// nama test supaya state tidak bocor antar test) lalu men-seed code entries.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.CodeEntry{},
		&models.CodeTranslation{},
		&models.User{},
		&models.Table{},
		&models.Category{},
		&models.Product{},
		&models.Variant{},
		&models.Extra{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemExtra{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	if err := database.SeedCodeEntries(db); err != nil {
		t.Fatalf("Failed to seed code entries: %v", err)
	}
	return db
}

func newTestRegistry(db *gorm.DB) *CodeRegistry {
	return NewCodeRegistry(
		repository.NewCodeEntryRepository(db),
		repository.NewCodeTranslationRepository(db),
	)
}

func newTestOrderService(db *gorm.DB) (*OrderService, *CodeRegistry, *TableService) {
	registry := newTestRegistry(db)
	tables := NewTableService(repository.NewTableRepository(db), registry)
	orders := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewOrderItemRepository(db),
		repository.NewOrderItemExtraRepository(db),
		registry,
		tables,
		domain.DefaultTaxRate,
	)
	return orders, registry, tables
}

func mustResolve(t *testing.T, registry *CodeRegistry, codeType, code string) uint {
	t.Helper()
	id, err := registry.Resolve(codeType, code)
	if err != nil {
		t.Fatalf("Failed to resolve %s.%s: %v", codeType, code, err)
	}
	return id
}
