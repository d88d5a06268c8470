package database

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/models"
	"github.com/yeremiapane/bistro-pos/utils"
)

type seedEntry struct {
	codeType  string
	code      string
	sortOrder int
	labels    map[string]string // language -> label
}

var seedEntries = []seedEntry{
	{domain.CodeTypeTableStatus, domain.TableFree, 1, map[string]string{"en": "Free", "sq": "E lirë"}},
	{domain.CodeTypeTableStatus, domain.TableOccupied, 2, map[string]string{"en": "Occupied", "sq": "E zënë"}},
	{domain.CodeTypeTableStatus, domain.TableReserved, 3, map[string]string{"en": "Reserved", "sq": "E rezervuar"}},

	{domain.CodeTypeOrderType, domain.TypeDineIn, 1, map[string]string{"en": "Dine In", "sq": "Në restorant"}},
	{domain.CodeTypeOrderType, domain.TypeTakeaway, 2, map[string]string{"en": "Takeaway", "sq": "Merr me vete"}},
	{domain.CodeTypeOrderType, domain.TypeDelivery, 3, map[string]string{"en": "Delivery", "sq": "Dërgesë"}},

	{domain.CodeTypeOrderStatus, domain.StatusOpen, 1, map[string]string{"en": "Open", "sq": "E hapur"}},
	{domain.CodeTypeOrderStatus, domain.StatusPaid, 2, map[string]string{"en": "Paid", "sq": "E paguar"}},
	{domain.CodeTypeOrderStatus, domain.StatusPreparing, 3, map[string]string{"en": "Preparing", "sq": "Në përgatitje"}},
	{domain.CodeTypeOrderStatus, domain.StatusReady, 4, map[string]string{"en": "Ready", "sq": "Gati"}},
	{domain.CodeTypeOrderStatus, domain.StatusOutForDelivery, 5, map[string]string{"en": "Out for Delivery", "sq": "Në dërgesë"}},
	{domain.CodeTypeOrderStatus, domain.StatusServed, 6, map[string]string{"en": "Served", "sq": "E shërbyer"}},
	{domain.CodeTypeOrderStatus, domain.StatusCompleted, 7, map[string]string{"en": "Completed", "sq": "E përfunduar"}},
	{domain.CodeTypeOrderStatus, domain.StatusCancelled, 8, map[string]string{"en": "Cancelled", "sq": "E anuluar"}},

	{domain.CodeTypeUserRole, domain.RoleAdmin, 1, map[string]string{"en": "Administrator", "sq": "Administrator"}},
	{domain.CodeTypeUserRole, domain.RoleCashier, 2, map[string]string{"en": "Cashier", "sq": "Arkëtar"}},
	{domain.CodeTypeUserRole, domain.RoleKitchen, 3, map[string]string{"en": "Kitchen", "sq": "Kuzhina"}},
	{domain.CodeTypeUserRole, domain.RoleDriver, 4, map[string]string{"en": "Driver", "sq": "Shofer"}},
}

// SeedCodeEntries mengisi tabel referensi code_entries + code_translations.
// Idempotent: entry yang sudah ada tidak disentuh, jadi aman dijalankan di
// setiap startup. Core mengasumsikan semua code di atas ada sebelum dipakai.
func SeedCodeEntries(db *gorm.DB) error {
	for _, seed := range seedEntries {
		var entry models.CodeEntry
		err := db.Where("code_type = ? AND code = ?", seed.codeType, seed.code).
			Attrs(models.CodeEntry{
				CodeType:  seed.codeType,
				Code:      seed.code,
				SortOrder: seed.sortOrder,
				IsActive:  true,
			}).
			FirstOrCreate(&entry).Error
		if err != nil {
			return fmt.Errorf("seeding %s.%s: %w", seed.codeType, seed.code, err)
		}

		for language, label := range seed.labels {
			var translation models.CodeTranslation
			err := db.Where("code_entry_id = ? AND language = ?", entry.ID, language).
				Attrs(models.CodeTranslation{
					CodeEntryID: entry.ID,
					Language:    language,
					Label:       label,
				}).
				FirstOrCreate(&translation).Error
			if err != nil {
				return fmt.Errorf("seeding translation %s.%s (%s): %w", seed.codeType, seed.code, language, err)
			}
		}
	}

	utils.InfoLogger.Printf("Code entries seeded (%d entries)", len(seedEntries))
	return nil
}

// SeedDefaultAdmin membuat user admin pertama jika belum ada user sama sekali.
func SeedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var adminRole models.CodeEntry
	err := db.Where("code_type = ? AND code = ?", domain.CodeTypeUserRole, domain.RoleAdmin).
		First(&adminRole).Error
	if err != nil {
		return fmt.Errorf("admin role entry missing, run SeedCodeEntries first: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:      "Administrator",
		Email:     "admin@bistro.local",
		Password:  string(hashed),
		RoleID:    adminRole.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Default admin user created: %s", admin.Email)
	return nil
}

// SeedTables membuat beberapa meja awal jika tabel masih kosong.
func SeedTables(db *gorm.DB, count int) error {
	var existing int64
	if err := db.Model(&models.Table{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	var freeStatus models.CodeEntry
	err := db.Where("code_type = ? AND code = ?", domain.CodeTypeTableStatus, domain.TableFree).
		First(&freeStatus).Error
	if err != nil {
		return fmt.Errorf("FREE table status missing, run SeedCodeEntries first: %w", err)
	}

	for i := 1; i <= count; i++ {
		table := models.Table{
			TableNumber: fmt.Sprintf("T%02d", i),
			Seats:       4,
			StatusID:    freeStatus.ID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := db.Create(&table).Error; err != nil {
			return err
		}
	}

	utils.InfoLogger.Printf("%d tables seeded", count)
	return nil
}
