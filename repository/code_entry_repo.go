package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/bistro-pos/models"
)

// CodeEntryRepository adalah akses ke tabel referensi code_entries.
type CodeEntryRepository interface {
	FindByID(id uint) (*models.CodeEntry, error)
	FindAll() ([]models.CodeEntry, error)
	FindByCodeType(codeType string) ([]models.CodeEntry, error)
	FindByCodeTypeAndCode(codeType, code string, activeOnly bool) (*models.CodeEntry, error)
	Create(entry *models.CodeEntry) error
	Update(entry *models.CodeEntry) error
}

type gormCodeEntryRepository struct {
	db *gorm.DB
}

func NewCodeEntryRepository(db *gorm.DB) CodeEntryRepository {
	return &gormCodeEntryRepository{db: db}
}

func (r *gormCodeEntryRepository) FindByID(id uint) (*models.CodeEntry, error) {
	var entry models.CodeEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *gormCodeEntryRepository) FindAll() ([]models.CodeEntry, error) {
	var entries []models.CodeEntry
	if err := r.db.Order("code_type asc, sort_order asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *gormCodeEntryRepository) FindByCodeType(codeType string) ([]models.CodeEntry, error) {
	var entries []models.CodeEntry
	if err := r.db.Where("code_type = ?", codeType).
		Order("sort_order asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *gormCodeEntryRepository) FindByCodeTypeAndCode(codeType, code string, activeOnly bool) (*models.CodeEntry, error) {
	query := r.db.Where("code_type = ? AND code = ?", codeType, code)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var entry models.CodeEntry
	if err := query.First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *gormCodeEntryRepository) Create(entry *models.CodeEntry) error {
	return r.db.Create(entry).Error
}

func (r *gormCodeEntryRepository) Update(entry *models.CodeEntry) error {
	return r.db.Save(entry).Error
}

// CodeTranslationRepository -> label per bahasa untuk satu code entry.
type CodeTranslationRepository interface {
	FindByCodeEntryIDAndLanguage(codeEntryID uint, language string) (*models.CodeTranslation, error)
	Create(translation *models.CodeTranslation) error
}

type gormCodeTranslationRepository struct {
	db *gorm.DB
}

func NewCodeTranslationRepository(db *gorm.DB) CodeTranslationRepository {
	return &gormCodeTranslationRepository{db: db}
}

func (r *gormCodeTranslationRepository) FindByCodeEntryIDAndLanguage(codeEntryID uint, language string) (*models.CodeTranslation, error) {
	var translation models.CodeTranslation
	err := r.db.Where("code_entry_id = ? AND language = ?", codeEntryID, language).
		First(&translation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &translation, nil
}

func (r *gormCodeTranslationRepository) Create(translation *models.CodeTranslation) error {
	return r.db.Create(translation).Error
}
