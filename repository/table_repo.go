package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/bistro-pos/models"
)

type TableRepository interface {
	FindByID(id uint) (*models.Table, error)
	FindAll() ([]models.Table, error)
	FindByStatus(statusID uint) ([]models.Table, error)
	Create(table *models.Table) error
	Update(table *models.Table) error
	UpdateStatus(tableID, statusID uint) error
	Delete(id uint) error
}

type gormTableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &gormTableRepository{db: db}
}

func (r *gormTableRepository) FindByID(id uint) (*models.Table, error) {
	var table models.Table
	if err := r.db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

func (r *gormTableRepository) FindAll() ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.Order("table_number asc").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *gormTableRepository) FindByStatus(statusID uint) ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.Where("status_id = ?", statusID).
		Order("table_number asc").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *gormTableRepository) Create(table *models.Table) error {
	return r.db.Create(table).Error
}

func (r *gormTableRepository) Update(table *models.Table) error {
	return r.db.Save(table).Error
}

func (r *gormTableRepository) UpdateStatus(tableID, statusID uint) error {
	return r.db.Model(&models.Table{}).
		Where("id = ?", tableID).
		Update("status_id", statusID).Error
}

func (r *gormTableRepository) Delete(id uint) error {
	return r.db.Delete(&models.Table{}, id).Error
}
