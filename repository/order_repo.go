package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/bistro-pos/models"
)

type OrderRepository interface {
	FindByID(id uint) (*models.Order, error)
	FindAll() ([]models.Order, error)
	FindByTable(tableID uint) ([]models.Order, error)
	FindByStatus(statusID uint) ([]models.Order, error)
	FindActiveOrders(terminalStatusIDs []uint) ([]models.Order, error)
	GetNextOrderNumber() (string, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) FindAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) FindByTable(tableID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("table_id = ?", tableID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) FindByStatus(statusID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("status_id = ?", statusID).
		Order("created_at asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindActiveOrders -> order yang statusnya belum terminal. Filter pakai
// status, bukan completed_at: order COMPLETED yang dibuka kembali ke
// PREPARING harus langsung terhitung aktif lagi.
func (r *gormOrderRepository) FindActiveOrders(terminalStatusIDs []uint) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Order("created_at asc")
	if len(terminalStatusIDs) > 0 {
		query = query.Where("status_id NOT IN ?", terminalStatusIDs)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetNextOrderNumber -> nomor urut harian: YYYYMMDD + 4 digit sequence.
func (r *gormOrderRepository) GetNextOrderNumber() (string, error) {
	today := time.Now().Format("20060102")
	var count int64
	if err := r.db.Model(&models.Order{}).
		Where("order_number LIKE ?", today+"%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", today, count+1), nil
}

func (r *gormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *gormOrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}
