package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/bistro-pos/models"
)

type OrderItemRepository interface {
	FindByID(id uint) (*models.OrderItem, error)
	FindByOrderID(orderID uint) ([]models.OrderItem, error)
	Create(item *models.OrderItem) error
	Update(item *models.OrderItem) error
}

type gormOrderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &gormOrderItemRepository{db: db}
}

func (r *gormOrderItemRepository) FindByID(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *gormOrderItemRepository) FindByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Where("order_id = ?", orderID).
		Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormOrderItemRepository) Create(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

func (r *gormOrderItemRepository) Update(item *models.OrderItem) error {
	return r.db.Save(item).Error
}

type OrderItemExtraRepository interface {
	FindByOrderID(orderID uint) ([]models.OrderItemExtra, error)
	FindByOrderItemID(orderItemID uint) ([]models.OrderItemExtra, error)
	Create(extra *models.OrderItemExtra) error
}

type gormOrderItemExtraRepository struct {
	db *gorm.DB
}

func NewOrderItemExtraRepository(db *gorm.DB) OrderItemExtraRepository {
	return &gormOrderItemExtraRepository{db: db}
}

func (r *gormOrderItemExtraRepository) FindByOrderID(orderID uint) ([]models.OrderItemExtra, error) {
	var extras []models.OrderItemExtra
	if err := r.db.Where("order_id = ?", orderID).Find(&extras).Error; err != nil {
		return nil, err
	}
	return extras, nil
}

func (r *gormOrderItemExtraRepository) FindByOrderItemID(orderItemID uint) ([]models.OrderItemExtra, error) {
	var extras []models.OrderItemExtra
	if err := r.db.Where("order_item_id = ?", orderItemID).Find(&extras).Error; err != nil {
		return nil, err
	}
	return extras, nil
}

func (r *gormOrderItemExtraRepository) Create(extra *models.OrderItemExtra) error {
	return r.db.Create(extra).Error
}
