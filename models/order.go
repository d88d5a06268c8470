package models

import (
	"time"
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderNumber     string      `gorm:"type:varchar(20);not null;index" json:"order_number"`
	TypeID          uint        `gorm:"not null" json:"type_id"`
	Type            CodeEntry   `gorm:"foreignKey:TypeID;references:ID" json:"-"`
	StatusID        uint        `gorm:"not null;index" json:"status_id"`
	Status          CodeEntry   `gorm:"foreignKey:StatusID;references:ID" json:"-"`
	TableID         *uint       `gorm:"index" json:"table_id,omitempty"`
	Table           *Table      `gorm:"foreignKey:TableID;references:ID" json:"table,omitempty"`
	Subtotal        float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"subtotal"`
	Tax             float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"tax"`
	Tip             float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"tip"`
	Total           float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	UserID          uint        `gorm:"not null" json:"user_id"`
	CancelledReason *string     `gorm:"type:text" json:"cancelled_reason,omitempty"`
	CustomerName    *string     `gorm:"type:varchar(255)" json:"customer_name,omitempty"`
	OrderItems      []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}
