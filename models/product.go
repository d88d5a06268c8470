package models

import "time"

// Reference entities. CRUD untuk entitas ini milik layar admin,
// core hanya butuh foreign key target untuk order item dan extra.

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

type Product struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CategoryID uint      `gorm:"not null" json:"category_id"`
	Category   Category  `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// Variant menambah/mengurangi harga dasar product (mis. ukuran besar +1.50).
type Variant struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	ProductID     uint    `gorm:"not null;index" json:"product_id"`
	Product       Product `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	PriceModifier float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"price_modifier"`
}

type Extra struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"type:varchar(255);not null" json:"name"`
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
