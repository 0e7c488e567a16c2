package models

import "time"

type Order struct {
	ID        uint      `gorm:"primaryKey"`
	OrderDate time.Time `gorm:"not null"`
	UserID    uint      `gorm:"not null;index"`

	// Loaded explicitly through order_product, never saved through the order.
	Products []Product `gorm:"-"`
}

// OrderProduct is the order_product association table. The composite
// primary key keeps each (order, product) pair unique.
type OrderProduct struct {
	OrderID   uint `gorm:"primaryKey;autoIncrement:false"`
	ProductID uint `gorm:"primaryKey;autoIncrement:false;index"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (OrderProduct) TableName() string {
	return "order_product"
}
