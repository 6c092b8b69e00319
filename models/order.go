package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusPending = "pending"

type Order struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Reference string          `gorm:"size:64;uniqueIndex;not null" json:"reference"`
	UserID    uint            `gorm:"index;not null" json:"user_id"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"-"`
	Status    string          `gorm:"size:20;default:'pending';not null" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderItem snapshots a cart line at checkout time.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"-"`
	Quantity  int             `gorm:"not null" json:"quantity"`
}
