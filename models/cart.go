package models

import "github.com/shopspring/decimal"

// CartItem is one cart line: a (user, product) pairing with its own id.
// Name and Price are snapshots taken from the product when the line is
// created; they do not track later catalog changes. The composite unique
// index is what the add-to-cart upsert keys on.
type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint            `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"-"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
}
