package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Images holds a JSON-encoded array of public
// URLs, in upload order; every product carries at least one.
type Product struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Category      string          `gorm:"size:100;not null" json:"category"`
	Price         decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"-"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(16,2)" json:"-"`
	Description   string          `gorm:"type:text" json:"description"`
	Images        string          `gorm:"type:text;not null" json:"-"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ImageList decodes the stored image column into its ordered URL list.
func (p *Product) ImageList() []string {
	var urls []string
	if p.Images == "" {
		return urls
	}
	if err := json.Unmarshal([]byte(p.Images), &urls); err != nil {
		return nil
	}
	return urls
}

// EncodeImages serializes an image URL list for storage.
func EncodeImages(urls []string) string {
	encoded, _ := json.Marshal(urls)
	return string(encoded)
}

// Stock tracks available quantity per product. ProductName is a denormalized
// copy of Product.Name and is written in the same transaction that touches
// the product row.
type Stock struct {
	ProductID   uint   `gorm:"primaryKey" json:"product_id"`
	Quantity    int    `gorm:"not null;default:0" json:"quantity"`
	ProductName string `gorm:"size:255;not null" json:"product_name"`
}
