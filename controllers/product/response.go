package productcontroller

import (
	"time"

	"github.com/Aqil0709/aaisaheb-vastram-backend/models"
)

// ProductResponse is the wire shape for a catalog entry: deserialized image
// list, the first image repeated as imageUrl for convenience, and the stock
// quantity joined in.
type ProductResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	Description   string    `json:"description"`
	Images        []string  `json:"images"`
	ImageURL      string    `json:"imageUrl"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

func buildProductResponse(p *models.Product, quantity int) ProductResponse {
	images := p.ImageList()
	imageURL := ""
	if len(images) > 0 {
		imageURL = images[0]
	}
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price.InexactFloat64(),
		OriginalPrice: p.OriginalPrice.InexactFloat64(),
		Description:   p.Description,
		Images:        images,
		ImageURL:      imageURL,
		Quantity:      quantity,
		CreatedAt:     p.CreatedAt,
	}
}
