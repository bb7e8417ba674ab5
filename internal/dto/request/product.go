package request

import (
	"shop-backend/internal/data/entity"
)

type SaveProductRequest struct {
	Title              string   `json:"title" validate:"required"`
	Description        string   `json:"description" validate:"required"`
	Brand              string   `json:"brand" validate:"required"`
	Category           string   `json:"category" validate:"required"`
	Thumbnail          string   `json:"thumbnail" validate:"required"`
	Images             []string `json:"images"`
	Price              *float64 `json:"price" validate:"required,gte=0"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Rating             *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// ToEntity maps the request onto a product entity. The discounted price is
// left zero here; the repository derives it at write time.
func (r *SaveProductRequest) ToEntity() *entity.Product {
	return &entity.Product{
		Title:              r.Title,
		Description:        r.Description,
		Brand:              r.Brand,
		Category:           r.Category,
		Thumbnail:          r.Thumbnail,
		Images:             r.Images,
		Price:              *r.Price,
		DiscountPercentage: r.DiscountPercentage,
		Rating:             r.Rating,
	}
}
