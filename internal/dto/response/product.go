package response

import (
	"shop-backend/internal/data/entity"
)

type Product struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
	Price              float64  `json:"price"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	Rating             *float64 `json:"rating,omitempty"`
	DiscountedPrice    float64  `json:"discountedPrice"`
}

type ProductDetail struct {
	Product         Product   `json:"product"`
	RelatedProducts []Product `json:"relatedProducts"`
}

func ProductToResponse(product *entity.Product) Product {
	images := product.Images
	if images == nil {
		images = []string{}
	}

	return Product{
		ID:                 product.ID.Hex(),
		Title:              product.Title,
		Description:        product.Description,
		Brand:              product.Brand,
		Category:           product.Category,
		Thumbnail:          product.Thumbnail,
		Images:             images,
		Price:              product.Price,
		DiscountPercentage: product.DiscountPercentage,
		Rating:             product.Rating,
		DiscountedPrice:    product.DiscountedPrice,
	}
}

func ProductsToResponse(products []*entity.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, ProductToResponse(product))
	}
	return out
}
