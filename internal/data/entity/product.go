package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Title              string             `bson:"title"`
	Description        string             `bson:"description"`
	Brand              string             `bson:"brand"`
	Category           string             `bson:"category"`
	Thumbnail          string             `bson:"thumbnail"`
	Images             []string           `bson:"images,omitempty"`
	Price              float64            `bson:"price"`
	DiscountPercentage *float64           `bson:"discount_percentage,omitempty"`
	Rating             *float64           `bson:"rating,omitempty"`
	DiscountedPrice    float64            `bson:"discounted_price"`
}

// DiscountedPrice returns the effective price after discount. Callers never
// set the stored discounted price themselves; the repository recomputes it
// with this function right before every write.
func DiscountedPrice(price float64, discountPercentage *float64) float64 {
	if discountPercentage == nil {
		return price
	}
	return price - price*(*discountPercentage/100)
}

// ApplyDiscount recomputes the stored DiscountedPrice field.
func (p *Product) ApplyDiscount() {
	p.DiscountedPrice = DiscountedPrice(p.Price, p.DiscountPercentage)
}
