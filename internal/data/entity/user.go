package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	City       string `bson:"city,omitempty"`
	State      string `bson:"state,omitempty"`
	PostalCode string `bson:"postal_code,omitempty"`
}

// User is the account record. Products holds the cart as an ordered list of
// product ids; the same id may appear more than once, each occurrence is one
// unit of that product.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Name         string               `bson:"name"`
	Phone        string               `bson:"phone,omitempty"`
	Email        string               `bson:"email,omitempty"`
	PasswordHash string               `bson:"password"`
	Address      Address              `bson:"address,omitempty"`
	Products     []primitive.ObjectID `bson:"products"`
	WishList     []primitive.ObjectID `bson:"wish_list"`
	CreatedAt    time.Time            `bson:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}
