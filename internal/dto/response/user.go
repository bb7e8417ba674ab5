package response

import (
	"time"

	"shop-backend/internal/data/entity"
)

type Address struct {
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// User is the account as exposed on the wire. The password digest stays
// server-side.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   Address   `json:"address"`
	Products  []string  `json:"products"`
	WishList  []string  `json:"wishList"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserEnvelope struct {
	User User `json:"user"`
}

type UpdatedUserEnvelope struct {
	UpdatedUser User `json:"updatedUser"`
}

// UserWithMsg is the cart-mutation response: a status line plus the user
// record whose products list just changed.
type UserWithMsg struct {
	Msg  string `json:"msg"`
	User User   `json:"user"`
}

func UserToResponse(user *entity.User) User {
	products := make([]string, 0, len(user.Products))
	for _, id := range user.Products {
		products = append(products, id.Hex())
	}

	wishList := make([]string, 0, len(user.WishList))
	for _, id := range user.WishList {
		wishList = append(wishList, id.Hex())
	}

	return User{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Phone: user.Phone,
		Email: user.Email,
		Address: Address{
			City:       user.Address.City,
			State:      user.Address.State,
			PostalCode: user.Address.PostalCode,
		},
		Products:  products,
		WishList:  wishList,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
