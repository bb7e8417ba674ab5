package entity

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPhoneTaken         = errors.New("phone number already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProductNotFound    = errors.New("product not found")
	ErrNoProducts         = errors.New("no products found")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrNotInCart          = errors.New("product not in cart")
)
