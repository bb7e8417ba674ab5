package wire

import (
	"shop-backend/internal/adaptor"
	"shop-backend/pkg/middleware"
	"shop-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(r chi.Router, cartHandler *adaptor.CartHandler, tokens *utils.TokenIssuer, log *zap.Logger) {
	auth := middleware.Auth(tokens, log)

	// Fetching a product while authenticated adds it to the cart
	r.With(auth).Get("/products/{id}", cartHandler.AddProduct)
	r.With(auth).Get("/user/products", cartHandler.UserProducts)
	r.With(auth).Delete("/product/cart/remove/{id}", cartHandler.RemoveProduct)
	r.With(auth).Delete("/products/{id}", cartHandler.RemoveOneUnit)
}
