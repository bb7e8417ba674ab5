package wire

import (
	"shop-backend/internal/adaptor"
	"shop-backend/pkg/middleware"
	"shop-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler, tokens *utils.TokenIssuer, log *zap.Logger) {
	// Public routes
	r.Post("/save-products", productHandler.SaveProducts)
	r.Get("/products", productHandler.ListProducts)

	// Protected routes
	r.With(middleware.Auth(tokens, log)).Get("/product/desc/{pid}", productHandler.ProductDetail)
}
