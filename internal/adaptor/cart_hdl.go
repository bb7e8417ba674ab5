package adaptor

import (
	"errors"
	"net/http"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/dto/response"
	"shop-backend/internal/usecase"
	"shop-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// AddProduct handles GET /products/{id}: fetching a product as an
// authenticated user appends one unit of it to the cart.
func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMsg(w, http.StatusUnauthorized, "Unauthorized user")
		return
	}

	user, err := h.service.AddProduct(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrProductNotFound):
			utils.ResponseMsg(w, http.StatusNotFound, "No product found")
		case errors.Is(err, entity.ErrUserNotFound):
			utils.ResponseMsg(w, http.StatusNotFound, "User not found")
		default:
			h.log.Error("Failed to add product to cart", zap.Error(err))
			utils.ResponseMsg(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.UserWithMsg{
		Msg:  "Product added to user's list",
		User: *user,
	})
}

// UserProducts handles GET /user/products
func (h *CartHandler) UserProducts(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMsg(w, http.StatusUnauthorized, "Unauthorized user")
		return
	}

	cart, err := h.service.UserProducts(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUserNotFound):
			utils.ResponseMsg(w, http.StatusUnauthorized, "Unauthorized user")
		case errors.Is(err, entity.ErrCartEmpty):
			// An empty cart reports as absent, matching the original wire
			// behavior clients depend on.
			utils.ResponseMsg(w, http.StatusNotFound, "Products not found")
		default:
			h.log.Error("Failed to fetch cart", zap.Error(err))
			utils.ResponseMsg(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.ResponseJSON(w, http.StatusOK, cart)
}

// RemoveProduct handles DELETE /product/cart/remove/{id}: drops every unit
// of the product from the cart.
func (h *CartHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMsg(w, http.StatusUnauthorized, "Unauthorized user")
		return
	}

	user, err := h.service.RemoveProduct(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrProductNotFound):
			utils.ResponseMsg(w, http.StatusNotFound, "No product found")
		case errors.Is(err, entity.ErrUserNotFound):
			utils.ResponseMsg(w, http.StatusNotFound, "User not found")
		default:
			h.log.Error("Failed to remove product from cart", zap.Error(err))
			utils.ResponseMsg(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.UserEnvelope{User: *user})
}

// RemoveOneUnit handles DELETE /products/{id}: removes a single unit of the
// product from the cart.
func (h *CartHandler) RemoveOneUnit(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMsg(w, http.StatusUnauthorized, "Unauthorized user")
		return
	}

	user, err := h.service.RemoveOneUnit(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrProductNotFound):
			utils.ResponseMsg(w, http.StatusNotFound, "No product found")
		case errors.Is(err, entity.ErrUserNotFound):
			utils.ResponseMsg(w, http.StatusNotFound, "User not found")
		case errors.Is(err, entity.ErrNotInCart):
			utils.ResponseMsg(w, http.StatusNotFound, "Product not found in user's list")
		default:
			h.log.Error("Failed to remove one unit from cart", zap.Error(err))
			utils.ResponseMsg(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.UserWithMsg{
		Msg:  "Product removed from user's list",
		User: *user,
	})
}
