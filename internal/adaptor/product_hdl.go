package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/usecase"
	"shop-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// SaveProducts handles POST /save-products
func (h *ProductHandler) SaveProducts(w http.ResponseWriter, r *http.Request) {
	var reqs []request.SaveProductRequest

	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		utils.ResponseMessage(w, http.StatusInternalServerError, "Failed to save products")
		return
	}

	for i := range reqs {
		if validationErrors := utils.ValidateStruct(reqs[i]); len(validationErrors) > 0 {
			h.log.Warn("Product validation failed",
				zap.Int("index", i),
				zap.Any("errors", validationErrors))
			utils.ResponseMessage(w, http.StatusInternalServerError, "Failed to save products")
			return
		}
	}

	saved, err := h.service.SaveProducts(r.Context(), reqs)
	if err != nil {
		h.log.Error("Failed to save products", zap.Error(err))
		utils.ResponseMessage(w, http.StatusInternalServerError, "Failed to save products")
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, saved)
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		if errors.Is(err, entity.ErrNoProducts) {
			utils.ResponseMsg(w, http.StatusNotFound, "No products found")
			return
		}
		h.log.Error("Failed to list products", zap.Error(err))
		utils.ResponseMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, products)
}

// ProductDetail handles GET /product/desc/{pid}
func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.ProductDetail(r.Context(), chi.URLParam(r, "pid"))
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			utils.ResponseMsg(w, http.StatusNotFound, "Product not found")
			return
		}
		h.log.Error("Failed to fetch product detail", zap.Error(err))
		utils.ResponseMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, detail)
}
