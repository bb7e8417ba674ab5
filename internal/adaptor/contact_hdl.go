package adaptor

import (
	"encoding/json"
	"net/http"

	"shop-backend/internal/dto/request"
	"shop-backend/internal/usecase"
	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log,
	}
}

// Submit handles POST /contactUs
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMsg(w, http.StatusBadRequest, "Please fill all fields")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMsg(w, http.StatusBadRequest, "Please fill all fields")
		return
	}

	if err := h.service.Submit(r.Context(), &req); err != nil {
		h.log.Error("Failed to save contact message", zap.Error(err))
		utils.ResponseMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.ResponseMsg(w, http.StatusCreated, "Data saved")
}
