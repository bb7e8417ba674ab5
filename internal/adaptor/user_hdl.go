package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/dto/response"
	"shop-backend/internal/usecase"
	"shop-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Profile handles GET /user/profile
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMsg(w, http.StatusUnauthorized, "Unauthorized user")
		return
	}

	user, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		// A valid token whose user has since disappeared is an
		// authorization failure, not a lookup failure.
		if errors.Is(err, entity.ErrUserNotFound) {
			utils.ResponseMsg(w, http.StatusUnauthorized, "Unauthorized user")
			return
		}
		h.log.Error("Failed to fetch profile", zap.Error(err))
		utils.ResponseMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.UserEnvelope{User: *user})
}

// EditProfile handles PUT /edit/user/profile/{id}
func (h *UserHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMsg(w, http.StatusNotFound, "User not found")
		return
	}

	var req request.EditProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMsg(w, http.StatusBadRequest, utils.FormatValidationErrors(validationErrors))
		return
	}

	user, err := h.service.EditProfile(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUserNotFound):
			utils.ResponseMsg(w, http.StatusNotFound, "User not found")
		case errors.Is(err, entity.ErrPhoneTaken):
			utils.ResponseMsg(w, http.StatusConflict, "User with this phone number already exists")
		case errors.Is(err, entity.ErrEmailTaken):
			utils.ResponseMsg(w, http.StatusConflict, "User with this email already exists")
		default:
			h.log.Error("Failed to update profile", zap.Error(err))
			utils.ResponseMsg(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.UpdatedUserEnvelope{UpdatedUser: *user})
}

// UpdateLocation handles PUT /user/updateLocation
func (h *UserHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMsg(w, http.StatusUnauthorized, "Unauthorized user")
		return
	}

	var req request.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "All address fields are required")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseError(w, http.StatusBadRequest, "All address fields are required")
		return
	}

	user, err := h.service.UpdateLocation(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			utils.ResponseError(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error("Failed to update location", zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "Failed to update location")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.UpdatedUserEnvelope{UpdatedUser: *user})
}

// ResetPassword handles POST /resetPassword
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			utils.ResponseMessage(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error("Failed to reset password", zap.Error(err))
		utils.ResponseMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, "Password reset successfully")
}
