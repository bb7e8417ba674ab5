package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/usecase"
	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /register/home
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMsg(w, http.StatusBadRequest, "Please fill all fields")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMsg(w, http.StatusBadRequest, "Please fill all fields")
		return
	}

	auth, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrPhoneTaken) {
			utils.ResponseMsg(w, http.StatusConflict, "User with this phone number already exists")
			return
		}
		h.log.Error("Failed to register user", zap.Error(err))
		utils.ResponseMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	setTokenCookie(w, auth.Token)
	utils.ResponseJSON(w, http.StatusCreated, auth)
}

// Login handles POST /login/home
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMsg(w, http.StatusBadRequest, "Please fill all fields")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMsg(w, http.StatusBadRequest, "Please fill all fields")
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			utils.ResponseMsg(w, http.StatusUnauthorized, "Password or phone number incorrect")
			return
		}
		h.log.Error("Failed to log in user", zap.Error(err))
		utils.ResponseMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	setTokenCookie(w, auth.Token)
	utils.ResponseJSON(w, http.StatusOK, auth)
}

// setTokenCookie mirrors the token into an httpOnly cookie, a redundant
// transport alongside the JSON token field.
func setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}
