package wire

import (
	"shop-backend/internal/adaptor"
	"shop-backend/pkg/middleware"
	"shop-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, tokens *utils.TokenIssuer, log *zap.Logger) {
	auth := middleware.Auth(tokens, log)

	r.With(auth).Get("/user/profile", userHandler.Profile)
	r.With(auth).Put("/edit/user/profile/{id}", userHandler.EditProfile)
	r.With(auth).Put("/user/updateLocation", userHandler.UpdateLocation)
	r.With(auth).Post("/resetPassword", userHandler.ResetPassword)
}
