package middleware

import (
	"net/http"
	"strings"

	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

// Auth gates protected routes behind a bearer token. On success the resolved
// user id is placed in the request context; whether that user still exists
// is checked downstream, not here.
func Auth(tokens *utils.TokenIssuer, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.ResponseMsg(w, http.StatusUnauthorized, "Authorization header is missing or malformed")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				utils.ResponseMsg(w, http.StatusUnauthorized, "Token not found")
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				logger.Warn("Token verification failed",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseMsg(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
