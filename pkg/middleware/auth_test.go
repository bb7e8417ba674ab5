package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func authedRequest(header string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func runAuth(t *testing.T, tokens *utils.TokenIssuer, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value(utils.UserIDKey).(string); ok {
			seenUserID = id
		}
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Auth(tokens, zap.NewNop())(next).ServeHTTP(rec, req)
	return rec, seenUserID
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)

	rec, _ := runAuth(t, tokens, authedRequest(""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"Authorization header is missing or malformed"}`, rec.Body.String())
}

func TestAuth_WrongScheme(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)

	rec, _ := runAuth(t, tokens, authedRequest("Basic abc123"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"Authorization header is missing or malformed"}`, rec.Body.String())
}

func TestAuth_EmptyToken(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)

	rec, _ := runAuth(t, tokens, authedRequest("Bearer "))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"Token not found"}`, rec.Body.String())
}

func TestAuth_GarbledToken(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)

	rec, _ := runAuth(t, tokens, authedRequest("Bearer definitely-not-a-jwt"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"Invalid token"}`, rec.Body.String())
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	expired := utils.NewTokenIssuer("test-secret", -time.Minute)

	token, err := expired.Issue("user-123")
	assert.NoError(t, err)

	rec, _ := runAuth(t, tokens, authedRequest("Bearer "+token))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"Invalid token"}`, rec.Body.String())
}

func TestAuth_ValidTokenInjectsUserID(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)

	token, err := tokens.Issue("user-123")
	assert.NoError(t, err)

	rec, seenUserID := runAuth(t, tokens, authedRequest("Bearer "+token))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", seenUserID)
}
