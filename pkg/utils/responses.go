package utils

import (
	"encoding/json"
	"net/http"
)

// ResponseJSON writes any payload as a JSON response with the given status
// code. Route-specific body shapes live in internal/dto/response.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ResponseMsg writes the common {"msg": "..."} body used by most routes.
func ResponseMsg(w http.ResponseWriter, code int, msg string) {
	ResponseJSON(w, code, map[string]string{"msg": msg})
}

// ResponseError writes {"error": "..."} for the routes that report failures
// under an "error" key instead of "msg".
func ResponseError(w http.ResponseWriter, code int, msg string) {
	ResponseJSON(w, code, map[string]string{"error": msg})
}

// ResponseMessage writes {"message": "..."} for the routes that report under
// a "message" key.
func ResponseMessage(w http.ResponseWriter, code int, msg string) {
	ResponseJSON(w, code, map[string]string{"message": msg})
}
