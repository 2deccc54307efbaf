package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/movie-ratings/internal/jwt"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
)

// Response is the envelope returned by the API
// swagger:model Response
type Response struct {
	// Whether the request succeeded
	// default: true
	Success bool `json:"success"`

	// Payload of successful requests
	Data any `json:"data,omitempty"`

	// Human readable message
	Message string `json:"message,omitempty"`
}

// ErrorResponse is returned when a request fails
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

const errInternal = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: msg})
}

// actorFromRequest returns the authenticated caller, or nil for anonymous requests.
func actorFromRequest(r *http.Request) *models.Actor {
	claims := jwt.ClaimsFromContext(r.Context())
	if claims == nil {
		return nil
	}
	return &models.Actor{UserID: claims.UserID, IsAdmin: claims.IsAdmin}
}

// requireActor writes 401 and returns nil when the request is anonymous.
func requireActor(w http.ResponseWriter, r *http.Request) *models.Actor {
	actor := actorFromRequest(r)
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return actor
}
