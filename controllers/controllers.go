package controllers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/questboard/gamelink/services"
)

// writeJSON encodes the payload with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// writeError sends a generic error message. Upstream detail never travels
// through here; it belongs to the logs.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// Controllers holds all controller instances
type Controllers struct {
	Auth        *AuthController
	Connections *ConnectionsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, logger *zap.Logger) *Controllers {
	return &Controllers{
		Auth:        NewAuthController(),
		Connections: NewConnectionsController(services.Connection, logger),
	}
}
