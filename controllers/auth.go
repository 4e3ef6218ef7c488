package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"
)

// AuthController is a local-development stand-in for the host platform's
// session handling. In production the platform authenticates the user and
// this service only reads the session; these handlers exist so the flow can
// be exercised without the platform, and are only routed when DEV_AUTH is
// enabled.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login stores the user id from the query string in the session
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user query parameter is required")
		return
	}

	sess := session.GetSession(r)
	sess.Set("user_id", userID)

	writeJSON(w, http.StatusOK, map[string]string{"user_id": userID})
}

// Logout clears the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete("user_id")

	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}
