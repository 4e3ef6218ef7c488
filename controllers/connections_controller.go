package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/questboard/gamelink/connections"
	"github.com/questboard/gamelink/models"
	"github.com/questboard/gamelink/services"
	"github.com/questboard/gamelink/userctx"
)

// ConnectionsController exposes the linking flow over HTTP. It only maps
// requests and error kinds; all protocol work happens in the connectors.
type ConnectionsController struct {
	service services.ConnectionService
	logger  *zap.Logger
}

// NewConnectionsController creates a new connections controller
func NewConnectionsController(service services.ConnectionService, logger *zap.Logger) *ConnectionsController {
	return &ConnectionsController{service: service, logger: logger}
}

// Index lists the current user's connections
func (cc *ConnectionsController) Index(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())

	conns, err := cc.service.GetConnections(r.Context(), userID)
	if err != nil {
		cc.logger.Error("failed to list connections", zap.String("user_id", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list connections")
		return
	}
	if conns == nil {
		conns = []models.Connection{}
	}

	writeJSON(w, http.StatusOK, conns)
}

// Authorize redirects the user to the provider's consent screen
func (cc *ConnectionsController) Authorize(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())
	provider := chi.URLParam(r, "provider")

	authURL, err := cc.service.AuthorizationURL(provider, userID)
	if err != nil {
		if errors.Is(err, connections.ErrUnknownProvider) {
			writeError(w, http.StatusNotFound, "unknown provider")
			return
		}
		cc.logger.Error("failed to build authorization URL",
			zap.String("provider", provider), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to start authorization")
		return
	}

	http.Redirect(w, r, authURL, http.StatusTemporaryRedirect)
}

// Callback handles the provider redirect and runs the linking flow. The
// state parameter carries the user identity, so this route does not require
// an active session.
func (cc *ConnectionsController) Callback(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")

	params := models.CallbackParams{
		State: r.URL.Query().Get("state"),
		Code:  r.URL.Query().Get("code"),
	}
	if v := r.URL.Query().Get("friend_sync"); v != "" {
		params.FriendSync, _ = strconv.ParseBool(v)
	}

	if errs := params.Validate(); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "invalid callback parameters")
		return
	}

	conn, err := cc.service.HandleCallback(r.Context(), provider, params)
	if err != nil {
		cc.writeCallbackError(w, provider, err)
		return
	}

	if conn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "already_linked"})
		return
	}

	writeJSON(w, http.StatusCreated, conn)
}

// Delete unlinks a stored connection
func (cc *ConnectionsController) Delete(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := cc.service.Unlink(r.Context(), userID, id); err != nil {
		cc.logger.Warn("failed to unlink connection",
			zap.String("user_id", userID), zap.String("connection_id", id), zap.Error(err))
		writeError(w, http.StatusNotFound, "connection not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeCallbackError maps the error taxonomy to HTTP statuses with generic
// messages; the detailed upstream cause was already logged where it happened.
func (cc *ConnectionsController) writeCallbackError(w http.ResponseWriter, provider string, err error) {
	switch {
	case errors.Is(err, connections.ErrUnknownProvider):
		writeError(w, http.StatusNotFound, "unknown provider")
	case errors.Is(err, connections.ErrInvalidState):
		writeError(w, http.StatusBadRequest, "invalid or expired state")
	case errors.Is(err, connections.ErrTokenExchange),
		errors.Is(err, connections.ErrInvalidCredential),
		errors.Is(err, connections.ErrProvider):
		writeError(w, http.StatusBadGateway, "provider authorization failed")
	default:
		cc.logger.Error("callback handling failed", zap.String("provider", provider), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to complete authorization")
	}
}
