package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/questboard/gamelink/connections"
	"github.com/questboard/gamelink/models"
	"github.com/questboard/gamelink/repositories"
)

// ConnectionService interface defines the dispatch layer over provider
// connectors plus the host-platform operations around stored connections
type ConnectionService interface {
	AuthorizationURL(provider, userID string) (string, error)
	HandleCallback(ctx context.Context, provider string, params models.CallbackParams) (*models.Connection, error)
	GetConnections(ctx context.Context, userID string) ([]models.Connection, error)
	Unlink(ctx context.Context, userID, id string) error
}

// connectionService implements ConnectionService interface
type connectionService struct {
	registry connections.Registry
	repo     repositories.ConnectionRepository
	audit    repositories.AuditRepository
	logger   *zap.Logger
}

// NewConnectionService creates a new connection service
func NewConnectionService(registry connections.Registry, repo repositories.ConnectionRepository, audit repositories.AuditRepository, logger *zap.Logger) ConnectionService {
	return &connectionService{
		registry: registry,
		repo:     repo,
		audit:    audit,
		logger:   logger,
	}
}

// AuthorizationURL looks up the connector for the provider tag and builds
// its consent URL for the given user
func (s *connectionService) AuthorizationURL(provider, userID string) (string, error) {
	conn, err := s.registry.Lookup(provider)
	if err != nil {
		return "", err
	}
	return conn.AuthorizationURL(userID)
}

// HandleCallback validates the inbound parameters and delegates the full
// linking flow to the provider connector. A nil result with a nil error
// means the account was already linked.
func (s *connectionService) HandleCallback(ctx context.Context, provider string, params models.CallbackParams) (*models.Connection, error) {
	conn, err := s.registry.Lookup(provider)
	if err != nil {
		return nil, err
	}
	if params.State == "" {
		return nil, fmt.Errorf("%w: missing state parameter", connections.ErrInvalidState)
	}

	created, err := conn.HandleCallback(ctx, params)
	if err != nil {
		return nil, err
	}
	if created != nil {
		s.recordAudit(ctx, &models.AuditLogEntry{
			UserID:   created.UserID,
			Action:   models.AuditActionLinked,
			Provider: created.Provider,
			Detail:   created.ExternalID,
		})
	}

	return created, nil
}

// GetConnections retrieves all of the user's stored connections
func (s *connectionService) GetConnections(ctx context.Context, userID string) ([]models.Connection, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Unlink removes a stored connection. This is a host-platform operation;
// connectors themselves never delete records.
func (s *connectionService) Unlink(ctx context.Context, userID, id string) error {
	if id == "" {
		return fmt.Errorf("connection ID is required")
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.recordAudit(ctx, &models.AuditLogEntry{
		UserID: userID,
		Action: models.AuditActionUnlinked,
		Detail: id,
	})
	s.logger.Info("unlinked connection",
		zap.String("user_id", userID),
		zap.String("connection_id", id))
	return nil
}

// recordAudit writes an audit entry; failures are logged but never fail the
// operation they describe.
func (s *connectionService) recordAudit(ctx context.Context, entry *models.AuditLogEntry) {
	if err := s.audit.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record audit entry",
			zap.String("action", entry.Action),
			zap.Error(err))
	}
}
