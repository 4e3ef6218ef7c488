package services

import (
	"go.uber.org/zap"

	"github.com/questboard/gamelink/connections"
	"github.com/questboard/gamelink/repositories"
)

// Services holds all service instances
type Services struct {
	Connection ConnectionService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, registry connections.Registry, logger *zap.Logger) *Services {
	return &Services{
		Connection: NewConnectionService(registry, repos.Connection, repos.Audit, logger),
	}
}
