package store

import (
	"context"

	"github.com/artpar/planter/internal/core/domain"
)

// =============================================================================
// Store Interface
// =============================================================================

// Store defines the persistence interface for Planter entities.
type Store interface {
	// Plant operations
	CreatePlant(ctx context.Context, plant *domain.Plant) error
	GetPlant(ctx context.Context, id int64) (*domain.Plant, error)
	ListPlants(ctx context.Context) ([]domain.Plant, error)
	UpdatePlant(ctx context.Context, plant *domain.Plant) error
	DeletePlant(ctx context.Context, id int64) error

	// Health
	Ping(ctx context.Context) error

	// Lifecycle
	Close() error
}
