package repository

import (
	"context"

	"clientes/internal/domain/entity"
)

// RegionRepository provides read-only access to region reference data.
type RegionRepository interface {
	// FindAll returns every region ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Region, error)
}
