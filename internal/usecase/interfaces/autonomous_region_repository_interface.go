package interfaces

import (
	"context"

	"parlamento/internal/domain/entities"
)

// IAutonomousRegionRepository abstracts persistence for AutonomousRegion.

type IAutonomousRegionRepository interface {
	List(ctx context.Context) ([]entities.AutonomousRegion, error)
	GetByID(ctx context.Context, id string) (entities.AutonomousRegion, error)
	Create(ctx context.Context, r entities.AutonomousRegion) (entities.AutonomousRegion, error)
	Update(ctx context.Context, id string, patch entities.AutonomousRegionPatch) (entities.AutonomousRegion, error)
	Delete(ctx context.Context, id string) (bool, error)
}
