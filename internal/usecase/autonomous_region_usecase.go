package usecase

import (
	"context"
	"errors"
	"strings"

	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAutonomousRegionNotFound  = errors.New("autonomous region not found")
	ErrInvalidAutonomousRegionID = errors.New("invalid autonomous region id")
)

type IAutonomousRegionUseCase interface {
	List(ctx context.Context) ([]entities.AutonomousRegion, error)
	Create(ctx context.Context, r entities.AutonomousRegion) (entities.AutonomousRegion, error)
	Update(ctx context.Context, id string, patch entities.AutonomousRegionPatch) (entities.AutonomousRegion, error)
	Delete(ctx context.Context, id string) error
}

type AutonomousRegionUseCase struct {
	repo interfaces.IAutonomousRegionRepository
}

var _ IAutonomousRegionUseCase = (*AutonomousRegionUseCase)(nil)

func NewAutonomousRegionUseCase(repo interfaces.IAutonomousRegionRepository) *AutonomousRegionUseCase {
	return &AutonomousRegionUseCase{repo: repo}
}

func (u *AutonomousRegionUseCase) List(ctx context.Context) ([]entities.AutonomousRegion, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.AutonomousRegion{}
	}
	return items, nil
}

func (u *AutonomousRegionUseCase) Create(ctx context.Context, r entities.AutonomousRegion) (entities.AutonomousRegion, error) {
	r.ID = uuid.NewString()
	return u.repo.Create(ctx, r)
}

func (u *AutonomousRegionUseCase) Update(ctx context.Context, id string, patch entities.AutonomousRegionPatch) (entities.AutonomousRegion, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AutonomousRegion{}, ErrInvalidAutonomousRegionID
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.AutonomousRegion{}, err
	}
	if updated.ID == "" {
		return entities.AutonomousRegion{}, ErrAutonomousRegionNotFound
	}
	return updated, nil
}

func (u *AutonomousRegionUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAutonomousRegionID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrAutonomousRegionNotFound
	}
	return nil
}
