package repository

import (
	"context"

	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type AutonomousRegionGormRepository struct {
	table gormTable[autonomousRegionModel]
}

var _ interfaces.IAutonomousRegionRepository = (*AutonomousRegionGormRepository)(nil)

func NewAutonomousRegionGormRepository(db *gorm.DB) *AutonomousRegionGormRepository {
	return &AutonomousRegionGormRepository{table: gormTable[autonomousRegionModel]{db: db, order: "id"}}
}

func (r *AutonomousRegionGormRepository) List(ctx context.Context) ([]entities.AutonomousRegion, error) {
	rows, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entities.AutonomousRegion, 0, len(rows))
	for _, m := range rows {
		items = append(items, fromAutonomousRegionModel(m))
	}
	return items, nil
}

func (r *AutonomousRegionGormRepository) GetByID(ctx context.Context, id string) (entities.AutonomousRegion, error) {
	m, ok, err := r.table.get(ctx, nil, id)
	if err != nil || !ok {
		return entities.AutonomousRegion{}, err
	}
	return fromAutonomousRegionModel(m), nil
}

func (r *AutonomousRegionGormRepository) Create(ctx context.Context, reg entities.AutonomousRegion) (entities.AutonomousRegion, error) {
	m := toAutonomousRegionModel(reg)
	if err := r.table.create(ctx, &m); err != nil {
		return entities.AutonomousRegion{}, err
	}
	return fromAutonomousRegionModel(m), nil
}

func (r *AutonomousRegionGormRepository) Update(ctx context.Context, id string, patch entities.AutonomousRegionPatch) (entities.AutonomousRegion, error) {
	m, ok, err := r.table.update(ctx, id, autonomousRegionColumns(patch))
	if err != nil || !ok {
		return entities.AutonomousRegion{}, err
	}
	return fromAutonomousRegionModel(m), nil
}

func (r *AutonomousRegionGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}
