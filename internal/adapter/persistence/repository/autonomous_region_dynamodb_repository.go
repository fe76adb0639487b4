package repository

import (
	"context"
	"sort"

	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase/interfaces"
)

type AutonomousRegionDynamoRepository struct {
	table dynamoTable[autonomousRegionItem]
}

var _ interfaces.IAutonomousRegionRepository = (*AutonomousRegionDynamoRepository)(nil)

func NewAutonomousRegionDynamoRepository(ddb DynamoDBAPI, tableName string) *AutonomousRegionDynamoRepository {
	return &AutonomousRegionDynamoRepository{table: dynamoTable[autonomousRegionItem]{ddb: ddb, tableName: tableName}}
}

func (r *AutonomousRegionDynamoRepository) List(ctx context.Context) ([]entities.AutonomousRegion, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	out := make([]entities.AutonomousRegion, 0, len(items))
	for _, it := range items {
		out = append(out, fromAutonomousRegionItem(it))
	}
	return out, nil
}

func (r *AutonomousRegionDynamoRepository) GetByID(ctx context.Context, id string) (entities.AutonomousRegion, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.AutonomousRegion{}, err
	}
	return fromAutonomousRegionItem(it), nil
}

func (r *AutonomousRegionDynamoRepository) Create(ctx context.Context, reg entities.AutonomousRegion) (entities.AutonomousRegion, error) {
	it := toAutonomousRegionItem(reg)
	if err := r.table.put(ctx, it); err != nil {
		return entities.AutonomousRegion{}, err
	}
	return fromAutonomousRegionItem(it), nil
}

func (r *AutonomousRegionDynamoRepository) Update(ctx context.Context, id string, patch entities.AutonomousRegionPatch) (entities.AutonomousRegion, error) {
	it, ok, err := r.table.update(ctx, id, autonomousRegionUpdate(patch))
	if err != nil || !ok {
		return entities.AutonomousRegion{}, err
	}
	return fromAutonomousRegionItem(it), nil
}

func (r *AutonomousRegionDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}
