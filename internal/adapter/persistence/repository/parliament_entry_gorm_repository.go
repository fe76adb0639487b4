package repository

import (
	"context"

	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ParliamentEntryGormRepository persists entries in the ParliamentEntry table.
// The resources bundle is flattened into cash/gold/bbl/kg REAL columns.
type ParliamentEntryGormRepository struct {
	table gormTable[parliamentEntryModel]
}

var _ interfaces.IParliamentEntryRepository = (*ParliamentEntryGormRepository)(nil)

func NewParliamentEntryGormRepository(db *gorm.DB) *ParliamentEntryGormRepository {
	return &ParliamentEntryGormRepository{table: gormTable[parliamentEntryModel]{db: db, order: "date, id"}}
}

func (r *ParliamentEntryGormRepository) List(ctx context.Context) ([]entities.ParliamentEntry, error) {
	rows, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entities.ParliamentEntry, 0, len(rows))
	for _, m := range rows {
		items = append(items, fromParliamentEntryModel(m))
	}
	return items, nil
}

func (r *ParliamentEntryGormRepository) GetByID(ctx context.Context, id string) (entities.ParliamentEntry, error) {
	m, ok, err := r.table.get(ctx, nil, id)
	if err != nil || !ok {
		return entities.ParliamentEntry{}, err
	}
	return fromParliamentEntryModel(m), nil
}

func (r *ParliamentEntryGormRepository) Create(ctx context.Context, e entities.ParliamentEntry) (entities.ParliamentEntry, error) {
	m := toParliamentEntryModel(e)
	if err := r.table.create(ctx, &m); err != nil {
		return entities.ParliamentEntry{}, err
	}
	return fromParliamentEntryModel(m), nil
}

func (r *ParliamentEntryGormRepository) Update(ctx context.Context, id string, patch entities.ParliamentEntryPatch) (entities.ParliamentEntry, error) {
	m, ok, err := r.table.update(ctx, id, parliamentEntryColumns(patch))
	if err != nil || !ok {
		return entities.ParliamentEntry{}, err
	}
	return fromParliamentEntryModel(m), nil
}

func (r *ParliamentEntryGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}
