package repository

import (
	"context"

	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// DataSourceGormRepository persists data sources; active is stored as 0/1.
type DataSourceGormRepository struct {
	table gormTable[dataSourceModel]
}

var _ interfaces.IDataSourceRepository = (*DataSourceGormRepository)(nil)

func NewDataSourceGormRepository(db *gorm.DB) *DataSourceGormRepository {
	return &DataSourceGormRepository{table: gormTable[dataSourceModel]{db: db, order: "id"}}
}

func (r *DataSourceGormRepository) List(ctx context.Context) ([]entities.DataSource, error) {
	rows, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entities.DataSource, 0, len(rows))
	for _, m := range rows {
		items = append(items, fromDataSourceModel(m))
	}
	return items, nil
}

func (r *DataSourceGormRepository) GetByID(ctx context.Context, id string) (entities.DataSource, error) {
	m, ok, err := r.table.get(ctx, nil, id)
	if err != nil || !ok {
		return entities.DataSource{}, err
	}
	return fromDataSourceModel(m), nil
}

func (r *DataSourceGormRepository) Create(ctx context.Context, d entities.DataSource) (entities.DataSource, error) {
	m := toDataSourceModel(d)
	if err := r.table.create(ctx, &m); err != nil {
		return entities.DataSource{}, err
	}
	return fromDataSourceModel(m), nil
}

func (r *DataSourceGormRepository) Update(ctx context.Context, id string, patch entities.DataSourcePatch) (entities.DataSource, error) {
	m, ok, err := r.table.update(ctx, id, dataSourceColumns(patch))
	if err != nil || !ok {
		return entities.DataSource{}, err
	}
	return fromDataSourceModel(m), nil
}

func (r *DataSourceGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}
