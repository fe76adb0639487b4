package repository

import (
	"context"
	"sort"

	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase/interfaces"
)

// DataSourceDynamoRepository persists DataSource items in DynamoDB.
// lastFetched is omitted from the item while unset and removed on clear.
type DataSourceDynamoRepository struct {
	table dynamoTable[dataSourceItem]
}

var _ interfaces.IDataSourceRepository = (*DataSourceDynamoRepository)(nil)

func NewDataSourceDynamoRepository(ddb DynamoDBAPI, tableName string) *DataSourceDynamoRepository {
	return &DataSourceDynamoRepository{table: dynamoTable[dataSourceItem]{ddb: ddb, tableName: tableName}}
}

func (r *DataSourceDynamoRepository) List(ctx context.Context) ([]entities.DataSource, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	out := make([]entities.DataSource, 0, len(items))
	for _, it := range items {
		out = append(out, fromDataSourceItem(it))
	}
	return out, nil
}

func (r *DataSourceDynamoRepository) GetByID(ctx context.Context, id string) (entities.DataSource, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.DataSource{}, err
	}
	return fromDataSourceItem(it), nil
}

func (r *DataSourceDynamoRepository) Create(ctx context.Context, d entities.DataSource) (entities.DataSource, error) {
	it := toDataSourceItem(d)
	if err := r.table.put(ctx, it); err != nil {
		return entities.DataSource{}, err
	}
	return fromDataSourceItem(it), nil
}

func (r *DataSourceDynamoRepository) Update(ctx context.Context, id string, patch entities.DataSourcePatch) (entities.DataSource, error) {
	it, ok, err := r.table.update(ctx, id, dataSourceUpdate(patch))
	if err != nil || !ok {
		return entities.DataSource{}, err
	}
	return fromDataSourceItem(it), nil
}

func (r *DataSourceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}
