package repository

import (
	"context"
	"sort"

	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase/interfaces"
)

// ParliamentEntryDynamoRepository persists ParliamentEntry items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Resources are stored flattened as numeric cash/gold/bbl/kg attributes, the
// same shape as the SQL table.
type ParliamentEntryDynamoRepository struct {
	table dynamoTable[parliamentEntryItem]
}

var _ interfaces.IParliamentEntryRepository = (*ParliamentEntryDynamoRepository)(nil)

func NewParliamentEntryDynamoRepository(ddb DynamoDBAPI, tableName string) *ParliamentEntryDynamoRepository {
	return &ParliamentEntryDynamoRepository{table: dynamoTable[parliamentEntryItem]{ddb: ddb, tableName: tableName}}
}

// List scans the whole table. Order matches the SQL backend (date, then id).
func (r *ParliamentEntryDynamoRepository) List(ctx context.Context) ([]entities.ParliamentEntry, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].ID < items[j].ID
	})
	out := make([]entities.ParliamentEntry, 0, len(items))
	for _, it := range items {
		out = append(out, fromParliamentEntryItem(it))
	}
	return out, nil
}

func (r *ParliamentEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.ParliamentEntry, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.ParliamentEntry{}, err
	}
	return fromParliamentEntryItem(it), nil
}

func (r *ParliamentEntryDynamoRepository) Create(ctx context.Context, e entities.ParliamentEntry) (entities.ParliamentEntry, error) {
	it := toParliamentEntryItem(e)
	if err := r.table.put(ctx, it); err != nil {
		return entities.ParliamentEntry{}, err
	}
	return fromParliamentEntryItem(it), nil
}

func (r *ParliamentEntryDynamoRepository) Update(ctx context.Context, id string, patch entities.ParliamentEntryPatch) (entities.ParliamentEntry, error) {
	it, ok, err := r.table.update(ctx, id, parliamentEntryUpdate(patch))
	if err != nil || !ok {
		return entities.ParliamentEntry{}, err
	}
	return fromParliamentEntryItem(it), nil
}

func (r *ParliamentEntryDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}
