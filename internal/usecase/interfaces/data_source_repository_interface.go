package interfaces

import (
	"context"

	"parlamento/internal/domain/entities"
)

// IDataSourceRepository abstracts persistence for DataSource.

type IDataSourceRepository interface {
	List(ctx context.Context) ([]entities.DataSource, error)
	GetByID(ctx context.Context, id string) (entities.DataSource, error)
	Create(ctx context.Context, d entities.DataSource) (entities.DataSource, error)
	Update(ctx context.Context, id string, patch entities.DataSourcePatch) (entities.DataSource, error)
	Delete(ctx context.Context, id string) (bool, error)
}
