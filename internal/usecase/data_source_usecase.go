package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDataSourceNotFound  = errors.New("data source not found")
	ErrInvalidDataSourceID = errors.New("invalid data source id")
)

// IDataSourceUseCase exposes CRUD over data sources plus the manual fetch.
//
// Fetch does not contact the feed; it only stamps lastFetched.

type IDataSourceUseCase interface {
	List(ctx context.Context) ([]entities.DataSource, error)
	Create(ctx context.Context, d entities.DataSource) (entities.DataSource, error)
	Update(ctx context.Context, id string, patch entities.DataSourcePatch) (entities.DataSource, error)
	Delete(ctx context.Context, id string) error
	Fetch(ctx context.Context, id string) (entities.DataSource, error)
}

type DataSourceUseCase struct {
	repo interfaces.IDataSourceRepository
	now  func() time.Time
}

var _ IDataSourceUseCase = (*DataSourceUseCase)(nil)

func NewDataSourceUseCase(repo interfaces.IDataSourceRepository) *DataSourceUseCase {
	return &DataSourceUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *DataSourceUseCase) List(ctx context.Context) ([]entities.DataSource, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.DataSource{}
	}
	return items, nil
}

func (u *DataSourceUseCase) Create(ctx context.Context, d entities.DataSource) (entities.DataSource, error) {
	d.ID = uuid.NewString()
	return u.repo.Create(ctx, d)
}

func (u *DataSourceUseCase) Update(ctx context.Context, id string, patch entities.DataSourcePatch) (entities.DataSource, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DataSource{}, ErrInvalidDataSourceID
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.DataSource{}, err
	}
	if updated.ID == "" {
		return entities.DataSource{}, ErrDataSourceNotFound
	}
	return updated, nil
}

func (u *DataSourceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDataSourceID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrDataSourceNotFound
	}
	return nil
}

func (u *DataSourceUseCase) Fetch(ctx context.Context, id string) (entities.DataSource, error) {
	now := u.now()
	return u.Update(ctx, id, entities.DataSourcePatch{LastFetched: &now})
}
