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
	ErrParliamentEntryNotFound  = errors.New("entry not found")
	ErrInvalidParliamentEntryID = errors.New("invalid entry id")
)

// IParliamentEntryUseCase exposes the CRUD operations over parliament entries.
//
// Create always assigns a fresh id; Update merges only the supplied fields.

type IParliamentEntryUseCase interface {
	List(ctx context.Context) ([]entities.ParliamentEntry, error)
	Create(ctx context.Context, e entities.ParliamentEntry) (entities.ParliamentEntry, error)
	Update(ctx context.Context, id string, patch entities.ParliamentEntryPatch) (entities.ParliamentEntry, error)
	Delete(ctx context.Context, id string) error
}

type ParliamentEntryUseCase struct {
	repo interfaces.IParliamentEntryRepository
}

var _ IParliamentEntryUseCase = (*ParliamentEntryUseCase)(nil)

func NewParliamentEntryUseCase(repo interfaces.IParliamentEntryRepository) *ParliamentEntryUseCase {
	return &ParliamentEntryUseCase{repo: repo}
}

func (u *ParliamentEntryUseCase) List(ctx context.Context) ([]entities.ParliamentEntry, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.ParliamentEntry{}
	}
	return items, nil
}

func (u *ParliamentEntryUseCase) Create(ctx context.Context, e entities.ParliamentEntry) (entities.ParliamentEntry, error) {
	// Client supplied ids are never trusted.
	e.ID = uuid.NewString()
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}
	return u.repo.Create(ctx, e)
}

func (u *ParliamentEntryUseCase) Update(ctx context.Context, id string, patch entities.ParliamentEntryPatch) (entities.ParliamentEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ParliamentEntry{}, ErrInvalidParliamentEntryID
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.ParliamentEntry{}, err
	}
	if updated.ID == "" {
		return entities.ParliamentEntry{}, ErrParliamentEntryNotFound
	}
	return updated, nil
}

func (u *ParliamentEntryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidParliamentEntryID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrParliamentEntryNotFound
	}
	return nil
}
