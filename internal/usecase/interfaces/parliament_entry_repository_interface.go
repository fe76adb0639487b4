package interfaces

import (
	"context"
	"errors"

	"parlamento/internal/domain/entities"
)

// ErrAlreadyExists is returned by Create when the id is taken.
var ErrAlreadyExists = errors.New("item already exists")

// IParliamentEntryRepository abstracts persistence for ParliamentEntry.
//
// Absent rows are reported the same way across backends:
//   - Update returns the zero entity (ID == "")
//   - Delete returns found == false

type IParliamentEntryRepository interface {
	List(ctx context.Context) ([]entities.ParliamentEntry, error)
	GetByID(ctx context.Context, id string) (entities.ParliamentEntry, error)
	Create(ctx context.Context, e entities.ParliamentEntry) (entities.ParliamentEntry, error)
	Update(ctx context.Context, id string, patch entities.ParliamentEntryPatch) (entities.ParliamentEntry, error)
	Delete(ctx context.Context, id string) (bool, error)
}
