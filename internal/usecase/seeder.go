package usecase

import (
	"context"
	"errors"
	"fmt"

	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase/interfaces"
	"parlamento/pkg/logger"

	"github.com/google/uuid"
)

// Seeder loads the initial data set. It only goes through the repository
// interfaces so it works against every backend.
type Seeder struct {
	entries interfaces.IParliamentEntryRepository
	regions interfaces.IAutonomousRegionRepository
	sources interfaces.IDataSourceRepository
	log     *logger.Logger
}

func NewSeeder(
	entries interfaces.IParliamentEntryRepository,
	regions interfaces.IAutonomousRegionRepository,
	sources interfaces.IDataSourceRepository,
	log *logger.Logger,
) *Seeder {
	return &Seeder{entries: entries, regions: regions, sources: sources, log: log.With("component", "seeder")}
}

// SeedDefaults inserts the default regions and data source into empty tables.
// Tables that already hold rows are left alone.
func (s *Seeder) SeedDefaults(ctx context.Context) error {
	regions, err := s.regions.List(ctx)
	if err != nil {
		return fmt.Errorf("list regions: %w", err)
	}
	if len(regions) == 0 {
		for _, r := range entities.DefaultAutonomousRegions() {
			if _, err := s.regions.Create(ctx, r); err != nil && !errors.Is(err, interfaces.ErrAlreadyExists) {
				return fmt.Errorf("seed region %s: %w", r.ID, err)
			}
		}
		s.log.Info("[seed] default regions inserted")
	}

	sources, err := s.sources.List(ctx)
	if err != nil {
		return fmt.Errorf("list data sources: %w", err)
	}
	if len(sources) == 0 {
		for _, d := range entities.DefaultDataSources() {
			if _, err := s.sources.Create(ctx, d); err != nil && !errors.Is(err, interfaces.ErrAlreadyExists) {
				return fmt.Errorf("seed data source %s: %w", d.ID, err)
			}
		}
		s.log.Info("[seed] default data sources inserted")
	}
	return nil
}

// ImportEntries inserts entries keeping their ids. Ids already present are
// skipped; entries without an id get a fresh one. Returns how many were stored.
func (s *Seeder) ImportEntries(ctx context.Context, items []entities.ParliamentEntry) (int, error) {
	imported := 0
	for _, e := range items {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if _, err := s.entries.Create(ctx, e); err != nil {
			if errors.Is(err, interfaces.ErrAlreadyExists) {
				continue
			}
			return imported, fmt.Errorf("import entry %s: %w", e.ID, err)
		}
		imported++
	}
	s.log.Info("[seed] entries imported", "imported", imported, "total", len(items))
	return imported, nil
}
