package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"parlamento/internal/domain/entities"
)

// ErrRequestInFlight is returned when a mutation is attempted while another
// request of the same store is still outstanding.
var ErrRequestInFlight = errors.New("a request is already in progress")

// Backend is the API surface the store needs. *API implements it.
type Backend interface {
	ListEntries(ctx context.Context) ([]entities.ParliamentEntry, error)
	CreateEntry(ctx context.Context, in EntryInput) (entities.ParliamentEntry, error)
	UpdateEntry(ctx context.Context, id string, in EntryInput) (entities.ParliamentEntry, error)
	DeleteEntry(ctx context.Context, id string) error

	ListAutonomousRegions(ctx context.Context) ([]entities.AutonomousRegion, error)
	CreateAutonomousRegion(ctx context.Context, in RegionInput) (entities.AutonomousRegion, error)
	UpdateAutonomousRegion(ctx context.Context, id string, in RegionInput) (entities.AutonomousRegion, error)
	DeleteAutonomousRegion(ctx context.Context, id string) error

	ListDataSources(ctx context.Context) ([]entities.DataSource, error)
	CreateDataSource(ctx context.Context, in DataSourceInput) (entities.DataSource, error)
	UpdateDataSource(ctx context.Context, id string, in DataSourceInput) (entities.DataSource, error)
	DeleteDataSource(ctx context.Context, id string) error
	FetchDataSource(ctx context.Context, id string) (entities.DataSource, error)
}

var _ Backend = (*API)(nil)

// State is a snapshot of the cache. Slices are copies owned by the caller.
type State struct {
	Entries           []entities.ParliamentEntry
	AutonomousRegions []entities.AutonomousRegion
	DataSources       []entities.DataSource
	IsLoading         bool
	Error             string
}

// Store mirrors the server tables in memory. Every mutation goes to the
// server first; the cache only changes from a successful response.
//
// A store runs one request at a time: while IsLoading is true further calls
// fail with ErrRequestInFlight instead of queueing.
type Store struct {
	api Backend

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

// NewStore starts with no entries and the default regions and data source,
// the same set the server seeds.
func NewStore(api Backend) *Store {
	return &Store{
		api: api,
		state: State{
			Entries:           []entities.ParliamentEntry{},
			AutonomousRegions: entities.DefaultAutonomousRegions(),
			DataSources:       entities.DefaultDataSources(),
		},
		subs: map[int]func(State){},
	}
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every state change.
// Callbacks run on the goroutine that changed the state, outside the lock.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) snapshotLocked() State {
	return State{
		Entries:           append([]entities.ParliamentEntry{}, s.state.Entries...),
		AutonomousRegions: append([]entities.AutonomousRegion{}, s.state.AutonomousRegions...),
		DataSources:       append([]entities.DataSource{}, s.state.DataSources...),
		IsLoading:         s.state.IsLoading,
		Error:             s.state.Error,
	}
}

// commit changes the state under the lock and notifies subscribers.
func (s *Store) commit(change func(*State)) {
	s.mu.Lock()
	change(&s.state)
	snap := s.snapshotLocked()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// run drives one request through idle -> loading -> idle. On failure the
// cache is untouched, Error holds failMsg and the wrapped cause is returned.
func (s *Store) run(ctx context.Context, failMsg string, call func(ctx context.Context) (func(*State), error)) error {
	s.mu.Lock()
	if s.state.IsLoading {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	s.state.IsLoading = true
	s.mu.Unlock()
	s.commit(func(st *State) { st.Error = "" })

	apply, err := call(ctx)
	s.commit(func(st *State) {
		st.IsLoading = false
		if err != nil {
			st.Error = failMsg
			return
		}
		apply(st)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", failMsg, err)
	}
	return nil
}

// FetchData reloads the entries.
func (s *Store) FetchData(ctx context.Context) error {
	return s.run(ctx, "Failed to fetch entries", func(ctx context.Context) (func(*State), error) {
		items, err := s.api.ListEntries(ctx)
		if err != nil {
			return nil, err
		}
		return func(st *State) { st.Entries = nonNil(items) }, nil
	})
}

func (s *Store) AddEntry(ctx context.Context, in EntryInput) error {
	return s.run(ctx, "Failed to add entry", func(ctx context.Context) (func(*State), error) {
		created, err := s.api.CreateEntry(ctx, in)
		if err != nil {
			return nil, err
		}
		return func(st *State) { st.Entries = append(st.Entries, created) }, nil
	})
}

func (s *Store) UpdateEntry(ctx context.Context, id string, in EntryInput) error {
	return s.run(ctx, "Failed to update entry", func(ctx context.Context) (func(*State), error) {
		updated, err := s.api.UpdateEntry(ctx, id, in)
		if err != nil {
			return nil, err
		}
		return func(st *State) { st.Entries = replaceByID(st.Entries, id, updated, entryID) }, nil
	})
}

func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	return s.run(ctx, "Failed to delete entry", func(ctx context.Context) (func(*State), error) {
		if err := s.api.DeleteEntry(ctx, id); err != nil {
			return nil, err
		}
		return func(st *State) { st.Entries = removeByID(st.Entries, id, entryID) }, nil
	})
}

func (s *Store) FetchAutonomousRegions(ctx context.Context) error {
	return s.run(ctx, "Failed to fetch autonomous regions", func(ctx context.Context) (func(*State), error) {
		items, err := s.api.ListAutonomousRegions(ctx)
		if err != nil {
			return nil, err
		}
		return func(st *State) { st.AutonomousRegions = nonNil(items) }, nil
	})
}

func (s *Store) AddAutonomousRegion(ctx context.Context, in RegionInput) error {
	return s.run(ctx, "Failed to add autonomous region", func(ctx context.Context) (func(*State), error) {
		created, err := s.api.CreateAutonomousRegion(ctx, in)
		if err != nil {
			return nil, err
		}
		return func(st *State) { st.AutonomousRegions = append(st.AutonomousRegions, created) }, nil
	})
}

func (s *Store) UpdateAutonomousRegion(ctx context.Context, id string, in RegionInput) error {
	return s.run(ctx, "Failed to update autonomous region", func(ctx context.Context) (func(*State), error) {
		updated, err := s.api.UpdateAutonomousRegion(ctx, id, in)
		if err != nil {
			return nil, err
		}
		return func(st *State) {
			st.AutonomousRegions = replaceByID(st.AutonomousRegions, id, updated, regionID)
		}, nil
	})
}

func (s *Store) DeleteAutonomousRegion(ctx context.Context, id string) error {
	return s.run(ctx, "Failed to delete autonomous region", func(ctx context.Context) (func(*State), error) {
		if err := s.api.DeleteAutonomousRegion(ctx, id); err != nil {
			return nil, err
		}
		return func(st *State) { st.AutonomousRegions = removeByID(st.AutonomousRegions, id, regionID) }, nil
	})
}

func (s *Store) FetchDataSources(ctx context.Context) error {
	return s.run(ctx, "Failed to fetch data sources", func(ctx context.Context) (func(*State), error) {
		items, err := s.api.ListDataSources(ctx)
		if err != nil {
			return nil, err
		}
		return func(st *State) { st.DataSources = nonNil(items) }, nil
	})
}

func (s *Store) AddDataSource(ctx context.Context, in DataSourceInput) error {
	return s.run(ctx, "Failed to add data source", func(ctx context.Context) (func(*State), error) {
		created, err := s.api.CreateDataSource(ctx, in)
		if err != nil {
			return nil, err
		}
		return func(st *State) { st.DataSources = append(st.DataSources, created) }, nil
	})
}

func (s *Store) UpdateDataSource(ctx context.Context, id string, in DataSourceInput) error {
	return s.run(ctx, "Failed to update data source", func(ctx context.Context) (func(*State), error) {
		updated, err := s.api.UpdateDataSource(ctx, id, in)
		if err != nil {
			return nil, err
		}
		return func(st *State) { st.DataSources = replaceByID(st.DataSources, id, updated, sourceID) }, nil
	})
}

func (s *Store) DeleteDataSource(ctx context.Context, id string) error {
	return s.run(ctx, "Failed to delete data source", func(ctx context.Context) (func(*State), error) {
		if err := s.api.DeleteDataSource(ctx, id); err != nil {
			return nil, err
		}
		return func(st *State) { st.DataSources = removeByID(st.DataSources, id, sourceID) }, nil
	})
}

// FetchDataSource runs the manual fetch of one source and reloads the
// entries, as the admin panel does. Both results land in the cache together.
func (s *Store) FetchDataSource(ctx context.Context, id string) error {
	return s.run(ctx, "Failed to fetch data source", func(ctx context.Context) (func(*State), error) {
		fetched, err := s.api.FetchDataSource(ctx, id)
		if err != nil {
			return nil, err
		}
		items, err := s.api.ListEntries(ctx)
		if err != nil {
			return nil, err
		}
		return func(st *State) {
			st.DataSources = replaceByID(st.DataSources, id, fetched, sourceID)
			st.Entries = nonNil(items)
		}, nil
	})
}

// EnsureLoaded loads the entries unless the first active data source has
// been fetched and the cache already holds entries. No active source counts
// as never fetched. It reports whether a load ran. Nothing else ever
// refreshes the cache on its own.
func (s *Store) EnsureLoaded(ctx context.Context) (bool, error) {
	st := s.Snapshot()
	active, ok := activeSource(st.DataSources)
	if ok && active.LastFetched != nil && len(st.Entries) > 0 {
		return false, nil
	}
	return true, s.FetchData(ctx)
}

func activeSource(sources []entities.DataSource) (entities.DataSource, bool) {
	for _, d := range sources {
		if d.Active {
			return d, true
		}
	}
	return entities.DataSource{}, false
}

func entryID(e entities.ParliamentEntry) string   { return e.ID }
func regionID(r entities.AutonomousRegion) string { return r.ID }
func sourceID(d entities.DataSource) string       { return d.ID }

func replaceByID[T any](items []T, id string, v T, key func(T) string) []T {
	out := make([]T, len(items))
	for i, it := range items {
		if key(it) == id {
			out[i] = v
			continue
		}
		out[i] = it
	}
	return out
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
