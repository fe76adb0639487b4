package client

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	request "parlamento/internal/adapter/http/dto/request"
	"parlamento/internal/adapter/http/routes"
	"parlamento/internal/adapter/persistence/repository"
	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repository.AutoMigrateSQL(db))

	srv := httptest.NewServer(routes.NewRouter(routes.Dependencies{
		Entries:   usecase.NewParliamentEntryUseCase(repository.NewParliamentEntryGormRepository(db)),
		Regions:   usecase.NewAutonomousRegionUseCase(repository.NewAutonomousRegionGormRepository(db)),
		Sources:   usecase.NewDataSourceUseCase(repository.NewDataSourceGormRepository(db)),
		Validator: request.NewValidator(false),
	}))
	t.Cleanup(func() {
		srv.Close()
		_ = sqlDB.Close()
	})
	return srv
}

func newTestStore(t *testing.T) (*Store, *API) {
	t.Helper()
	api := NewAPI(newTestServer(t).URL, 5*time.Second)
	return NewStore(api), api
}

func strPtr(s string) *string { return &s }

func sampleEntry() EntryInput {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return EntryInput{
		Date:         &d,
		Law:          strPtr("Lei X"),
		Region:       strPtr("Ducado de Serpa"),
		Construction: strPtr(entities.ConstructionHospital),
		Resources:    &entities.Resources{Cash: 100},
	}
}

func TestNewStore_InitialState(t *testing.T) {
	s := NewStore(NewAPI("", 0))
	st := s.Snapshot()

	assert.Empty(t, st.Entries)
	assert.NotNil(t, st.Entries)
	assert.Len(t, st.AutonomousRegions, 8)
	require.Len(t, st.DataSources, 1)
	assert.True(t, st.DataSources[0].Active)
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)
}

func TestStore_EntryLifecycle(t *testing.T) {
	s, api := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddEntry(ctx, sampleEntry()))
	st := s.Snapshot()
	require.Len(t, st.Entries, 1)
	created := st.Entries[0]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Lei X", created.Law)
	assert.Equal(t, 100.0, created.Resources.Cash)
	assert.False(t, st.IsLoading)

	require.NoError(t, s.UpdateEntry(ctx, created.ID, EntryInput{Law: strPtr("Lei Y")}))
	st = s.Snapshot()
	require.Len(t, st.Entries, 1)
	assert.Equal(t, "Lei Y", st.Entries[0].Law)
	assert.Equal(t, "Ducado de Serpa", st.Entries[0].Region)

	server, err := api.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, server, 1)
	assert.Equal(t, "Lei Y", server[0].Law)

	require.NoError(t, s.DeleteEntry(ctx, created.ID))
	assert.Empty(t, s.Snapshot().Entries)

	server, err = api.ListEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, server)
}

func TestStore_FetchDataMirrorsServer(t *testing.T) {
	s, api := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := api.CreateEntry(ctx, sampleEntry())
		require.NoError(t, err)
	}

	require.NoError(t, s.FetchData(ctx))
	assert.Len(t, s.Snapshot().Entries, 3)
}

func TestStore_UpdateUnknownEntryKeepsCache(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.AddEntry(ctx, sampleEntry()))
	before := s.Snapshot().Entries

	err := s.UpdateEntry(ctx, "missing", EntryInput{Law: strPtr("Z")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	st := s.Snapshot()
	assert.Equal(t, "Failed to update entry", st.Error)
	assert.Equal(t, before, st.Entries)
	assert.False(t, st.IsLoading)
}

func TestStore_TransportFailureSetsError(t *testing.T) {
	srv := newTestServer(t)
	s := NewStore(NewAPI(srv.URL, time.Second))
	srv.Close()

	err := s.AddEntry(context.Background(), sampleEntry())
	require.Error(t, err)

	st := s.Snapshot()
	assert.Equal(t, "Failed to add entry", st.Error)
	assert.Empty(t, st.Entries)
	assert.False(t, st.IsLoading)
}

func TestStore_SuccessClearsPreviousError(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.Error(t, s.DeleteEntry(ctx, "missing"))
	assert.Equal(t, "Failed to delete entry", s.Snapshot().Error)

	require.NoError(t, s.FetchData(ctx))
	assert.Empty(t, s.Snapshot().Error)
}

func TestStore_RegionsAndSources(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.FetchAutonomousRegions(ctx))
	assert.Empty(t, s.Snapshot().AutonomousRegions)

	require.NoError(t, s.AddAutonomousRegion(ctx, RegionInput{Name: strPtr("Limpopo"), Title: strPtr("Região Autônoma")}))
	region := s.Snapshot().AutonomousRegions[0]
	require.NoError(t, s.UpdateAutonomousRegion(ctx, region.ID, RegionInput{Title: strPtr("Ducado")}))
	assert.Equal(t, "Ducado", s.Snapshot().AutonomousRegions[0].Title)
	assert.Equal(t, "Limpopo", s.Snapshot().AutonomousRegions[0].Name)
	require.NoError(t, s.DeleteAutonomousRegion(ctx, region.ID))
	assert.Empty(t, s.Snapshot().AutonomousRegions)

	require.NoError(t, s.FetchDataSources(ctx))
	assert.Empty(t, s.Snapshot().DataSources)

	active := true
	require.NoError(t, s.AddDataSource(ctx, DataSourceInput{URL: strPtr("https://example.org/feed"), Active: &active}))
	src := s.Snapshot().DataSources[0]
	assert.True(t, src.Active)
	assert.Nil(t, src.LastFetched)

	inactive := false
	require.NoError(t, s.UpdateDataSource(ctx, src.ID, DataSourceInput{Active: &inactive}))
	assert.False(t, s.Snapshot().DataSources[0].Active)

	require.NoError(t, s.DeleteDataSource(ctx, src.ID))
	assert.Empty(t, s.Snapshot().DataSources)
}

func TestStore_FetchDataSourceReloadsEntries(t *testing.T) {
	s, api := newTestStore(t)
	ctx := context.Background()

	active := true
	src, err := api.CreateDataSource(ctx, DataSourceInput{URL: strPtr("https://example.org/feed"), Active: &active})
	require.NoError(t, err)
	_, err = api.CreateEntry(ctx, sampleEntry())
	require.NoError(t, err)
	require.NoError(t, s.FetchDataSources(ctx))

	require.NoError(t, s.FetchDataSource(ctx, src.ID))
	st := s.Snapshot()
	require.Len(t, st.DataSources, 1)
	assert.NotNil(t, st.DataSources[0].LastFetched)
	assert.Len(t, st.Entries, 1)

	err = s.FetchDataSource(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Failed to fetch data source", s.Snapshot().Error)
}

func TestStore_EnsureLoaded(t *testing.T) {
	s, api := newTestStore(t)
	ctx := context.Background()

	_, err := api.CreateEntry(ctx, sampleEntry())
	require.NoError(t, err)

	// default source never fetched
	loaded, err := s.EnsureLoaded(ctx)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Len(t, s.Snapshot().Entries, 1)

	active := true
	_, err = api.CreateDataSource(ctx, DataSourceInput{URL: strPtr("https://example.org/feed"), Active: &active})
	require.NoError(t, err)
	require.NoError(t, s.FetchDataSources(ctx))
	id := s.Snapshot().DataSources[0].ID
	require.NoError(t, s.FetchDataSource(ctx, id))

	_, err = api.CreateEntry(ctx, sampleEntry())
	require.NoError(t, err)

	loaded, err = s.EnsureLoaded(ctx)
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Len(t, s.Snapshot().Entries, 1, "fetched source with cached entries must not reload")
}

func TestStore_SubscribeReceivesTransitions(t *testing.T) {
	s, _ := newTestStore(t)

	var mu sync.Mutex
	var loading []bool
	unsubscribe := s.Subscribe(func(st State) {
		mu.Lock()
		loading = append(loading, st.IsLoading)
		mu.Unlock()
	})

	require.NoError(t, s.FetchData(context.Background()))
	mu.Lock()
	assert.Equal(t, []bool{true, false}, loading)
	mu.Unlock()

	unsubscribe()
	require.NoError(t, s.FetchData(context.Background()))
	mu.Lock()
	assert.Len(t, loading, 2)
	mu.Unlock()
}

// blockingBackend holds ListEntries until release is closed.
type blockingBackend struct {
	*API
	started chan struct{}
	release chan struct{}
}

func (b *blockingBackend) ListEntries(ctx context.Context) ([]entities.ParliamentEntry, error) {
	close(b.started)
	<-b.release
	return nil, nil
}

func TestStore_RejectsConcurrentRequest(t *testing.T) {
	b := &blockingBackend{API: NewAPI("", 0), started: make(chan struct{}), release: make(chan struct{})}
	s := NewStore(b)

	done := make(chan error, 1)
	go func() { done <- s.FetchData(context.Background()) }()
	<-b.started

	assert.True(t, s.Snapshot().IsLoading)
	err := s.AddEntry(context.Background(), sampleEntry())
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(b.release)
	require.NoError(t, <-done)
	st := s.Snapshot()
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Entries)
	assert.NotNil(t, st.Entries)
}

func TestStore_EnsureLoadedWithoutActiveSource(t *testing.T) {
	s, api := newTestStore(t)
	ctx := context.Background()

	_, err := api.CreateEntry(ctx, sampleEntry())
	require.NoError(t, err)
	require.NoError(t, s.FetchDataSources(ctx))

	loaded, err := s.EnsureLoaded(ctx)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Len(t, s.Snapshot().Entries, 1)
}
