package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	request "parlamento/internal/adapter/http/dto/request"
	"parlamento/internal/adapter/http/handlers/mocks"
	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase"
	"parlamento/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRegionRouter(uc usecase.IAutonomousRegionUseCase) *gin.Engine {
	h := NewAutonomousRegionHandler(uc, request.NewValidator(false), logger.NewNop())
	r := gin.New()
	r.GET("/autonomousRegions", h.ListRegions)
	r.POST("/autonomousRegions", h.CreateRegion)
	r.PUT("/autonomousRegions/:id", h.UpdateRegion)
	r.DELETE("/autonomousRegions/:id", h.DeleteRegion)
	return r
}

func newSourceRouter(uc usecase.IDataSourceUseCase) *gin.Engine {
	h := NewDataSourceHandler(uc, request.NewValidator(false), logger.NewNop())
	r := gin.New()
	r.GET("/dataSources", h.ListDataSources)
	r.POST("/dataSources", h.CreateDataSource)
	r.PUT("/dataSources/:id", h.UpdateDataSource)
	r.DELETE("/dataSources/:id", h.DeleteDataSource)
	r.POST("/dataSources/:id/fetch", h.FetchDataSource)
	return r
}

func TestAutonomousRegionHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list empty is an array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAutonomousRegionUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := doJSON(newRegionRouter(uc), http.MethodGet, "/autonomousRegions", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAutonomousRegionUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), entities.AutonomousRegion{Name: "Limpopo", Title: "Região Autônoma"}).
			Return(entities.AutonomousRegion{ID: "r-1", Name: "Limpopo", Title: "Região Autônoma"}, nil)

		w := doJSON(newRegionRouter(uc), http.MethodPost, "/autonomousRegions", `{"name":"Limpopo","title":"Região Autônoma"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAutonomousRegionUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), "9", gomock.Any()).Return(entities.AutonomousRegion{}, usecase.ErrAutonomousRegionNotFound)

		w := doJSON(newRegionRouter(uc), http.MethodPut, "/autonomousRegions/9", `{"title":"x"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAutonomousRegionUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "1").Return(errors.New("disk full"))

		w := doJSON(newRegionRouter(uc), http.MethodDelete, "/autonomousRegions/1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDataSourceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("active surfaced as boolean", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDataSourceUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return([]entities.DataSource{{ID: "1", Active: true}}, nil)

		w := doJSON(newSourceRouter(uc), http.MethodGet, "/dataSources", "")
		var got []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got[0]["active"] != true || got[0]["lastFetched"] != nil {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("update with null lastFetched clears it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDataSourceUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), "1", entities.DataSourcePatch{ClearLastFetched: true}).
			Return(entities.DataSource{ID: "1"}, nil)

		w := doJSON(newSourceRouter(uc), http.MethodPut, "/dataSources/1", `{"lastFetched":null}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDataSourceUseCase(ctrl)
		now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().Fetch(gomock.Any(), "1").Return(entities.DataSource{ID: "1", Active: true, LastFetched: &now}, nil)

		w := doJSON(newSourceRouter(uc), http.MethodPost, "/dataSources/1/fetch", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["lastFetched"] != "2025-04-01T10:00:00.000Z" {
			t.Fatalf("unexpected lastFetched %v", got["lastFetched"])
		}
	})

	t.Run("fetch unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDataSourceUseCase(ctrl)
		uc.EXPECT().Fetch(gomock.Any(), "9").Return(entities.DataSource{}, usecase.ErrDataSourceNotFound)

		w := doJSON(newSourceRouter(uc), http.MethodPost, "/dataSources/9/fetch", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDataSourceUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "1").Return(nil)

		w := doJSON(newSourceRouter(uc), http.MethodDelete, "/dataSources/1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
