package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	request "parlamento/internal/adapter/http/dto/request"
	"parlamento/internal/adapter/http/handlers/mocks"
	"parlamento/internal/domain/entities"
	"parlamento/internal/usecase"
	"parlamento/pkg"
	"parlamento/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEntryRouter(uc usecase.IParliamentEntryUseCase, strict bool) *gin.Engine {
	h := NewParliamentEntryHandler(uc, request.NewValidator(strict), logger.NewNop())
	r := gin.New()
	r.GET("/entries", h.ListEntries)
	r.POST("/entries", h.CreateEntry)
	r.PUT("/entries/:id", h.UpdateEntry)
	r.DELETE("/entries/:id", h.DeleteEntry)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestParliamentEntryHandler_ListEntries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIParliamentEntryUseCase(ctrl)
		r := newEntryRouter(uc, false)

		uc.EXPECT().List(gomock.Any()).Return([]entities.ParliamentEntry{
			{ID: "e-1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Law: "Lei X", Resources: entities.Resources{Cash: 1, Gold: 2, BBL: 3, KG: 4}},
		}, nil)

		w := doJSON(r, http.MethodGet, "/entries", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(got) != 1 || got[0]["date"] != "2024-01-01T00:00:00.000Z" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
		res := got[0]["resources"].(map[string]interface{})
		if res["cash"] != 1.0 || res["kg"] != 4.0 {
			t.Fatalf("unexpected resources %v", res)
		}
	})

	t.Run("store failure surfaces raw message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIParliamentEntryUseCase(ctrl)
		r := newEntryRouter(uc, false)

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("SQLITE_BUSY: database is locked"))

		w := doJSON(r, http.MethodGet, "/entries", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Error != "SQLITE_BUSY: database is locked" {
			t.Fatalf("unexpected error %q", body.Error)
		}
	})
}

func TestParliamentEntryHandler_CreateEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIParliamentEntryUseCase(ctrl)
		r := newEntryRouter(uc, false)

		w := doJSON(r, http.MethodPost, "/entries", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIParliamentEntryUseCase(ctrl)
		r := newEntryRouter(uc, false)

		w := doJSON(r, http.MethodPost, "/entries", `{"date":"ontem"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("permissive accepts missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIParliamentEntryUseCase(ctrl)
		r := newEntryRouter(uc, false)

		uc.EXPECT().Create(gomock.Any(), entities.ParliamentEntry{Law: "Lei X"}).
			Return(entities.ParliamentEntry{ID: "gen-1", Law: "Lei X"}, nil)

		w := doJSON(r, http.MethodPost, "/entries", `{"law":"Lei X"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("strict rejects missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIParliamentEntryUseCase(ctrl)
		r := newEntryRouter(uc, true)

		w := doJSON(r, http.MethodPost, "/entries", `{"law":"Lei X"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "VALIDATION_FAILED" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("success ignores client id and completes resources", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIParliamentEntryUseCase(ctrl)
		r := newEntryRouter(uc, false)

		want := entities.ParliamentEntry{
			Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Law:          "Lei X",
			Region:       "Ducado de Serpa",
			Construction: "Hospital",
			Resources:    entities.Resources{Cash: 100},
		}
		created := want
		created.ID = "gen-1"
		uc.EXPECT().Create(gomock.Any(), want).Return(created, nil)

		w := doJSON(r, http.MethodPost, "/entries", `{"id":"mine","date":"2024-01-01T00:00:00Z","law":"Lei X","region":"Ducado de Serpa","construction":"Hospital","resources":{"cash":100}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["id"] != "gen-1" {
			t.Fatalf("unexpected id %v", got["id"])
		}
		if _, ok := got["lawUrl"]; !ok {
			t.Fatalf("expected lawUrl key in body")
		}
	})
}

func TestParliamentEntryHandler_UpdateEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIParliamentEntryUseCase(ctrl)
		r := newEntryRouter(uc, false)

		uc.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(entities.ParliamentEntry{}, usecase.ErrParliamentEntryNotFound)

		w := doJSON(r, http.MethodPut, "/entries/missing", `{"law":"x"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Error != "Entry not found" {
			t.Fatalf("unexpected error %q", body.Error)
		}
	})

	t.Run("passes only present fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIParliamentEntryUseCase(ctrl)
		r := newEntryRouter(uc, false)

		uc.EXPECT().Update(gomock.Any(), "e-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, p entities.ParliamentEntryPatch) (entities.ParliamentEntry, error) {
				if p.Law == nil || *p.Law != "Lei Y" {
					t.Fatalf("expected law in patch")
				}
				if p.Region != nil || p.Resources != nil || p.Date != nil {
					t.Fatalf("unexpected fields in patch: %+v", p)
				}
				return entities.ParliamentEntry{ID: "e-1", Law: "Lei Y", Region: "Limpopo"}, nil
			})

		w := doJSON(r, http.MethodPut, "/entries/e-1", `{"law":"Lei Y"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestParliamentEntryHandler_DeleteEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIParliamentEntryUseCase(ctrl)
		r := newEntryRouter(uc, false)

		uc.EXPECT().Delete(gomock.Any(), "e-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/entries/e-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIParliamentEntryUseCase(ctrl)
		r := newEntryRouter(uc, false)

		uc.EXPECT().Delete(gomock.Any(), "e-1").Return(usecase.ErrParliamentEntryNotFound)

		w := doJSON(r, http.MethodDelete, "/entries/e-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
