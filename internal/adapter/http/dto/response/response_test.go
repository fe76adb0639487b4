package response

import (
	"encoding/json"
	"testing"
	"time"

	"parlamento/internal/domain/entities"
)

func TestFromParliamentEntry_WireShape(t *testing.T) {
	e := entities.ParliamentEntry{
		ID:           "e-1",
		Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Law:          "Lei X",
		Region:       "Ducado de Serpa",
		Construction: "Hospital",
		Resources:    entities.Resources{Cash: 1, Gold: 2, BBL: 3, KG: 4},
	}

	b, err := json.Marshal(FromParliamentEntry(e))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"id":"e-1","date":"2024-01-01T00:00:00.000Z","law":"Lei X","lawUrl":null,"region":"Ducado de Serpa","construction":"Hospital","resources":{"cash":1,"gold":2,"bbl":3,"kg":4}}`
	if string(b) != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", b, want)
	}
}

func TestFromDataSource(t *testing.T) {
	resp := FromDataSource(entities.DataSource{ID: "1", Active: true})
	if !resp.Active || resp.LastFetched != nil {
		t.Fatalf("unexpected response %+v", resp)
	}

	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	resp = FromDataSource(entities.DataSource{ID: "1", LastFetched: &now})
	if resp.LastFetched == nil || *resp.LastFetched != "2025-04-01T13:00:00.000Z" {
		t.Fatalf("unexpected lastFetched %v", resp.LastFetched)
	}
}

func TestListMappersNeverNil(t *testing.T) {
	if FromParliamentEntries(nil) == nil || FromAutonomousRegions(nil) == nil || FromDataSources(nil) == nil {
		t.Fatalf("expected empty slices")
	}
}
