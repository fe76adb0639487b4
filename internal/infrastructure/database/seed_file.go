package database

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"parlamento/internal/domain/entities"
)

type seedEntry struct {
	ID           string              `json:"id"`
	Date         string              `json:"date"`
	Law          string              `json:"law"`
	LawURL       *string             `json:"lawUrl"`
	Region       string              `json:"region"`
	Construction string              `json:"construction"`
	Resources    *entities.Resources `json:"resources"`
}

// LoadEntriesFile reads a JSON array of entries in the API's wire shape
// (nested resources). Ids are kept; a missing resources object reads as zeros.
func LoadEntriesFile(path string) ([]entities.ParliamentEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var items []seedEntry
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	out := make([]entities.ParliamentEntry, 0, len(items))
	for i, it := range items {
		date, err := parseSeedDate(it.Date)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		e := entities.ParliamentEntry{
			ID:           it.ID,
			Date:         date,
			Law:          it.Law,
			LawURL:       it.LawURL,
			Region:       it.Region,
			Construction: it.Construction,
		}
		if it.Resources != nil {
			e.Resources = *it.Resources
		}
		out = append(out, e)
	}
	return out, nil
}

func parseSeedDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return entities.ParseTimestamp(s)
}
