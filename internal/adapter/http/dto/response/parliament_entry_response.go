package response

import (
	"time"

	"parlamento/internal/domain/entities"
)

// TimeLayout is the ISO-8601 form used on the wire (millisecond precision,
// UTC).
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

type ResourcesResponse struct {
	Cash float64 `json:"cash"`
	Gold float64 `json:"gold"`
	BBL  float64 `json:"bbl"`
	KG   float64 `json:"kg"`
}

type ParliamentEntryResponse struct {
	ID           string            `json:"id"`
	Date         string            `json:"date" example:"2024-01-01T00:00:00.000Z"`
	Law          string            `json:"law"`
	LawURL       *string           `json:"lawUrl"`
	Region       string            `json:"region"`
	Construction string            `json:"construction"`
	Resources    ResourcesResponse `json:"resources"`
}

func FromParliamentEntry(e entities.ParliamentEntry) ParliamentEntryResponse {
	return ParliamentEntryResponse{
		ID:           e.ID,
		Date:         formatTime(e.Date),
		Law:          e.Law,
		LawURL:       e.LawURL,
		Region:       e.Region,
		Construction: e.Construction,
		Resources: ResourcesResponse{
			Cash: e.Resources.Cash,
			Gold: e.Resources.Gold,
			BBL:  e.Resources.BBL,
			KG:   e.Resources.KG,
		},
	}
}

func FromParliamentEntries(items []entities.ParliamentEntry) []ParliamentEntryResponse {
	out := make([]ParliamentEntryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromParliamentEntry(e))
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
