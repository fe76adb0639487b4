package response

import "parlamento/internal/domain/entities"

type DataSourceResponse struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Active      bool    `json:"active"`
	LastFetched *string `json:"lastFetched"`
}

func FromDataSource(d entities.DataSource) DataSourceResponse {
	resp := DataSourceResponse{
		ID:          d.ID,
		URL:         d.URL,
		Description: d.Description,
		Active:      d.Active,
	}
	if d.LastFetched != nil {
		s := formatTime(*d.LastFetched)
		resp.LastFetched = &s
	}
	return resp
}

func FromDataSources(items []entities.DataSource) []DataSourceResponse {
	out := make([]DataSourceResponse, 0, len(items))
	for _, d := range items {
		out = append(out, FromDataSource(d))
	}
	return out
}
