package response

import "parlamento/internal/domain/entities"

type AutonomousRegionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	CoatOfArms string `json:"coatOfArms"`
}

func FromAutonomousRegion(r entities.AutonomousRegion) AutonomousRegionResponse {
	return AutonomousRegionResponse{ID: r.ID, Name: r.Name, Title: r.Title, CoatOfArms: r.CoatOfArms}
}

func FromAutonomousRegions(items []entities.AutonomousRegion) []AutonomousRegionResponse {
	out := make([]AutonomousRegionResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromAutonomousRegion(r))
	}
	return out
}
