package request

import "parlamento/internal/domain/entities"

type AutonomousRegionRequest struct {
	Name       *string `json:"name" validate:"required" example:"Limpopo"`
	Title      *string `json:"title" example:"Região Autônoma"`
	CoatOfArms *string `json:"coatOfArms"`
}

func (r AutonomousRegionRequest) ToEntity() entities.AutonomousRegion {
	return entities.AutonomousRegion{
		Name:       deref(r.Name),
		Title:      deref(r.Title),
		CoatOfArms: deref(r.CoatOfArms),
	}
}

func (r AutonomousRegionRequest) ToPatch() entities.AutonomousRegionPatch {
	return entities.AutonomousRegionPatch{Name: r.Name, Title: r.Title, CoatOfArms: r.CoatOfArms}
}
