package entities

// AutonomousRegion is a reference entity listing the known regions.
type AutonomousRegion struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	CoatOfArms string `json:"coatOfArms"`
}

type AutonomousRegionPatch struct {
	Name       *string
	Title      *string
	CoatOfArms *string
}

func (p AutonomousRegionPatch) IsEmpty() bool {
	return p.Name == nil && p.Title == nil && p.CoatOfArms == nil
}

func (p AutonomousRegionPatch) Apply(r AutonomousRegion) AutonomousRegion {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.CoatOfArms != nil {
		r.CoatOfArms = *p.CoatOfArms
	}
	return r
}
