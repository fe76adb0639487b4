package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"parlamento/internal/domain/entities"
)

var ErrInvalidDate = errors.New("invalid date")

type ResourcesRequest struct {
	Cash *float64 `json:"cash"`
	Gold *float64 `json:"gold"`
	BBL  *float64 `json:"bbl"`
	KG   *float64 `json:"kg"`
}

// ToResources completes the bundle; missing components are zero.
func (r *ResourcesRequest) ToResources() entities.Resources {
	if r == nil {
		return entities.Resources{}
	}
	return entities.ResourcesPatch{Cash: r.Cash, Gold: r.Gold, BBL: r.BBL, KG: r.KG}.Complete()
}

// OptionalString tells an explicit null apart from an absent field, like
// OptionalTime.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// ParliamentEntryRequest is the body of POST and PUT /entries. Every field is
// optional on the wire; an id in the body is ignored.
type ParliamentEntryRequest struct {
	Date         *string           `json:"date" example:"2024-01-01T00:00:00Z"`
	Law          *string           `json:"law" validate:"required" example:"Lei X"`
	LawURL       OptionalString    `json:"lawUrl" swaggertype:"string"`
	Region       *string           `json:"region" validate:"required" example:"Ducado de Serpa"`
	Construction *string           `json:"construction" validate:"required" example:"Hospital"`
	Resources    *ResourcesRequest `json:"resources"`
}

// ToEntity builds the entity to create. Absent text fields become empty and
// an absent date stays zero for the use case to fill in.
func (r ParliamentEntryRequest) ToEntity() (entities.ParliamentEntry, error) {
	e := entities.ParliamentEntry{
		Law:          deref(r.Law),
		LawURL:       r.LawURL.Value,
		Region:       deref(r.Region),
		Construction: deref(r.Construction),
		Resources:    r.Resources.ToResources(),
	}
	if d := strings.TrimSpace(deref(r.Date)); d != "" {
		t, err := entities.ParseTimestamp(d)
		if err != nil {
			return entities.ParliamentEntry{}, ErrInvalidDate
		}
		e.Date = t
	}
	return e, nil
}

// ToPatch keeps only the fields present in the body. A null lawUrl clears
// it; a resources object replaces all four components.
func (r ParliamentEntryRequest) ToPatch() (entities.ParliamentEntryPatch, error) {
	p := entities.ParliamentEntryPatch{
		Law:          r.Law,
		Region:       r.Region,
		Construction: r.Construction,
	}
	if r.LawURL.Set {
		if r.LawURL.Value == nil {
			p.ClearLawURL = true
		} else {
			p.LawURL = r.LawURL.Value
		}
	}
	if r.Resources != nil {
		res := r.Resources.ToResources()
		p.Resources = &res
	}
	if d := strings.TrimSpace(deref(r.Date)); d != "" {
		t, err := entities.ParseTimestamp(d)
		if err != nil {
			return entities.ParliamentEntryPatch{}, ErrInvalidDate
		}
		p.Date = &t
	}
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
