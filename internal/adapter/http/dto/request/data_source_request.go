package request

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"parlamento/internal/domain/entities"
)

// OptionalTime tells an explicit null apart from an absent field. Set is
// only true when the key was present in the body.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

func (o *OptionalTime) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		o.Value = nil
		return nil
	}
	t, err := entities.ParseTimestamp(s)
	if err != nil {
		return ErrInvalidDate
	}
	o.Value = &t
	return nil
}

type DataSourceRequest struct {
	URL         *string      `json:"url" validate:"required" example:"https://rivalregions.com/#log/index/parliament/3005606"`
	Description *string      `json:"description" example:"Parlamento do Império do Brasil"`
	Active      *bool        `json:"active"`
	LastFetched OptionalTime `json:"lastFetched" swaggertype:"string"`
}

// ToEntity builds the data source to create. An absent active flag is false.
func (r DataSourceRequest) ToEntity() entities.DataSource {
	d := entities.DataSource{
		URL:         deref(r.URL),
		Description: deref(r.Description),
		LastFetched: r.LastFetched.Value,
	}
	if r.Active != nil {
		d.Active = *r.Active
	}
	return d
}

func (r DataSourceRequest) ToPatch() entities.DataSourcePatch {
	p := entities.DataSourcePatch{
		URL:         r.URL,
		Description: r.Description,
		Active:      r.Active,
	}
	if r.LastFetched.Set {
		if r.LastFetched.Value == nil {
			p.ClearLastFetched = true
		} else {
			p.LastFetched = r.LastFetched.Value
		}
	}
	return p
}
