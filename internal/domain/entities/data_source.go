package entities

import "time"

// DataSource references an external parliament feed. Fetching is a
// placeholder: it only records LastFetched.
//
// Storage model:
//   - active persisted as INTEGER 0/1
//   - last_fetched nullable
type DataSource struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	LastFetched *time.Time `json:"lastFetched"`
}

// DataSourcePatch is a partial update. ClearLastFetched distinguishes an
// explicit null from an absent field.
type DataSourcePatch struct {
	URL              *string
	Description      *string
	Active           *bool
	LastFetched      *time.Time
	ClearLastFetched bool
}

func (p DataSourcePatch) IsEmpty() bool {
	return p.URL == nil && p.Description == nil && p.Active == nil && p.LastFetched == nil && !p.ClearLastFetched
}

func (p DataSourcePatch) Apply(d DataSource) DataSource {
	if p.URL != nil {
		d.URL = *p.URL
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Active != nil {
		d.Active = *p.Active
	}
	if p.ClearLastFetched {
		d.LastFetched = nil
	} else if p.LastFetched != nil {
		t := *p.LastFetched
		d.LastFetched = &t
	}
	return d
}

// BoolToInt is the storage encoding of Active.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// IntToBool decodes Active; any non-zero value is true.
func IntToBool(i int) bool {
	return i != 0
}
