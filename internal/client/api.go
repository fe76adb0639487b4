package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"parlamento/internal/domain/entities"
)

const DefaultBaseURL = "http://localhost:4000"

var ErrNotFound = errors.New("not found")

// StatusError is a non-2xx answer from the API. Message carries the
// server's "error" field when present.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: http %d", e.Status)
	}
	return fmt.Sprintf("api: http %d: %s", e.Status, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// EntryInput is the body of an entry create or update. Nil fields are left
// out of the request, so on update they keep their stored value.
type EntryInput struct {
	Date         *time.Time          `json:"date,omitempty"`
	Law          *string             `json:"law,omitempty"`
	LawURL       *string             `json:"lawUrl,omitempty"`
	Region       *string             `json:"region,omitempty"`
	Construction *string             `json:"construction,omitempty"`
	Resources    *entities.Resources `json:"resources,omitempty"`
}

// EntryInputFrom copies every field of e; the id is not sent.
func EntryInputFrom(e entities.ParliamentEntry) EntryInput {
	in := EntryInput{
		Law:          &e.Law,
		LawURL:       e.LawURL,
		Region:       &e.Region,
		Construction: &e.Construction,
		Resources:    &e.Resources,
	}
	if !e.Date.IsZero() {
		in.Date = &e.Date
	}
	return in
}

type RegionInput struct {
	Name       *string `json:"name,omitempty"`
	Title      *string `json:"title,omitempty"`
	CoatOfArms *string `json:"coatOfArms,omitempty"`
}

func RegionInputFrom(r entities.AutonomousRegion) RegionInput {
	return RegionInput{Name: &r.Name, Title: &r.Title, CoatOfArms: &r.CoatOfArms}
}

type DataSourceInput struct {
	URL         *string    `json:"url,omitempty"`
	Description *string    `json:"description,omitempty"`
	Active      *bool      `json:"active,omitempty"`
	LastFetched *time.Time `json:"lastFetched,omitempty"`
}

func DataSourceInputFrom(d entities.DataSource) DataSourceInput {
	return DataSourceInput{URL: &d.URL, Description: &d.Description, Active: &d.Active, LastFetched: d.LastFetched}
}

// API calls the CRUD server over HTTP/JSON.
type API struct {
	baseURL string
	client  *http.Client
}

// NewAPI returns a client for baseURL. timeout bounds each request; zero
// means no timeout.
func NewAPI(baseURL string, timeout time.Duration) *API {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout, Transport: tr},
	}
}

func (a *API) ListEntries(ctx context.Context) ([]entities.ParliamentEntry, error) {
	var out []entities.ParliamentEntry
	err := a.do(ctx, http.MethodGet, "/entries", nil, &out)
	return out, err
}

func (a *API) CreateEntry(ctx context.Context, in EntryInput) (entities.ParliamentEntry, error) {
	var out entities.ParliamentEntry
	err := a.do(ctx, http.MethodPost, "/entries", in, &out)
	return out, err
}

func (a *API) UpdateEntry(ctx context.Context, id string, in EntryInput) (entities.ParliamentEntry, error) {
	var out entities.ParliamentEntry
	err := a.do(ctx, http.MethodPut, "/entries/"+url.PathEscape(id), in, &out)
	return out, err
}

func (a *API) DeleteEntry(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/entries/"+url.PathEscape(id), nil, nil)
}

func (a *API) ListAutonomousRegions(ctx context.Context) ([]entities.AutonomousRegion, error) {
	var out []entities.AutonomousRegion
	err := a.do(ctx, http.MethodGet, "/autonomousRegions", nil, &out)
	return out, err
}

func (a *API) CreateAutonomousRegion(ctx context.Context, in RegionInput) (entities.AutonomousRegion, error) {
	var out entities.AutonomousRegion
	err := a.do(ctx, http.MethodPost, "/autonomousRegions", in, &out)
	return out, err
}

func (a *API) UpdateAutonomousRegion(ctx context.Context, id string, in RegionInput) (entities.AutonomousRegion, error) {
	var out entities.AutonomousRegion
	err := a.do(ctx, http.MethodPut, "/autonomousRegions/"+url.PathEscape(id), in, &out)
	return out, err
}

func (a *API) DeleteAutonomousRegion(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/autonomousRegions/"+url.PathEscape(id), nil, nil)
}

func (a *API) ListDataSources(ctx context.Context) ([]entities.DataSource, error) {
	var out []entities.DataSource
	err := a.do(ctx, http.MethodGet, "/dataSources", nil, &out)
	return out, err
}

func (a *API) CreateDataSource(ctx context.Context, in DataSourceInput) (entities.DataSource, error) {
	var out entities.DataSource
	err := a.do(ctx, http.MethodPost, "/dataSources", in, &out)
	return out, err
}

func (a *API) UpdateDataSource(ctx context.Context, id string, in DataSourceInput) (entities.DataSource, error) {
	var out entities.DataSource
	err := a.do(ctx, http.MethodPut, "/dataSources/"+url.PathEscape(id), in, &out)
	return out, err
}

func (a *API) DeleteDataSource(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/dataSources/"+url.PathEscape(id), nil, nil)
}

// FetchDataSource triggers the server side fetch placeholder.
func (a *API) FetchDataSource(ctx context.Context, id string) (entities.DataSource, error) {
	var out entities.DataSource
	err := a.do(ctx, http.MethodPost, "/dataSources/"+url.PathEscape(id)+"/fetch", nil, &out)
	return out, err
}

func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &StatusError{Status: resp.StatusCode, Message: e.Error}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
