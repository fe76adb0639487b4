package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]struct {
			Summary string `json:"summary"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	summaries := map[string]string{
		"GET /entries":                   "List parliament entries",
		"POST /entries":                  "Create a parliament entry",
		"PUT /entries/{id}":              "Update a parliament entry",
		"DELETE /entries/{id}":           "Delete a parliament entry",
		"GET /autonomousRegions":         "List autonomous regions",
		"DELETE /autonomousRegions/{id}": "Delete an autonomous region",
		"PUT /dataSources/{id}":          "Update a data source",
		"POST /dataSources/{id}/fetch":   "Trigger a manual fetch",
	}
	methods := map[string]string{"GET": "get", "POST": "post", "PUT": "put", "DELETE": "delete"}
	for route, want := range summaries {
		method, path, _ := strings.Cut(route, " ")
		op, ok := doc.Paths[path][methods[method]]
		require.True(t, ok, "missing %s", route)
		assert.Equal(t, want, op.Summary, route)
	}
	assert.Contains(t, doc.Paths, "/ping")
}
