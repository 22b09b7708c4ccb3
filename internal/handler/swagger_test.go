package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeOpenAPI3Spec(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/openapi.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	assert.False(t, strings.Contains(rec.Body.String(), "#/definitions/"), "definition refs must point at components")

	var doc struct {
		OpenAPI string `json:"openapi"`
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
		Paths      map[string]map[string]map[string]interface{} `json:"paths"`
		Components struct {
			Schemas         map[string]interface{}            `json:"schemas"`
			SecuritySchemes map[string]map[string]interface{} `json:"securitySchemes"`
		} `json:"components"`
	}
	decodeJSON(t, rec, &doc)

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "/api/v1", doc.Servers[0].URL)
	assert.Contains(t, doc.Components.Schemas, "handler.AdjustmentRequest")
	assert.Equal(t, "bearer", doc.Components.SecuritySchemes["BearerAuth"]["scheme"])

	create := doc.Paths["/adjustments"]["post"]
	require.NotNil(t, create)
	assert.Contains(t, create, "requestBody")
	assert.NotContains(t, create, "parameters", "the body parameter moves to requestBody")

	created, ok := create["responses"].(map[string]interface{})["201"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, created, "content")
}
