package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpec(t *testing.T) {
	doc, err := api.LoadSpec(context.Background())
	require.NoError(t, err)

	root := doc.Paths.Find("/")
	require.NotNil(t, root)
	require.NotNil(t, root.Post)
	assert.Equal(t, "deploy", root.Post.OperationID)
	assert.Len(t, root.Post.Parameters, 4)
	assert.Contains(t, doc.Components.Schemas, "DeploymentResponse")
}

func TestDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)

	for _, path := range []string{"/openapi.json", "/docs/doc.json"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var doc map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
			assert.Equal(t, "3.0.3", doc["openapi"])
		})
	}
}
